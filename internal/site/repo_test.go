package site

import "testing"

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantOwner string
		wantRepo  string
		wantOK    bool
	}{
		{"ssh", "git@github.com:alice/papers.git", "alice", "papers", true},
		{"https with suffix", "https://github.com/alice/papers.git", "alice", "papers", true},
		{"https without suffix", "https://github.com/alice/papers", "alice", "papers", true},
		{"not github", "https://gitlab.com/alice/papers.git", "", "", false},
		{"owner only", "https://github.com/alice", "", "", false},
		{"empty", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, ok := parseRemoteURL(tt.url)
			if ok != tt.wantOK {
				t.Fatalf("parseRemoteURL(%q) ok = %v, want %v", tt.url, ok, tt.wantOK)
			}
			if owner != tt.wantOwner || repo != tt.wantRepo {
				t.Errorf("parseRemoteURL(%q) = %q/%q, want %q/%q", tt.url, owner, repo, tt.wantOwner, tt.wantRepo)
			}
		})
	}
}

func TestResolveRepoFromEnv(t *testing.T) {
	t.Setenv("GITHUB_REPOSITORY", "alice/papers")

	owner, name := ResolveRepo()
	if owner != "alice" || name != "papers" {
		t.Errorf("Expected alice/papers from environment, got %s/%s", owner, name)
	}
}
