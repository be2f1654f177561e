package site

import (
	"os"
	"os/exec"
	"strings"
)

// ResolveRepo determines the hosting repository's owner and name:
// GITHUB_REPOSITORY first (set by Actions), then the git origin remote,
// then a literal fallback pair.
func ResolveRepo() (owner, name string) {
	if repo := os.Getenv("GITHUB_REPOSITORY"); strings.Contains(repo, "/") {
		parts := strings.SplitN(repo, "/", 2)
		return parts[0], parts[1]
	}

	out, err := exec.Command("git", "remote", "get-url", "origin").Output()
	if err == nil {
		if owner, name, ok := parseRemoteURL(strings.TrimSpace(string(out))); ok {
			return owner, name
		}
	}

	return "owner", "repo"
}

// parseRemoteURL extracts owner/name from a github.com remote URL,
// handling both SSH (git@github.com:owner/repo.git) and HTTPS forms.
func parseRemoteURL(url string) (owner, name string, ok bool) {
	if !strings.Contains(url, "github.com") {
		return "", "", false
	}

	var path string
	if strings.HasPrefix(url, "git@") {
		parts := strings.Split(url, ":")
		path = parts[len(parts)-1]
	} else {
		i := strings.Index(url, "github.com/")
		if i < 0 {
			return "", "", false
		}
		path = url[i+len("github.com/"):]
	}

	path = strings.TrimSuffix(path, ".git")
	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
