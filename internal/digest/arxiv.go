package digest

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/ryotahase/research-digest/internal/config"
)

// arXiv Atom feed XML structures

type arxivFeed struct {
	XMLName xml.Name     `xml:"feed"`
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID        string          `xml:"id"`
	Title     string          `xml:"title"`
	Summary   string          `xml:"summary"`
	Authors   []arxivAuthor   `xml:"author"`
	Links     []arxivLink     `xml:"link"`
	Published string          `xml:"published"`
	Category  []arxivCategory `xml:"category"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}

type arxivLink struct {
	Href string `xml:"href,attr"`
	Type string `xml:"type,attr"`
	Rel  string `xml:"rel,attr"`
}

type arxivCategory struct {
	Term string `xml:"term,attr"`
}

// ArxivGenerator builds digests from the arXiv API: papers matching the
// run's categories (or interests) inside its date window, in submission
// order. It does no relevance scoring; providers that rank papers sit
// behind the same Generator interface.
type ArxivGenerator struct {
	client  *http.Client
	baseURL string
}

func NewArxivGenerator() *ArxivGenerator {
	return &ArxivGenerator{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: "http://export.arxiv.org/api/query",
	}
}

func (g *ArxivGenerator) Generate(ctx context.Context, cfg *config.DigestConfig) (*Result, error) {
	query := url.Values{}
	query.Set("search_query", buildQuery(cfg))
	query.Set("start", "0")
	query.Set("max_results", fmt.Sprintf("%d", cfg.MaxPapers))
	query.Set("sortBy", "submittedDate")
	query.Set("sortOrder", "descending")

	reqURL := fmt.Sprintf("%s?%s", g.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("arxiv: failed to create request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return errorResult(fmt.Sprintf("arxiv: request failed: %v", err)), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errorResult(fmt.Sprintf("arxiv: unexpected status %d", resp.StatusCode)), nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errorResult(fmt.Sprintf("arxiv: failed to read response: %v", err)), nil
	}

	var feed arxivFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return errorResult(fmt.Sprintf("arxiv: failed to parse XML: %v", err)), nil
	}

	exclude := make(map[string]struct{}, len(cfg.ExcludeIDs))
	for _, id := range cfg.ExcludeIDs {
		exclude[id] = struct{}{}
	}

	papers := make([]Paper, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		id := arxivID(entry.ID)
		if _, seen := exclude[id]; seen {
			continue
		}

		authors := make([]string, len(entry.Authors))
		for i, a := range entry.Authors {
			authors[i] = strings.TrimSpace(a.Name)
		}

		var paperURL string
		for _, link := range entry.Links {
			if link.Rel == "alternate" || (link.Type == "text/html" && paperURL == "") {
				paperURL = link.Href
			}
		}
		if paperURL == "" && len(entry.Links) > 0 {
			paperURL = entry.Links[0].Href
		}

		categories := make([]string, 0, len(entry.Category))
		for _, c := range entry.Category {
			categories = append(categories, c.Term)
		}

		papers = append(papers, Paper{
			ID:         id,
			Title:      strings.TrimSpace(entry.Title),
			Authors:    authors,
			Abstract:   strings.TrimSpace(entry.Summary),
			URL:        paperURL,
			Published:  entry.Published,
			Categories: categories,
		})
		if len(papers) == cfg.TopN {
			break
		}
	}

	return &Result{
		Status: StatusOK,
		Digest: &Digest{Papers: papers},
	}, nil
}

func errorResult(messages ...string) *Result {
	return &Result{Status: StatusError, Errors: messages}
}

// buildQuery combines the category (or interest) terms with the run's
// date window in arXiv query syntax.
func buildQuery(cfg *config.DigestConfig) string {
	window := fmt.Sprintf("submittedDate:[%s0000 TO %s2359]",
		compactDate(cfg.DateFilter.PublishedAfter),
		compactDate(cfg.DateFilter.PublishedBefore))

	var terms []string
	if len(cfg.Categories) > 0 {
		for _, c := range cfg.Categories {
			terms = append(terms, "cat:"+c)
		}
	} else {
		for _, t := range interestTerms(cfg.Interests) {
			terms = append(terms, fmt.Sprintf("all:%q", t))
		}
	}
	if len(terms) == 0 {
		return window
	}
	return "(" + strings.Join(terms, " OR ") + ") AND " + window
}

// interestTerms extracts search terms from the free-text interests.
// Instructions appended after the first sentence are for the ranking
// provider, not the search query.
func interestTerms(interests string) []string {
	if i := strings.IndexByte(interests, '.'); i >= 0 {
		interests = interests[:i]
	}
	parts := strings.Split(interests, ",")
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			terms = append(terms, trimmed)
		}
	}
	return terms
}

func compactDate(date string) string {
	return strings.ReplaceAll(date, "-", "")
}

var versionSuffix = regexp.MustCompile(`v\d+$`)

// arxivID extracts the bare paper identifier from an entry's id URL,
// e.g. "http://arxiv.org/abs/2401.12345v2" -> "2401.12345".
func arxivID(raw string) string {
	id := raw
	if i := strings.LastIndex(raw, "/abs/"); i >= 0 {
		id = raw[i+len("/abs/"):]
	}
	return versionSuffix.ReplaceAllString(id, "")
}
