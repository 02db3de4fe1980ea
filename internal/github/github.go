// Package github searches repositories for the configured DevOps terms.
// Pass-through collaborator: its output only feeds combined-result
// assembly and the report.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"

	"github.com/karnatisrinivas/devops-hunter/internal/config"
	"github.com/karnatisrinivas/devops-hunter/internal/domain"
	"github.com/karnatisrinivas/devops-hunter/internal/scrape/util"
)

type Client struct {
	cfg     config.Config
	hc      *http.Client
	limiter *util.HostLimiter
	token   string
}

func New(cfg config.Config, hc *http.Client, token string) *Client {
	return &Client{
		cfg: cfg,
		hc:  hc,
		// unauthenticated search is limited to 10 req/min; stay under it
		limiter: util.NewHostLimiter(0.8, 1),
		token:   token,
	}
}

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	FullName        string   `json:"full_name"`
	HTMLURL         string   `json:"html_url"`
	Description     string   `json:"description"`
	StargazersCount int      `json:"stargazers_count"`
	Language        string   `json:"language"`
	Topics          []string `json:"topics"`
	UpdatedAt       string   `json:"updated_at"`
}

// Search runs every configured term, keeping the per-term cap and the
// min-stars cut. Term-level failures degrade to zero results for that
// term. Output is deduped by url and sorted by stars descending.
func (c *Client) Search(ctx context.Context) []domain.Repo {
	var results []domain.Repo

	for _, term := range c.cfg.GitHub.Terms {
		items, err := c.searchTerm(ctx, term)
		if err != nil {
			log.Printf("[github] term=%q err=%v", term, err)
			continue
		}

		n := 0
		for _, it := range items {
			if n >= c.cfg.GitHub.PerTerm {
				break
			}
			if it.StargazersCount < c.cfg.GitHub.MinStars {
				continue
			}
			results = append(results, domain.Repo{
				Name:        it.FullName,
				URL:         it.HTMLURL,
				Description: it.Description,
				Stars:       it.StargazersCount,
				Language:    it.Language,
				Topics:      it.Topics,
				LastUpdated: it.UpdatedAt,
				Source:      "github",
				Term:        term,
			})
			n++
		}
	}

	seen := make(map[string]bool, len(results))
	unique := make([]domain.Repo, 0, len(results))
	for _, r := range results {
		if seen[r.URL] {
			continue
		}
		seen[r.URL] = true
		unique = append(unique, r)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Stars > unique[j].Stars
	})

	log.Printf("[github] repos=%d terms=%d", len(unique), len(c.cfg.GitHub.Terms))
	return unique
}

func (c *Client) searchTerm(ctx context.Context, term string) ([]searchItem, error) {
	u := fmt.Sprintf("%s/search/repositories?q=%s+in:name,description,readme&sort=stars&order=desc",
		c.cfg.GitHub.APIBase, term)

	if err := c.limiter.WaitURL(ctx, u); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", c.cfg.HTTP.UserAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github status %d", res.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("github decode: %w", err)
	}
	return body.Items, nil
}
