// Package greenhouse fetches postings from the public board JSON API.
package greenhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/karnatisrinivas/devops-hunter/internal/domain"
	"github.com/karnatisrinivas/devops-hunter/internal/scrape/types"
	"github.com/karnatisrinivas/devops-hunter/internal/scrape/util"
)

type Config struct {
	Base      string // https://boards-api.greenhouse.io
	Boards    []string
	UserAgent string
}

type Scraper struct {
	cfg     Config
	hc      *http.Client
	limiter *util.HostLimiter
	match   types.Matcher
	now     func() time.Time
}

func New(cfg Config, hc *http.Client, limiter *util.HostLimiter, m types.Matcher) *Scraper {
	return &Scraper{
		cfg:     cfg,
		hc:      hc,
		limiter: limiter,
		match:   m,
		now:     time.Now,
	}
}

func (s *Scraper) Name() string { return domain.SourceGreenhouse }

// Board API response: {"jobs": [...]}.
type boardResponse struct {
	Jobs []boardJob `json:"jobs"`
}

type boardJob struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	AbsoluteURL string `json:"absolute_url"`
	Location    struct {
		Name string `json:"name"`
	} `json:"location"`
}

// Fetch runs all configured boards with a small worker pool. Board-level
// failures are logged and swallowed; an unknown identifier simply yields
// no postings.
func (s *Scraper) Fetch(ctx context.Context) types.Result {
	const workers = 4

	postCh := make(chan []domain.Posting, len(s.cfg.Boards))
	workCh := make(chan string)

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for slug := range workCh {
				if ps := s.FetchBoard(ctx, slug); len(ps) > 0 {
					postCh <- ps
				}
			}
		}()
	}

	go func() {
		defer close(workCh)
		for _, slug := range s.cfg.Boards {
			select {
			case <-ctx.Done():
				return
			case workCh <- slug:
			}
		}
	}()

	wg.Wait()
	close(postCh)

	var out []domain.Posting
	for batch := range postCh {
		out = append(out, batch...)
	}

	log.Printf("[greenhouse] postings=%d boards=%d", len(out), len(s.cfg.Boards))
	return types.Result{Source: domain.SourceGreenhouse, Postings: out}
}

// FetchBoard never fails: any transport, status or decode problem becomes
// an empty slice.
func (s *Scraper) FetchBoard(ctx context.Context, slug string) []domain.Posting {
	ps, err := s.fetchBoard(ctx, slug)
	if err != nil {
		log.Printf("[greenhouse] board=%q err=%v", slug, err)
		return nil
	}
	return ps
}

func (s *Scraper) fetchBoard(ctx context.Context, slug string) ([]domain.Posting, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, fmt.Errorf("empty board slug")
	}

	apiURL := fmt.Sprintf("%s/v1/boards/%s/jobs?content=true",
		strings.TrimRight(s.cfg.Base, "/"), url.PathEscape(slug))

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, apiURL); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("greenhouse get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("greenhouse status %d", res.StatusCode)
	}

	var body boardResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("greenhouse decode: %w", err)
	}

	date := s.now().UTC().Format(util.DateLayout)

	out := make([]domain.Posting, 0, len(body.Jobs))
	for _, j := range body.Jobs {
		title := util.CleanText(j.Title)
		if title == "" || j.AbsoluteURL == "" {
			continue
		}
		if s.match != nil && !s.match.Match(title, j.Content) {
			continue
		}

		var locs []string
		if loc := util.CleanText(j.Location.Name); loc != "" {
			locs = []string{loc}
		}

		out = append(out, domain.Posting{
			Title:     title,
			Company:   slug,
			Locations: locs,
			URL:       j.AbsoluteURL,
			Source:    domain.SourceGreenhouse,
			Date:      date,
			Kind:      domain.KindJobListing,
		})
	}
	return out, nil
}
