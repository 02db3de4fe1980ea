// Package lever scrapes the public search page. There is no JSON body on
// this path, so postings come out of repeated div.posting containers.
package lever

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/karnatisrinivas/devops-hunter/internal/domain"
	"github.com/karnatisrinivas/devops-hunter/internal/scrape/types"
	"github.com/karnatisrinivas/devops-hunter/internal/scrape/util"
)

type Config struct {
	Base      string // https://jobs.lever.co
	Queries   []string
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

func (s *Scraper) Name() string { return domain.SourceLever }

func (s *Scraper) Fetch(ctx context.Context) types.Result {
	const workers = 4

	postCh := make(chan []domain.Posting, len(s.cfg.Queries))
	workCh := make(chan string)

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for q := range workCh {
				if ps := s.FetchSearch(ctx, q); len(ps) > 0 {
					postCh <- ps
				}
			}
		}()
	}

	go func() {
		defer close(workCh)
		for _, q := range s.cfg.Queries {
			select {
			case <-ctx.Done():
				return
			case workCh <- q:
			}
		}
	}()

	wg.Wait()
	close(postCh)

	var out []domain.Posting
	for batch := range postCh {
		out = append(out, batch...)
	}

	log.Printf("[lever] postings=%d queries=%d", len(out), len(s.cfg.Queries))
	return types.Result{Source: domain.SourceLever, Postings: out}
}

// FetchSearch never fails: a broken search page yields an empty slice.
// A page with zero posting containers is not an error either.
func (s *Scraper) FetchSearch(ctx context.Context, query string) []domain.Posting {
	ps, err := s.fetchSearch(ctx, query)
	if err != nil {
		log.Printf("[lever] query=%q err=%v", query, err)
		return nil
	}
	return ps
}

func (s *Scraper) fetchSearch(ctx context.Context, query string) ([]domain.Posting, error) {
	searchURL := fmt.Sprintf("%s/search?commit=1&query=%s",
		strings.TrimRight(s.cfg.Base, "/"), url.QueryEscape(query))

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, searchURL); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.cfg.UserAgent)

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lever get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("lever status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("lever parse: %w", err)
	}

	date := s.now().UTC().Format(util.DateLayout)

	var out []domain.Posting
	doc.Find("div.posting").Each(func(_ int, sel *goquery.Selection) {
		title := util.CleanText(sel.Find("h5").First().Text())
		applyURL, ok := sel.Find("a.posting-btn-submit").First().Attr("href")
		if title == "" || !ok || strings.TrimSpace(applyURL) == "" {
			// no apply link means this container is not a real posting
			return
		}
		// title only on this path; the search page carries no description
		if s.match != nil && !s.match.Match(title, "") {
			return
		}

		company := util.CleanText(sel.Find("div.posting-company").First().Text())

		var locs []string
		if loc := util.CleanText(sel.Find("span.location").First().Text()); loc != "" {
			locs = []string{loc}
		}

		out = append(out, domain.Posting{
			Title:     title,
			Company:   company,
			Locations: locs,
			URL:       strings.TrimSpace(applyURL),
			Source:    domain.SourceLever,
			Date:      date,
			Kind:      domain.KindJobListing,
		})
	})

	return out, nil
}
