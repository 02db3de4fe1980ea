package scrape

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/karnatisrinivas/devops-hunter/internal/config"
	"github.com/karnatisrinivas/devops-hunter/internal/domain"
	"github.com/karnatisrinivas/devops-hunter/internal/scrape/discover"
	"github.com/karnatisrinivas/devops-hunter/internal/scrape/greenhouse"
	"github.com/karnatisrinivas/devops-hunter/internal/scrape/lever"
	"github.com/karnatisrinivas/devops-hunter/internal/scrape/types"
	"github.com/karnatisrinivas/devops-hunter/internal/scrape/util"
)

const fetcherTimeout = 5 * time.Minute

// RunJobsOnce is the whole job pipeline for one run: optional identifier
// discovery, concurrent adapter fan-out, then merge/dedup/recency after
// every fetch has completed. It always returns a well-formed (possibly
// empty) slice, even when every source fails.
func RunJobsOnce(ctx context.Context, cfg config.Config) []domain.Posting {
	hc := util.NewHTTPClient(
		time.Duration(cfg.HTTP.TimeoutSeconds)*time.Second,
		time.Duration(cfg.HTTP.ConnectTimeoutSeconds)*time.Second,
	)
	limiter := util.NewHostLimiter(requestsPerSecond(cfg), 1)
	rel := NewRelevance(cfg.Keywords.TitleTerms, cfg.Keywords.ContextTerms)

	boards := cfg.Jobs.Boards
	if cfg.Jobs.Discover.Enabled {
		d := discover.New(discover.Config{
			RootURL:        cfg.Jobs.Discover.RootURL,
			MaxPages:       cfg.Jobs.Discover.MaxPages,
			MaxIdentifiers: cfg.Jobs.Discover.MaxIdentifiers,
			Denylist:       cfg.Jobs.Discover.Denylist,
			UserAgent:      cfg.HTTP.UserAgent,
		}, hc, limiter)
		boards = appendUnique(boards, d.Discover(ctx))
	}

	fetchers := []types.Fetcher{
		greenhouse.New(greenhouse.Config{
			Base:      cfg.Jobs.GreenhouseBase,
			Boards:    boards,
			UserAgent: cfg.HTTP.UserAgent,
		}, hc, limiter, rel),
		lever.New(lever.Config{
			Base:      cfg.Jobs.LeverBase,
			Queries:   cfg.Jobs.Queries,
			UserAgent: cfg.HTTP.UserAgent,
		}, hc, limiter, rel),
	}

	var g errgroup.Group
	results := make(chan types.Result, len(fetchers))

	for _, f := range fetchers {
		f := f
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(ctx, fetcherTimeout)
			defer cancel()

			log.Printf("[jobs:%s] running...", f.Name())
			results <- f.Fetch(fctx)
			return nil
		})
	}

	// barrier: merge only sees the gathered whole
	_ = g.Wait()
	close(results)

	var all []domain.Posting
	for res := range results {
		log.Printf("[jobs] source=%s postings=%d", res.Source, len(res.Postings))
		all = append(all, res.Postings...)
	}

	merged := Merge(all, cfg.Jobs.MaxAgeDays, time.Now().UTC())
	log.Printf("[jobs] merged=%d (from %d raw)", len(merged), len(all))
	return merged
}

func requestsPerSecond(cfg config.Config) float64 {
	if rps := cfg.Jobs.Discover.RequestsPerSecond; rps > 0 {
		return rps
	}
	return 1
}

func appendUnique(base, extra []string) []string {
	seen := make(map[string]bool, len(base))
	for _, b := range base {
		seen[b] = true
	}
	out := base
	for _, e := range extra {
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	return out
}
