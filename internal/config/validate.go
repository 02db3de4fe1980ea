package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate rejects configs that would make a run meaningless or abusive.
func Validate(cfg Config) error {
	var errs []string

	if cfg.HTTP.TimeoutSeconds <= 0 {
		errs = append(errs, "http.timeout_seconds must be > 0")
	}
	if cfg.Jobs.MaxAgeDays <= 0 {
		errs = append(errs, "jobs.max_age_days must be > 0")
	}
	if cfg.Jobs.Discover.Enabled {
		if cfg.Jobs.Discover.RootURL == "" {
			errs = append(errs, "jobs.discover.root_url is required when discovery is enabled")
		}
		if cfg.Jobs.Discover.MaxPages <= 0 {
			errs = append(errs, "jobs.discover.max_pages must be > 0")
		}
		if cfg.Jobs.Discover.MaxIdentifiers <= 0 {
			errs = append(errs, "jobs.discover.max_identifiers must be > 0")
		}
		if cfg.Jobs.Discover.RequestsPerSecond <= 0 {
			errs = append(errs, "jobs.discover.requests_per_second must be > 0")
		}
	}
	if len(cfg.Keywords.TitleTerms) == 0 && len(cfg.Keywords.ContextTerms) == 0 {
		errs = append(errs, "keywords: at least one of title_terms/context_terms must be set")
	}
	for i, t := range cfg.Keywords.TitleTerms {
		if strings.TrimSpace(t) == "" {
			errs = append(errs, fmt.Sprintf("keywords.title_terms[%d] cannot be empty", i))
		}
	}
	for i, t := range cfg.Keywords.ContextTerms {
		if strings.TrimSpace(t) == "" {
			errs = append(errs, fmt.Sprintf("keywords.context_terms[%d] cannot be empty", i))
		}
	}
	if cfg.GitHub.PerTerm <= 0 {
		errs = append(errs, "github.per_term must be > 0")
	}
	if cfg.Blogs.MaxPerFeed <= 0 {
		errs = append(errs, "blogs.max_per_feed must be > 0")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}
