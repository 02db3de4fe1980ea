package scrape

import (
	"sort"
	"time"

	"github.com/karnatisrinivas/devops-hunter/internal/domain"
	"github.com/karnatisrinivas/devops-hunter/internal/scrape/util"
)

// Merge combines adapter outputs into the final posting set: dedup by
// (company, title, url) with first occurrence winning, drop anything older
// than maxAgeDays, sort by (company, title). Unparsable dates are repaired
// with the run date instead of dropped — losing data over a malformed date
// is worse than a wrong timestamp. The result is deterministic for a given
// input set and never nil.
func Merge(postings []domain.Posting, maxAgeDays int, now time.Time) []domain.Posting {
	cutoff := now.AddDate(0, 0, -maxAgeDays)

	seen := make(map[domain.IdentityKey]bool, len(postings))
	out := make([]domain.Posting, 0, len(postings))

	for _, p := range postings {
		if p.Title == "" || p.URL == "" {
			continue
		}
		key := p.Key()
		if seen[key] {
			continue
		}
		seen[key] = true

		d, ok := util.ParseCalendarDate(p.Date)
		if !ok {
			d = now
			p.Date = now.Format(util.DateLayout)
		}
		if d.Before(cutoff) {
			continue
		}

		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Company != out[j].Company {
			return out[i].Company < out[j].Company
		}
		return out[i].Title < out[j].Title
	})

	return out
}
