package scrape

import "strings"

// Relevance classifies postings with two term tiers: title terms are
// role names precise enough to match on the title alone; context terms
// are technology/process words that may match title or description.
type Relevance struct {
	titleTerms   []string
	contextTerms []string
}

func NewRelevance(titleTerms, contextTerms []string) Relevance {
	lower := func(in []string) []string {
		out := make([]string, 0, len(in))
		for _, t := range in {
			t = strings.ToLower(strings.TrimSpace(t))
			if t != "" {
				out = append(out, t)
			}
		}
		return out
	}
	return Relevance{
		titleTerms:   lower(titleTerms),
		contextTerms: lower(contextTerms),
	}
}

func (r Relevance) Match(title, desc string) bool {
	t := strings.ToLower(title)
	d := strings.ToLower(desc)

	for _, term := range r.titleTerms {
		if strings.Contains(t, term) {
			return true
		}
	}
	for _, term := range r.contextTerms {
		if strings.Contains(t, term) || strings.Contains(d, term) {
			return true
		}
	}
	return false
}
