package domain

const KindJobListing = "job_listing"

// Job sources.
const (
	SourceGreenhouse = "greenhouse"
	SourceLever      = "lever"
)

// Posting is one normalized job listing. Title and URL are required;
// adapters never emit a Posting without both.
type Posting struct {
	Title     string   `json:"title"`
	Company   string   `json:"company"`
	Locations []string `json:"locations"`
	URL       string   `json:"url"`
	Source    string   `json:"source"`
	Date      string   `json:"date"` // 2006-01-02
	Kind      string   `json:"type"`
}

// IdentityKey dedups postings across sources. URL alone is not enough:
// two companies can share a query-templated URL on the search path.
type IdentityKey struct {
	Company string
	Title   string
	URL     string
}

func (p Posting) Key() IdentityKey {
	return IdentityKey{Company: p.Company, Title: p.Title, URL: p.URL}
}
