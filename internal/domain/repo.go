package domain

// Repo is one GitHub search hit, pass-through for combined output.
type Repo struct {
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Stars       int      `json:"stars"`
	Language    string   `json:"language"`
	Topics      []string `json:"topics"`
	LastUpdated string   `json:"last_updated"`
	Source      string   `json:"source"`
	Term        string   `json:"term"`
}
