package domain

const KindBlogPost = "blog_post"

// BlogPost is one feed entry that matched at least one keyword.
type BlogPost struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Source    string `json:"source"` // feed host
	Published string `json:"published"`
	Excerpt   string `json:"excerpt"`
	Relevance int    `json:"relevance"`
	Kind      string `json:"type"`
}

// Combined is the shape of devops_combined.json.
type Combined struct {
	GeneratedAt string     `json:"generated_at"`
	Repos       []Repo     `json:"github_repos,omitempty"`
	BlogPosts   []BlogPost `json:"blog_posts,omitempty"`
	Jobs        []Posting  `json:"job_listings,omitempty"`
}
