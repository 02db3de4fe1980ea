package config

// Default returns the stock configuration: public endpoints, the standard
// DevOps keyword sets, and crawl limits safe for an unauthenticated run.
func Default() Config {
	var cfg Config

	cfg.HTTP.TimeoutSeconds = 60
	cfg.HTTP.ConnectTimeoutSeconds = 20
	cfg.HTTP.UserAgent = "DevOpsHunter/1.0 (+https://example.local; bot)"

	cfg.Jobs.MaxAgeDays = 60
	cfg.Jobs.Boards = []string{"datadog", "hashicorp", "cloudflare"}
	cfg.Jobs.Queries = []string{"devops", "site reliability", "platform engineer"}
	cfg.Jobs.GreenhouseBase = "https://boards-api.greenhouse.io"
	cfg.Jobs.LeverBase = "https://jobs.lever.co"

	cfg.Jobs.Discover.Enabled = false
	cfg.Jobs.Discover.RootURL = "https://boards.greenhouse.io"
	cfg.Jobs.Discover.MaxPages = 3
	cfg.Jobs.Discover.MaxIdentifiers = 25
	cfg.Jobs.Discover.RequestsPerSecond = 1
	cfg.Jobs.Discover.Denylist = []string{
		"privacy", "terms", "blog", "login", "signin", "signup",
		"search", "about", "help", "contact", "careers", "jobs",
		"legal", "security", "press", "pricing", "features", "embed",
	}

	cfg.Keywords.TitleTerms = []string{
		"devops", "site reliability", "sre", "platform engineer",
		"platform engineering", "infrastructure engineer",
		"systems engineer", "cloud engineer", "build engineer",
		"release engineer",
	}
	cfg.Keywords.ContextTerms = []string{
		"kubernetes", "k8s", "terraform", "ansible", "helm",
		"prometheus", "grafana", "observability", "otel",
		"on-call", "incident", "cicd", "ci/cd", "pipeline",
		"aws", "gcp", "azure", "slo", "sla", "sli",
	}

	cfg.GitHub.APIBase = "https://api.github.com"
	cfg.GitHub.Terms = []string{
		"awesome+devops",
		"awesome+sre",
		"platform+engineering",
		"site+reliability+engineering",
		"kubernetes+production+best+practices",
		"terraform+modules",
		"cicd+best+practices",
	}
	cfg.GitHub.PerTerm = 8
	cfg.GitHub.MinStars = 20

	cfg.Blogs.MaxPerFeed = 20
	cfg.Blogs.Feeds = []string{
		"https://dev.to/feed/tag/devops",
		"https://dev.to/feed/tag/sre",
		"https://martinfowler.com/feed.atom",
		"https://kubernetes.io/feed.xml",
		"https://kubernetes.io/blog/index.xml",
		"https://prometheus.io/blog/index.xml",
		"https://grafana.com/blog/index.xml",
		"https://www.cncf.io/feed/",
		"https://www.hashicorp.com/blog/feed.xml",
		"https://about.gitlab.com/atom.xml",
		"https://circleci.com/blog/index.xml",
		"https://platformengineering.org/rss.xml",
	}
	cfg.Blogs.Keywords = []string{
		"devops", "sre", "site reliability", "platform engineering",
		"observability", "kubernetes", "k8s", "helm",
		"terraform", "ansible", "pulumi", "cicd", "ci/cd",
		"prometheus", "grafana", "tracing", "otel", "on-call",
		"resilience", "scalability", "cost optimization",
	}

	return cfg
}
