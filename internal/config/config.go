package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP struct {
		TimeoutSeconds        int    `yaml:"timeout_seconds"`
		ConnectTimeoutSeconds int    `yaml:"connect_timeout_seconds"`
		UserAgent             string `yaml:"user_agent"`
	} `yaml:"http"`

	Jobs struct {
		MaxAgeDays     int      `yaml:"max_age_days"`
		Boards         []string `yaml:"boards"`  // greenhouse board slugs
		Queries        []string `yaml:"queries"` // lever search queries
		GreenhouseBase string   `yaml:"greenhouse_base"`
		LeverBase      string   `yaml:"lever_base"`

		Discover struct {
			Enabled           bool     `yaml:"enabled"`
			RootURL           string   `yaml:"root_url"`
			MaxPages          int      `yaml:"max_pages"`
			MaxIdentifiers    int      `yaml:"max_identifiers"`
			Denylist          []string `yaml:"denylist"`
			RequestsPerSecond float64  `yaml:"requests_per_second"`
		} `yaml:"discover"`
	} `yaml:"jobs"`

	Keywords struct {
		TitleTerms   []string `yaml:"title_terms"`
		ContextTerms []string `yaml:"context_terms"`
	} `yaml:"keywords"`

	GitHub struct {
		APIBase  string   `yaml:"api_base"`
		Terms    []string `yaml:"terms"`
		PerTerm  int      `yaml:"per_term"`
		MinStars int      `yaml:"min_stars"`
	} `yaml:"github"`

	Blogs struct {
		Feeds      []string `yaml:"feeds"`
		MaxPerFeed int      `yaml:"max_per_feed"`
		Keywords   []string `yaml:"keywords"`
	} `yaml:"blogs"`
}

// Load reads a yaml config over the defaults. An empty path returns the
// defaults untouched.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
