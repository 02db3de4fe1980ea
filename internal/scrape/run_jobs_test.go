package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karnatisrinivas/devops-hunter/internal/config"
	"github.com/karnatisrinivas/devops-hunter/internal/domain"
)

func jobsConfig(greenhouseBase, leverBase string) config.Config {
	cfg := config.Default()
	cfg.Jobs.GreenhouseBase = greenhouseBase
	cfg.Jobs.LeverBase = leverBase
	cfg.Jobs.Boards = []string{"acme"}
	cfg.Jobs.Queries = []string{"devops"}
	cfg.Jobs.Discover.Enabled = false
	return cfg
}

func TestRunJobsOnce_MergesAcrossAdapters(t *testing.T) {
	gh := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"jobs":[{
			"title":"SRE","content":"kubernetes",
			"location":{"name":"Remote"},
			"absolute_url":"https://acme/jobs/1"
		}]}`)
	}))
	defer gh.Close()

	// the scrape path returns the same posting under the same identity key
	lv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<div class="posting">
			<h5>SRE</h5>
			<div class="posting-company">acme</div>
			<a class="posting-btn-submit" href="https://acme/jobs/1">Apply</a>
		</div>
		<div class="posting">
			<h5>DevOps Engineer</h5>
			<div class="posting-company">globex</div>
			<a class="posting-btn-submit" href="https://globex/jobs/2">Apply</a>
		</div>`)
	}))
	defer lv.Close()

	got := RunJobsOnce(context.Background(), jobsConfig(gh.URL, lv.URL))

	require.Len(t, got, 2, "identical (company, title, url) across sources collapses to one")

	keys := map[domain.IdentityKey]bool{}
	for _, p := range got {
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.URL)
		assert.False(t, keys[p.Key()])
		keys[p.Key()] = true
	}

	// deterministic (company, title) order
	assert.Equal(t, "acme", got[0].Company)
	assert.Equal(t, "globex", got[1].Company)
}

func TestRunJobsOnce_AllSourcesFailing(t *testing.T) {
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close() // connection refused for every fetch

	got := RunJobsOnce(context.Background(), jobsConfig(dead.URL, dead.URL))

	require.NotNil(t, got, "a fully failed run still yields a well-formed empty result")
	assert.Len(t, got, 0)
}
