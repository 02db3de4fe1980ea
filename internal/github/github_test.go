package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karnatisrinivas/devops-hunter/internal/config"
	"github.com/karnatisrinivas/devops-hunter/internal/scrape/util"
)

func testConfig(base string, terms ...string) config.Config {
	cfg := config.Default()
	cfg.GitHub.APIBase = base
	cfg.GitHub.Terms = terms
	cfg.GitHub.PerTerm = 2
	cfg.GitHub.MinStars = 20
	return cfg
}

func newClient(cfg config.Config, token string) *Client {
	c := New(cfg, &http.Client{Timeout: 5 * time.Second}, token)
	c.limiter = util.NewHostLimiter(1000, 1000)
	return c
}

func TestSearch_FiltersAndSorts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/repositories", r.URL.Path)
		fmt.Fprint(w, `{"items":[
			{"full_name":"a/low","html_url":"https://github.com/a/low","stargazers_count":5},
			{"full_name":"a/mid","html_url":"https://github.com/a/mid","stargazers_count":100,"language":"Go","topics":["devops"]},
			{"full_name":"a/high","html_url":"https://github.com/a/high","stargazers_count":900},
			{"full_name":"a/extra","html_url":"https://github.com/a/extra","stargazers_count":800}
		]}`)
	}))
	defer srv.Close()

	repos := newClient(testConfig(srv.URL, "awesome+devops"), "").Search(context.Background())

	// below min stars dropped, per-term cap of 2 applies to what survives
	require.Len(t, repos, 2)
	assert.Equal(t, "a/high", repos[0].Name, "sorted by stars descending")
	assert.Equal(t, 900, repos[0].Stars)
	assert.Equal(t, "a/mid", repos[1].Name)
	assert.Equal(t, "awesome+devops", repos[1].Term)
	assert.Equal(t, "github", repos[1].Source)
}

func TestSearch_DedupsAcrossTerms(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[{"full_name":"a/one","html_url":"https://github.com/a/one","stargazers_count":50}]}`)
	}))
	defer srv.Close()

	repos := newClient(testConfig(srv.URL, "term1", "term2"), "").Search(context.Background())
	assert.Len(t, repos, 1, "same url across terms appears once")
}

func TestSearch_TermFailureDegrades(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusForbidden) // rate limited
			return
		}
		fmt.Fprint(w, `{"items":[{"full_name":"a/ok","html_url":"https://github.com/a/ok","stargazers_count":50}]}`)
	}))
	defer srv.Close()

	repos := newClient(testConfig(srv.URL, "bad", "good"), "").Search(context.Background())
	require.Len(t, repos, 1)
	assert.Equal(t, "a/ok", repos[0].Name)
}

func TestSearch_SendsAuthHeaderWhenTokenSet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token sekrit", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"items":[]}`)
	}))
	defer srv.Close()

	newClient(testConfig(srv.URL, "t"), "sekrit").Search(context.Background())
}

func TestSearch_NoAuthHeaderWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"items":[]}`)
	}))
	defer srv.Close()

	repos := newClient(testConfig(srv.URL, "t"), "").Search(context.Background())
	assert.Empty(t, repos)
}
