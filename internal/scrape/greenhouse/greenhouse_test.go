package greenhouse

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karnatisrinivas/devops-hunter/internal/domain"
	"github.com/karnatisrinivas/devops-hunter/internal/scrape/types"
	"github.com/karnatisrinivas/devops-hunter/internal/scrape/util"
)

type matchAll struct{}

func (matchAll) Match(title, desc string) bool { return true }

type matchNone struct{}

func (matchNone) Match(title, desc string) bool { return false }

var testNow = time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)

func newScraper(base string, boards []string, m types.Matcher) *Scraper {
	s := New(Config{Base: base, Boards: boards, UserAgent: "test-agent"},
		&http.Client{Timeout: 5 * time.Second},
		util.NewHostLimiter(1000, 1000), m)
	s.now = func() time.Time { return testNow }
	return s
}

func TestFetchBoard_NormalizesJob(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/boards/acme/jobs", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("content"))
		fmt.Fprint(w, `{"jobs":[{
			"title":"Senior DevOps Engineer",
			"content":"Manage Kubernetes clusters",
			"location":{"name":"Remote"},
			"absolute_url":"https://x/1"
		}]}`)
	}))
	defer srv.Close()

	s := newScraper(srv.URL, nil, matchAll{})
	got := s.FetchBoard(context.Background(), "acme")

	require.Len(t, got, 1)
	assert.Equal(t, domain.Posting{
		Title:     "Senior DevOps Engineer",
		Company:   "acme",
		Locations: []string{"Remote"},
		URL:       "https://x/1",
		Source:    domain.SourceGreenhouse,
		Date:      "2026-08-23",
		Kind:      domain.KindJobListing,
	}, got[0])
}

func TestFetchBoard_DropsRecordsMissingRequiredFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"jobs":[
			{"title":"","content":"x","absolute_url":"https://x/1"},
			{"title":"SRE","content":"x","absolute_url":""}
		]}`)
	}))
	defer srv.Close()

	s := newScraper(srv.URL, nil, matchAll{})
	got := s.FetchBoard(context.Background(), "acme")

	assert.Empty(t, got)
}

func TestFetchBoard_RelevanceRejectIsSilent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"jobs":[{"title":"Accountant","content":"ledgers","absolute_url":"https://x/1"}]}`)
	}))
	defer srv.Close()

	s := newScraper(srv.URL, nil, matchNone{})
	got := s.FetchBoard(context.Background(), "acme")

	assert.Empty(t, got)
}

func TestFetchBoard_FailuresBecomeEmptyResults(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"non-200 status", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}},
		{"malformed json", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<html>not a board</html>`)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			s := newScraper(srv.URL, nil, matchAll{})
			assert.Empty(t, s.FetchBoard(context.Background(), "ghost"))
		})
	}
}

func TestFetchBoard_ConnectionRefused(t *testing.T) {
	// reserved then closed: nothing listens here
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	s := newScraper(base, nil, matchAll{})
	assert.Empty(t, s.FetchBoard(context.Background(), "acme"))
}

func TestFetch_OneBoardFailureDoesNotAbortOthers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/boards/bad/jobs" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"jobs":[{"title":"SRE","content":"","location":{"name":""},"absolute_url":"https://x/ok"}]}`)
	}))
	defer srv.Close()

	s := newScraper(srv.URL, []string{"bad", "good"}, matchAll{})
	res := s.Fetch(context.Background())

	require.Len(t, res.Postings, 1)
	assert.Equal(t, "good", res.Postings[0].Company)
	assert.Nil(t, res.Postings[0].Locations, "empty location name yields no locations")
}
