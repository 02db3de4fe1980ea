// Package hunt orchestrates one aggregation run: fetch the enabled
// subsystems, then persist all artifacts in a single commit.
package hunt

import (
	"bytes"
	"context"
	"log"
	"time"

	"github.com/karnatisrinivas/devops-hunter/internal/blogs"
	"github.com/karnatisrinivas/devops-hunter/internal/config"
	"github.com/karnatisrinivas/devops-hunter/internal/domain"
	"github.com/karnatisrinivas/devops-hunter/internal/github"
	"github.com/karnatisrinivas/devops-hunter/internal/output"
	"github.com/karnatisrinivas/devops-hunter/internal/report"
	"github.com/karnatisrinivas/devops-hunter/internal/scrape"
	"github.com/karnatisrinivas/devops-hunter/internal/scrape/util"
)

// Subsystem selectors for Run's only argument.
const (
	OnlyAll    = ""
	OnlyGitHub = "github"
	OnlyBlogs  = "blogs"
	OnlyJobs   = "jobs"
)

// Artifact names, stable across runs.
const (
	RepoFile     = "github_results_devops.json"
	BlogFile     = "blog_results_devops.json"
	JobFile      = "job_results_devops.json"
	CombinedFile = "devops_combined.json"
	ReportFile   = "devops_report.html"
)

type Hunter struct {
	cfg   config.Config
	out   *output.Writer
	token string
}

func New(cfg config.Config, outDir, token string) (*Hunter, error) {
	w, err := output.NewWriter(outDir)
	if err != nil {
		return nil, err
	}
	return &Hunter{cfg: cfg, out: w, token: token}, nil
}

// Run executes the selected subsystems and persists their artifacts.
// Source failures degrade to empty sections; the only error paths are
// cancellation and persistence itself. On cancellation nothing is
// written — artifacts for a run land completely or not at all.
func (h *Hunter) Run(ctx context.Context, only string, htmlReport bool) (domain.Combined, error) {
	combined := domain.Combined{
		GeneratedAt: time.Now().UTC().Format("2006-01-02T15:04:05Z"),
	}

	if only == OnlyAll || only == OnlyGitHub {
		hc := util.NewHTTPClient(
			time.Duration(h.cfg.HTTP.TimeoutSeconds)*time.Second,
			time.Duration(h.cfg.HTTP.ConnectTimeoutSeconds)*time.Second,
		)
		combined.Repos = github.New(h.cfg, hc, h.token).Search(ctx)
	}
	if only == OnlyAll || only == OnlyBlogs {
		combined.BlogPosts = blogs.New(h.cfg).Fetch(ctx)
	}
	if only == OnlyAll || only == OnlyJobs {
		combined.Jobs = scrape.RunJobsOnce(ctx, h.cfg)
	}

	// interrupt aborts before anything is persisted
	if err := ctx.Err(); err != nil {
		return combined, err
	}

	run, err := h.out.Begin(ctx)
	if err != nil {
		return combined, err
	}

	if err := h.stage(run, combined, only, htmlReport); err != nil {
		run.Discard()
		return combined, err
	}
	if err := run.Commit(); err != nil {
		return combined, err
	}

	log.Printf("[hunt] combined output -> %s", h.out.Path(CombinedFile))
	return combined, nil
}

func (h *Hunter) stage(run *output.Run, combined domain.Combined, only string, htmlReport bool) error {
	if only == OnlyAll || only == OnlyGitHub {
		if err := run.StageJSON(RepoFile, nonNil(combined.Repos)); err != nil {
			return err
		}
	}
	if only == OnlyAll || only == OnlyBlogs {
		if err := run.StageJSON(BlogFile, nonNil(combined.BlogPosts)); err != nil {
			return err
		}
	}
	if only == OnlyAll || only == OnlyJobs {
		if err := run.StageJSON(JobFile, nonNil(combined.Jobs)); err != nil {
			return err
		}
	}
	if err := run.StageJSON(CombinedFile, combined); err != nil {
		return err
	}

	if htmlReport {
		var buf bytes.Buffer
		if err := report.Render(&buf, combined); err != nil {
			return err
		}
		if err := run.StageBytes(ReportFile, buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// nonNil keeps empty artifacts as valid JSON arrays, not null.
func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
