// Package discover crawls a directory-style board listing and extracts
// candidate organization identifiers from its links. The heuristic is
// approximate on purpose: bogus identifiers cost one empty API fetch
// downstream, so discovery itself never validates them.
package discover

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/karnatisrinivas/devops-hunter/internal/scrape/util"
)

type Config struct {
	RootURL        string
	MaxPages       int
	MaxIdentifiers int
	Denylist       []string
	UserAgent      string
}

type Discoverer struct {
	cfg     Config
	hc      *http.Client
	limiter *util.HostLimiter
	deny    map[string]bool
}

func New(cfg Config, hc *http.Client, limiter *util.HostLimiter) *Discoverer {
	deny := make(map[string]bool, len(cfg.Denylist))
	for _, d := range cfg.Denylist {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			deny[d] = true
		}
	}
	return &Discoverer{cfg: cfg, hc: hc, limiter: limiter, deny: deny}
}

// Discover fetches the root listing page and up to MaxPages-1 paginated
// variants, returning an order-preserving unique set of candidate
// identifiers capped at MaxIdentifiers. A page fetch failure ends the
// crawl at that page; whatever was accumulated is returned. Discovery
// never returns an error.
func (d *Discoverer) Discover(ctx context.Context) []string {
	root, err := url.Parse(d.cfg.RootURL)
	if err != nil {
		log.Printf("[discover] bad root url %q: %v", d.cfg.RootURL, err)
		return nil
	}

	var out []string
	seen := make(map[string]bool)

	for page := 1; page <= d.cfg.MaxPages; page++ {
		if len(out) >= d.cfg.MaxIdentifiers {
			break
		}

		pageURL := d.cfg.RootURL
		if page > 1 {
			sep := "?"
			if strings.Contains(pageURL, "?") {
				sep = "&"
			}
			pageURL = fmt.Sprintf("%s%spage=%d", pageURL, sep, page)
		}

		ids, err := d.fetchPage(ctx, pageURL, root.Host)
		if err != nil {
			log.Printf("[discover] page %d: %v (stopping)", page, err)
			break
		}

		for _, id := range ids {
			if seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, id)
			if len(out) >= d.cfg.MaxIdentifiers {
				break
			}
		}
	}

	log.Printf("[discover] candidates=%d", len(out))
	return out
}

func (d *Discoverer) fetchPage(ctx context.Context, pageURL, rootHost string) ([]string, error) {
	if d.limiter != nil {
		if err := d.limiter.WaitURL(ctx, pageURL); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", d.cfg.UserAgent)

	res, err := d.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("listing status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("parse listing: %w", err)
	}

	var ids []string
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		if id := d.candidateFrom(href, rootHost); id != "" {
			ids = append(ids, id)
		}
	})
	return ids, nil
}

// candidateFrom extracts the first path segment of href as an identifier,
// or "" when the link is off-host, the root path, or denylisted.
func (d *Discoverer) candidateFrom(href, rootHost string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return ""
	}

	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if u.Host != "" && u.Host != rootHost {
		return ""
	}

	seg := strings.Trim(u.Path, "/")
	if i := strings.IndexByte(seg, '/'); i >= 0 {
		seg = seg[:i]
	}
	seg = strings.ToLower(seg)

	if seg == "" || d.deny[seg] {
		return ""
	}
	return seg
}
