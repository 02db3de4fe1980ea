// Package blogs pulls the configured RSS/Atom feeds and keeps entries
// that hit at least one DevOps keyword.
package blogs

import (
	"context"
	"log"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/karnatisrinivas/devops-hunter/internal/config"
	"github.com/karnatisrinivas/devops-hunter/internal/domain"
	"github.com/karnatisrinivas/devops-hunter/internal/scrape/util"
)

const excerptMax = 600

type Fetcher struct {
	cfg      config.Config
	keywords []string
}

func New(cfg config.Config) *Fetcher {
	kws := make([]string, 0, len(cfg.Blogs.Keywords))
	for _, k := range cfg.Blogs.Keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			kws = append(kws, k)
		}
	}
	return &Fetcher{cfg: cfg, keywords: kws}
}

// Fetch parses every feed with a small worker pool. Feed-level failures
// are logged and swallowed. Output is deduped by url and sorted by
// (relevance, published) descending.
func (f *Fetcher) Fetch(ctx context.Context) []domain.BlogPost {
	const workers = 4

	postCh := make(chan []domain.BlogPost, len(f.cfg.Blogs.Feeds))
	workCh := make(chan string)

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			parser := gofeed.NewParser()
			parser.UserAgent = f.cfg.HTTP.UserAgent
			for feedURL := range workCh {
				posts, err := f.fetchFeed(ctx, parser, feedURL)
				if err != nil {
					log.Printf("[blogs] feed=%s err=%v", feedURL, err)
					continue
				}
				if len(posts) > 0 {
					postCh <- posts
				}
			}
		}()
	}

	go func() {
		defer close(workCh)
		for _, u := range f.cfg.Blogs.Feeds {
			select {
			case <-ctx.Done():
				return
			case workCh <- u:
			}
		}
	}()

	wg.Wait()
	close(postCh)

	var posts []domain.BlogPost
	for batch := range postCh {
		posts = append(posts, batch...)
	}

	seen := make(map[string]bool, len(posts))
	unique := make([]domain.BlogPost, 0, len(posts))
	for _, p := range posts {
		if seen[p.URL] {
			continue
		}
		seen[p.URL] = true
		unique = append(unique, p)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		if unique[i].Relevance != unique[j].Relevance {
			return unique[i].Relevance > unique[j].Relevance
		}
		return publishedTime(unique[i]).After(publishedTime(unique[j]))
	})

	log.Printf("[blogs] posts=%d feeds=%d", len(unique), len(f.cfg.Blogs.Feeds))
	return unique
}

func (f *Fetcher) fetchFeed(ctx context.Context, parser *gofeed.Parser, feedURL string) ([]domain.BlogPost, error) {
	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, err
	}

	max := f.cfg.Blogs.MaxPerFeed
	if max > len(feed.Items) {
		max = len(feed.Items)
	}

	var out []domain.BlogPost
	for _, item := range feed.Items[:max] {
		title := strings.TrimSpace(item.Title)
		link := strings.TrimSpace(item.Link)
		desc := item.Description
		if desc == "" {
			desc = item.Content
		}

		score := f.score(title + " " + desc)
		if score == 0 || link == "" {
			continue
		}

		out = append(out, domain.BlogPost{
			Title:     title,
			URL:       link,
			Source:    feedHost(feedURL),
			Published: published(item),
			Excerpt:   util.Truncate(stripTags(desc), excerptMax),
			Relevance: score,
			Kind:      domain.KindBlogPost,
		})
	}
	return out, nil
}

func (f *Fetcher) score(text string) int {
	text = strings.ToLower(text)
	n := 0
	for _, k := range f.keywords {
		if strings.Contains(text, k) {
			n++
		}
	}
	return n
}

func published(item *gofeed.Item) string {
	if item.Published != "" {
		return item.Published
	}
	return item.Updated
}

func publishedTime(p domain.BlogPost) time.Time {
	if t, ok := util.ParseCalendarDate(p.Published); ok {
		return t
	}
	return time.Time{}
}

func feedHost(feedURL string) string {
	u, err := url.Parse(feedURL)
	if err != nil || u.Host == "" {
		return feedURL
	}
	return u.Host
}

// stripTags flattens feed summary HTML to plain text for the excerpt.
func stripTags(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return util.CleanText(s)
	}
	return util.CleanText(doc.Text())
}
