package feed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"github.com/laurentgalastuto/twitter-trading-bot/internal/logger"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/types"
)

// mirrorDateLayout matches the timestamp title attribute on Nitter-style
// mirror timelines.
const mirrorDateLayout = "Jan 2, 2006 · 3:04 PM UTC"

// MirrorFeed scrapes a Nitter-style mirror timeline. It is the fallback
// feed source when no API bearer token is configured.
type MirrorFeed struct {
	host     string
	account  string
	pageSize int
	timeout  time.Duration
}

// NewMirrorFeed creates a scraping feed against the given mirror host
func NewMirrorFeed(host, account string, pageSize int) *MirrorFeed {
	return &MirrorFeed{
		host:     host,
		account:  account,
		pageSize: pageSize,
		timeout:  15 * time.Second,
	}
}

// LatestPosts scrapes the account timeline page and returns the visible
// original posts, most-recent-first. Reposts and replies are skipped.
func (f *MirrorFeed) LatestPosts(ctx context.Context) ([]types.Post, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(f.host),
		colly.MaxDepth(1),
	)
	c.SetRequestTimeout(f.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	})

	posts := []types.Post{}

	c.OnHTML("div.timeline-item", func(e *colly.HTMLElement) {
		if len(posts) >= f.pageSize {
			return
		}

		if isRepostOrReply(e.DOM) {
			return
		}

		text := strings.TrimSpace(e.ChildText("div.tweet-content"))
		if text == "" {
			return
		}

		id := statusID(e.ChildAttr("a.tweet-link", "href"))
		if id == "" {
			return
		}

		posts = append(posts, types.Post{
			ID:        id,
			Text:      text,
			CreatedAt: timestampOf(e.DOM),
		})
	})

	c.OnError(func(r *colly.Response, err error) {
		logger.ErrorWithErr(ctx, "Mirror scraping error", err, "url", r.Request.URL.String())
	})

	url := fmt.Sprintf("https://%s/%s", f.host, f.account)
	if err := c.Visit(url); err != nil {
		return nil, fmt.Errorf("failed to visit %s: %w", url, err)
	}
	c.Wait()

	return posts, nil
}

// isRepostOrReply reports whether a timeline item is a retweet or a
// reply, which the feed excludes.
func isRepostOrReply(sel *goquery.Selection) bool {
	return sel.Find("div.retweet-header").Length() > 0 ||
		sel.Find("div.replying-to").Length() > 0
}

// timestampOf parses the item's date title attribute, zero time when absent
func timestampOf(sel *goquery.Selection) time.Time {
	title, ok := sel.Find("span.tweet-date a").Attr("title")
	if !ok {
		return time.Time{}
	}
	ts, err := time.Parse(mirrorDateLayout, title)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// statusID extracts the post id from a /user/status/<id>#m permalink
func statusID(href string) string {
	idx := strings.LastIndex(href, "/status/")
	if idx < 0 {
		return ""
	}
	id := href[idx+len("/status/"):]
	if cut := strings.IndexAny(id, "#?"); cut >= 0 {
		id = id[:cut]
	}
	return id
}
