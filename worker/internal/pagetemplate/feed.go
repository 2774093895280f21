package pagetemplate

import (
	"context"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/okhrin/meta-tracker/pkg/envutils"
	"github.com/okhrin/meta-tracker/pkg/natsinfo"
	"github.com/okhrin/meta-tracker/worker/pkg/parser"
	"github.com/okhrin/meta-tracker/worker/pkg/parser/selector"
)

func getRemotePage(path string) (io.ReadCloser, error) {
	resp, err := http.Get(path)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

type FeedConfig struct {
	FeedURL             string   `json:"feed_url"`
	FeedItemSelector    []string `json:"feed_item_selector"`
	FeedRefreshInterval int      `json:"feed_refresh_interval"`

	PagePrefixURL    string     `json:"page_prefix_url"`
	PageConfig       PageConfig `json:"page_config"`
	PagePullInterval int        `json:"page_pull_interval"`
	PageLinkSelector []string   `json:"page_link_selector"`
}

const (
	FEED_REFRESH_INTERVAL_ENV = "FEED_REFRESH_INTERVAL_SECONDS"
	PAGE_PULL_INTERVAL_ENV    = "PAGE_PULL_INTERVAL_SECONDS"
)

// applyDefaults fills missing intervals from the environment. Intervals are
// nanoseconds in the JSON config; a zero interval would panic the tickers.
func (c *FeedConfig) applyDefaults() {
	if c.FeedRefreshInterval <= 0 {
		c.FeedRefreshInterval = envutils.EnvInt(FEED_REFRESH_INTERVAL_ENV, 600) * int(time.Second)
	}
	if c.PagePullInterval <= 0 {
		c.PagePullInterval = envutils.EnvInt(PAGE_PULL_INTERVAL_ENV, 30) * int(time.Second)
	}
}

type FeedProcessor struct {
	SnapshotChan              chan natsinfo.PageSnapshot
	feedRefreshIntervalTicker *time.Ticker
	pagePullIntervalTicker    *time.Ticker
	config                    FeedConfig
	origin                    string
}

// Process the feed item node which points to the tracked page.
//
// Example: each item container on the feed has something which points to the actual page
// <li><a class="page-link" href="http://.../post/id">{Some title}</a></li>
// FeedConfig.PageLinkSelector must be the `page-link` to select the node here
func (f *FeedProcessor) onPageNode(node *parser.Node) {
	select {
	case <-f.pagePullIntervalTicker.C:
		url := f.config.PagePrefixURL + node.Tag.Attr["href"]
		log.Println("Get tracked page at", url)

		detailPage, err := getRemotePage(url)
		if err != nil {
			log.Println("Unable get remote tracked page at", url)
			return
		}
		defer detailPage.Close()

		extractor := NewPageExtractor(f.config)
		parser.Parse(detailPage, extractor.Selectors()...)

		snapshot := extractor.snapshot
		snapshot.Origin = f.origin
		f.SnapshotChan <- snapshot
	}
}

// Process each item on the feed page.
//
// Nodes are selected by FeedConfig.FeedItemSelector, which must point to the
// root of the item container/wrapper.
//
// Example: each feed has something like a list of nodes with the items inside
// <ol><li class="feed-item"></li><li class="feed-item"></li></ol>
//
// FeedConfig.FeedItemSelector must be the `feed-item` to select those nodes here
func (f *FeedProcessor) onFeedItemNode(node *parser.Node) {
	for node := node; node != nil; node = node.Next {
		classesStr := node.Tag.Attr["class"]
		// Find the node which contains the element pointing to the tracked page.
		if parser.ContainsClass(classesStr, f.config.PageLinkSelector) {
			f.onPageNode(node)
			break
		}
	}
}

func (f *FeedProcessor) GetSnapshotChan() <-chan natsinfo.PageSnapshot {
	return f.SnapshotChan
}

func (f *FeedProcessor) Start(ctx context.Context) {
	defer close(f.SnapshotChan)
	url := f.config.FeedURL
	f.origin = strings.Split(strings.SplitAfter(url, "//")[1], "/")[0]
	for {
		log.Printf("Next feed refresh at %s", time.Now().Add(time.Duration(f.config.FeedRefreshInterval)))
		select {
		case <-ctx.Done():
			return
		case <-f.feedRefreshIntervalTicker.C:
			log.Println("Refresh feed page", f.config.FeedURL)
			resp, err := getRemotePage(f.config.FeedURL)
			if err != nil {
				log.Println("Unable get remote feed page at", f.config.FeedURL)
				continue
			}
			parser.Parse(resp, selector.NewClassSelector(
				f.config.FeedItemSelector,
				f.onFeedItemNode,
			))
			resp.Close()
			log.Printf("Done feed page refresh for %s", f.config.FeedURL)
		}
	}
}

func NewFeedProcessor(config FeedConfig) *FeedProcessor {
	config.applyDefaults()
	return &FeedProcessor{
		feedRefreshIntervalTicker: time.NewTicker(
			time.Duration(config.FeedRefreshInterval),
		),
		pagePullIntervalTicker: time.NewTicker(
			time.Duration(config.PagePullInterval),
		),
		config:       config,
		SnapshotChan: make(chan natsinfo.PageSnapshot),
	}
}
