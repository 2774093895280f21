package pagetemplate

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/okhrin/meta-tracker/worker/pkg/parser"
)

const detailPage = `<html><body>
<div class="post">
	<h1 class="post-title">Release Notes</h1>
	<span class="post-date">06 Feb 2024 at 18:29</span>
	<div class="post-canon"><a href="/post/release-notes">permalink</a></div>
	<div class="post-hero"><img src="/hero.png"></div>
	<div class="post-intro"><p>What changed in 1.2</p><p>Subscribe for updates</p></div>
</div>
</body></html>`

func TestPageExtractor(t *testing.T) {
	config := FeedConfig{
		PagePrefixURL: "https://example.com",
		PageConfig: PageConfig{
			Fields: []Field{
				{Type: FIELD_TYPE_TITLE, ClassSelector: "post-title"},
				{Type: FIELD_TYPE_PUBLISHED_AT, ClassSelector: "post-date"},
				{Type: FIELD_TYPE_CANONICAL_URL, ClassSelector: "post-canon"},
				{Type: FIELD_TYPE_MAIN_IMAGE, ClassSelector: "post-hero"},
				{Type: FIELD_TYPE_DESCRIPTION, ClassSelector: "post-intro", IgnoredSentences: []string{"Subscribe for updates"}},
			},
		},
	}

	extractor := NewPageExtractor(config)
	parser.Parse(strings.NewReader(detailPage), extractor.Selectors()...)

	snapshot := extractor.snapshot
	require.Equal(t, "Release Notes", snapshot.Title)
	require.Equal(t, "https://example.com/post/release-notes", snapshot.CanonicalURL)
	require.Equal(t, "https://example.com/hero.png", snapshot.MainImage)
	require.Equal(t, "What changed in 1.2", snapshot.Description)
	require.Equal(t,
		time.Date(2024, time.February, 6, 18, 29, 0, 0, time.Local),
		snapshot.PublishedAt)
}

func TestPageExtractorSparseNodes(t *testing.T) {
	config := FeedConfig{
		PageConfig: PageConfig{
			Fields: []Field{
				{Type: FIELD_TYPE_TITLE, ClassSelector: "post-title"},
				{Type: FIELD_TYPE_PUBLISHED_AT, ClassSelector: "post-date"},
			},
		},
	}

	// Selected nodes without a text child must not crash the extraction.
	extractor := NewPageExtractor(config)
	parser.Parse(
		strings.NewReader(`<div><h1 class="post-title"></h1><span class="post-date"></span></div>`),
		extractor.Selectors()...)

	require.Empty(t, extractor.snapshot.Title)
	require.True(t, extractor.snapshot.PublishedAt.IsZero())
}

func TestFeedConfigDefaultIntervals(t *testing.T) {
	var config FeedConfig
	config.applyDefaults()
	require.Equal(t, int(600*time.Second), config.FeedRefreshInterval)
	require.Equal(t, int(30*time.Second), config.PagePullInterval)

	config = FeedConfig{FeedRefreshInterval: 42, PagePullInterval: 7}
	config.applyDefaults()
	require.Equal(t, 42, config.FeedRefreshInterval)
	require.Equal(t, 7, config.PagePullInterval)
}

func TestConfigFlag(t *testing.T) {
	var configs ConfigFlag

	require.NoError(t, configs.Set(`{"feed_url":"https://example.com/feed","feed_item_selector":["feed-item"]}`))
	require.Error(t, configs.Set(`{broken`))

	require.Len(t, configs, 1)
	require.Equal(t, "https://example.com/feed", configs[0].FeedURL)
}
