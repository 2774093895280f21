package natsinfo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPagesStreamSnapshotSubject(t *testing.T) {
	subject := PagesStream_NewSnapshotSubject("example.com", "Release Notes 1.2")
	require.Equal(t, "page.example.com.Release_Notes_1.2", subject)
}

func TestSnapshotWireRoundTrip(t *testing.T) {
	orig := PageSnapshot{
		Title:         "Release Notes",
		Description:   "What changed in 1.2",
		CanonicalURL:  "https://example.com/release-notes",
		MainImage:     "https://example.com/hero.png",
		ContentImages: []string{"https://example.com/a.png"},
		Origin:        "example.com",
	}

	data, err := orig.Marshal()
	require.NoError(t, err)

	var parsed PageSnapshot
	require.NoError(t, parsed.Unmarshal(data))

	require.Equal(t, orig.Title, parsed.Title)
	require.Equal(t, orig.CanonicalURL, parsed.CanonicalURL)
	require.Equal(t, orig.ContentImages, parsed.ContentImages)
}
