package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParsePublishedDateAbsolute(t *testing.T) {
	parsed, err := ParsePublishedDate("06 Feb 2024 at 18:29")
	require.NoError(t, err)
	require.Equal(t, 2024, parsed.Year())
	require.Equal(t, time.February, parsed.Month())
	require.Equal(t, 6, parsed.Day())
	require.Equal(t, 18, parsed.Hour())
	require.Equal(t, 29, parsed.Minute())
}

func TestParsePublishedDateRelative(t *testing.T) {
	now := time.Now()

	parsed, err := ParsePublishedDate("Today at 19:10")
	require.NoError(t, err)
	require.Equal(t, now.Day(), parsed.Day())
	require.Equal(t, 19, parsed.Hour())
	require.Equal(t, 10, parsed.Minute())

	parsed, err = ParsePublishedDate("Yesterday at 18:23")
	require.NoError(t, err)
	require.Equal(t, now.AddDate(0, 0, -1).Day(), parsed.Day())
	require.Equal(t, 18, parsed.Hour())
}

func TestParsePublishedDateMachineReadable(t *testing.T) {
	parsed, err := ParsePublishedDate("2024-02-06T18:29:00Z")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, time.February, 6, 18, 29, 0, 0, time.UTC), parsed)
}

func TestParsePublishedDateFailures(t *testing.T) {
	for _, str := range []string{
		"",
		"whenever",
		"06 Foo 2024 at 18:29",
		"Tomorrow at 10:00",
		"06 Feb 2024 at 18",
	} {
		_, err := ParsePublishedDate(str)
		require.Error(t, err, "input %q", str)
	}
}

func TestParseQueryString(t *testing.T) {
	parsed, err := ParseQueryString("2024-10-12T10:01")
	require.NoError(t, err)
	require.Equal(t, 10, parsed.Hour())

	parsed, err = ParseQueryString("2024-10-12")
	require.NoError(t, err)
	require.Equal(t, time.October, parsed.Month())

	_, err = ParseQueryString("12.10.2024")
	require.ErrorIs(t, err, ErrUnsupportedDateFormat)
}

func TestWireFormatRoundTrip(t *testing.T) {
	orig := time.Date(2024, time.March, 1, 12, 30, 45, 0, time.UTC)

	parsed, err := ParseString(ToString(orig))
	require.NoError(t, err)
	require.True(t, orig.Equal(parsed))
}
