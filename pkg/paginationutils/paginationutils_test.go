package paginationutils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func newView(t *testing.T, itemsCount, itemsPerPage int) *PaginationView {
	t.Helper()

	u, err := url.Parse("http://localhost/api/v1/pages?text=go")
	require.NoError(t, err)

	return NewPaginationView(*u, NewPaginationViewParams{
		ItemsPerPage:       itemsPerPage,
		ItemsCount:         itemsCount,
		PageQueryParamName: "page",
	})
}

func TestTotalPages(t *testing.T) {
	require.Equal(t, 10, newView(t, 70, 7).TotalPages())
	require.Equal(t, 11, newView(t, 71, 7).TotalPages())
	require.Equal(t, 1, newView(t, 1, 7).TotalPages())
}

func TestPagesLinksMiddlePage(t *testing.T) {
	links, err := newView(t, 70, 7).PagesLinks(5)
	require.NoError(t, err)

	var numbers []string
	for _, link := range links {
		numbers = append(numbers, link.PageNumber)
	}
	require.Equal(t, []string{"1", "...", "4", "5", "6", "...", "10"}, numbers)

	require.Contains(t, links[0].Link, "page=1")
	require.Contains(t, links[0].Link, "text=go")
	require.True(t, links[1].Placeholder)
}

func TestPagesLinksEdges(t *testing.T) {
	view := newView(t, 70, 7)

	links, err := view.PagesLinks(1)
	require.NoError(t, err)
	require.Equal(t, "1", links[0].PageNumber)
	require.Equal(t, "10", links[len(links)-1].PageNumber)

	links, err = view.PagesLinks(10)
	require.NoError(t, err)
	require.Equal(t, "1", links[0].PageNumber)
	require.Equal(t, "10", links[len(links)-1].PageNumber)
}

func TestPagesLinksOutOfRange(t *testing.T) {
	view := newView(t, 70, 7)

	_, err := view.PagesLinks(0)
	require.ErrorIs(t, err, ErrInvalidPage)

	_, err = view.PagesLinks(11)
	require.ErrorIs(t, err, ErrInvalidPage)
}
