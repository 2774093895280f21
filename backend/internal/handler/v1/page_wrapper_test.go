package handler

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/okhrin/meta-tracker/backend/internal/service"
)

func TestGetPageSortingQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/pages?sort=oldest", nil)
	sorting, err := getPageSortingQuery(r, service.PAGE_SORTING_NEWEST)
	require.NoError(t, err)
	require.Equal(t, service.PAGE_SORTING_OLDEST, sorting)

	r = httptest.NewRequest("GET", "/api/v1/pages", nil)
	sorting, err = getPageSortingQuery(r, service.PAGE_SORTING_NEWEST)
	require.NoError(t, err)
	require.Equal(t, service.PAGE_SORTING_NEWEST, sorting)

	r = httptest.NewRequest("GET", "/api/v1/pages?sort=sideways", nil)
	_, err = getPageSortingQuery(r, service.PAGE_SORTING_NEWEST)
	require.ErrorIs(t, err, ErrUnsupportedQueryParam)
}

func TestGetDateQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/pages?start_date=2024-10-12", nil)
	date, err := getDateQuery(r, START_DATE_QUERY_PARAM_NAME)
	require.NoError(t, err)
	require.Equal(t, time.October, date.Month())

	r = httptest.NewRequest("GET", "/api/v1/pages", nil)
	date, err = getDateQuery(r, START_DATE_QUERY_PARAM_NAME)
	require.NoError(t, err)
	require.True(t, date.IsZero())

	r = httptest.NewRequest("GET", "/api/v1/pages?start_date=12.10.2024", nil)
	_, err = getDateQuery(r, START_DATE_QUERY_PARAM_NAME)
	require.ErrorIs(t, err, ErrUnsupportedQueryParam)
}

func TestGetTextQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/pages?text=release+notes", nil)
	require.Equal(t, []string{"release", "notes"}, getTextQuery(r))

	r = httptest.NewRequest("GET", "/api/v1/pages", nil)
	require.Nil(t, getTextQuery(r))
}

func TestGetPageQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/pages?page=3&page_size=20", nil)

	page, err := getPageQuery(r, service.DEFAULT_PAGE)
	require.NoError(t, err)
	require.Equal(t, 3, page)

	pageSize, err := getPageSizeQuery(r, service.DEFAULT_PAGE_SIZE)
	require.NoError(t, err)
	require.Equal(t, 20, pageSize)

	r = httptest.NewRequest("GET", "/api/v1/pages?page=abc", nil)
	_, err = getPageQuery(r, service.DEFAULT_PAGE)
	require.ErrorIs(t, err, ErrUnsupportedQueryParam)
}
