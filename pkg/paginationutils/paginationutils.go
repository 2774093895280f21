package paginationutils

import (
	"errors"
	"fmt"
	"math"
	"net/url"
)

var ErrInvalidPage = errors.New("invalid page")

type PaginationView struct {
	// Pages shown around the current one.
	// With padding 2 on page 5 of 10: 3 4 [5] 6 7.
	cursorPadding      int
	itemsPerPage       int
	itemsCount         int
	pageQueryParamName string
	url                url.URL
}

type PaginationLink struct {
	Link        string `json:"link"`
	PageNumber  string `json:"page_number"`
	Placeholder bool   `json:"placeholder"`
}

type NewPaginationViewParams struct {
	ItemsPerPage       int
	ItemsCount         int
	PageQueryParamName string
}

func NewPaginationView(url url.URL, params NewPaginationViewParams) *PaginationView {
	return &PaginationView{
		url:                url,
		cursorPadding:      1,
		itemsPerPage:       params.ItemsPerPage,
		itemsCount:         params.ItemsCount,
		pageQueryParamName: params.PageQueryParamName,
	}
}

func (p *PaginationView) TotalPages() int {
	return int(math.Ceil(float64(p.itemsCount) / float64(p.itemsPerPage)))
}

// PagesLinks renders the pagination row for the current page: the window
// around it plus the first and last page, with placeholders for the gaps.
func (p *PaginationView) PagesLinks(page int) ([]PaginationLink, error) {
	totalPages := p.TotalPages()

	if page > totalPages || page < 1 {
		return nil, errors.Join(ErrInvalidPage, fmt.Errorf("total pages: %d, page: %d", totalPages, page))
	}

	left := page - p.cursorPadding
	if left < 1 {
		left = 1
	}
	right := page + p.cursorPadding
	if right > totalPages {
		right = totalPages
	}

	var result []PaginationLink

	if left > 1 {
		result = append(result, p.makeLinkFromURL(1))
		if left > 2 {
			result = append(result, p.makeLinkPlaceholder())
		}
	}

	result = append(result, p.pageLinksRange(left, right)...)

	if right < totalPages {
		if right < totalPages-1 {
			result = append(result, p.makeLinkPlaceholder())
		}
		result = append(result, p.makeLinkFromURL(totalPages))
	}

	return result, nil
}

func (p *PaginationView) pageLinksRange(start, end int) []PaginationLink {
	var result []PaginationLink
	for page := start; page <= end; page++ {
		result = append(result, p.makeLinkFromURL(page))
	}
	return result
}

func (p *PaginationView) makeLinkFromURL(page int) PaginationLink {
	queryValues := p.url.Query()
	queryValues.Set(p.pageQueryParamName, fmt.Sprint(page))

	p.url.RawQuery = queryValues.Encode()

	return PaginationLink{
		Link:       p.url.String(),
		PageNumber: fmt.Sprint(page),
	}
}

func (p *PaginationView) makeLinkPlaceholder() PaginationLink {
	return PaginationLink{
		Link:        "...",
		PageNumber:  "...",
		Placeholder: true,
	}
}
