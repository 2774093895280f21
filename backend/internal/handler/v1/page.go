package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/fx"

	"github.com/okhrin/meta-tracker/backend/internal/model"
	"github.com/okhrin/meta-tracker/backend/internal/service"
	"github.com/okhrin/meta-tracker/pkg/hashutils"
	"github.com/okhrin/meta-tracker/pkg/paginationutils"
)

type pageHandler struct {
	pageService *service.PageService
}

type getPagesResponse struct {
	Pages      []model.Page                     `json:"pages"`
	Pagination []paginationutils.PaginationLink `json:"pagination"`
}

func (hand *pageHandler) GetPages(w http.ResponseWriter, r *http.Request, queryParams *GetPagesQueryParams) {
	pages, err := hand.pageService.GetPages(r.Context(), service.GetPagesParams{
		Sorting:    queryParams.Sorting,
		StartDate:  queryParams.StartDate,
		EndDate:    queryParams.EndDate,
		TextLexems: queryParams.TextLexems,
		Page:       queryParams.Page,
		PageSize:   queryParams.PageSize,
	})
	if err != nil {
		pageErrHandler(w, err)
		return
	}

	cacheKey := hashutils.GetCacheKey(queryParams.StartDate, queryParams.EndDate, queryParams.TextLexems)

	pagesCount, err := hand.pageService.GetPagesCount(r.Context(), cacheKey, service.GetPagesCountParams{
		StartDate:  queryParams.StartDate,
		EndDate:    queryParams.EndDate,
		TextLexems: queryParams.TextLexems,
	})
	if err != nil {
		pageErrHandler(w, err)
		return
	}

	pagination := paginationutils.NewPaginationView(*r.URL, paginationutils.NewPaginationViewParams{
		ItemsPerPage:       queryParams.PageSize,
		ItemsCount:         pagesCount,
		PageQueryParamName: PAGE_QUERY_PARAM_NAME,
	})

	pagesLinks, err := pagination.PagesLinks(queryParams.Page)
	if err != nil {
		pageErrHandler(w, err)
		return
	}

	json.NewEncoder(w).Encode(&getPagesResponse{
		Pages:      pages,
		Pagination: pagesLinks,
	})
}

func (hand *pageHandler) GetPageByID(w http.ResponseWriter, r *http.Request, params *GetPageByIDUrlParams) {
	page, err := hand.pageService.GetPageByID(r.Context(), params.ID)
	if err != nil {
		pageErrHandler(w, err)
		return
	}
	json.NewEncoder(w).Encode(&page)
}

var _ PageHandler = (*pageHandler)(nil)

type NewPageHandlerParams struct {
	fx.In

	PageService *service.PageService
}

func NewPageHandler(params NewPageHandlerParams) *pageParamsWrapperHandler {
	return newPageParamsWrapper(&pageHandler{
		pageService: params.PageService,
	})
}
