package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/okhrin/meta-tracker/backend/internal/service"
	"github.com/okhrin/meta-tracker/pkg/dateutils"
	"github.com/okhrin/meta-tracker/pkg/httputils"
)

const (
	SORTING_QUERY_PARAM_NAME    = "sort"
	START_DATE_QUERY_PARAM_NAME = "start_date"
	END_DATE_QUERY_PARAM_NAME   = "end_date"
	TEXT_QUERY_PARAM_NAME       = "text"
	PAGE_QUERY_PARAM_NAME       = "page"
	PAGE_SIZE_QUERY_PARAM_NAME  = "page_size"
)

var ErrUnsupportedQueryParam = errors.New("unsupported query param")

type GetPagesQueryParams struct {
	Sorting    service.PageSorting
	StartDate  time.Time
	EndDate    time.Time
	TextLexems []string
	Page       int
	PageSize   int
}

type GetPageByIDUrlParams struct {
	ID int64
}

type PageHandler interface {
	GetPages(w http.ResponseWriter, r *http.Request, queryParams *GetPagesQueryParams)
	GetPageByID(w http.ResponseWriter, r *http.Request, params *GetPageByIDUrlParams)
}

type pageParamsWrapperHandler struct {
	handler PageHandler
}

func (h *pageParamsWrapperHandler) GetPageByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputils.WriteErrorResponse(w, http.StatusPreconditionRequired, err.Error())
		return
	}

	h.handler.GetPageByID(w, r, &GetPageByIDUrlParams{
		ID: int64(id),
	})
}

func getPageSortingQuery(r *http.Request, defaultVal service.PageSorting) (service.PageSorting, error) {
	sortingParam := r.URL.Query().Get(SORTING_QUERY_PARAM_NAME)
	switch service.PageSorting(sortingParam) {
	case service.PAGE_SORTING_NEWEST:
		return service.PAGE_SORTING_NEWEST, nil
	case service.PAGE_SORTING_OLDEST:
		return service.PAGE_SORTING_OLDEST, nil
	case "":
		return defaultVal, nil
	default:
		return "", errors.Join(fmt.Errorf("unsupported `%s` query value %s", SORTING_QUERY_PARAM_NAME, sortingParam), ErrUnsupportedQueryParam)
	}
}

func getDateQuery(r *http.Request, queryName string) (time.Time, error) {
	date := r.URL.Query().Get(queryName)
	if date == "" {
		return time.Time{}, nil
	}
	t, err := dateutils.ParseQueryString(date)
	if err != nil {
		return time.Time{}, errors.Join(fmt.Errorf("unsupported `%s` query value %s. Format must be like `2024-10-12T10:01` or `2024-10-12`", queryName, date), ErrUnsupportedQueryParam)
	}
	return t, nil
}

func getTextQuery(r *http.Request) []string {
	text := r.URL.Query().Get(TEXT_QUERY_PARAM_NAME)
	if text == "" {
		return nil
	}
	return strings.Fields(text)
}

func getPageQuery(r *http.Request, defaultPage int) (int, error) {
	pageStr := r.URL.Query().Get(PAGE_QUERY_PARAM_NAME)
	if pageStr == "" {
		return defaultPage, nil
	}
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		return -1, errors.Join(fmt.Errorf("unsupported `%s` page value %s. Support only numbers", PAGE_QUERY_PARAM_NAME, pageStr), ErrUnsupportedQueryParam)
	}
	return page, nil
}

func getPageSizeQuery(r *http.Request, defaultPageSize int) (int, error) {
	pageSizeStr := r.URL.Query().Get(PAGE_SIZE_QUERY_PARAM_NAME)
	if pageSizeStr == "" {
		return defaultPageSize, nil
	}
	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil {
		return -1, errors.Join(fmt.Errorf("unsupported `%s` page size value %s. Support only numbers", PAGE_SIZE_QUERY_PARAM_NAME, pageSizeStr), ErrUnsupportedQueryParam)
	}
	return pageSize, nil
}

func (h *pageParamsWrapperHandler) GetPages(w http.ResponseWriter, r *http.Request) {
	sorting, err := getPageSortingQuery(r, service.PAGE_SORTING_NEWEST)
	if err != nil {
		pageErrHandler(w, err)
		return
	}

	startDate, err := getDateQuery(r, START_DATE_QUERY_PARAM_NAME)
	if err != nil {
		pageErrHandler(w, err)
		return
	}

	endDate, err := getDateQuery(r, END_DATE_QUERY_PARAM_NAME)
	if err != nil {
		pageErrHandler(w, err)
		return
	}

	textLexems := getTextQuery(r)

	page, err := getPageQuery(r, service.DEFAULT_PAGE)
	if err != nil {
		pageErrHandler(w, err)
		return
	}

	pageSize, err := getPageSizeQuery(r, service.DEFAULT_PAGE_SIZE)
	if err != nil {
		pageErrHandler(w, err)
		return
	}

	h.handler.GetPages(w, r, &GetPagesQueryParams{
		Sorting:    sorting,
		StartDate:  startDate,
		EndDate:    endDate,
		TextLexems: textLexems,
		Page:       page,
		PageSize:   pageSize,
	})
}

func (h *pageParamsWrapperHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		baseURL := "/api/v1"
		r.Get(baseURL+"/pages", h.GetPages)
		r.Get(baseURL+"/pages/{id}", h.GetPageByID)
	}
}

var _ httputils.Handler = (*pageParamsWrapperHandler)(nil)

func newPageParamsWrapper(handler PageHandler) *pageParamsWrapperHandler {
	return &pageParamsWrapperHandler{
		handler: handler,
	}
}

func pageErrHandler(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrPagesNotFound),
		errors.Is(err, service.ErrPageNotFound):
		httputils.WriteErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrUnsupportedQueryParam):
		httputils.WriteErrorResponse(w, http.StatusNotAcceptable, err.Error())
	default:
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}
