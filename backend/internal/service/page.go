package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	nats "github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/okhrin/meta-tracker/backend/internal/accessor"
	"github.com/okhrin/meta-tracker/backend/internal/model"
	"github.com/okhrin/meta-tracker/backend/internal/storage"
	"github.com/okhrin/meta-tracker/backend/pkg/txutils"
	"github.com/okhrin/meta-tracker/pkg/sqlutils"
)

type PageService struct {
	db      *sql.DB
	queries *storage.Queries
	kv      nats.KeyValue
}

var (
	ErrUnableCreateImage    = errors.New("unable create the image")
	ErrUnableCreatePage     = errors.New("unable create the page")
	ErrPageRequireMainImage = errors.New("page require at least the main image")
	ErrPageNotFound         = errors.New("page not found")
	ErrPagesNotFound        = errors.New("pages not found")
	ErrPagesCount           = errors.New("unable get pages count")
)

type PageSorting string

const (
	PAGE_SORTING_NEWEST PageSorting = "newest"
	PAGE_SORTING_OLDEST PageSorting = "oldest"
	DEFAULT_PAGE        int         = 1
	DEFAULT_PAGE_SIZE   int         = 7
)

type GetPagesParams struct {
	Sorting    PageSorting
	StartDate  time.Time
	EndDate    time.Time
	TextLexems []string
	Page       int
	PageSize   int
}

var DEFAULT_START_DATE = time.Now().AddDate(-10, 0, 0)

func (s *PageService) GetPages(ctx context.Context, params GetPagesParams) ([]model.Page, error) {
	pages, err := s.queries.Pages(ctx, storage.PagesParams{
		StartDate:        sqlutils.GetNullableSqlTime(params.StartDate),
		StartDateDefault: DEFAULT_START_DATE,
		EndDate:          sqlutils.GetNullableSqlTime(params.EndDate),
		Lexems:           params.TextLexems,
		PageSorting:      string(params.Sorting),
		Page:             int64((params.Page - 1) * params.PageSize),
		PageSize:         int64(params.PageSize),
	})
	if errors.Is(err, sql.ErrNoRows) || len(pages) == 0 {
		return nil, ErrPagesNotFound
	}

	return accessor.PagesFromPagesRows(pages)
}

func (s *PageService) GetPageByID(ctx context.Context, id int64) (model.Page, error) {
	page, err := s.queries.GetPageByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NilPage, ErrPageNotFound
	}

	return accessor.PageFromPageByIDRow(page)
}

type NewPageParams struct {
	Page              storage.NewPageParams
	MainImageURL      string
	ContentImagesURLs []string
}

func (s *PageService) NewPage(ctx context.Context, params NewPageParams) (id int64, err error) {
	if params.MainImageURL == "" {
		return 0, ErrPageRequireMainImage
	}

	err = txutils.WithTransaction(s.db, func(queries *storage.Queries) error {
		pageID, err := queries.NewPage(ctx, params.Page)
		if err != nil {
			log.Printf("unable create the page. Err:%s", err)
			return ErrUnableCreatePage
		}

		if err = s.newPageImage(ctx, queries, pageID, params.MainImageURL, true); err != nil {
			log.Printf("unable create the page image. Err:%s", err)
			return err
		}

		for _, imageURL := range params.ContentImagesURLs {
			if err = s.newPageImage(ctx, queries, pageID, imageURL, false); err != nil {
				log.Printf("unable create the page image. Err:%s", err)
				return err
			}
		}

		id = pageID
		return nil
	})
	return id, err
}

type GetPagesCountParams struct {
	StartDate  time.Time
	EndDate    time.Time
	TextLexems []string
}

func (s *PageService) GetPagesCount(ctx context.Context, cacheKey string, params GetPagesCountParams) (int, error) {
	val, err := s.kv.Get(cacheKey)
	if err == nil {
		count, err := strconv.Atoi(string(val.Value()))
		if err == nil {
			return count, nil
		}
	}

	count, err := s.queries.GetPageCount(ctx, storage.GetPageCountParams{
		StartDate:        sqlutils.GetNullableSqlTime(params.StartDate),
		StartDateDefault: DEFAULT_START_DATE,
		EndDate:          sqlutils.GetNullableSqlTime(params.EndDate),
		Lexems:           params.TextLexems,
	})
	if err != nil {
		return -1, errors.Join(ErrPagesCount, err)
	}

	if _, err = s.kv.Put(cacheKey, []byte(fmt.Sprint(count))); err != nil {
		log.Printf("Unable store cache for %s", cacheKey)
	}

	return int(count), nil
}

func (s *PageService) newPageImage(ctx context.Context, queries *storage.Queries, pageID int64, url string, main bool) error {
	imageID, err := queries.NewImage(ctx, url)
	if err != nil {
		return ErrUnableCreateImage
	}

	if err = queries.AttachPageImage(ctx, storage.AttachPageImageParams{
		PageID:  pageID,
		ImageID: imageID,
		Main:    main,
	}); err != nil {
		return ErrUnableCreateImage
	}
	return nil
}

func (s *PageService) GetPageIDByCanonicalURLAndOrigin(ctx context.Context, params storage.GetPageIDByCanonicalURLAndOriginParams) (int64, error) {
	return s.queries.GetPageIDByCanonicalURLAndOrigin(ctx, params)
}

func (s *PageService) UpdatePageSnapshot(ctx context.Context, params storage.UpdatePageSnapshotParams) error {
	return s.queries.UpdatePageSnapshot(ctx, params)
}

type NewPageServiceParams struct {
	fx.In

	DB *sql.DB
	KV nats.KeyValue
}

func NewPageService(params NewPageServiceParams) *PageService {
	return &PageService{
		db:      params.DB,
		queries: storage.New(params.DB),
		kv:      params.KV,
	}
}
