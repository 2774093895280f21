package accessor

import (
	"encoding/json"
	"errors"

	"github.com/okhrin/meta-tracker/backend/internal/model"
	"github.com/okhrin/meta-tracker/backend/internal/storage"
	"github.com/okhrin/meta-tracker/pkg/dateutils"
)

var ErrUnableGetPage = errors.New("unable get page")

type pageRowImage struct {
	URL  string `json:"url"`
	Main bool   `json:"main"`
}

func PageFromPagesRow(row storage.PagesRow) (model.Page, error) {
	var images []pageRowImage
	if err := json.Unmarshal(row.Images, &images); err != nil {
		return model.NilPage, ErrUnableGetPage
	}

	page := model.Page{
		ID:           row.ID,
		Title:        row.Title,
		Description:  row.Description,
		CanonicalURL: row.CanonicalURL,
		PublishedAt:  dateutils.Prettify(row.PublishedAt),
	}

	for _, image := range images {
		if image.Main {
			page.MainImage = image.URL
			continue
		}
		page.ContentImages = append(page.ContentImages, image.URL)
	}

	return page, nil
}

func PagesFromPagesRows(rows []storage.PagesRow) ([]model.Page, error) {
	var pages []model.Page
	for _, row := range rows {
		page, err := PageFromPagesRow(row)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

func PageFromPageByIDRow(row storage.GetPageByIDRow) (model.Page, error) {
	var images []pageRowImage
	if err := json.Unmarshal(row.Images, &images); err != nil {
		return model.NilPage, ErrUnableGetPage
	}

	page := model.Page{
		ID:           row.ID,
		Title:        row.Title,
		Description:  row.Description,
		CanonicalURL: row.CanonicalURL,
		PublishedAt:  dateutils.Prettify(row.PublishedAt),
	}

	for _, image := range images {
		if image.Main {
			page.MainImage = image.URL
			continue
		}
		page.ContentImages = append(page.ContentImages, image.URL)
	}

	return page, nil
}
