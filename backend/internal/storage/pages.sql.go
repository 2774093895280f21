package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
)

const pages = `
SELECT p.id, p.title, p.description, p.canonical_url, p.published_at,
       json_agg(json_build_object('url', i.url, 'main', pi.main)) AS images
FROM pages p
JOIN pages_images pi ON pi.page_id = p.id
JOIN images i ON i.id = pi.image_id
WHERE p.published_at BETWEEN COALESCE($1, $2) AND COALESCE($3, now())
  AND (
    cardinality($4::text[]) = 0
    OR to_tsvector('simple', p.title || ' ' || p.description)
       @@ to_tsquery('simple', array_to_string($4::text[], ' | '))
  )
GROUP BY p.id
ORDER BY
  CASE WHEN $5::text = 'oldest' THEN p.published_at END ASC,
  CASE WHEN $5::text = 'newest' THEN p.published_at END DESC
OFFSET $6 LIMIT $7
`

type PagesParams struct {
	StartDate        sql.NullTime
	StartDateDefault time.Time
	EndDate          sql.NullTime
	Lexems           []string
	PageSorting      string
	Page             int64
	PageSize         int64
}

type PagesRow struct {
	ID           int64
	Title        string
	Description  string
	CanonicalURL string
	PublishedAt  time.Time
	Images       []byte
}

func (q *Queries) Pages(ctx context.Context, arg PagesParams) ([]PagesRow, error) {
	rows, err := q.db.QueryContext(ctx, pages,
		arg.StartDate,
		arg.StartDateDefault,
		arg.EndDate,
		pq.Array(arg.Lexems),
		arg.PageSorting,
		arg.Page,
		arg.PageSize,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []PagesRow
	for rows.Next() {
		var i PagesRow
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Description,
			&i.CanonicalURL,
			&i.PublishedAt,
			&i.Images,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getPageByID = `
SELECT p.id, p.title, p.description, p.canonical_url, p.published_at,
       json_agg(json_build_object('url', i.url, 'main', pi.main)) AS images
FROM pages p
JOIN pages_images pi ON pi.page_id = p.id
JOIN images i ON i.id = pi.image_id
WHERE p.id = $1
GROUP BY p.id
`

type GetPageByIDRow struct {
	ID           int64
	Title        string
	Description  string
	CanonicalURL string
	PublishedAt  time.Time
	Images       []byte
}

func (q *Queries) GetPageByID(ctx context.Context, id int64) (GetPageByIDRow, error) {
	row := q.db.QueryRowContext(ctx, getPageByID, id)
	var i GetPageByIDRow
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.CanonicalURL,
		&i.PublishedAt,
		&i.Images,
	)
	return i, err
}

const getPageCount = `
SELECT count(*)
FROM pages p
WHERE p.published_at BETWEEN COALESCE($1, $2) AND COALESCE($3, now())
  AND (
    cardinality($4::text[]) = 0
    OR to_tsvector('simple', p.title || ' ' || p.description)
       @@ to_tsquery('simple', array_to_string($4::text[], ' | '))
  )
`

type GetPageCountParams struct {
	StartDate        sql.NullTime
	StartDateDefault time.Time
	EndDate          sql.NullTime
	Lexems           []string
}

func (q *Queries) GetPageCount(ctx context.Context, arg GetPageCountParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, getPageCount,
		arg.StartDate,
		arg.StartDateDefault,
		arg.EndDate,
		pq.Array(arg.Lexems),
	)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const newPage = `
INSERT INTO pages (title, description, canonical_url, origin, published_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

type NewPageParams struct {
	Title        string
	Description  string
	CanonicalURL string
	Origin       string
	PublishedAt  time.Time
}

func (q *Queries) NewPage(ctx context.Context, arg NewPageParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, newPage,
		arg.Title,
		arg.Description,
		arg.CanonicalURL,
		arg.Origin,
		arg.PublishedAt,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const newImage = `
INSERT INTO images (url)
VALUES ($1)
RETURNING id
`

func (q *Queries) NewImage(ctx context.Context, url string) (int64, error) {
	row := q.db.QueryRowContext(ctx, newImage, url)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const attachPageImage = `
INSERT INTO pages_images (page_id, image_id, main)
VALUES ($1, $2, $3)
`

type AttachPageImageParams struct {
	PageID  int64
	ImageID int64
	Main    bool
}

func (q *Queries) AttachPageImage(ctx context.Context, arg AttachPageImageParams) error {
	_, err := q.db.ExecContext(ctx, attachPageImage, arg.PageID, arg.ImageID, arg.Main)
	return err
}

const getPageIDByCanonicalURLAndOrigin = `
SELECT id FROM pages
WHERE canonical_url = $1 AND origin = $2
`

type GetPageIDByCanonicalURLAndOriginParams struct {
	CanonicalURL string
	Origin       string
}

func (q *Queries) GetPageIDByCanonicalURLAndOrigin(ctx context.Context, arg GetPageIDByCanonicalURLAndOriginParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, getPageIDByCanonicalURLAndOrigin, arg.CanonicalURL, arg.Origin)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const updatePageSnapshot = `
UPDATE pages
SET title = $1, description = $2, updated_at = $3
WHERE id = $4
`

type UpdatePageSnapshotParams struct {
	Title       string
	Description string
	UpdatedAt   time.Time
	ID          int64
}

func (q *Queries) UpdatePageSnapshot(ctx context.Context, arg UpdatePageSnapshotParams) error {
	_, err := q.db.ExecContext(ctx, updatePageSnapshot,
		arg.Title,
		arg.Description,
		arg.UpdatedAt,
		arg.ID,
	)
	return err
}
