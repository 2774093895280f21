package storage

import "time"

type Page struct {
	ID           int64
	Title        string
	Description  string
	CanonicalURL string
	Origin       string
	PublishedAt  time.Time
	UpdatedAt    time.Time
	CreatedAt    time.Time
}

type Image struct {
	ID  int64
	URL string
}

type PageImage struct {
	PageID  int64
	ImageID int64
	Main    bool
}
