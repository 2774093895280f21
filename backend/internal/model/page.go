package model

type Page struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	CanonicalURL  string   `json:"canonical_url"`
	PublishedAt   string   `json:"published_at"`
	MainImage     string   `json:"main_image"`
	ContentImages []string `json:"content_images,omitempty"`
}

var NilPage = Page{}
