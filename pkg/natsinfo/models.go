package natsinfo

import (
	"encoding/json"
	"time"

	"github.com/okhrin/meta-tracker/pkg/dateutils"
)

type PageSnapshot struct {
	Title         string
	Description   string
	CanonicalURL  string
	PublishedAt   time.Time
	MainImage     string
	ContentImages []string
	Origin        string
}

type pageSnapshotDTO struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	CanonicalURL  string   `json:"canonical_url"`
	PublishedAt   string   `json:"published_at"`
	MainImage     string   `json:"main_image"`
	ContentImages []string `json:"content_images,omitempty"`
	Origin        string   `json:"origin"`
}

func (s *PageSnapshot) Marshal() ([]byte, error) {
	return json.Marshal(
		&pageSnapshotDTO{
			Title:         s.Title,
			Description:   s.Description,
			CanonicalURL:  s.CanonicalURL,
			PublishedAt:   dateutils.ToString(s.PublishedAt),
			MainImage:     s.MainImage,
			ContentImages: s.ContentImages,
			Origin:        s.Origin,
		},
	)
}

func (s *PageSnapshot) Unmarshal(data []byte) error {
	var dto pageSnapshotDTO

	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}

	s.Title = dto.Title
	s.Description = dto.Description
	s.CanonicalURL = dto.CanonicalURL
	s.MainImage = dto.MainImage
	s.ContentImages = dto.ContentImages
	s.Origin = dto.Origin

	time, err := dateutils.ParseString(dto.PublishedAt)
	if err != nil {
		return err
	}
	s.PublishedAt = time

	return nil
}
