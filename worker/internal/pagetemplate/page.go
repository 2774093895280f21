package pagetemplate

import (
	"strings"
	"time"

	"github.com/okhrin/meta-tracker/pkg/dateutils"
	"github.com/okhrin/meta-tracker/pkg/natsinfo"
	"github.com/okhrin/meta-tracker/worker/pkg/parser"
	"github.com/okhrin/meta-tracker/worker/pkg/parser/selector"
)

const (
	FIELD_TYPE_TITLE          = "title"
	FIELD_TYPE_DESCRIPTION    = "description"
	FIELD_TYPE_CANONICAL_URL  = "canonical_url"
	FIELD_TYPE_PUBLISHED_AT   = "published_at"
	FIELD_TYPE_MAIN_IMAGE     = "main_image"
	FIELD_TYPE_CONTENT_IMAGES = "content_images"
)

type Field struct {
	Type             string   `json:"type"`
	ClassSelector    string   `json:"class_selector"`
	IgnoredSentences []string `json:"ignored_sentences"`
}

type PageConfig struct {
	Fields []Field `json:"fields"`
}

type PageExtractor struct {
	snapshot natsinfo.PageSnapshot
	config   FeedConfig
}

func (p *PageExtractor) OnMainImage(field Field) func(*parser.Node) {
	return func(node *parser.Node) {
		for node := node; node != nil; node = node.Next {
			if node.Name == "img" {
				if node.Tag.Attr == nil {
					continue
				}
				p.snapshot.MainImage = p.config.PagePrefixURL + node.Tag.Attr["src"]
				break
			}
		}
	}
}

func (p *PageExtractor) OnContentImages(field Field) func(*parser.Node) {
	return func(node *parser.Node) {
		for node := node; node != nil; node = node.Next {
			if node.Name == "img" {
				if node.Tag.Attr == nil {
					continue
				}
				img := p.config.PagePrefixURL + node.Tag.Attr["src"]
				p.snapshot.ContentImages = append(p.snapshot.ContentImages, img)
			}
		}
	}
}

func (p *PageExtractor) OnCanonicalURL(field Field) func(*parser.Node) {
	return func(node *parser.Node) {
		for node := node; node != nil; node = node.Next {
			if node.Name != "a" && node.Name != "link" {
				continue
			}
			if node.Tag.Attr == nil {
				continue
			}
			if href, exist := node.Tag.Attr["href"]; exist {
				p.snapshot.CanonicalURL = p.config.PagePrefixURL + href
				break
			}
		}
	}
}

func (p *PageExtractor) OnDescription(field Field) func(*parser.Node) {
	return func(node *parser.Node) {
		var description string
		for node := node; node != nil; node = node.Next {
			description += node.Content
		}
		for _, sentence := range field.IgnoredSentences {
			description = strings.Replace(description, sentence, "", -1)
		}
		p.snapshot.Description = description
	}
}

func (p *PageExtractor) OnTitle(field Field) func(*parser.Node) {
	return func(node *parser.Node) {
		if node.Next == nil {
			return
		}
		p.snapshot.Title = node.Next.Content
	}
}

func (p *PageExtractor) OnPublishDate(field Field) func(*parser.Node) {
	return func(node *parser.Node) {
		if node.Next == nil {
			return
		}
		date, err := dateutils.ParsePublishedDate(node.Next.Content)
		if err != nil {
			p.snapshot.PublishedAt = time.Now()
			return
		}
		p.snapshot.PublishedAt = date
	}
}

func (p *PageExtractor) Selectors() []parser.Selector {
	var selectors []parser.Selector
	for _, field := range p.config.PageConfig.Fields {
		var onNode func(*parser.Node)

		switch field.Type {
		case FIELD_TYPE_TITLE:
			onNode = p.OnTitle(field)
		case FIELD_TYPE_DESCRIPTION:
			onNode = p.OnDescription(field)
		case FIELD_TYPE_CANONICAL_URL:
			onNode = p.OnCanonicalURL(field)
		case FIELD_TYPE_PUBLISHED_AT:
			onNode = p.OnPublishDate(field)
		case FIELD_TYPE_MAIN_IMAGE:
			onNode = p.OnMainImage(field)
		case FIELD_TYPE_CONTENT_IMAGES:
			onNode = p.OnContentImages(field)
		default:
			continue
		}

		selectors = append(selectors, selector.NewClassSelector([]string{field.ClassSelector}, onNode))
	}
	return selectors
}

func NewPageExtractor(config FeedConfig) *PageExtractor {
	return &PageExtractor{
		config: config,
	}
}
