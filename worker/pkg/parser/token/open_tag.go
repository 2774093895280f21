package token

import "github.com/okhrin/meta-tracker/pkg/tagscan"

// OpenTag is an opening tag emitted by the tokenizer. Attr holds every
// attribute of the tag; boolean attributes map to an empty string.
type OpenTag struct {
	Name       string
	Attr       map[string]string
	SelfClosed bool
}

// NewOpenTag copies the result state of a successful tagscan parse into a
// token value, detaching it from the scanner before the next reuse.
func NewOpenTag(s *tagscan.TagScanner) OpenTag {
	tag := OpenTag{
		Name:       s.Name(),
		SelfClosed: s.IsSelfClosed(),
	}

	attrs := s.Attributes()
	if len(attrs) == 0 {
		return tag
	}

	tag.Attr = make(map[string]string, len(attrs))
	for name, attr := range attrs {
		tag.Attr[name] = attr.Value
	}
	return tag
}
