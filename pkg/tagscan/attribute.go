package tagscan

// Attribute is a single parsed attribute. Boolean attributes, like
// `disabled` in `<input disabled>`, are present without a value: HasValue is
// false and Value is empty. An explicitly empty value (`alt=""`) keeps
// HasValue true. The two render identically as strings but are distinct
// states.
type Attribute struct {
	Value    string
	HasValue bool
}

// Attribute returns the parsed attribute for name. The second result is
// false when the tag has no such attribute.
func (s *TagScanner) Attribute(name string) (Attribute, bool) {
	attr, ok := s.attrs[name]
	return attr, ok
}

// Get returns the attribute value for name, collapsing boolean attributes
// and missing attributes into an empty string.
func (s *TagScanner) Get(name string) string {
	return s.attrs[name].Value
}

// Attributes returns the attribute map of the last successful parse. The map
// is nil for a tag without attributes. Duplicated names keep the value of
// the last occurrence in the tag.
func (s *TagScanner) Attributes() map[string]Attribute {
	return s.attrs
}

// NoAttributes reports whether the last parsed tag had no attributes.
func (s *TagScanner) NoAttributes() bool {
	return len(s.attrs) == 0
}

func (s *TagScanner) putAttribute(name string, attr Attribute) {
	if s.attrs == nil {
		s.attrs = make(map[string]Attribute)
	}
	s.attrs[name] = attr
}
