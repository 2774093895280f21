package tagscan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBareTag(t *testing.T) {
	var s TagScanner

	ok := s.ParseString("<p>", 0, true)
	require.True(t, ok)
	require.Equal(t, "p", s.Name())
	require.True(t, s.NoAttributes())
	require.Nil(t, s.Attributes())
	require.False(t, s.IsSelfClosed())
	require.Equal(t, 0, s.StartIndex())
	require.Equal(t, 3, s.Length())
	require.Equal(t, 1, s.InnerStart())
	require.Equal(t, 1, s.InnerLength())
}

func TestParseSelfClosedTag(t *testing.T) {
	var s TagScanner

	ok := s.ParseString("<i/>", 0, true)
	require.True(t, ok)
	require.Equal(t, "i", s.Name())
	require.True(t, s.IsSelfClosed())
	require.Equal(t, 4, s.Length())
	require.Equal(t, 1, s.InnerLength())
	require.True(t, s.NoAttributes())
}

func TestParseBooleanAttribute(t *testing.T) {
	var s TagScanner

	ok := s.ParseString("<input disabled>", 0, true)
	require.True(t, ok)
	require.Equal(t, "input", s.Name())

	attr, found := s.Attribute("disabled")
	require.True(t, found)
	require.False(t, attr.HasValue)
	require.Equal(t, "", attr.Value)
}

func TestParseUnquotedValue(t *testing.T) {
	var s TagScanner

	ok := s.ParseString("<img src=hi>", 0, true)
	require.True(t, ok)

	attr, found := s.Attribute("src")
	require.True(t, found)
	require.True(t, attr.HasValue)
	require.Equal(t, "hi", attr.Value)
}

func TestDuplicateAttributeLastWins(t *testing.T) {
	var s TagScanner

	ok := s.ParseString("<div class='first' class='second'>", 0, true)
	require.True(t, ok)
	require.Equal(t, "second", s.Get("class"))

	ok = s.ParseString("<div a=1 a=2 a=3>", 0, true)
	require.True(t, ok)
	require.Equal(t, "3", s.Get("a"))
	require.Len(t, s.Attributes(), 1)
}

func TestWhitespaceAroundEquals(t *testing.T) {
	var s TagScanner

	ok := s.ParseString("<div class  =  'test'>", 0, true)
	require.True(t, ok)
	require.Equal(t, "test", s.Get("class"))
}

func TestMissingClosingQuoteFails(t *testing.T) {
	var s TagScanner

	require.False(t, s.ParseString("<img is-cool hello='yes>  ", 0, true))
	require.False(t, s.ParseString(`<a href="broken>`, 0, true))
}

func TestPositionMetadata(t *testing.T) {
	var s TagScanner

	doc := `text before <a href="x">link</a> text after`
	start := strings.Index(doc, "<a")

	ok := s.ParseString(doc, start, true)
	require.True(t, ok)
	require.Equal(t, start, s.StartIndex())
	require.Equal(t, byte('>'), doc[s.StartIndex()+s.Length()-1])
	require.Equal(t, `<a href="x">`, doc[s.StartIndex():s.StartIndex()+s.Length()])

	doc = `before <img src=y/> after`
	start = strings.Index(doc, "<img")

	ok = s.ParseString(doc, start, true)
	require.True(t, ok)
	require.True(t, s.IsSelfClosed())
	require.Equal(t, byte('>'), doc[s.StartIndex()+s.Length()-1])
	require.Equal(t, byte('/'), doc[s.StartIndex()+s.Length()-2])
	require.Equal(t, `<img src=y/>`, doc[s.StartIndex():s.StartIndex()+s.Length()])
}

func TestRoundTripSpanKeepsIrregularWhitespace(t *testing.T) {
	var s TagScanner

	tag := "<div   class =\t'x'\n  hidden >"
	ok := s.ParseString(tag, 0, true)
	require.True(t, ok)
	require.Equal(t, tag, tag[s.StartIndex():s.StartIndex()+s.Length()])
	require.Equal(t, "x", s.Get("class"))

	_, found := s.Attribute("hidden")
	require.True(t, found)
}

func TestInstanceReuseReplacesState(t *testing.T) {
	var s TagScanner

	require.True(t, s.ParseString("<div class='x' id='y'>", 0, true))
	require.Equal(t, "div", s.Name())
	require.Len(t, s.Attributes(), 2)

	require.True(t, s.ParseString("<span hidden>", 0, true))
	require.Equal(t, "span", s.Name())
	require.Len(t, s.Attributes(), 1)

	_, found := s.Attribute("class")
	require.False(t, found)
	_, found = s.Attribute("id")
	require.False(t, found)

	require.True(t, s.ParseString("<p>", 0, true))
	require.Equal(t, "p", s.Name())
	require.True(t, s.NoAttributes())
}

func TestKnownClosingDelimiter(t *testing.T) {
	var s TagScanner

	// Caller already isolated the tag: last character is the `>`.
	ok := s.Parse([]byte(`<a href="x">`), 0, false)
	require.True(t, ok)
	require.Equal(t, "x", s.Get("href"))

	// The assertion is checked, not trusted.
	require.False(t, s.Parse([]byte(`<a href="x"> `), 0, false))
}

func TestBoundaryFailures(t *testing.T) {
	var s TagScanner

	for _, src := range []string{
		"<p",        // fewer than 3 characters remain
		"ab",        // no `<`
		" <p>",      // caller must sit exactly on `<`
		"<div clas", // no `>` at all
		"<>x",       // degenerate span
		"<  >",      // empty name
		"</>",       // nothing inside after the self-close slash
		"</div>",    // closing tags are out of scope
		"<1div>",    // name must not start with a digit
		"<div/class>",
	} {
		require.False(t, s.ParseString(src, 0, true), "input %q", src)
	}
}

func TestPreconditionPanics(t *testing.T) {
	var s TagScanner

	require.Panics(t, func() { s.Parse(nil, 0, true) })
	require.Panics(t, func() { s.ParseString("<p>", -1, true) })
	require.Panics(t, func() { s.ParseString("<p>", 3, true) })
	require.Panics(t, func() { s.ParseString("", 0, true) })
}

func TestScannerStaysUsableAfterPanic(t *testing.T) {
	var s TagScanner

	require.Panics(t, func() { s.ParseString("<p>", -1, true) })
	require.True(t, s.ParseString("<p>", 0, true))
	require.Equal(t, "p", s.Name())
}

func TestEmptyQuotedValueIsPresent(t *testing.T) {
	var s TagScanner

	ok := s.ParseString(`<img alt="" src=''>`, 0, true)
	require.True(t, ok)

	alt, found := s.Attribute("alt")
	require.True(t, found)
	require.True(t, alt.HasValue)
	require.Equal(t, "", alt.Value)

	src, found := s.Attribute("src")
	require.True(t, found)
	require.True(t, src.HasValue)
	require.Equal(t, "", src.Value)
}

func TestDanglingEqualsIsBoolean(t *testing.T) {
	var s TagScanner

	for _, src := range []string{"<div attr=>", "<div attr= >", "<div attr=/>"} {
		ok := s.ParseString(src, 0, true)
		require.True(t, ok, "input %q", src)

		attr, found := s.Attribute("attr")
		require.True(t, found, "input %q", src)
		require.False(t, attr.HasValue, "input %q", src)
	}
}

func TestEqualsThenWhitespaceThenRun(t *testing.T) {
	var s TagScanner

	// `a= x` is tolerated: `a` turns boolean, `x` is scanned as the next
	// attribute.
	ok := s.ParseString("<div a= x>", 0, true)
	require.True(t, ok)

	a, found := s.Attribute("a")
	require.True(t, found)
	require.False(t, a.HasValue)

	x, found := s.Attribute("x")
	require.True(t, found)
	require.False(t, x.HasValue)
}

func TestMixedQuotes(t *testing.T) {
	var s TagScanner

	ok := s.ParseString(`<a b='x' c="y" d="it's fine">`, 0, true)
	require.True(t, ok)
	require.Equal(t, "x", s.Get("b"))
	require.Equal(t, "y", s.Get("c"))
	require.Equal(t, "it's fine", s.Get("d"))
}

func TestUnquotedValueTerminators(t *testing.T) {
	var s TagScanner

	ok := s.ParseString("<img src=hi alt=low\thidden>", 0, true)
	require.True(t, ok)
	require.Equal(t, "hi", s.Get("src"))
	require.Equal(t, "low", s.Get("alt"))

	hidden, found := s.Attribute("hidden")
	require.True(t, found)
	require.False(t, hidden.HasValue)

	ok = s.ParseString("<img src=hi/>", 0, true)
	require.True(t, ok)
	require.True(t, s.IsSelfClosed())
	require.Equal(t, "hi", s.Get("src"))
}

func TestNamesBeyondASCIIFastPath(t *testing.T) {
	var s TagScanner

	ok := s.ParseString("<svg:rect width='1'>", 0, true)
	require.True(t, ok)
	require.Equal(t, "svg:rect", s.Name())

	ok = s.ParseString("<a xlink:href='x'>", 0, true)
	require.True(t, ok)
	require.Equal(t, "x", s.Get("xlink:href"))

	ok = s.ParseString("<név títul='ok'>", 0, true)
	require.True(t, ok)
	require.Equal(t, "név", s.Name())
	require.Equal(t, "ok", s.Get("títul"))
}

func TestStructurallyInvalidAttributeName(t *testing.T) {
	var s TagScanner

	require.False(t, s.ParseString("<div a%b>", 0, true))
	require.False(t, s.ParseString("<div 1a=x>", 0, true))
	require.False(t, s.ParseString("<div ====>", 0, true))
	require.False(t, s.ParseString("<div a \x01>", 0, true))
}

func TestInvalidUTF8InAttributeNameFails(t *testing.T) {
	var s TagScanner

	// A lone 0xff is not valid UTF-8; it must not slip into the name via
	// the replacement rune.
	require.False(t, s.Parse([]byte("<div a\xffb=1>"), 0, true))
	require.False(t, s.Parse([]byte("<div \xff=1>"), 0, true))
	require.False(t, s.Parse([]byte("<div a\xff>"), 0, true))

	// A literal replacement rune is still a legitimate name character.
	require.True(t, s.ParseString("<div a�b=1>", 0, true))
	require.Equal(t, "1", s.Get("a�b"))
}

func TestParseAtOffsetWithinDocument(t *testing.T) {
	var s TagScanner

	doc := `<ul><li class="item">one</li><li class="item">two</li></ul>`

	first := strings.Index(doc, "<li")
	ok := s.ParseString(doc, first, true)
	require.True(t, ok)
	require.Equal(t, "li", s.Name())
	require.Equal(t, "item", s.Get("class"))

	second := strings.Index(doc[first+1:], "<li") + first + 1
	ok = s.ParseString(doc, second, true)
	require.True(t, ok)
	require.Equal(t, second, s.StartIndex())
	require.Equal(t, byte('>'), doc[s.StartIndex()+s.Length()-1])
}

func TestByteAndStringFormsAgree(t *testing.T) {
	var a, b TagScanner

	src := `<div class  =  'test' hidden data-x=1/>`
	require.True(t, a.ParseString(src, 0, true))
	require.True(t, b.Parse([]byte(src), 0, true))

	require.Equal(t, a.Name(), b.Name())
	require.Equal(t, a.Length(), b.Length())
	require.Equal(t, a.IsSelfClosed(), b.IsSelfClosed())
	require.Equal(t, a.Attributes(), b.Attributes())
}
