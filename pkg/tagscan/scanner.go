// Package tagscan parses a single HTML opening tag out of a larger buffer.
//
// A TagScanner is positioned at a known `<` and produces the tag name, the
// attribute set and exact positional metadata. It is meant to be driven by an
// external walker that locates tag boundaries in a document; it does not
// iterate tags itself, does not handle closing tags and does not decode HTML
// entities. Browser-tolerated ugliness (whitespace around `=`, unquoted
// values, boolean attributes, mixed quotes) is accepted.
package tagscan

import (
	"fmt"
	"unicode/utf8"

	"github.com/okhrin/meta-tracker/pkg/xmlnames"
)

// TagScanner is a reusable opening-tag parser. Every Parse call fully resets
// the result state, so one instance can scan any number of tags, from the
// same buffer or from different ones. An instance must not be shared between
// goroutines during a Parse call.
type TagScanner struct {
	buf []byte

	name  string
	attrs map[string]Attribute

	startIndex  int
	length      int
	innerStart  int
	innerLength int
	selfClosed  bool

	// cursor and effective window of the current scan. windowEnd is the
	// index of the last character between `<` and `>`, excluding a
	// trailing self-closing slash.
	pos       int
	windowEnd int

	// attrNameStart marks where the attribute name under scan begins; the
	// cursor moves past it during the `=` lookahead.
	attrNameStart int
}

// valueDelim tags how an attribute value is terminated: by a matching quote
// character or by whitespace/window end.
type valueDelim struct {
	quoted bool
	char   byte
}

// Name returns the tag name of the last successful parse.
func (s *TagScanner) Name() string { return s.name }

// StartIndex returns the offset of the opening `<` in the source buffer.
func (s *TagScanner) StartIndex() int { return s.startIndex }

// Length returns the total span of the tag including `<`, `>` and, for
// self-closing tags, the `/`. StartIndex()+Length()-1 always indexes the
// closing `>`.
func (s *TagScanner) Length() int { return s.length }

// IsSelfClosed reports whether the tag ends in `/>`.
func (s *TagScanner) IsSelfClosed() bool { return s.selfClosed }

// InnerStart returns the offset of the first character after `<`.
func (s *TagScanner) InnerStart() int { return s.innerStart }

// InnerLength returns the length of the span strictly between `<` and the
// closing delimiters. At least 1 after any successful parse.
func (s *TagScanner) InnerLength() int { return s.innerLength }

// ParseString behaves exactly like Parse over the bytes of src.
func (s *TagScanner) ParseString(src string, startIndex int, findClosing bool) bool {
	return s.Parse([]byte(src), startIndex, findClosing)
}

// Parse scans one opening tag from buf at startIndex, which must be the
// index of the `<`. When findClosing is true the closing `>` is searched
// for; when false the caller asserts the buffer's last character is the
// closing `>`.
//
// Parse returns false on malformed input and leaves the result state
// unspecified; callers must not read it then. The instance stays reusable
// either way. A nil buffer or an out-of-range startIndex is a programmer
// error and panics.
func (s *TagScanner) Parse(buf []byte, startIndex int, findClosing bool) bool {
	if buf == nil {
		panic("tagscan: Parse called with nil buffer")
	}
	if startIndex < 0 || startIndex >= len(buf) {
		panic(fmt.Sprintf("tagscan: start index %d out of range [0:%d]", startIndex, len(buf)))
	}

	s.buf = buf
	s.name = ""
	s.attrs = nil

	if !s.initBoundaries(startIndex, findClosing) {
		return false
	}
	if !s.scanName() {
		return false
	}
	return s.scanAttributes()
}

// initBoundaries validates the tag span and establishes the scan window.
func (s *TagScanner) initBoundaries(startIndex int, findClosing bool) bool {
	if len(s.buf)-startIndex < 3 {
		return false
	}
	if s.buf[startIndex] != '<' {
		return false
	}

	end := len(s.buf) - 1
	if findClosing {
		end = -1
		for i := startIndex + 1; i < len(s.buf); i++ {
			if s.buf[i] == '>' {
				end = i
				break
			}
		}
		if end < 0 {
			return false
		}
	}
	if end-startIndex < 2 || s.buf[end] != '>' {
		return false
	}

	s.startIndex = startIndex
	s.length = end - startIndex + 1
	s.innerStart = startIndex + 1
	s.selfClosed = s.buf[end-1] == '/'

	s.windowEnd = end - 1
	if s.selfClosed {
		s.windowEnd = end - 2
	}
	s.innerLength = s.windowEnd - s.innerStart + 1
	s.pos = s.innerStart

	return s.innerLength >= 1
}

// scanName consumes the tag name up to whitespace or the window end and
// validates it. Anything that is not whitespace ends up inside the name
// candidate, so `<div/class>` style garbage fails validation here.
func (s *TagScanner) scanName() bool {
	start := s.pos
	for s.pos <= s.windowEnd && !isWhitespace(s.buf[s.pos]) {
		s.pos++
	}
	name := s.buf[start:s.pos]
	if len(name) == 0 {
		return false
	}
	if !isValidTagName(name) {
		return false
	}
	s.name = string(name)
	return true
}

// isValidTagName accepts plain ASCII names on the fast path and defers
// anything else (colons, Unicode letters) to the XML name check.
func isValidTagName(name []byte) bool {
	if isASCIILetter(name[0]) {
		ok := true
		for _, c := range name[1:] {
			if !isASCIIAlnum(c) && c != '-' && c != '_' {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return xmlnames.IsValidName(string(name))
}

// scanAttributes runs the attribute loop from the cursor to the window end.
// Each iteration either consumes whitespace plus one attribute or fails,
// which keeps the loop terminating on any input.
func (s *TagScanner) scanAttributes() bool {
	for s.pos <= s.windowEnd {
		s.skipWhitespace()
		if s.pos > s.windowEnd {
			break
		}

		nameEnd, hasValue, ok := s.scanAttributeName()
		if !ok {
			return false
		}

		name := s.buf[s.attrNameStart:nameEnd]
		if len(name) == 0 {
			return false
		}
		if !isValidAttributeStart(name) {
			return false
		}

		if !hasValue {
			s.putAttribute(string(name), Attribute{})
			continue
		}

		attr, ok := s.scanAttributeValue()
		if !ok {
			return false
		}
		s.putAttribute(string(name), attr)
	}
	return true
}

// scanAttributeName consumes an attribute-name candidate and decides
// whether the attribute carries a value. The name spans
// [attrNameStart, nameEnd).
func (s *TagScanner) scanAttributeName() (nameEnd int, hasValue bool, ok bool) {
	s.attrNameStart = s.pos

	for s.pos <= s.windowEnd {
		c := s.buf[s.pos]
		switch {
		case isASCIIAlnum(c) || c == '-':
			s.pos++
		case c == '=':
			return s.pos, true, true
		case isWhitespace(c):
			nameEnd = s.pos
			// Whitespace before `=` is tolerated: peek past the run.
			// Without a `=` this is a boolean attribute and the cursor
			// stays on the whitespace that ended the name.
			probe := s.pos + 1
			for probe <= s.windowEnd && isWhitespace(s.buf[probe]) {
				probe++
			}
			if probe <= s.windowEnd && s.buf[probe] == '=' {
				s.pos = probe
				return nameEnd, true, true
			}
			return nameEnd, false, true
		default:
			// Stricter than the final name check: any byte outside the
			// cheap ASCII set must be a valid XML name character. A bare
			// invalid byte decodes to RuneError with size 1, which sits in
			// a range IsNameChar accepts, so it needs its own rejection.
			r, size := utf8.DecodeRune(s.buf[s.pos : s.windowEnd+1])
			if r == utf8.RuneError && size == 1 {
				return 0, false, false
			}
			if !xmlnames.IsNameChar(r) {
				return 0, false, false
			}
			s.pos += size
		}
	}
	// Window exhausted mid-name: boolean attribute.
	return s.pos, false, true
}

// scanAttributeValue resolves the value after `=`. The cursor sits on the
// `=` on entry.
func (s *TagScanner) scanAttributeValue() (Attribute, bool) {
	s.pos++

	skippedWhitespace := false
	for s.pos <= s.windowEnd && isWhitespace(s.buf[s.pos]) {
		s.pos++
		skippedWhitespace = true
	}

	// `attr=` with nothing left in the window is a boolean attribute,
	// same as `attr= >` and `attr=/>`.
	if s.pos > s.windowEnd {
		return Attribute{}, true
	}

	delim := resolveDelim(s.buf[s.pos])
	if delim.quoted {
		s.pos++
		start := s.pos
		closing := -1
		for i := s.pos; i <= s.windowEnd; i++ {
			if s.buf[i] == delim.char {
				closing = i
				break
			}
		}
		if closing < 0 {
			return Attribute{}, false
		}
		s.pos = closing + 1
		return Attribute{Value: string(s.buf[start:closing]), HasValue: true}, true
	}

	if skippedWhitespace {
		// `attr= value` without quotes: ugly but browser-tolerated,
		// treated as a boolean attribute. The cursor stays put so the
		// following run is scanned as the next attribute.
		return Attribute{}, true
	}

	start := s.pos
	for s.pos <= s.windowEnd && !isWhitespace(s.buf[s.pos]) {
		s.pos++
	}
	return Attribute{Value: string(s.buf[start:s.pos]), HasValue: true}, true
}

func resolveDelim(c byte) valueDelim {
	if c == '"' || c == '\'' {
		return valueDelim{quoted: true, char: c}
	}
	return valueDelim{}
}

// isValidAttributeStart checks the first character of an attribute name:
// an ASCII letter or an XML name-start character.
func isValidAttributeStart(name []byte) bool {
	if isASCIILetter(name[0]) {
		return true
	}
	r, _ := utf8.DecodeRune(name)
	return xmlnames.IsNameStartChar(r)
}

func (s *TagScanner) skipWhitespace() {
	for s.pos <= s.windowEnd && isWhitespace(s.buf[s.pos]) {
		s.pos++
	}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isASCIILetter(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

func isASCIIAlnum(c byte) bool {
	return isASCIILetter(c) || '0' <= c && c <= '9'
}
