package xmlnames

import "unicode/utf8"

// Character classes follow the XML 1.0 Name productions.
// https://www.w3.org/TR/xml/#NT-Name

// IsNameStartChar reports whether r may begin an XML name.
func IsNameStartChar(r rune) bool {
	switch {
	case r == ':' || r == '_':
		return true
	case 'A' <= r && r <= 'Z', 'a' <= r && r <= 'z':
		return true
	case 0xC0 <= r && r <= 0xD6, 0xD8 <= r && r <= 0xF6:
		return true
	case 0xF8 <= r && r <= 0x2FF, 0x370 <= r && r <= 0x37D:
		return true
	case 0x37F <= r && r <= 0x1FFF, 0x200C <= r && r <= 0x200D:
		return true
	case 0x2070 <= r && r <= 0x218F, 0x2C00 <= r && r <= 0x2FEF:
		return true
	case 0x3001 <= r && r <= 0xD7FF, 0xF900 <= r && r <= 0xFDCF:
		return true
	case 0xFDF0 <= r && r <= 0xFFFD, 0x10000 <= r && r <= 0xEFFFF:
		return true
	}
	return false
}

// IsNameChar reports whether r may appear after the first character of an
// XML name.
func IsNameChar(r rune) bool {
	if IsNameStartChar(r) {
		return true
	}
	switch {
	case r == '-' || r == '.' || r == 0xB7:
		return true
	case '0' <= r && r <= '9':
		return true
	case 0x300 <= r && r <= 0x36F, 0x203F <= r && r <= 0x2040:
		return true
	}
	return false
}

// IsValidName reports whether text is a well-formed XML name.
func IsValidName(text string) bool {
	if text == "" {
		return false
	}
	for i, width := 0, 0; i < len(text); i += width {
		var r rune
		r, width = utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && width == 1 {
			return false
		}
		if i == 0 {
			if !IsNameStartChar(r) {
				return false
			}
			continue
		}
		if !IsNameChar(r) {
			return false
		}
	}
	return true
}
