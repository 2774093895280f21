package token

import "bytes"

// NormalizeText strips line breaks and indentation runs from character
// data, which arrives with the page's source formatting.
func NormalizeText(source []byte) []byte {
	source = bytes.ReplaceAll(source, []byte("\r\n"), nil)
	source = bytes.ReplaceAll(source, []byte{'\n'}, nil)
	source = bytes.ReplaceAll(source, []byte{'\r'}, nil)
	source = bytes.ReplaceAll(source, []byte{'\t'}, nil)
	source = bytes.ReplaceAll(source, []byte("  "), nil)
	return source
}
