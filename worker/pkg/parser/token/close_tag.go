package token

// CloseTag is a `</name>` tag. Closing tags are not the tag scanner's
// concern, so the tokenizer unmarshals them here.
type CloseTag struct {
	Name string
}

func (t *CloseTag) unmarshalName(currReader *TokenCursorReader) {
	currReader.SetStart(currReader.Cursor().End)

loop:
	for {
		symbol := currReader.Byte()
		if currReader.Err != nil {
			break loop
		}

		switch symbol {
		case R_BRACKET, SPACE, NEW_LINE, C_RETURN, TAB, FORM_FEED:
			currReader.Backward()
			break loop
		}
	}

	t.Name = string(currReader.Data())
}

func (t *CloseTag) Unmarshal(data []byte) error {
	currReader := NewTokenCursorReader(data)

	if symbol := currReader.Byte(); symbol != L_BRACKET {
		return ErrMissingLeftBracket
	}

	if symbol := currReader.Byte(); symbol != SLASH {
		return ErrMissingSlash
	}

	t.unmarshalName(currReader)

	return currReader.Err
}
