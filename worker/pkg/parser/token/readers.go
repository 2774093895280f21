package token

// TokenCursorReader walks a token span byte by byte, tracking the data
// cursor of the value being unmarshalled.
type TokenCursorReader struct {
	data   []byte
	cursor Cursor
	Err    error
}

func NewTokenCursorReader(data []byte) *TokenCursorReader {
	return &TokenCursorReader{data: data}
}

func (r *TokenCursorReader) Byte() TerminalSymbol {
	if r.cursor.End >= len(r.data) {
		r.Err = ErrCursorEnd
		return 0
	}

	symbol := r.data[r.cursor.End]
	r.cursor.End++
	return symbol
}

func (r *TokenCursorReader) Backward() {
	r.cursor.End--
}

func (r *TokenCursorReader) Data() []byte {
	return r.data[r.cursor.Start:r.cursor.End]
}

func (r *TokenCursorReader) Len() int {
	return len(r.data)
}

func (r *TokenCursorReader) Cursor() Cursor {
	return r.cursor
}

func (r *TokenCursorReader) SetStart(n int) {
	r.cursor.Start = n
}

func (r *TokenCursorReader) SetEnd(n int) {
	r.cursor.End = n
}
