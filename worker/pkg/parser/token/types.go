package token

import "errors"

// A tag is a sequence of terminal symbols between the brackets.
// `<` is a terminal symbol, `<a>` is a lexeme.

type Cursor struct {
	Start, End int
}

type TerminalSymbol = byte

const (
	L_BRACKET    TerminalSymbol = '<'
	R_BRACKET    TerminalSymbol = '>'
	SLASH        TerminalSymbol = '/'
	SPACE        TerminalSymbol = ' '
	NEW_LINE     TerminalSymbol = '\n'
	C_RETURN     TerminalSymbol = '\r'
	TAB          TerminalSymbol = '\t'
	FORM_FEED    TerminalSymbol = '\f'
	EQUALS       TerminalSymbol = '='
	SINGLE_QUOTE TerminalSymbol = '\''
	DOUBLE_QUOTE TerminalSymbol = '"'
)

var (
	ErrMissingLeftBracket = errors.New("missing left bracket")
	ErrMissingSlash       = errors.New("missing slash")
	ErrCursorEnd          = errors.New("end of cursor")
)

// Text is the character data between two tags.
type Text struct {
	Data []byte
}

// Comment is a `<!...>` or `<?...>` construct, doctype included.
type Comment struct {
	Data []byte
}
