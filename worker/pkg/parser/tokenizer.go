package parser

import (
	"io"

	"github.com/okhrin/meta-tracker/pkg/tagscan"
	"github.com/okhrin/meta-tracker/worker/pkg/parser/token"
)

// Tokenizer streams a document and slices it into open-tag, close-tag, text
// and comment tokens. It only locates tag boundaries; every isolated
// `<name ...>` span is handed to one reused tagscan.TagScanner, which owns
// the opening-tag grammar.
type Tokenizer struct {
	source io.Reader
	buf    []byte
	Err    error

	reader token.Cursor
	data   token.Cursor
	tt     TokenType
	state  TokenizerState

	scanner tagscan.TagScanner
}

func NewTokenizer(reader io.Reader) *Tokenizer {
	return &Tokenizer{
		source: reader,
		buf:    make([]byte, 0, 24),
	}
}

// growBuffer returns a buffer holding the unread window, doubling the
// capacity when the window no longer fits.
func (tok *Tokenizer) growBuffer() ([]byte, int) {
	capacity := cap(tok.buf)
	numElems := tok.reader.End - tok.reader.Start

	var buf []byte
	if 2*numElems > capacity {
		buf = make([]byte, numElems, 2*capacity)
	} else {
		buf = tok.buf[:numElems]
	}

	copy(buf, tok.buf[tok.reader.Start:tok.reader.End])

	return buf, numElems
}

func (tok *Tokenizer) readByte() byte {
	if tok.reader.End >= len(tok.buf) {
		if tok.Err != nil {
			return 0
		}

		buf, numElems := tok.growBuffer()

		if x := tok.reader.Start; x != 0 {
			tok.data.Start -= x
			tok.data.End -= x
		}

		tok.reader.Start, tok.reader.End, tok.buf = 0, numElems, buf[:numElems]

		var n int
		n, tok.Err = tok.source.Read(buf[numElems:cap(buf)])
		if n == 0 {
			return 0
		}

		tok.buf = buf[:numElems+n]
	}

	b := tok.buf[tok.reader.End]
	tok.reader.End++
	return b
}

// tagSpan reads up to and including the closing `>`. On entry the reader
// sits right past `<` and the first inner character, so the data cursor is
// rewound to cover the whole `<...>` span.
func (tok *Tokenizer) tagSpan() {
	tok.data.Start = tok.reader.End - 2
	tok.data.End = tok.reader.End

	for {
		symbol := tok.readByte()
		if tok.Err != nil {
			return
		}

		if symbol == token.R_BRACKET {
			tok.data.End = tok.reader.End
			return
		}
	}
}

func (tok *Tokenizer) readUntilCloseBracket() {
	tok.data.Start = tok.reader.End
	for {
		symbol := tok.readByte()
		if tok.Err != nil {
			tok.data.End = tok.reader.End
			return
		}

		if symbol == token.R_BRACKET {
			tok.data.End = tok.reader.End
			return
		}
	}
}

// Next returns the next token: a token.OpenTag, token.CloseTag, token.Text
// or token.Comment value, or a TokenType for the skip and error cases.
func (tok *Tokenizer) Next() any {
	tok.reader.Start = tok.reader.End
	tok.data.Start = tok.reader.End
	tok.data.End = tok.reader.End
	if tok.Err != nil {
		tok.tt = ERROR_TOKEN
		return tok.tt
	}

	for {
		symbol := tok.readByte()
		if tok.Err != nil {
			break
		}

		if symbol != token.L_BRACKET {
			continue
		}

		// Read ahead: `</` must become a close tag.
		symbol = tok.readByte()
		if tok.Err != nil {
			break
		}

		var tokenType TokenType

		switch {
		case 'a' <= symbol && symbol <= 'z' || 'A' <= symbol && symbol <= 'Z':
			tokenType = OPEN_TAG_TOKEN
		case symbol == token.SLASH:
			tokenType = CLOSE_TAG_TOKEN
		case symbol == '!' || symbol == '?':
			tokenType = COMMENT_TOKEN
			tok.reader.End = tok.reader.End - 2
		default:
			tok.reader.End--
			continue
		}

		// Pending character data before this tag is its own token.
		if x := tok.reader.End - 2; tok.reader.Start < x && tokenType != COMMENT_TOKEN {
			tok.reader.End = x
			tok.data.End = x

			tok.tt = TEXT_TOKEN
			return token.Text{Data: tok.buf[tok.data.Start:tok.data.End]}
		}

		switch tokenType {
		case COMMENT_TOKEN:
			tok.readUntilCloseBracket()
			tok.tt = COMMENT_TOKEN
			return token.Comment{Data: tok.buf[tok.data.Start:tok.data.End]}

		case OPEN_TAG_TOKEN:
			if tok.state != NORMAL {
				tok.tt = SKIP_TOKEN
				return tok.tt
			}

			tok.tagSpan()

			span := tok.buf[tok.data.Start:tok.data.End]
			if !tok.scanner.Parse(span, 0, false) {
				tok.tt = SKIP_TOKEN
				return tok.tt
			}

			tag := token.NewOpenTag(&tok.scanner)

			if Lexeme(tag.Name) == SCRIPT && !tag.SelfClosed {
				tok.state = SCRIPT_CONTENT
			}

			tok.tt = OPEN_TAG_TOKEN
			return tag

		case CLOSE_TAG_TOKEN:
			tok.tagSpan()
			if tok.Err != nil {
				tok.tt = ERROR_TOKEN
				return tok.tt
			}

			span := tok.buf[tok.data.Start:tok.data.End]

			tag := token.CloseTag{}
			if err := tag.Unmarshal(span); err != nil {
				tok.tt = SKIP_TOKEN
				return tok.tt
			}

			tok.state = NORMAL
			tok.tt = CLOSE_TAG_TOKEN
			return tag
		}
	}

	tok.tt = ERROR_TOKEN
	return tok.tt
}
