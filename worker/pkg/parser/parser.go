package parser

import (
	"io"

	"github.com/okhrin/meta-tracker/worker/pkg/parser/token"
)

// Parse walks the document and feeds every token to each selector. It
// returns when the tokenizer is exhausted; selectors fire their callbacks
// along the way.
func Parse(file io.Reader, selectors ...Selector) {
	tok := NewTokenizer(file)

	for {
		t := tok.Next()

		if tok.Err != nil {
			return
		}

		switch t := t.(type) {
		case token.OpenTag:
			node := Node{Name: t.Name, Type: OPEN_NODE, Tag: t}
			for _, selector := range selectors {
				selector.OnOpen(node)
			}

			// A self-closed tag never gets a closing counterpart, so it
			// is closed in place for tree bookkeeping.
			if t.SelfClosed {
				closing := Node{Name: t.Name, Type: CLOSE_NODE}
				for _, selector := range selectors {
					if selector.GetPendingNode() == nil {
						continue
					}
					selector.OnClose(closing)
				}
			}

		case token.CloseTag:
			node := Node{Name: t.Name, Type: CLOSE_NODE}
			for _, selector := range selectors {
				if selector.GetPendingNode() == nil {
					continue
				}
				selector.OnClose(node)
			}

		case token.Text:
			// A separate text node is more error resistant than gluing
			// the content onto the pending node.
			node := Node{
				Name:    string(TEXT_NODE),
				Type:    TEXT_NODE,
				Content: string(token.NormalizeText(t.Data)),
			}
			for _, selector := range selectors {
				if selector.GetPendingNode() == nil {
					continue
				}
				selector.OnOpen(node)
			}

		case token.Comment:
		}
	}
}
