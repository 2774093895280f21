package parser

import (
	"github.com/okhrin/meta-tracker/worker/pkg/parser/token"
)

type TokenType uint8

const (
	ERROR_TOKEN TokenType = iota
	SKIP_TOKEN
	TEXT_TOKEN
	OPEN_TAG_TOKEN
	CLOSE_TAG_TOKEN
	COMMENT_TOKEN
)

type TokenizerState uint8

const (
	NORMAL TokenizerState = iota
	SCRIPT_CONTENT
)

type Lexeme string

const (
	SCRIPT Lexeme = "script"
)

type NodeType string

const (
	CLOSE_NODE NodeType = "CLOSE_NODE"
	OPEN_NODE  NodeType = "OPEN_NODE"
	TEXT_NODE  NodeType = "TEXT_NODE"
)

// Node is a flattened tree element. Children and following siblings are
// linked through Next, in document order.
type Node struct {
	Name    string
	Type    NodeType
	Tag     token.OpenTag
	Content string

	Next *Node
}

// Selector reacts to the token stream and decides which subtrees to keep.
type Selector interface {
	OnOpen(Node)
	OnClose(Node)
	GetPendingNode() *Node
}
