package selector

import "github.com/okhrin/meta-tracker/worker/pkg/parser"

// ClassSelector keeps the subtrees whose root node carries one of the
// configured classes. An empty class list keeps everything.
type ClassSelector struct {
	tree           *parser.TreeBuilder
	classes        []string
	treeCompleteFn func(*parser.Node)
}

func NewClassSelector(classes []string, treeCompleteFn func(node *parser.Node)) *ClassSelector {
	s := &ClassSelector{
		tree:           parser.NewTreeBuilder(),
		treeCompleteFn: treeCompleteFn,
		classes:        classes,
	}
	s.tree.OnTreeComplete(s.onTreeComplete)
	return s
}

func (s *ClassSelector) OnOpen(node parser.Node) {
	if s.tree.IsBuilding() {
		s.tree.AppendOpenTag(node)
		return
	}

	if len(s.classes) == 0 || parser.ContainsClass(node.Tag.Attr["class"], s.classes) {
		s.tree.AppendOpenTag(node)
	}
}

func (s *ClassSelector) OnClose(node parser.Node) {
	s.tree.CloseTag(node)
}

func (s *ClassSelector) GetPendingNode() *parser.Node {
	return s.tree.PendingNode()
}

func (s *ClassSelector) onTreeComplete(node *parser.Node) {
	s.tree.Free()
	s.treeCompleteFn(node)
}

var _ parser.Selector = (*ClassSelector)(nil)
