package parser

import "sync"

// TreeBuilder collects the subtree under a selected node. Nodes are pushed
// as their open tags arrive; when the close tag of the subtree root comes
// back around, the finished tree is handed to the completion callback.
type TreeBuilder struct {
	openCounts     map[string]int
	rootNode       *Node
	nodes          []*Node
	nodesMu        sync.Mutex
	autoCloseLost  bool
	onTreeComplete func(*Node)
}

func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{
		openCounts:    make(map[string]int),
		nodes:         make([]*Node, 0),
		autoCloseLost: true,
	}
}

func (t *TreeBuilder) OnTreeComplete(fn func(*Node)) {
	t.onTreeComplete = fn
}

// IsBuilding reports whether a subtree root has been selected and not yet
// closed.
func (t *TreeBuilder) IsBuilding() bool {
	return t.rootNode != nil
}

func (t *TreeBuilder) AppendOpenTag(node Node) {
	t.nodesMu.Lock()
	defer t.nodesMu.Unlock()

	t.openCounts[node.Name]++
	t.nodes = append(t.nodes, &node)

	if t.rootNode == nil {
		t.rootNode = &node
	}
}

func (t *TreeBuilder) popNode() *Node {
	if len(t.nodes) == 0 {
		return nil
	}
	node := t.nodes[len(t.nodes)-1]
	t.nodes = t.nodes[:len(t.nodes)-1]
	return node
}

func (t *TreeBuilder) PendingNode() *Node {
	if len(t.nodes) > 0 {
		return t.nodes[len(t.nodes)-1]
	}
	return nil
}

// CloseTag pops until the node matching closingNode is found. Nodes without
// a closing tag of their own (void elements, lost tags in sloppy markup) are
// relinked as following siblings instead of being dropped.
func (t *TreeBuilder) CloseTag(closingNode Node) {
	t.nodesMu.Lock()
	defer t.nodesMu.Unlock()

	count, tracked := t.openCounts[closingNode.Name]
	if !tracked {
		return
	}

	if count <= 1 {
		delete(t.openCounts, closingNode.Name)
	} else {
		t.openCounts[closingNode.Name] = count - 1
	}

	targetNode := t.popNode()
	if targetNode == nil {
		return
	}

	for len(t.nodes) > 0 && targetNode.Name != closingNode.Name {
		lostNode := targetNode

		targetNode = t.popNode()

		if t.autoCloseLost {
			LastChildOfNode(targetNode).Next = lostNode
		}

		if targetNode.Name == closingNode.Name {
			break
		}
	}

	if targetNode.Name == closingNode.Name {
		if parentNode := t.PendingNode(); parentNode != nil {
			LastChildOfNode(parentNode).Next = targetNode
		}
	}

	if t.rootNode == targetNode && t.onTreeComplete != nil {
		t.onTreeComplete(t.rootNode)
	}
}

// Free drops the collected tree so the next selected node starts fresh.
func (t *TreeBuilder) Free() {
	t.rootNode = nil
	t.nodes = make([]*Node, 0)
	t.openCounts = make(map[string]int)
}
