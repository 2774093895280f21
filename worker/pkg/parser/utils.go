package parser

import "strings"

// LastChildOfNode follows the Next chain to its end.
func LastChildOfNode(node *Node) *Node {
	parentNode := node
	for parentNode.Next != nil {
		parentNode = parentNode.Next
	}
	return parentNode
}

// ContainsClass reports whether any of the selectors occurs in the tag's
// class string.
func ContainsClass(classString string, classSelectors []string) bool {
	for _, selector := range classSelectors {
		if strings.Contains(classString, selector) {
			return true
		}
	}
	return false
}
