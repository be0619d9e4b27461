package ast

import (
	"fmt"
	"strings"
)

// Encode transforms a node back into expression text.
func Encode(n *Node) string {
	if n == nil {
		return ""
	}
	switch n.Type() {
	case NodeTypeInt:
		return fmt.Sprintf("%d", n.Int())

	case NodeTypeFloat:
		return fmt.Sprintf("%v", n.Float())

	case NodeTypeString:
		return fmt.Sprintf("%q", n.Text())

	case NodeTypeSymbol:
		return n.Symbol()

	case NodeTypeExpression:
		nodes := []string{}
		for _, c := range n.List() {
			nodes = append(nodes, Encode(c))
		}
		return fmt.Sprintf("(%s)", strings.Join(nodes, " "))

	case NodeTypeDefine:
		v := n.DefineValue()
		if v.Type() == NodeTypeLambda {
			pattern := append([]string{n.DefineName()}, v.Params()...)
			return fmt.Sprintf("(define (%s) %s)", strings.Join(pattern, " "), Encode(v.Body()))
		}
		return fmt.Sprintf("(define %s %s)", n.DefineName(), Encode(v))

	case NodeTypeLambda:
		return fmt.Sprintf("((%s) %s)", strings.Join(n.Params(), " "), Encode(n.Body()))

	default:
		panic("unknown node type")
	}
}
