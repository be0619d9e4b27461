package ast

import (
	"errors"
	"fmt"
)

// Node represents one parsed expression form
type Node struct {
	nt NodeType
	v  interface{}
}

type defineForm struct {
	name  string
	value *Node
}

type lambdaForm struct {
	params []string
	body   *Node
}

func newNode(nt NodeType, v interface{}) *Node {
	return &Node{
		nt: nt,
		v:  v,
	}
}

// NewInt creates and returns a node holding an integer literal
func NewInt(v int64) *Node {
	return newNode(NodeTypeInt, v)
}

// NewFloat creates and returns a node holding a float literal
func NewFloat(v float64) *Node {
	return newNode(NodeTypeFloat, v)
}

// NewString creates and returns a node holding the unquoted contents of a
// string literal
func NewString(v string) *Node {
	return newNode(NodeTypeString, v)
}

// NewSymbol creates and returns a node holding a name reference
func NewSymbol(v string) *Node {
	return newNode(NodeTypeSymbol, v)
}

// NewExpression creates and returns an empty node of type "expression"
func NewExpression() *Node {
	return newNode(NodeTypeExpression, []*Node{})
}

// NewDefine creates and returns a binding form for the given name
func NewDefine(name string, value *Node) *Node {
	return newNode(NodeTypeDefine, defineForm{name: name, value: value})
}

// NewLambda creates and returns a function form with an unevaluated body
func NewLambda(params []string, body *Node) *Node {
	return newNode(NodeTypeLambda, lambdaForm{params: params, body: body})
}

// Push appends a child node to a node of type "expression"
func (n *Node) Push(node *Node) error {
	if n.nt != NodeTypeExpression {
		return errors.New("nodes of type value can't accept children")
	}
	n.v = append(n.v.([]*Node), node)
	return nil
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// Int returns the integer value of the node
func (n Node) Int() int64 {
	return n.v.(int64)
}

// Float returns the float value of the node
func (n Node) Float() float64 {
	return n.v.(float64)
}

// Text returns the string contents of the node
func (n Node) Text() string {
	return n.v.(string)
}

// Symbol returns the name the node refers to
func (n Node) Symbol() string {
	return n.v.(string)
}

// List returns all the children elements of an expression node
func (n Node) List() []*Node {
	return n.v.([]*Node)
}

// DefineName returns the name a define form binds
func (n Node) DefineName() string {
	return n.v.(defineForm).name
}

// DefineValue returns the form a define form binds its name to
func (n Node) DefineValue() *Node {
	return n.v.(defineForm).value
}

// Params returns the parameter names of a lambda form in order
func (n Node) Params() []string {
	return n.v.(lambdaForm).params
}

// Body returns the unevaluated body of a lambda form
func (n Node) Body() *Node {
	return n.v.(lambdaForm).body
}

// IsValue returns true if the node is of type value
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsForm returns true if the node is a compound form
func (n *Node) IsForm() bool {
	return n.nt&nodeTypeForm > 0
}

func (n Node) String() string {
	switch n.nt {
	case NodeTypeExpression:
		return fmt.Sprintf("(%v)[%d]", n.nt, len(n.List()))
	case NodeTypeDefine:
		return fmt.Sprintf("(%v): %s", n.nt, n.DefineName())
	case NodeTypeLambda:
		return fmt.Sprintf("(%v)[%d]", n.nt, len(n.Params()))
	}
	return fmt.Sprintf("(%v): %v", n.nt, n.v)
}
