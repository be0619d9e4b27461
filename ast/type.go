package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeValue NodeType = 128
	nodeTypeForm  NodeType = 256

	NodeTypeInt    = nodeTypeValue | 1
	NodeTypeFloat  = nodeTypeValue | 2
	NodeTypeString = nodeTypeValue | 4
	NodeTypeSymbol = nodeTypeValue | 8

	NodeTypeExpression = nodeTypeForm | 1
	NodeTypeDefine     = nodeTypeForm | 2
	NodeTypeLambda     = nodeTypeForm | 4
)

func (nt NodeType) String() string {
	if s, ok := nodeTypeName[nt]; ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeInt:        "int",
	NodeTypeFloat:      "float",
	NodeTypeString:     "string",
	NodeTypeSymbol:     "symbol",
	NodeTypeExpression: "expression",
	NodeTypeDefine:     "define",
	NodeTypeLambda:     "lambda",
}
