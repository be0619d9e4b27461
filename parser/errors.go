package parser

import (
	"errors"
)

var (
	ErrDefineArgs  = errors.New("the 'define' keyword takes two args")
	ErrInvalidName = errors.New("is not a valid variable name")
	ErrInvalidExpr = errors.New("invalid primitive expression")
)
