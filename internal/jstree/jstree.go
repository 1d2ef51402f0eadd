// Package jstree provides small helpers for parsing and navigating
// javascript syntax trees shared by the collect and wrap packages.
package jstree

import (
	"fmt"

	"vimagination.zapto.org/javascript"
	"vimagination.zapto.org/javascript/walk"
	"vimagination.zapto.org/parser"
)

// ParseScript parses source text as a script-level program.
func ParseScript(source string) (*javascript.Script, error) {
	tk := parser.NewStringTokeniser(source)

	return javascript.ParseScript(&tk)
}

// ParseExpression parses a single expression and returns its outermost
// assignment expression.
func ParseExpression(source string) (*javascript.AssignmentExpression, error) {
	s, err := ParseScript(source)
	if err != nil {
		return nil, err
	}

	if len(s.StatementList) != 1 {
		return nil, fmt.Errorf("expected one statement, got %d", len(s.StatementList))
	}

	st := s.StatementList[0].Statement
	if st == nil || st.ExpressionStatement == nil || len(st.ExpressionStatement.Expressions) != 1 {
		return nil, fmt.Errorf("expected a single expression statement")
	}

	return &st.ExpressionStatement.Expressions[0], nil
}

// Print renders a syntax tree back to source text.
func Print(tree *javascript.Script) string {
	return fmt.Sprintf("%s", tree)
}

// FirstFunction returns the first function expression or declaration found
// in tree, or nil when none exists.
func FirstFunction(tree javascript.Type) *javascript.FunctionDeclaration {
	f := &funcFinder{}
	walk.Walk(tree, f)

	return f.found
}

type funcFinder struct {
	found *javascript.FunctionDeclaration
}

func (f *funcFinder) Handle(t javascript.Type) error {
	if f.found != nil {
		return nil
	}
	if fd, ok := t.(*javascript.FunctionDeclaration); ok {
		f.found = fd
		return nil
	}

	return walk.Walk(t, f)
}
