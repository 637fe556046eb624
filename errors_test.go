package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportError(t *testing.T) {
	tests := []struct {
		src  string
		err  error
		want string
	}{
		{"1+a", &LexicalError{Pos: 2, Msg: "invalid token"}, "1+a\n  ^ invalid token\n"},
		{"(1+2", &SyntaxError{Pos: 4, Msg: "expected ')'"}, "(1+2\n    ^ expected ')'\n"},
		{"*", &SyntaxError{Pos: 0, Msg: "expected a number"}, "*\n^ expected a number\n"},
		// wrapped errors keep their position
		{"1+", fmt.Errorf("compiling: %w", &SyntaxError{Pos: 2, Msg: "expected a number"}), "1+\n  ^ expected a number\n"},
		{"", &UsageError{Msg: "too many positional arguments"}, "error: too many positional arguments\n"},
		{"1", errors.New("boom"), "error: boom\n"},
		// tabs are kept so the caret lines up
		{"\t1+a", &LexicalError{Pos: 3, Msg: "invalid token"}, "\t1+a\n\t  ^ invalid token\n"},
		{"1 +\t\t2 $", &LexicalError{Pos: 7, Msg: "invalid token"}, "1 +\t\t2 $\n   \t\t  ^ invalid token\n"},
		// only the line holding the offset is shown
		{"1+\n2\n*a", &LexicalError{Pos: 6, Msg: "invalid token"}, "*a\n ^ invalid token\n"},
		{"1+\n(2", &SyntaxError{Pos: 5, Msg: "expected ')'"}, "(2\n  ^ expected ')'\n"},
		{"(1\n+2", &SyntaxError{Pos: 1, Msg: "expected a number"}, "(1\n ^ expected a number\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		reportError(&buf, tt.src, tt.err)
		assert.Equal(t, tt.want, buf.String())
	}
}
