package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// A UsageError means the compiler was invoked wrong.
// It is reported before any source is looked at.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// A LexicalError is an unrecognized character (or an unrepresentable
// literal) at byte offset Pos of the source.
type LexicalError struct {
	Pos int
	Msg string
}

func (e *LexicalError) Error() string { return fmt.Sprintf("%d: %s", e.Pos, e.Msg) }
func (e *LexicalError) Offset() int   { return e.Pos }
func (e *LexicalError) message() string {
	return e.Msg
}

// A SyntaxError is a grammar violation at byte offset Pos.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string { return fmt.Sprintf("%d: %s", e.Pos, e.Msg) }
func (e *SyntaxError) Offset() int   { return e.Pos }
func (e *SyntaxError) message() string {
	return e.Msg
}

// positioned is implemented by errors which point at a place in the source.
type positioned interface {
	error
	Offset() int
	message() string
}

// reportError writes err to w.
// Positioned errors get the source line and a caret under the offending byte:
//
//	1+a
//	  ^ invalid token
func reportError(w io.Writer, src string, err error) {
	var p positioned
	if errors.As(err, &p) {
		line, pad := sourceLine(src, p.Offset())
		fmt.Fprintln(w, line)
		fmt.Fprintf(w, "%s^ %s\n", pad, p.message())
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}

// sourceLine returns the line of src containing off
// and the padding that puts a caret under off.
// Tabs are kept in the padding so the caret lines up in a terminal.
func sourceLine(src string, off int) (line, pad string) {
	if off < 0 {
		off = 0
	}
	if off > len(src) {
		off = len(src)
	}
	start := strings.LastIndexByte(src[:off], '\n') + 1
	end := len(src)
	if i := strings.IndexByte(src[off:], '\n'); i >= 0 {
		end = off + i
	}
	var b strings.Builder
	for i := start; i < off; i++ {
		if src[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return src[start:end], b.String()
}
