package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type TokenKind int

const (
	_ TokenKind = iota

	Punct // punctuators: + - * / ( ) and any other ascii punctuation
	Num   // integer literals
	EOF   // end of input
)

func (k TokenKind) String() string {
	switch k {
	case Punct:
		return "Punct"
	case Num:
		return "Num"
	case EOF:
		return "EOF"
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

type Token struct {
	Kind TokenKind
	Val  int64  // if Kind is Num, its value
	Pos  int    // byte offset in the source
	Text string // the source bytes of the token; empty for EOF
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%s %q @%d", t.Kind, t.Text, t.Pos)
}

// is reports whether t is the punctuator op.
func (t Token) is(op byte) bool {
	return t.Kind == Punct && t.Text[0] == op
}

// lexer splits a source string into tokens.
// It never backtracks: each byte is looked at once.
type lexer struct {
	src    string
	pos    int
	tokens []Token
	err    error
}

func (l *lexer) Init(src string) {
	l.src = src
	l.pos = 0
	l.tokens = l.tokens[:0]
	l.err = nil
}

func (l *lexer) Error(pos int, msg string) {
	if l.err == nil {
		l.err = &LexicalError{Pos: pos, Msg: msg}
	}
}

// Lex scans the next token and appends it.
// It returns false after EOF has been appended or an error was recorded.
func (l *lexer) Lex() bool {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.src) {
		l.emit(Token{Kind: EOF, Pos: l.pos})
		return false
	}
	c := l.src[l.pos]
	switch {
	case isPunct(c):
		l.emit(Token{Kind: Punct, Pos: l.pos, Text: l.src[l.pos : l.pos+1]})
		l.pos++
	case isDigit(c):
		start := l.pos
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
		text := l.src[start:l.pos]
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			l.Error(start, "integer literal out of range")
			return false
		}
		l.emit(Token{Kind: Num, Val: n, Pos: start, Text: text})
	default:
		l.Error(l.pos, "invalid token")
		return false
	}
	return true
}

func (l *lexer) emit(t Token) {
	l.tokens = append(l.tokens, t)
}

// tokenize returns the tokens of src, ending with exactly one EOF token.
func tokenize(src string) ([]Token, error) {
	var l lexer
	l.Init(src)
	for l.Lex() {
	}
	if l.err != nil {
		return nil, l.err
	}
	return l.tokens, nil
}

// tokenText concatenates the source text of tokens.
// For any src that lexes, it equals src with the whitespace removed.
func tokenText(tokens []Token) string {
	return strings.Join(lo.Map(tokens, func(t Token, _ int) string {
		return t.Text
	}), "")
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// isPunct matches the C locale's ispunct: printable ascii
// that is not a space, letter or digit.
func isPunct(c byte) bool {
	return '!' <= c && c <= '~' && !isDigit(c) && !isLetter(c)
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
