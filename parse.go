package main

import "fmt"

// parser is a recursive descent parser over a token slice.
//
//	expr    = term ("+" term | "-" term)*
//	term    = factor ("*" factor | "/" factor)*
//	factor  = "(" expr ")" | num
type parser struct {
	tokens []Token
	pos    int // index of the current token
}

// parse parses a complete expression.
// The token stream must end right after it.
func parse(tokens []Token) (Expr, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != EOF {
		return nil, fmt.Errorf("parse: token stream not terminated by EOF")
	}
	p := &parser{tokens: tokens}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	if !p.atEOF() {
		return nil, p.errorf("expected end of input")
	}
	return e, nil
}

func (p *parser) tok() Token {
	return p.tokens[p.pos]
}

func (p *parser) next() {
	// EOF is never consumed
	if p.tok().Kind != EOF {
		p.pos++
	}
}

func (p *parser) atEOF() bool {
	return p.tok().Kind == EOF
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &SyntaxError{Pos: p.tok().Pos, Msg: fmt.Sprintf(format, args...)}
}

// consume advances past the current token if it is the punctuator op.
func (p *parser) consume(op byte) bool {
	if !p.tok().is(op) {
		return false
	}
	p.next()
	return true
}

// expect is like consume but a mismatch is an error.
func (p *parser) expect(op byte) error {
	if !p.consume(op) {
		return p.errorf("expected '%c'", op)
	}
	return nil
}

// expectNumber returns the value of the current token,
// which must be a number.
func (p *parser) expectNumber() (int64, error) {
	t := p.tok()
	if t.Kind != Num {
		return 0, p.errorf("expected a number")
	}
	p.next()
	return t.Val, nil
}

func (p *parser) expr() (Expr, error) {
	e, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		pos := p.tok().Pos
		var op BinOp
		switch {
		case p.consume('+'):
			op = Add
		case p.consume('-'):
			op = Sub
		default:
			return e, nil
		}
		r, err := p.term()
		if err != nil {
			return nil, err
		}
		e = &BinExpr{Op: op, Left: e, Right: r, Pos: pos}
	}
}

func (p *parser) term() (Expr, error) {
	e, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		pos := p.tok().Pos
		var op BinOp
		switch {
		case p.consume('*'):
			op = Mul
		case p.consume('/'):
			op = Div
		default:
			return e, nil
		}
		r, err := p.factor()
		if err != nil {
			return nil, err
		}
		e = &BinExpr{Op: op, Left: e, Right: r, Pos: pos}
	}
}

func (p *parser) factor() (Expr, error) {
	if p.consume('(') {
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return e, nil
	}
	pos := p.tok().Pos
	n, err := p.expectNumber()
	if err != nil {
		return nil, err
	}
	return &IntExpr{Value: n, Pos: pos}, nil
}
