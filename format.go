package main

import (
	"bytes"
	"fmt"
	"strconv"
)

// format.go converts an expression tree back to source code,
// using as few parentheses as will parse back to the same tree

type formatter struct {
	buf bytes.Buffer
}

func formatExpr(expr Expr) string {
	var f formatter
	f.visitExpr(expr, 0)
	return f.buf.String()
}

// prec is the precedence the surrounding context requires;
// an operator binding less tightly must be wrapped in parens.
func (f *formatter) visitExpr(e Expr, prec int) {
	switch e := e.(type) {
	case *IntExpr:
		f.write(strconv.FormatInt(e.Value, 10))
	case *BinExpr:
		op := binOpPrec[e.Op]
		if op < prec {
			f.write("(")
		}
		f.visitExpr(e.Left, op)
		f.write(e.Op.String())
		// operators are left associative,
		// so a right operand at the same level needs parens
		f.visitExpr(e.Right, op+1)
		if op < prec {
			f.write(")")
		}
	default:
		panic(fmt.Sprintf("unhandled case in formatter.visitExpr: %T", e))
	}
}

func (f *formatter) write(s string) {
	f.buf.WriteString(s)
}
