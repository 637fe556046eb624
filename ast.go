package main

// An Expr is a node of the expression tree:
// either a *BinExpr or an *IntExpr.
type Expr interface {
	expr()
}

type BinExpr struct {
	Op    BinOp
	Left  Expr
	Right Expr
	Pos   int // offset of the operator
}

type IntExpr struct {
	Value int64
	Pos   int
}

func (*BinExpr) expr() {}
func (*IntExpr) expr() {}

type BinOp int

const (
	_ BinOp = iota

	Add // +
	Sub // -
	Mul // *
	Div // /
)

var binOpNames = [...]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
}

func (op BinOp) String() string {
	if op <= 0 || int(op) >= len(binOpNames) {
		return "?"
	}
	return binOpNames[op]
}

// precedence of each operator; higher binds tighter
var binOpPrec = map[BinOp]int{
	Add: 1,
	Sub: 1,
	Mul: 2,
	Div: 2,
}
