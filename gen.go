package main

// gen converts an expression tree into a block of stack machine code.
// Every subtree leaves exactly one value pushed on the stack.
func gen(expr Expr) *asmBlock {
	b := &asmBlock{label: "main"}
	b.genExpr(expr)
	return b
}

func (b *asmBlock) emit(variant string, args ...asmArg) {
	b.code = append(b.code, mkinstr(variant, args...))
}

func (b *asmBlock) genExpr(expr Expr) {
	switch e := expr.(type) {
	case *IntExpr:
		b.emit("push", mkimm(e.Value))
	case *BinExpr:
		b.genExpr(e.Left)
		b.genExpr(e.Right)

		// right operand is on top
		b.emit("pop", rdi)
		b.emit("pop", rax)

		switch e.Op {
		case Add:
			b.emit("add", rax, rdi)
		case Sub:
			b.emit("sub", rax, rdi)
		case Mul:
			b.emit("imul", rax, rdi)
		case Div:
			// idiv divides rdx:rax, so sign-extend rax into rdx first
			b.emit("cqo")
			b.emit("idiv", rdi)
		default:
			fatalf("unhandled operator %v", e.Op)
		}

		b.emit("push", rax)
	default:
		fatalf("unhandled case: %T", e)
	}
}
