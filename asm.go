package main

import (
	"fmt"
	"io"
	"strconv"
)

// asm models the x86-64 instructions the code generator emits
// and prints them in intel syntax.

// reg::=rax|rdx|rdi
// arg::=int|reg
// instr::=push arg | pop reg | add reg,reg | sub reg,reg | imul reg,reg
//       | cqo | idiv reg | ret

type AsmPrinter struct {
	w io.Writer
}

// asmPrologue declares the block's label as the global entry point.
func asmPrologue(label asmLabel) string {
	return ".intel_syntax noprefix\n" +
		".global " + string(label) + "\n" +
		string(label) + ":\n"
}

// the result is on top of the stack; pop it into rax so it becomes the exit code
var asmEpilogue = []asmOp{
	mkinstr("pop", rax),
	mkinstr("ret"),
}

// ConvertBlock writes b as a complete assembly program.
func (pr *AsmPrinter) ConvertBlock(b *asmBlock) {
	io.WriteString(pr.w, asmPrologue(b.label))
	for _, l := range b.program() {
		pr.write("  " + l.asmInstr() + "\n")
	}
}

func (pr *AsmPrinter) write(s string) {
	io.WriteString(pr.w, s)
}

func (l *asmOp) asmInstr() string {
	if len(l.args) == 0 {
		return l.variant
	}
	// intel order: destination first
	s := l.variant + " " + l.args[0].String()
	for _, a := range l.args[1:] {
		s += ", " + a.String()
	}
	return s
}

func fatalf(s string, args ...interface{}) {
	msg := fmt.Sprintf(s, args...)
	panic("fatal compile error: " + msg)
}

// An asmBlock is the straight-line body of the entry function,
// not including the epilogue.
type asmBlock struct {
	label asmLabel
	code  []asmOp
}

// program returns the body followed by the epilogue.
func (b *asmBlock) program() []asmOp {
	p := make([]asmOp, 0, len(b.code)+len(asmEpilogue))
	p = append(p, b.code...)
	return append(p, asmEpilogue...)
}

// An asmOp represents an x86-64 assembly instruction
type asmOp struct {
	variant string
	args    []asmArg
}

type asmLabel string

// register or immediate
type asmArg struct {
	Reg string // rax, rdx, rdi
	Imm int64
}

var (
	rax = asmArg{Reg: "rax"}
	rdx = asmArg{Reg: "rdx"}
	rdi = asmArg{Reg: "rdi"}
)

func (a asmArg) String() string {
	if a.Reg != "" {
		return a.Reg
	}
	return strconv.FormatInt(a.Imm, 10)
}

func (a *asmArg) isReg() bool { return a.Reg != "" }

func mkinstr(variant string, args ...asmArg) asmOp {
	return asmOp{
		variant: variant,
		args:    args,
	}
}

func mkimm(n int64) asmArg {
	return asmArg{Imm: n}
}

// checks that all the instructions in a block are ones we know how to emit,
// with the right number and kind of arguments
func (b *asmBlock) checkMachineInstructions() error {
	for _, l := range b.program() {
		var nargs int
		switch l.variant {
		case "push":
			nargs = 1
		case "pop", "idiv":
			nargs = 1
		case "add", "sub", "imul":
			nargs = 2
		case "cqo", "ret":
			nargs = 0
		default:
			return fmt.Errorf("invalid instruction: %s is not an x86 instruction in %+v",
				l.variant, l)
		}
		if len(l.args) != nargs {
			return fmt.Errorf("invalid instruction: %s takes %d arguments, found %d",
				l.variant, nargs, len(l.args))
		}
		for i, a := range l.args {
			if l.variant == "push" {
				break
			}
			if !a.isReg() {
				return fmt.Errorf("invalid instruction: argument %d of %s must be a register", i, l.variant)
			}
		}
	}
	return nil
}

// stackEffect returns how many slots l pushes (positive) or pops (negative).
func (l *asmOp) stackEffect() int {
	switch l.variant {
	case "push":
		return 1
	case "pop":
		return -1
	}
	return 0
}

// checkStackDiscipline checks that the body leaves exactly one value
// on the operand stack, never pops an empty stack,
// and that the program returns with the stack as it found it.
func (b *asmBlock) checkStackDiscipline() error {
	depth := 0
	for i, l := range b.code {
		depth += l.stackEffect()
		if depth < 0 {
			return fmt.Errorf("stack underflow at instruction %d (%s)", i, l.asmInstr())
		}
	}
	if depth != 1 {
		return fmt.Errorf("body leaves %d values on the stack, want 1", depth)
	}
	for _, l := range asmEpilogue {
		depth += l.stackEffect()
	}
	if depth != 0 {
		return fmt.Errorf("program returns with %d values on the stack, want 0", depth)
	}
	return nil
}
