package main

import (
	"errors"
	"fmt"
	"math"
)

// vm.go executes emitted code on a model of the few registers it touches.
// Used by --run and by tests to check that the generated code computes
// the right value.

var errDivide = errors.New("divide error")

type machine struct {
	regs  map[string]int64
	stack []int64
}

// simulate runs b followed by the epilogue and returns rax at ret.
func simulate(b *asmBlock) (int64, error) {
	m := &machine{regs: map[string]int64{rax.Reg: 0, rdx.Reg: 0, rdi.Reg: 0}}
	for i, l := range b.program() {
		done, err := m.step(l)
		if err != nil {
			return 0, fmt.Errorf("instruction %d (%s): %w", i, l.asmInstr(), err)
		}
		if done {
			if len(m.stack) != 0 {
				return 0, fmt.Errorf("ret with %d values left on the stack", len(m.stack))
			}
			return m.regs[rax.Reg], nil
		}
	}
	return 0, errors.New("fell off the end of the program")
}

func (m *machine) value(a asmArg) int64 {
	if a.isReg() {
		return m.regs[a.Reg]
	}
	return a.Imm
}

func (m *machine) step(l asmOp) (done bool, err error) {
	switch l.variant {
	case "push":
		m.stack = append(m.stack, m.value(l.args[0]))
	case "pop":
		if len(m.stack) == 0 {
			return false, errors.New("stack underflow")
		}
		m.regs[l.args[0].Reg] = m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
	case "add":
		m.regs[l.args[0].Reg] += m.value(l.args[1])
	case "sub":
		m.regs[l.args[0].Reg] -= m.value(l.args[1])
	case "imul":
		m.regs[l.args[0].Reg] *= m.value(l.args[1])
	case "cqo":
		if m.regs[rax.Reg] < 0 {
			m.regs[rdx.Reg] = -1
		} else {
			m.regs[rdx.Reg] = 0
		}
	case "idiv":
		// only the sign-extended case; cqo always precedes idiv
		hi, lo := m.regs[rdx.Reg], m.regs[rax.Reg]
		if hi != lo>>63 {
			return false, errors.New("idiv: 128-bit dividend not supported")
		}
		d := m.value(l.args[0])
		if d == 0 || (lo == math.MinInt64 && d == -1) {
			return false, errDivide
		}
		m.regs[rax.Reg] = lo / d
		m.regs[rdx.Reg] = lo % d
	case "ret":
		return true, nil
	default:
		return false, fmt.Errorf("unknown instruction %q", l.variant)
	}
	return false, nil
}
