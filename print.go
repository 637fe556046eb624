package main

import (
	"fmt"
	"io"
)

// this file prints asmBlocks and token streams for debugging

// printListing writes the numbered instructions of b with the operand
// stack depth after each one.
func printListing(w io.Writer, b *asmBlock) {
	fmt.Fprintf(w, "%s:\n", b.label)
	depth := 0
	for i, l := range b.program() {
		depth += l.stackEffect()
		fmt.Fprintf(w, "\t%3d: %-16s ; depth %d\n", i, l.asmInstr(), depth)
	}
}

func printTokens(w io.Writer, tokens []Token) {
	for i, t := range tokens {
		fmt.Fprintf(w, "\t%3d: %s\n", i, t)
	}
}
