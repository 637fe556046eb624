package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/kr/pretty"
	"go.uber.org/zap"
)

// debugOptions select the intermediate results compile dumps to its debug writer.
type debugOptions struct {
	Tokens  bool
	AST     bool
	Listing bool
	Run     bool
}

// compile translates src into an assembly program written to w.
// Nothing is written to w unless compilation succeeds.
// Debug dumps requested by opts go to dbg.
func compile(src string, w, dbg io.Writer, opts debugOptions) error {
	log := zap.L()

	tokens, err := tokenize(src)
	if err != nil {
		return err
	}
	log.Debug("tokenized", zap.Int("tokens", len(tokens)))
	if opts.Tokens {
		printTokens(dbg, tokens)
	}

	expr, err := parse(tokens)
	if err != nil {
		return err
	}
	log.Debug("parsed", zap.String("expr", formatExpr(expr)))
	if opts.AST {
		pretty.Fprintf(dbg, "%# v\n", expr)
		fmt.Fprintln(dbg, formatExpr(expr))
	}

	b := gen(expr)
	if err := b.checkMachineInstructions(); err != nil {
		return fmt.Errorf("internal error: %w", err)
	}
	if err := b.checkStackDiscipline(); err != nil {
		return fmt.Errorf("internal error: %w", err)
	}
	log.Debug("generated", zap.Int("instructions", len(b.code)))
	if opts.Listing {
		printListing(dbg, b)
	}
	if opts.Run {
		v, err := simulate(b)
		if err != nil {
			fmt.Fprintf(dbg, "run: %v\n", err)
		} else {
			fmt.Fprintf(dbg, "run: %d\n", v)
		}
	}

	var buf bytes.Buffer
	pr := AsmPrinter{w: &buf}
	pr.ConvertBlock(b)
	_, err = buf.WriteTo(w)
	return err
}
