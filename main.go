package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type args struct {
	Source     string `arg:"positional,required" help:"arithmetic expression to compile"`
	Verbose    bool   `arg:"--verbose,env:ARITHC_VERBOSE" help:"log compiler phases to stderr"`
	DumpTokens bool   `arg:"--dump-tokens" help:"print the token stream to stderr"`
	DumpAST    bool   `arg:"--dump-ast" help:"print the expression tree to stderr"`
	Listing    bool   `arg:"--listing" help:"print the instruction listing with stack depth to stderr"`
	Run        bool   `arg:"--run" help:"simulate the generated code and print its result to stderr"`
}

func (args) Description() string {
	return "arithc compiles an integer arithmetic expression to x86-64 assembly"
}

const (
	exitOK      = 0
	exitCompile = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, so it can be tested.
func run(argv []string, stdout, stderr io.Writer) int {
	var a args
	p, err := arg.NewParser(arg.Config{Program: "arithc"}, &a)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	if err := p.Parse(splitSource(argv)); err != nil {
		if errors.Is(err, arg.ErrHelp) {
			p.WriteHelp(stdout)
			return exitOK
		}
		p.WriteUsage(stderr)
		reportError(stderr, "", &UsageError{Msg: err.Error()})
		return exitUsage
	}

	logger, err := newLogger(a.Verbose, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	defer logger.Sync()
	undo := zap.ReplaceGlobals(logger)
	defer undo()

	opts := debugOptions{
		Tokens:  a.DumpTokens,
		AST:     a.DumpAST,
		Listing: a.Listing,
		Run:     a.Run,
	}
	if err := compile(a.Source, stdout, stderr, opts); err != nil {
		zap.L().Debug("compilation failed", zap.Error(err))
		reportError(stderr, a.Source, err)
		return exitCompile
	}
	return exitOK
}

// flags is every option args declares.
var flags = []string{"-h", "--help", "--verbose", "--dump-tokens", "--dump-ast", "--listing", "--run"}

func isFlag(s string) bool {
	for _, f := range flags {
		if s == f || strings.HasPrefix(s, f+"=") {
			return true
		}
	}
	return false
}

// splitSource moves the flags to the front and everything else after a "--",
// so a source such as "-1" is taken as SOURCE instead of an unknown option.
// A "--" given by the user ends the flags early.
func splitSource(argv []string) []string {
	var opts, rest []string
	for i, s := range argv {
		if s == "--" {
			rest = append(rest, argv[i+1:]...)
			break
		}
		if isFlag(s) {
			opts = append(opts, s)
		} else {
			rest = append(rest, s)
		}
	}
	out := append(opts, "--")
	return append(out, rest...)
}

// newLogger returns a no-op logger unless verbose is set,
// in which case it logs at debug level to w.
func newLogger(verbose bool, w io.Writer) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	if w == nil {
		return nil, fmt.Errorf("failed to construct logger: no output")
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zap.DebugLevel,
	)
	return zap.New(core, zap.Development(), zap.AddCaller()), nil
}
