package main

import (
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseString(t *testing.T, src string) (Expr, error) {
	t.Helper()
	tokens, err := tokenize(src)
	require.NoError(t, err, "tokenize(%q)", src)
	return parse(tokens)
}

func num(n int64, pos int) *IntExpr { return &IntExpr{Value: n, Pos: pos} }

func TestParseTree(t *testing.T) {
	tests := []struct {
		input string
		want  Expr
	}{
		{"42", num(42, 0)},
		{"1+2", &BinExpr{Op: Add, Left: num(1, 0), Right: num(2, 2), Pos: 1}},
		// left associative
		{"10-2-3", &BinExpr{
			Op:    Sub,
			Left:  &BinExpr{Op: Sub, Left: num(10, 0), Right: num(2, 3), Pos: 2},
			Right: num(3, 5),
			Pos:   4,
		}},
		{"8/4/2", &BinExpr{
			Op:    Div,
			Left:  &BinExpr{Op: Div, Left: num(8, 0), Right: num(4, 2), Pos: 1},
			Right: num(2, 4),
			Pos:   3,
		}},
		// * binds tighter than +
		{"1+2*3", &BinExpr{
			Op:    Add,
			Left:  num(1, 0),
			Right: &BinExpr{Op: Mul, Left: num(2, 2), Right: num(3, 4), Pos: 3},
			Pos:   1,
		}},
		{"(1+2)*3", &BinExpr{
			Op:    Mul,
			Left:  &BinExpr{Op: Add, Left: num(1, 1), Right: num(2, 3), Pos: 2},
			Right: num(3, 6),
			Pos:   5,
		}},
		{"((7))", num(7, 2)},
	}
	for _, tt := range tests {
		got, err := parseString(t, tt.input)
		require.NoError(t, err, "parse(%q)", tt.input)
		if !assert.Equal(t, tt.want, got, "parse(%q)", tt.input) {
			t.Logf("diff: %v", pretty.Diff(tt.want, got))
		}
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1+2*3", "1+2*3"},
		{"(1+2)*3", "(1+2)*3"},
		{"10-2-3", "10-2-3"},
		{"10-(2-3)", "10-(2-3)"},
		{"20/4/5", "20/4/5"},
		{"2*3+4*5-6/2", "2*3+4*5-6/2"},
		{"1-2+3", "1-2+3"},
		{"1*(2*3)", "1*(2*3)"},
		{" ( ( 1 ) ) ", "1"},
	}
	for _, tt := range tests {
		got, err := parseString(t, tt.input)
		require.NoError(t, err, "parse(%q)", tt.input)
		assert.Equal(t, tt.want, formatExpr(got), "parse(%q)", tt.input)
	}
}

var parseErrorTests = []struct {
	input string
	pos   int
	msg   string
}{
	{"(1+2", 4, "expected ')'"},
	{"1+", 2, "expected a number"},
	{"", 0, "expected a number"},
	{"*1", 0, "expected a number"},
	{"1+*2", 2, "expected a number"},
	{"()", 1, "expected a number"},
	{"(1+2))", 5, "expected end of input"},
	{"1+2)", 3, "expected end of input"},
	{"1 2", 2, "expected end of input"},
	{"1;", 1, "expected end of input"},
	{"((1)", 4, "expected ')'"},
}

func TestParseErrors(t *testing.T) {
	for _, tt := range parseErrorTests {
		_, err := parseString(t, tt.input)
		require.Error(t, err, "parse(%q)", tt.input)
		var synErr *SyntaxError
		require.ErrorAs(t, err, &synErr, "parse(%q)", tt.input)
		assert.Equal(t, tt.pos, synErr.Pos, "parse(%q)", tt.input)
		assert.Equal(t, tt.msg, synErr.Msg, "parse(%q)", tt.input)
	}
}

func TestParseUnterminatedStream(t *testing.T) {
	_, err := parse([]Token{{Kind: Num, Val: 1, Text: "1"}})
	assert.Error(t, err)
	_, err = parse(nil)
	assert.Error(t, err)
}

func TestParseDeepNesting(t *testing.T) {
	const depth = 200
	src := strings.Repeat("(", depth) + "1" + strings.Repeat(")", depth)
	e, err := parseString(t, src)
	require.NoError(t, err)
	assert.Equal(t, num(1, depth), e)
}

func TestParserConsumeExpect(t *testing.T) {
	tokens, err := tokenize("(1")
	require.NoError(t, err)
	p := &parser{tokens: tokens}

	assert.False(t, p.consume(')'))
	assert.Equal(t, 0, p.pos, "failed consume must not advance")
	assert.True(t, p.consume('('))
	assert.Equal(t, 1, p.pos)

	err = p.expect('+')
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, "expected '+'", synErr.Msg)
	assert.Equal(t, 1, synErr.Pos)

	n, err := p.expectNumber()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.True(t, p.atEOF())

	_, err = p.expectNumber()
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, 2, synErr.Pos)
}
