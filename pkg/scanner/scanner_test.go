package scanner

import (
	"testing"

	"github.com/acorn-io/jjay/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type elt struct {
	tok token.Token
	lit string
}

func scanAll(t *testing.T, src string) (result []elt, errs []string) {
	t.Helper()
	var s Scanner
	s.Init([]byte(src), func(pos token.Pos, msg string) {
		errs = append(errs, pos.String()+": "+msg)
	})
	for {
		_, tok, lit := s.Scan()
		if tok == token.EOF {
			return
		}
		result = append(result, elt{tok: tok, lit: lit})
	}
}

func TestScan(t *testing.T) {
	elts, errs := scanAll(t, `let f(x) = x.a?[0] | \y, z -> {"k": y} // comment
	>= <= == != > < + - * / ; : ? -> 1.5e3 2`)
	require.Empty(t, errs)

	assert.Equal(t, []elt{
		{token.LET, ""},
		{token.IDENT, "f"},
		{token.LPAREN, ""},
		{token.IDENT, "x"},
		{token.RPAREN, ""},
		{token.ASSIGN, ""},
		{token.IDENT, "x"},
		{token.PERIOD, ""},
		{token.IDENT, "a"},
		{token.QUESTION, ""},
		{token.LBRACK, ""},
		{token.NUMBER, "0"},
		{token.RBRACK, ""},
		{token.PIPE, ""},
		{token.BACKSLASH, ""},
		{token.IDENT, "y"},
		{token.COMMA, ""},
		{token.IDENT, "z"},
		{token.ARROW, ""},
		{token.LBRACE, ""},
		{token.STRING, "k"},
		{token.COLON, ""},
		{token.IDENT, "y"},
		{token.RBRACE, ""},
		{token.GEQ, ""},
		{token.LEQ, ""},
		{token.EQL, ""},
		{token.NEQ, ""},
		{token.GTR, ""},
		{token.LSS, ""},
		{token.ADD, ""},
		{token.SUB, ""},
		{token.MUL, ""},
		{token.QUO, ""},
		{token.SEMICOLON, ""},
		{token.COLON, ""},
		{token.QUESTION, ""},
		{token.ARROW, ""},
		{token.NUMBER, "1.5e3"},
		{token.NUMBER, "2"},
	}, elts)
}

func TestScanStringEscapes(t *testing.T) {
	elts, errs := scanAll(t, `"a\"b\\" "x"`)
	require.Empty(t, errs)
	assert.Equal(t, []elt{
		{token.STRING, `a\"b\\`},
		{token.STRING, "x"},
	}, elts)
}

func TestScanErrors(t *testing.T) {
	_, errs := scanAll(t, "\"abc\nx")
	assert.Equal(t, []string{"1:1: string literal not terminated"}, errs)

	_, errs = scanAll(t, "x\n  @")
	assert.Equal(t, []string{`2:3: unexpected character '@'`}, errs)
}

func TestScanPositions(t *testing.T) {
	var s Scanner
	s.Init([]byte("a\n  bc"), nil)
	pos, _, _ := s.Scan()
	assert.Equal(t, token.Pos{Offset: 0, Line: 1, Column: 1}, pos)
	pos, _, lit := s.Scan()
	assert.Equal(t, "bc", lit)
	assert.Equal(t, token.Pos{Offset: 4, Line: 2, Column: 3}, pos)
}
