// Package token defines the lexical tokens of the language.
package token

import "fmt"

type Token int

const (
	ILLEGAL Token = iota
	EOF

	literalBeg
	IDENT  // x
	NUMBER // 12.5
	STRING // "abc"
	literalEnd

	operatorBeg
	PIPE // |
	EQL  // ==
	NEQ  // !=
	GEQ  // >=
	LEQ  // <=
	GTR  // >
	LSS  // <
	ADD  // +
	SUB  // -
	MUL  // *
	QUO  // /

	ASSIGN    // =
	QUESTION  // ?
	PERIOD    // .
	COMMA     // ,
	COLON     // :
	SEMICOLON // ;
	BACKSLASH // \
	ARROW     // ->

	LPAREN // (
	RPAREN // )
	LBRACK // [
	RBRACK // ]
	LBRACE // {
	RBRACE // }
	operatorEnd

	keywordBeg
	LET
	keywordEnd
)

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",

	PIPE: "|",
	EQL:  "==",
	NEQ:  "!=",
	GEQ:  ">=",
	LEQ:  "<=",
	GTR:  ">",
	LSS:  "<",
	ADD:  "+",
	SUB:  "-",
	MUL:  "*",
	QUO:  "/",

	ASSIGN:    "=",
	QUESTION:  "?",
	PERIOD:    ".",
	COMMA:     ",",
	COLON:     ":",
	SEMICOLON: ";",
	BACKSLASH: "\\",
	ARROW:     "->",

	LPAREN: "(",
	RPAREN: ")",
	LBRACK: "[",
	RBRACK: "]",
	LBRACE: "{",
	RBRACE: "}",

	LET: "let",
}

func (tok Token) String() string {
	if 0 <= tok && tok < Token(len(tokens)) && tokens[tok] != "" {
		return tokens[tok]
	}
	return fmt.Sprintf("token(%d)", int(tok))
}

// LowestPrec is the precedence of non-operators. Binary operators start at 1.
const LowestPrec = 0

// Precedence returns the binary operator precedence of tok, or LowestPrec if
// tok is not a binary operator.
func (tok Token) Precedence() int {
	switch tok {
	case PIPE:
		return 1
	case EQL, NEQ, GEQ, LEQ, GTR, LSS:
		return 2
	case ADD, SUB:
		return 3
	case MUL, QUO:
		return 4
	}
	return LowestPrec
}

var keywords map[string]Token

func init() {
	keywords = make(map[string]Token)
	for i := keywordBeg + 1; i < keywordEnd; i++ {
		keywords[tokens[i]] = i
	}
}

// Lookup maps an identifier to its keyword token or IDENT.
func Lookup(ident string) Token {
	if tok, isKeyword := keywords[ident]; isKeyword {
		return tok
	}
	return IDENT
}

func (tok Token) IsLiteral() bool { return literalBeg < tok && tok < literalEnd }

func (tok Token) IsOperator() bool { return operatorBeg < tok && tok < operatorEnd }

func (tok Token) IsKeyword() bool { return keywordBeg < tok && tok < keywordEnd }

// Pos is a position in a source file. Line and Column are 1-based; the zero
// value is not a valid position.
type Pos struct {
	Offset int
	Line   int
	Column int
}

func (p Pos) IsValid() bool {
	return p.Line > 0
}

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
