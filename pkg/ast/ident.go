package ast

import (
	"unicode/utf8"

	"github.com/acorn-io/jjay/pkg/token"
)

func isAllowedCharacter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isAllowedDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

// IsValidIdent reports whether str can be written as an identifier in source.
func IsValidIdent(ident string) bool {
	if ident == "" || token.Lookup(ident) != token.IDENT {
		return false
	}

	if r, _ := utf8.DecodeRuneInString(ident); isAllowedDigit(r) {
		return false
	}

	for _, r := range ident {
		if isAllowedCharacter(r) || isAllowedDigit(r) {
			continue
		}
		return false
	}
	return true
}
