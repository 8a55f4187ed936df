package natsort

import (
	"strconv"
	"strings"
)

// TokenKind tags a Token as text or number.
type TokenKind uint8

const (
	// TokenText is a run of characters that did not match the number pattern
	TokenText TokenKind = iota
	// TokenNumber is a matched numeric literal
	TokenNumber
)

// Token is one element of a flat key.
type Token struct {
	Kind   TokenKind
	Text   string
	Number Number
}

// TextToken returns a text token.
func TextToken(s string) Token {
	return Token{Kind: TokenText, Text: s}
}

// NumberToken returns a numeric token.
func NumberToken(n Number) Token {
	return Token{Kind: TokenNumber, Number: n}
}

// IsNumber reports whether the token is numeric.
func (t Token) IsNumber() bool {
	return t.Kind == TokenNumber
}

// Compare orders tokens: text before numbers, text by bytes, numbers by value.
func (t Token) Compare(o Token) int {
	if t.Kind != o.Kind {
		if t.Kind < o.Kind {
			return -1
		}
		return 1
	}
	if t.Kind == TokenNumber {
		return t.Number.Compare(o.Number)
	}
	return strings.Compare(t.Text, o.Text)
}

func (t Token) String() string {
	if t.Kind == TokenNumber {
		return t.Number.String()
	}
	return strconv.Quote(t.Text)
}
