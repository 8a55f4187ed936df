// FILE: lixenwraith/natsort/key.go
package natsort

import (
	"cmp"
	"slices"
	"strings"
)

// Key is the comparable form of one input value. A flat key is a sequence of
// tokens built from a string or an atomic value and always starts with a text
// token. A nested key is a sequence of keys built from a sequence value.
// Keys are immutable.
type Key struct {
	tokens []Token
	keys   []Key
	nested bool
}

func flatKey(tokens []Token) Key {
	return Key{tokens: tokens}
}

func nestedKey(keys []Key) Key {
	return Key{keys: keys, nested: true}
}

// IsNested reports whether the key was built from a sequence.
func (k Key) IsNested() bool {
	return k.nested
}

// Len returns the number of tokens or sub-keys.
func (k Key) Len() int {
	if k.nested {
		return len(k.keys)
	}
	return len(k.tokens)
}

// Tokens returns a copy of the tokens of a flat key, nil for a nested key.
func (k Key) Tokens() []Token {
	return slices.Clone(k.tokens)
}

// Keys returns a copy of the sub-keys of a nested key, nil for a flat key.
func (k Key) Keys() []Key {
	return slices.Clone(k.keys)
}

// Compare returns -1, 0 or +1 comparing k with o. See Compare.
func (k Key) Compare(o Key) int {
	return Compare(k, o)
}

// Less reports whether k sorts before o.
func (k Key) Less(o Key) bool {
	return Compare(k, o) < 0
}

// Equal reports whether k and o compare equal.
func (k Key) Equal(o Key) bool {
	return Compare(k, o) == 0
}

// Compare orders two keys element by element; a strict prefix sorts first.
// At a shared position text sorts before numbers and both sort before a
// nested key, so any two keys are comparable.
func Compare(a, b Key) int {
	la, lb := a.Len(), b.Len()
	if la == 0 || lb == 0 {
		return cmp.Compare(la, lb)
	}

	switch {
	case !a.nested && !b.nested:
		for i := range min(la, lb) {
			if c := a.tokens[i].Compare(b.tokens[i]); c != 0 {
				return c
			}
		}
	case a.nested && b.nested:
		for i := range min(la, lb) {
			if c := Compare(a.keys[i], b.keys[i]); c != 0 {
				return c
			}
		}
	case a.nested:
		return 1
	default:
		return -1
	}

	return cmp.Compare(la, lb)
}

// String renders the key as a tuple, e.g. ("num", 2) or (("a", 1), ("a", 10)).
func (k Key) String() string {
	var b strings.Builder
	k.write(&b)
	return b.String()
}

func (k Key) write(b *strings.Builder) {
	b.WriteByte('(')
	if k.nested {
		for i, sub := range k.keys {
			if i > 0 {
				b.WriteString(", ")
			}
			sub.write(b)
		}
	} else {
		for i, t := range k.tokens {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(t.String())
		}
	}
	b.WriteByte(')')
}
