package natsort

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txt(s string) Token   { return TextToken(s) }
func fnum(f float64) Token { return NumberToken(FloatNumber(f)) }
func inum(i int64) Token   { return NumberToken(IntNumber(i)) }

func mustPattern(t *testing.T, kind NumberKind, signed, exponent bool) Pattern {
	t.Helper()
	p, err := selectPattern(kind, signed, exponent)
	require.NoError(t, err)
	return p
}

func TestTokenize(t *testing.T) {
	floatSignExp := mustPattern(t, NumberFloat, true, true)
	floatNoSignExp := mustPattern(t, NumberFloat, false, true)
	floatSignNoExp := mustPattern(t, NumberFloat, true, false)
	intSign := mustPattern(t, NumberInt, true, false)
	intNoSign := mustPattern(t, NumberInt, false, false)
	none := mustPattern(t, NumberNone, true, true)

	tests := []struct {
		name     string
		input    string
		pattern  Pattern
		expected []Token
	}{
		{"Empty", "", floatSignExp, []Token{txt("")}},
		{"NoDigits", "hello world", floatSignExp, []Token{txt("hello world")}},
		{"TrailingNumber", "num2", floatSignExp, []Token{txt("num"), fnum(2)}},
		{"LeadingNumber", "15a", floatSignExp, []Token{txt(""), fnum(15), txt("a")}},
		{"OnlyDigits", "42", floatSignExp, []Token{txt(""), fnum(42)}},
		{"SignedExponent", "a-1.5e3b", floatSignExp, []Token{txt("a"), fnum(-1500), txt("b")}},
		{"UnsignedExponent", "a-1.5e3", floatNoSignExp, []Token{txt("a-"), fnum(1500)}},
		{"NoExponent", "3.5e5", floatSignNoExp, []Token{txt(""), fnum(3.5), txt("e"), fnum(5)}},
		{"LeadingDot", "v.5", floatSignExp, []Token{txt("v"), fnum(0.5)}},
		{"AdjacentNumbers", "43h7+3", floatSignExp, []Token{txt(""), fnum(43), txt("h"), fnum(7), fnum(3)}},
		{"IntSigned", "x-12y", intSign, []Token{txt("x"), inum(-12), txt("y")}},
		{"IntUnsigned", "x-12", intNoSign, []Token{txt("x-"), inum(12)}},
		{"NoneIgnoresSign", "x-12", none, []Token{txt("x-"), inum(12)}},
		{"Version", "num4.0.2", none, []Token{txt("num"), inum(4), txt("."), inum(0), txt("."), inum(2)}},
		{"UnicodeText", "café10", floatSignExp, []Token{txt("café"), fnum(10)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tokenize(tt.input, tt.pattern))
		})
	}
}

func TestTokenizeFirstTokenIsText(t *testing.T) {
	p := mustPattern(t, NumberFloat, true, true)
	for _, s := range []string{"", "1", "-1", "+1x", "a1", ".5", "1.5e10 units", "x"} {
		tokens := tokenize(s, p)
		require.NotEmpty(t, tokens, s)
		assert.False(t, tokens[0].IsNumber(), "first token of %q is numeric", s)
	}
}

func TestInsertSeparators(t *testing.T) {
	t.Run("ShortInputs", func(t *testing.T) {
		assert.Empty(t, insertSeparators(nil))
		assert.Equal(t, []Token{fnum(1)}, insertSeparators([]Token{fnum(1)}))
	})

	t.Run("Adjacent", func(t *testing.T) {
		in := []Token{txt(""), fnum(43), txt("h"), fnum(7), fnum(3)}
		want := []Token{txt(""), fnum(43), txt("h"), fnum(7), txt(""), fnum(3)}
		assert.Equal(t, want, insertSeparators(in))
	})

	t.Run("Run", func(t *testing.T) {
		in := []Token{fnum(1), fnum(2), fnum(3)}
		want := []Token{fnum(1), txt(""), fnum(2), txt(""), fnum(3)}
		assert.Equal(t, want, insertSeparators(in))
	})

	t.Run("TokenCountLaw", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(7, 11))
		for range 500 {
			n := rng.IntN(12)
			in := make([]Token, n)
			for i := range in {
				if rng.IntN(2) == 0 {
					in[i] = fnum(float64(rng.IntN(100)))
				} else {
					in[i] = txt("t")
				}
			}

			pairs := 0
			for i := 1; i < n; i++ {
				if in[i-1].IsNumber() && in[i].IsNumber() {
					pairs++
				}
			}

			out := insertSeparators(in)
			require.Len(t, out, n+pairs)
			for i := 1; i < len(out); i++ {
				require.False(t, out[i-1].IsNumber() && out[i].IsNumber(), "adjacent numbers at %d", i)
			}
		}
	})
}
