// FILE: lixenwraith/natsort/pattern.go
package natsort

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// NumberKind selects which numeric literals are recognized inside strings.
type NumberKind uint8

const (
	// NumberFloat matches decimal numbers, optionally signed and with an exponent
	NumberFloat NumberKind = iota
	// NumberInt matches integers, optionally signed
	NumberInt
	// NumberNone matches unsigned digit runs, suitable for version strings
	NumberNone
)

func (k NumberKind) String() string {
	switch k {
	case NumberFloat:
		return "float"
	case NumberInt:
		return "int"
	case NumberNone:
		return "none"
	default:
		return fmt.Sprintf("NumberKind(%d)", uint8(k))
	}
}

// ParseNumberKind converts "float", "int" or "none" (case-insensitive) to a
// NumberKind. "version" and "digits" are accepted as aliases for none.
func ParseNumberKind(s string) (NumberKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "float", "":
		return NumberFloat, nil
	case "int", "integer":
		return NumberInt, nil
	case "none", "version", "digits":
		return NumberNone, nil
	}
	return 0, &ConfigurationError{Field: "number_kind", Value: s}
}

// Valid reports whether k is one of the defined kinds.
func (k NumberKind) Valid() bool {
	return k <= NumberNone
}

// MarshalText encodes the kind by name so settings files stay readable.
func (k NumberKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, &ConfigurationError{Field: "number_kind", Value: uint8(k)}
	}
	return []byte(k.String()), nil
}

// UnmarshalText accepts every name ParseNumberKind does.
func (k *NumberKind) UnmarshalText(text []byte) error {
	parsed, err := ParseNumberKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Pattern pairs a number matcher with the function converting a match.
type Pattern struct {
	re    *regexp.Regexp
	parse func(string) Number
}

// Regexp returns the matcher's expression, mostly for diagnostics.
func (p Pattern) Regexp() string {
	return p.re.String()
}

type patternKey struct {
	kind     NumberKind
	signed   bool
	exponent bool
}

var (
	floatSignExpRe     = regexp.MustCompile(`[-+]?\d*\.?\d+(?:[eE][-+]?\d+)?`)
	floatNoSignExpRe   = regexp.MustCompile(`\d*\.?\d+(?:[eE][-+]?\d+)?`)
	floatSignNoExpRe   = regexp.MustCompile(`[-+]?\d*\.?\d+`)
	floatNoSignNoExpRe = regexp.MustCompile(`\d*\.?\d+`)
	intSignRe          = regexp.MustCompile(`[-+]?\d+`)
	intNoSignRe        = regexp.MustCompile(`\d+`)
)

// patterns is read-only after package initialization.
// NumberNone ignores the signed flag; kept for compatibility.
var patterns = map[patternKey]Pattern{
	{NumberFloat, true, true}:   {floatSignExpRe, parseFloat},
	{NumberFloat, true, false}:  {floatSignNoExpRe, parseFloat},
	{NumberFloat, false, true}:  {floatNoSignExpRe, parseFloat},
	{NumberFloat, false, false}: {floatNoSignNoExpRe, parseFloat},
	{NumberInt, true, true}:     {intSignRe, parseInt},
	{NumberInt, true, false}:    {intSignRe, parseInt},
	{NumberInt, false, true}:    {intNoSignRe, parseInt},
	{NumberInt, false, false}:   {intNoSignRe, parseInt},
	{NumberNone, true, true}:    {intNoSignRe, parseInt},
	{NumberNone, true, false}:   {intNoSignRe, parseInt},
	{NumberNone, false, true}:   {intNoSignRe, parseInt},
	{NumberNone, false, false}:  {intNoSignRe, parseInt},
}

// selectPattern resolves the matcher for a configuration triple.
func selectPattern(kind NumberKind, signed, exponent bool) (Pattern, error) {
	p, ok := patterns[patternKey{kind, signed, exponent}]
	if !ok {
		// signed and exponent are plain bools, so only the kind can be out of range
		return Pattern{}, &ConfigurationError{Field: "number_kind", Value: kind}
	}
	return p, nil
}

// parseFloat converts a matched literal. Overflow yields ±Inf.
func parseFloat(s string) Number {
	f, _ := strconv.ParseFloat(s, 64)
	return FloatNumber(f)
}

// parseInt converts a matched literal. Overflow clamps to the int64 range.
func parseInt(s string) Number {
	i, _ := strconv.ParseInt(s, 10, 64)
	return IntNumber(i)
}
