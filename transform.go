package natsort

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TransformFunc rewrites a value before it is keyed.
type TransformFunc func(Value) Value

// Lower lower-cases every text value, descending into sequences.
func Lower(v Value) Value {
	return mapText(v, strings.ToLower)
}

// Fold lower-cases and strips combining marks, so "Élan" keys like "elan".
func Fold(v Value) Value {
	return mapText(v, foldString)
}

func foldString(s string) string {
	// Chained transformers carry state, so build one per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

func mapText(v Value, fn func(string) string) Value {
	switch v.kind {
	case ValueText:
		return Text(fn(v.text))
	case ValueSequence:
		elems := make([]Value, len(v.seq))
		for i, e := range v.seq {
			elems[i] = mapText(e, fn)
		}
		return Value{kind: ValueSequence, seq: elems}
	default:
		return v
	}
}

// Chain composes transforms left to right. Nil entries are skipped.
func Chain(fns ...TransformFunc) TransformFunc {
	var live []TransformFunc
	for _, fn := range fns {
		if fn != nil {
			live = append(live, fn)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	}
	return func(v Value) Value {
		for _, fn := range live {
			v = fn(v)
		}
		return v
	}
}

// TransformByName returns the named built-in transform: "lower", "fold", or
// "none"/"" for no transform.
func TransformByName(name string) (TransformFunc, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return nil, nil
	case "lower":
		return Lower, nil
	case "fold":
		return Fold, nil
	}
	return nil, &ConfigurationError{Field: "transform", Value: name}
}
