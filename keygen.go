// FILE: lixenwraith/natsort/keygen.go
package natsort

import "fmt"

// Options configures key generation. The zero value is NOT the default; use
// DefaultOptions as the starting point.
type Options struct {
	// NumberKind selects which numbers are recognized inside strings
	NumberKind NumberKind

	// Signed treats a leading '+' or '-' as part of the number.
	// Ignored for NumberNone.
	Signed bool

	// Exponent treats "3.5e5" as a single number. Only meaningful for NumberFloat.
	Exponent bool

	// SafeMode separates adjacent numbers with an empty text token
	SafeMode bool

	// Transform is applied to the top-level value before tokenizing.
	// It is never applied to the elements of a sequence.
	Transform TransformFunc

	// MaxDepth limits the nesting accepted by KeyAny. Zero means DefaultMaxDepth.
	MaxDepth int
}

// DefaultOptions returns float recognition with sign and exponent, safe mode
// off and no transform.
func DefaultOptions() Options {
	return Options{
		NumberKind: NumberFloat,
		Signed:     true,
		Exponent:   true,
	}
}

// VersionOptions returns options recognizing unsigned digit runs only.
func VersionOptions() Options {
	opts := DefaultOptions()
	opts.NumberKind = NumberNone
	return opts
}

// KeyFunc maps a value to its natural-order key.
type KeyFunc func(Value) Key

// Generator produces keys for one fixed set of options.
type Generator struct {
	opts    Options
	pattern Pattern
}

// NewGenerator resolves the number pattern for opts. An unknown NumberKind
// fails with a *ConfigurationError.
func NewGenerator(opts Options) (*Generator, error) {
	p, err := selectPattern(opts.NumberKind, opts.Signed, opts.Exponent)
	if err != nil {
		return nil, err
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Generator{opts: opts, pattern: p}, nil
}

// MustNewGenerator is like NewGenerator but panics on error
func MustNewGenerator(opts Options) *Generator {
	g, err := NewGenerator(opts)
	if err != nil {
		panic(fmt.Sprintf("natsort generator construction failed: %v", err))
	}
	return g
}

// KeyGen returns the key function of a new Generator.
func KeyGen(opts Options) (KeyFunc, error) {
	g, err := NewGenerator(opts)
	if err != nil {
		return nil, err
	}
	return g.Key, nil
}

// MustKeyGen is like KeyGen but panics on error
func MustKeyGen(opts Options) KeyFunc {
	return MustNewGenerator(opts).Key
}

// Options returns the options the generator was built with.
func (g *Generator) Options() Options {
	return g.opts
}

// Pattern returns the resolved number pattern.
func (g *Generator) Pattern() Pattern {
	return g.pattern
}

// Key builds the key for v. The transform, if any, runs on v only; elements
// of sequences are keyed without it.
func (g *Generator) Key(v Value) Key {
	if g.opts.Transform != nil {
		v = g.opts.Transform(v)
	}
	return g.build(v)
}

// StringKey is shorthand for g.Key(Text(s)).
func (g *Generator) StringKey(s string) Key {
	return g.Key(Text(s))
}

// KeyAny converts x with FromAnyDepth using the configured MaxDepth and keys
// the result.
func (g *Generator) KeyAny(x any) (Key, error) {
	v, err := FromAnyDepth(x, g.opts.MaxDepth)
	if err != nil {
		return Key{}, err
	}
	return g.Key(v), nil
}

// Compare compares the keys of two strings.
func (g *Generator) Compare(a, b string) int {
	return Compare(g.StringKey(a), g.StringKey(b))
}

func (g *Generator) build(v Value) Key {
	switch v.kind {
	case ValueText:
		tokens := tokenize(v.text, g.pattern)
		if g.opts.SafeMode {
			tokens = insertSeparators(tokens)
		}
		return flatKey(tokens)
	case ValueSequence:
		keys := make([]Key, len(v.seq))
		for i, e := range v.seq {
			keys[i] = g.build(e)
		}
		return nestedKey(keys)
	case ValueNumber:
		return flatKey([]Token{TextToken(""), NumberToken(v.num)})
	default:
		return flatKey([]Token{TextToken(""), TextToken(v.text)})
	}
}

var defaultGenerator = MustNewGenerator(DefaultOptions())

// Less reports whether a sorts before b under DefaultOptions.
func Less(a, b string) bool {
	return defaultGenerator.Compare(a, b) < 0
}
