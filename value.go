// FILE: lixenwraith/natsort/value.go
package natsort

import (
	"fmt"
	"math"
	"reflect"
	"slices"
)

// DefaultMaxDepth bounds the nesting accepted by FromAny.
const DefaultMaxDepth = 256

// ValueKind tags the variant held by a Value.
type ValueKind uint8

const (
	ValueText ValueKind = iota
	ValueNumber
	ValueSequence
	ValueAtom // any other atomic host value, kept by its rendering
)

func (k ValueKind) String() string {
	switch k {
	case ValueText:
		return "text"
	case ValueNumber:
		return "number"
	case ValueSequence:
		return "sequence"
	case ValueAtom:
		return "atom"
	default:
		return fmt.Sprintf("ValueKind(%d)", uint8(k))
	}
}

// Value is the input to key generation: text, a number, a sequence of values,
// or an opaque atom. Values are immutable; a Value built from the constructors
// below is always a finite tree.
type Value struct {
	kind ValueKind
	text string
	num  Number
	seq  []Value
}

// Text returns a text value.
func Text(s string) Value {
	return Value{kind: ValueText, text: s}
}

// Int returns an integer value.
func Int(i int64) Value {
	return Value{kind: ValueNumber, num: IntNumber(i)}
}

// Float returns a floating-point value.
func Float(f float64) Value {
	return Value{kind: ValueNumber, num: FloatNumber(f)}
}

// Num wraps an existing Number.
func Num(n Number) Value {
	return Value{kind: ValueNumber, num: n}
}

// Seq returns a sequence of values. The argument slice is copied.
func Seq(vs ...Value) Value {
	return Value{kind: ValueSequence, seq: slices.Clone(vs)}
}

// Strings returns a sequence of text values.
func Strings(ss ...string) Value {
	vs := make([]Value, len(ss))
	for i, s := range ss {
		vs[i] = Text(s)
	}
	return Value{kind: ValueSequence, seq: vs}
}

// Atom returns an opaque value represented by its default formatting.
func Atom(x any) Value {
	return Value{kind: ValueAtom, text: fmt.Sprint(x)}
}

// Kind returns the variant tag.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Str returns the text of a text or atom value.
func (v Value) Str() (string, bool) {
	if v.kind == ValueText || v.kind == ValueAtom {
		return v.text, true
	}
	return "", false
}

// Number returns the number of a numeric value.
func (v Value) Number() (Number, bool) {
	return v.num, v.kind == ValueNumber
}

// Len returns the number of elements of a sequence, 0 otherwise.
func (v Value) Len() int {
	return len(v.seq)
}

// Elems returns a copy of the sequence elements.
func (v Value) Elems() []Value {
	return slices.Clone(v.seq)
}

// Depth returns the nesting depth: 0 for atomic values, 1 for a flat sequence.
func (v Value) Depth() int {
	if v.kind != ValueSequence {
		return 0
	}
	d := 0
	for _, e := range v.seq {
		d = max(d, e.Depth())
	}
	return d + 1
}

func (v Value) String() string {
	switch v.kind {
	case ValueNumber:
		return v.num.String()
	case ValueSequence:
		return fmt.Sprint(v.seq)
	default:
		return v.text
	}
}

// FromAny converts ordinary Go data into a Value using DefaultMaxDepth.
// See FromAnyDepth.
func FromAny(x any) (Value, error) {
	return FromAnyDepth(x, DefaultMaxDepth)
}

// FromAnyDepth converts Go data into a Value. Strings become text, integers,
// floats and bools become numbers, slices and arrays become sequences and
// pointers are followed. Anything else becomes an Atom. Nesting deeper than
// maxDepth, which includes self-referencing slices, fails with ErrMaxDepth.
func FromAnyDepth(x any, maxDepth int) (Value, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if v, ok := x.(Value); ok {
		if v.Depth() > maxDepth {
			return Value{}, fmt.Errorf("%w: depth %d, limit %d", ErrMaxDepth, v.Depth(), maxDepth)
		}
		return v, nil
	}
	return fromReflect(reflect.ValueOf(x), 0, maxDepth)
}

func fromReflect(rv reflect.Value, depth, maxDepth int) (Value, error) {
	if !rv.IsValid() {
		return Atom(nil), nil
	}

	switch rv.Kind() {
	case reflect.String:
		return Text(rv.String()), nil
	case reflect.Bool:
		if rv.Bool() {
			return Int(1), nil
		}
		return Int(0), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Float(float64(u)), nil
		}
		return Int(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.Interface:
		if rv.IsNil() {
			return Atom(nil), nil
		}
		return fromReflect(rv.Elem(), depth, maxDepth)
	case reflect.Pointer:
		if rv.IsNil() {
			return Atom(nil), nil
		}
		// pointer hops count toward the limit so pointer cycles terminate
		if depth >= maxDepth {
			return Value{}, fmt.Errorf("%w: limit %d", ErrMaxDepth, maxDepth)
		}
		return fromReflect(rv.Elem(), depth+1, maxDepth)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Seq(), nil
		}
		if depth >= maxDepth {
			return Value{}, fmt.Errorf("%w: limit %d", ErrMaxDepth, maxDepth)
		}
		elems := make([]Value, rv.Len())
		for i := range elems {
			e, err := fromReflect(rv.Index(i), depth+1, maxDepth)
			if err != nil {
				return Value{}, err
			}
			elems[i] = e
		}
		return Value{kind: ValueSequence, seq: elems}, nil
	}

	if rv.CanInterface() {
		if v, ok := rv.Interface().(Value); ok {
			if depth+v.Depth() > maxDepth {
				return Value{}, fmt.Errorf("%w: limit %d", ErrMaxDepth, maxDepth)
			}
			return v, nil
		}
		if err := checkRenderDepth(rv, depth, maxDepth); err != nil {
			return Value{}, err
		}
		return Atom(rv.Interface()), nil
	}
	return Atom(rv.String()), nil
}

// checkRenderDepth walks the maps and slices fmt descends into when an Atom
// is rendered, so a map holding itself fails instead of recursing forever.
// Pointers below the top level print as addresses and are not followed.
func checkRenderDepth(rv reflect.Value, depth, maxDepth int) error {
	switch rv.Kind() {
	case reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return checkRenderDepth(rv.Elem(), depth, maxDepth)
	case reflect.Struct:
		for i := range rv.NumField() {
			if err := checkRenderDepth(rv.Field(i), depth, maxDepth); err != nil {
				return err
			}
		}
		return nil
	case reflect.Array:
		if !mayNest(rv.Type().Elem()) {
			return nil
		}
		for i := range rv.Len() {
			if err := checkRenderDepth(rv.Index(i), depth, maxDepth); err != nil {
				return err
			}
		}
		return nil
	case reflect.Slice:
		if rv.IsNil() || !mayNest(rv.Type().Elem()) {
			return nil
		}
		if depth >= maxDepth {
			return fmt.Errorf("%w: limit %d", ErrMaxDepth, maxDepth)
		}
		for i := range rv.Len() {
			if err := checkRenderDepth(rv.Index(i), depth+1, maxDepth); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		if depth >= maxDepth {
			return fmt.Errorf("%w: limit %d", ErrMaxDepth, maxDepth)
		}
		for it := rv.MapRange(); it.Next(); {
			if err := checkRenderDepth(it.Key(), depth+1, maxDepth); err != nil {
				return err
			}
			if err := checkRenderDepth(it.Value(), depth+1, maxDepth); err != nil {
				return err
			}
		}
	}
	return nil
}

func mayNest(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return true
	}
	return false
}
