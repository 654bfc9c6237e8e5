/*
File: lumen/value/value.go

The runtime value model: a small closed set of variants, all
copy-semantic — no aliasing, no cycles, nothing that needs a collector.
Grounded on akashmaji946/go-mix's objects/objects.go GoMixObject
interface, narrowed from its Integer/Float/String/Boolean/Nil/Array/
Range/Map/Set/Tuple/Struct/Object/Break/Continue/Error sprawl down to
exactly the variants this language needs, and from int64/float64 down
to 32-bit widths.
*/
package value

import (
	"fmt"
	"strings"
)

// Kind names a Value's runtime type, as returned by the type() builtin.
type Kind string

const (
	KindNumber   Kind = "number"
	KindFloat    Kind = "float"
	KindString   Kind = "string"
	KindBoolean  Kind = "bool"
	KindList     Kind = "list"
	KindFunction Kind = "function"
	KindNull     Kind = "null"
)

// Value is any runtime value the interpreter produces or consumes.
type Value interface {
	Kind() Kind
	// Render is the human-readable form print/println/list-rendering use
	//: unquoted strings, true/false, null, recursive lists.
	Render() string
}

// Number is a 32-bit signed integer. No overflow checking — wraparound
// follows Go's native int32 arithmetic.
type Number int32

func (Number) Kind() Kind        { return KindNumber }
func (n Number) Render() string  { return fmt.Sprintf("%d", int32(n)) }

// Float is single-precision.
type Float float32

func (Float) Kind() Kind       { return KindFloat }
func (f Float) Render() string { return fmt.Sprintf("%g", float32(f)) }

type String string

func (String) Kind() Kind        { return KindString }
func (s String) Render() string  { return string(s) }

type Boolean bool

func (Boolean) Kind() Kind { return KindBoolean }
func (b Boolean) Render() string {
	if b {
		return "true"
	}
	return "false"
}

// List is an ordered, copy-semantic sequence of Values. Assignment and
// argument binding copy the backing slice header's elements by value
// reference only for this language's own Value types, which are
// themselves immutable/copy-semantic, so no caller ever observes a
// callee's mutation.
type List []Value

func (List) Kind() Kind { return KindList }
func (l List) Render() string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = v.Render()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Null is the sole value of its kind.
type Null struct{}

func (Null) Kind() Kind       { return KindNull }
func (Null) Render() string   { return "null" }

// NullValue is the canonical Null instance, returned wherever the
// interpreter needs "no value" (a missing else-branch, for instance).
var NullValue = Null{}

// Copy returns a value safe to store in a new binding without aliasing
// the original. Every variant above is already immutable from the
// language's perspective except List, whose backing array must be
// cloned so a later append/rebind on one binding can never be observed
// through another.
func Copy(v Value) Value {
	if l, ok := v.(List); ok {
		cloned := make(List, len(l))
		copy(cloned, l)
		return cloned
	}
	return v
}
