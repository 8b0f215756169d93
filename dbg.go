package dbg

import (
	"fmt"
	"reflect"
)

// Shape is the rendering strategy assigned to a value's static type.
// Every type resolves to exactly one Shape; see [ShapeOf].
type Shape int

const (
	ShapeOpaque Shape = iota
	ShapeBoolean
	ShapeChar
	ShapeText
	ShapePointer
	ShapePair
	ShapeStack
	ShapePriorityQueue
	ShapeQueue
	ShapeMap
	ShapeSequence
	ShapeStream
	ShapeTuple
)

var shapeNames = map[Shape]string{
	ShapeOpaque:        "opaque",
	ShapeBoolean:       "boolean",
	ShapeChar:          "char",
	ShapeText:          "text",
	ShapePointer:       "pointer",
	ShapePair:          "pair",
	ShapeStack:         "stack",
	ShapePriorityQueue: "priority-queue",
	ShapeQueue:         "queue",
	ShapeMap:           "map",
	ShapeSequence:      "sequence",
	ShapeStream:        "stream",
	ShapeTuple:         "tuple",
}

// String returns the shape name.
func (s Shape) String() string {
	if n, ok := shapeNames[s]; ok {
		return n
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// Char is a character value. Go folds character literals into int32, so
// character rendering ('a', '\x7') is opted into through this type:
//
//	dbg.Debug(dbg.Char('A'))
type Char rune

// Pair is a two-element value with dedicated (first, second) rendering.
// Any struct whose only fields are First and Second renders the same way.
type Pair[F, S any] struct {
	First  F
	Second S
}

// PairOf builds a [Pair] with both type parameters inferred.
func PairOf[F, S any](first F, second S) Pair[F, S] {
	return Pair[F, S]{First: first, Second: second}
}

// --- Adapter Capability Interfaces ---
//
// Stack, queue, and priority-queue adapters expose no in-place iteration,
// only destructive top/front+pop, so the formatter cannot walk them the way
// it walks a sequence. An adapter opts into rendering by implementing one of
// the interfaces below. Implementations must drain a copy: a Debug call
// never mutates the caller's adapter. The shipped [Stack], [Queue], and
// [PriorityQueue] all comply.

// Stacker is a LIFO adapter. PopOrder returns the elements a drain of a
// copy would pop, top first.
type Stacker interface {
	PopOrder() []any
}

// PriorityQueuer is an ordering adapter. PriorityOrder returns the elements
// a drain of a copy would pop, highest priority first.
//
// A type implementing both [Stacker] and PriorityQueuer renders as a stack;
// one implementing both PriorityQueuer and [Queuer] renders by priority.
type PriorityQueuer interface {
	PriorityOrder() []any
}

// Queuer is a FIFO adapter. FrontOrder returns the elements a drain of a
// copy would pop, front first.
type Queuer interface {
	FrontOrder() []any
}

// --- Classification ---

var (
	charType     = reflect.TypeOf(Char(0))
	stackerType  = reflect.TypeOf((*Stacker)(nil)).Elem()
	priorityType = reflect.TypeOf((*PriorityQueuer)(nil)).Elem()
	queuerType   = reflect.TypeOf((*Queuer)(nil)).Elem()
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
)

// ShapeOf resolves the [Shape] of v. It is a pure function of v's type:
// deterministic, total, and free of side effects. A nil value is a nil
// pointer.
func ShapeOf(v any) Shape {
	if v == nil {
		return ShapePointer
	}
	return classify(reflect.TypeOf(v))
}

// classify resolves a type to its shape. The checks run in a fixed
// precedence order, first match wins, because several of them structurally
// overlap: a map is also iterable but must render as {key: value}, adapters
// are structs but must never fall into generic struct handling, and a pair
// is a struct with dedicated two-field rendering.
func classify(t reflect.Type) Shape {
	switch t.Kind() {
	case reflect.Bool:
		return ShapeBoolean
	case reflect.String:
		return ShapeText
	case reflect.Pointer:
		// Pointers that carry their own textual form (errors, Stringers)
		// render through it; fmt follows the same rule. Anything else
		// renders as an address.
		if t.Implements(errorType) || t.Implements(stringerType) {
			return ShapeStream
		}
		return ShapePointer
	}
	if t == charType {
		return ShapeChar
	}
	if t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8 {
		return ShapeText
	}
	if isPairStruct(t) {
		return ShapePair
	}
	switch {
	case t.Implements(stackerType):
		return ShapeStack
	case t.Implements(priorityType):
		return ShapePriorityQueue
	case t.Implements(queuerType):
		return ShapeQueue
	}
	switch t.Kind() {
	case reflect.Map:
		return ShapeMap
	case reflect.Slice, reflect.Array:
		return ShapeSequence
	case reflect.Func:
		if isSeqFunc(t) {
			return ShapeSequence
		}
	}
	if t.Implements(errorType) || t.Implements(stringerType) {
		return ShapeStream
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return ShapeStream
	case reflect.Struct:
		if hasExportedField(t) {
			return ShapeTuple
		}
	}
	return ShapeOpaque
}

// isPairStruct reports whether t is a two-field struct with the fields
// First and Second, in that order. [Pair] instantiations match, and so do
// equivalent user structs.
func isPairStruct(t reflect.Type) bool {
	return t.Kind() == reflect.Struct &&
		t.NumField() == 2 &&
		t.Field(0).Name == "First" &&
		t.Field(1).Name == "Second"
}

// isSeqFunc reports whether t has the iter.Seq[T] form
// func(yield func(T) bool).
func isSeqFunc(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return false
	}
	y := t.In(0)
	return y.Kind() == reflect.Func &&
		y.NumIn() == 1 && y.NumOut() == 1 &&
		y.Out(0).Kind() == reflect.Bool
}

func hasExportedField(t reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			return true
		}
	}
	return false
}
