package dbg

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// unprintable is the rendering of values no shape can handle.
const unprintable = "[unprintable type]"

// Format renders v as human-readable text. It is total: every value maps
// to a string, worst case the [unprintable type] marker, and it never
// returns an error. Composite shapes recurse through Format itself, so a
// sequence of maps of pairs composes without any per-type code.
//
// Adapter-shaped values are rendered from a drained copy and the caller's
// value is left untouched; sequences and maps are iterated in place without
// mutation. There is no cycle detection: a self-referential structure does
// not terminate.
func Format(v any) string {
	switch ShapeOf(v) {
	case ShapeBoolean:
		return strconv.FormatBool(reflect.ValueOf(v).Bool())
	case ShapeChar:
		return formatChar(v.(Char))
	case ShapeText:
		return formatText(v)
	case ShapePointer:
		return formatPointer(v)
	case ShapePair:
		rv := reflect.ValueOf(v)
		return "(" + Format(rv.Field(0).Interface()) + ", " + Format(rv.Field(1).Interface()) + ")"
	case ShapeStack:
		return formatDrained(v.(Stacker).PopOrder())
	case ShapePriorityQueue:
		return formatDrained(v.(PriorityQueuer).PriorityOrder())
	case ShapeQueue:
		return formatDrained(v.(Queuer).FrontOrder())
	case ShapeMap:
		return formatMap(reflect.ValueOf(v))
	case ShapeSequence:
		return formatSequence(reflect.ValueOf(v))
	case ShapeStream:
		return formatStream(v)
	case ShapeTuple:
		return formatTuple(reflect.ValueOf(v))
	default:
		return unprintable
	}
}

// formatChar renders a printable character as 'c' and anything else as a
// quoted lowercase-hex escape with no padding: Char(7) is '\x7'.
func formatChar(c Char) string {
	if unicode.IsPrint(rune(c)) {
		return "'" + string(rune(c)) + "'"
	}
	return `'\x` + strconv.FormatInt(int64(c), 16) + "'"
}

// formatText wraps the raw content in double quotes. Interior quotes are
// not escaped; the output is for eyes, not for parsing.
func formatText(v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return `"` + rv.String() + `"`
	}
	return `"` + string(rv.Bytes()) + `"`
}

func formatPointer(v any) string {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.IsNil() {
		return "nil"
	}
	return fmt.Sprintf("%p", v)
}

func formatDrained(items []any) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = Format(item)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// formatMap renders {key: value, ...} with entries sorted by key. Go
// randomizes map iteration order, so sorting is the only way to make the
// rendering reproducible.
func formatMap(rv reflect.Value) string {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return valueLess(keys[i], keys[j]) })
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = Format(k.Interface()) + ": " + Format(rv.MapIndex(k).Interface())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// valueLess orders map keys. Keys of an ordered kind compare natively;
// everything else falls back to comparing the rendered text.
func valueLess(a, b reflect.Value) bool {
	if a.Kind() == reflect.Interface && !a.IsNil() {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface && !b.IsNil() {
		b = b.Elem()
	}
	if a.Kind() == b.Kind() {
		switch a.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return a.Int() < b.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return a.Uint() < b.Uint()
		case reflect.Float32, reflect.Float64:
			return a.Float() < b.Float()
		case reflect.String:
			return a.String() < b.String()
		}
	}
	return Format(a.Interface()) < Format(b.Interface())
}

func formatSequence(rv reflect.Value) string {
	if rv.Kind() == reflect.Func {
		return formatDrained(drainSeq(rv))
	}
	parts := make([]string, rv.Len())
	for i := range parts {
		parts[i] = Format(rv.Index(i).Interface())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// drainSeq collects the elements of an iter.Seq-shaped function by calling
// it with a reflectively built yield. The iterator is consumed, not the
// underlying collection. An endless iterator does not terminate, the same
// accepted limitation as cyclic structures.
func drainSeq(rv reflect.Value) []any {
	var items []any
	yieldType := rv.Type().In(0)
	yield := reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
		items = append(items, args[0].Interface())
		return []reflect.Value{reflect.ValueOf(true)}
	})
	rv.Call([]reflect.Value{yield})
	return items
}

// formatStream renders a value through its own textual conversion: Error
// for errors, String for Stringers, and the fmt default for plain numerics.
func formatStream(v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "nil"
	}
	switch x := v.(type) {
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprintf("%v", v)
}

// formatTuple renders a struct's exported fields positionally, in
// declaration order.
func formatTuple(rv reflect.Value) string {
	rt := rv.Type()
	var parts []string
	for i := 0; i < rt.NumField(); i++ {
		if !rt.Field(i).IsExported() {
			continue
		}
		parts = append(parts, Format(rv.Field(i).Interface()))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
