package dbg

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"reflect"
	"runtime"
	"strings"
	"sync"

	"github.com/fatih/color"
)

const (
	debugTag  = "[debug]"
	traceTag  = "[trace]"
	assertTag = "[ASSERT FAILED]"

	// displayLimit bounds how many elements [ArrayN] renders before the
	// ", ..." marker. [Array] and [Format] are never truncated.
	displayLimit = 20
)

var (
	tagColor    = color.New(color.FgCyan)
	nameColor   = color.New(color.FgYellow)
	valueColor  = color.New(color.FgGreen)
	traceColor  = color.New(color.FgBlue)
	assertColor = color.New(color.FgRed)
)

var (
	mu  sync.Mutex
	out io.Writer = os.Stderr
)

// exit terminates the process on assertion failure. A variable so the
// package's own tests can observe the call; nothing else reassigns it.
var exit = os.Exit

// SetOutput replaces the diagnostic stream. The default is os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// write emits one rendered chunk in a single call under the package lock,
// so lines from concurrent goroutines never interleave mid-line.
func write(b []byte) {
	mu.Lock()
	defer mu.Unlock()
	out.Write(b)
}

// Debug prints one line per value to the diagnostic stream:
//
//	[debug] <expression> = <formatted value>
//
// The expression is the argument's literal source text, recovered from the
// caller's source file and split on top-level commas. Go evaluates call
// arguments left to right, so values always arrive in source order and the
// line order matches it. Name recovery never affects which values were
// evaluated; when the source is unreadable the names degrade to arg1,
// arg2, and so on.
func Debug(values ...any) {
	names := argNames(2, "Debug", len(values), 0)
	write(renderLines(names, values))
}

// Fdebug is [Debug] writing to w instead of the diagnostic stream. The
// writer argument does not get a line of its own.
func Fdebug(w io.Writer, values ...any) {
	names := argNames(2, "Fdebug", len(values), 1)
	w.Write(renderLines(names, values))
}

func renderLines(names []string, values []any) []byte {
	var buf bytes.Buffer
	for i, v := range values {
		if i >= len(names) {
			break // past the name cap, value not printed
		}
		writeDebugLine(&buf, names[i], Format(v))
	}
	return buf.Bytes()
}

func writeDebugLine(buf *bytes.Buffer, name, val string) {
	buf.WriteString(tagColor.Sprint(debugTag))
	buf.WriteByte(' ')
	buf.WriteString(nameColor.Sprint(name))
	buf.WriteString(" = ")
	buf.WriteString(valueColor.Sprint(val))
	buf.WriteByte('\n')
}

// Array prints an array or slice as name[N] = [e0, ..., eN-1], always with
// all N elements. Pointers to arrays are dereferenced. Anything without a
// length prints as a plain debug line.
func Array(name string, v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Array {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Array && rv.Kind() != reflect.Slice {
		var buf bytes.Buffer
		writeDebugLine(&buf, name, Format(v))
		write(buf.Bytes())
		return
	}
	writeArrayLine(name, rv, rv.Len(), false)
}

// ArrayN prints the first n elements of an array or slice. Display is
// truncated at 20 elements with a trailing ", ..." marker; n larger than
// the value's length is clamped rather than read past the end.
func ArrayN(name string, v any, n int) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Array {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Array && rv.Kind() != reflect.Slice {
		var buf bytes.Buffer
		writeDebugLine(&buf, name, Format(v))
		write(buf.Bytes())
		return
	}
	if n > rv.Len() {
		n = rv.Len()
	}
	if n < 0 {
		n = 0
	}
	writeArrayLine(name, rv, n, true)
}

func writeArrayLine(name string, rv reflect.Value, n int, truncate bool) {
	var parts []string
	for i := 0; i < n; i++ {
		if truncate && i == displayLimit {
			parts = append(parts, "...")
			break
		}
		parts = append(parts, Format(rv.Index(i).Interface()))
	}
	var buf bytes.Buffer
	buf.WriteString(tagColor.Sprint(debugTag))
	buf.WriteByte(' ')
	buf.WriteString(nameColor.Sprintf("%s[%d]", name, n))
	buf.WriteString(" = ")
	buf.WriteString(valueColor.Sprint("[" + strings.Join(parts, ", ") + "]"))
	buf.WriteByte('\n')
	write(buf.Bytes())
}

// Assert does nothing when cond is true. When it is false, Assert writes
// one line with the call site and the condition's source text, then
// terminates the process. The failure is deliberately unrecoverable: it
// marks a "should never happen" contract, not an error to handle.
func Assert(cond bool) {
	if cond {
		return
	}
	_, file, line, _ := runtime.Caller(1)
	text := argNames(2, "Assert", 1, 0)[0]
	var buf bytes.Buffer
	buf.WriteString(assertColor.Sprint(assertTag))
	fmt.Fprintf(&buf, " %s - %s\n", location(file, line), text)
	write(buf.Bytes())
	exit(1)
}

// Trace writes an unconditional [trace] line with the calling function's
// name and source location. It has no other effect.
func Trace() {
	pc, file, line, ok := runtime.Caller(1)
	if !ok {
		return
	}
	var buf bytes.Buffer
	buf.WriteString(traceColor.Sprint(traceTag))
	fmt.Fprintf(&buf, " %s() at %s\n", shortFuncName(pc), location(file, line))
	write(buf.Bytes())
}
