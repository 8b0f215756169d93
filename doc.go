// Package dbg is an inline debug-printing helper. It renders arbitrary
// values human-readably without per-type formatting code and emits each one
// to a diagnostic stream (os.Stderr by default) next to the literal source
// expression that produced it:
//
//	x, ys := 42, []int{1, 2, 3}
//	dbg.Debug(x, ys)
//	// [debug] x = 42
//	// [debug] ys = [1, 2, 3]
//
// Segments are colored with ANSI escapes (cyan tag, yellow name, green
// value) via github.com/fatih/color, which disables itself on non-terminal
// output; set color.NoColor to force either way.
//
// # Shapes
//
// Every type resolves to exactly one rendering [Shape] (booleans, chars,
// text, pointers, pairs, container adapters, maps, sequences, types with
// their own textual form, structs, and an opaque fallback) in a fixed
// precedence order; see [ShapeOf]. [Format] renders a value of any shape
// and recurses into elements, keys, and values through itself, so nested
// structures compose automatically. Format is total: it never fails, and a
// value nothing else can render prints as the [unprintable type] marker.
//
// Cyclic structures are not detected and do not terminate.
//
// # Adapters
//
// Stack-, queue-, and priority-queue-like values expose no in-place
// iteration, only destructive top/front+pop. They opt into rendering
// through small capability interfaces, each contractually draining a copy
// so a debug line never mutates the caller's data:
//
//   - [Stacker] → rendered in pop order, top first
//   - [PriorityQueuer] → rendered in pop-by-priority order
//   - [Queuer] → rendered in FIFO order
//
// The package ships generic [Stack], [Queue], and [PriorityQueue] adapters
// that comply, since the standard library has none.
//
// # Expression capture
//
// Go has no preprocessor, so [Debug] recovers the argument text from the
// caller's source file: the call site comes from runtime.Caller, the file
// is read once and cached, and the argument list is split on top-level
// commas (commas nested in brackets of any kind do not split). At most 32
// names are kept. When the source is unavailable (stripped binaries,
// generated or moved files) names degrade to arg1, arg2, ... and values
// still print. String literals containing commas or brackets mis-split;
// a known limitation.
//
// # Helpers
//
//	dbg.Array("xs", xs)        // xs[N] = [all N elements]
//	dbg.ArrayN("xs", xs, n)    // first n, display capped at 20 + ", ..."
//	dbg.Assert(i < len(xs))    // on false: one red line, then the process exits
//	dbg.Trace()                // [trace] funcName() at file:line
//
// # Concurrency
//
// Lines are written in a single call under a package lock, so concurrent
// goroutines never interleave mid-line. [SetOutput] redirects the stream.
//
// dbg is not a logger: no levels, no timestamps, no structured output, no
// state. It is an embeddable diagnostic facility meant to be removed before
// code ships.
package dbg
