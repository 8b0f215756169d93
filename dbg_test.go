package dbg_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/bjaus/dbg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test types: pair-shaped struct ---

type coord struct {
	First  int
	Second int
}

// --- Test types: tuple structs ---

type person struct {
	Name string
	Age  int
}

type partiallyExported struct {
	A int
	b int
}

type nothingExported struct {
	a int
	b string
}

// --- Test types: textual conversion ---

type version struct {
	major, minor int
}

func (v version) String() string { return "v1.2" }

// --- Test types: capability overlap ---

type deque struct{}

func (deque) PopOrder() []any   { return []any{2, 1} }
func (deque) FrontOrder() []any { return []any{1, 2} }

type orderedQueue struct{}

func (orderedQueue) PriorityOrder() []any { return []any{9, 1} }
func (orderedQueue) FrontOrder() []any    { return []any{1, 9} }

func TestFormatBoolean(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "true", dbg.Format(true))
	assert.Equal(t, "false", dbg.Format(false))
}

func TestFormatChar(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "'A'", dbg.Format(dbg.Char('A')))
	assert.Equal(t, `'\x7'`, dbg.Format(dbg.Char(7)))
	assert.Equal(t, `'\xa'`, dbg.Format(dbg.Char('\n')))
	assert.Equal(t, `'\x1b'`, dbg.Format(dbg.Char(27)))
}

func TestFormatText(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `"hello"`, dbg.Format("hello"))
	assert.Equal(t, `""`, dbg.Format(""))
	assert.Equal(t, `"hey"`, dbg.Format([]byte("hey")))
	// Interior quotes pass through unescaped. Known limitation.
	assert.Equal(t, `"say "hi""`, dbg.Format(`say "hi"`))
}

func TestFormatPointer(t *testing.T) {
	t.Parallel()
	x := 42
	s := dbg.Format(&x)
	assert.True(t, len(s) > 2 && s[:2] == "0x", "want an address, got %q", s)

	var p *int
	assert.Equal(t, "nil", dbg.Format(p))
	assert.Equal(t, "nil", dbg.Format(nil))
}

func TestFormatNumbers(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "42", dbg.Format(42))
	assert.Equal(t, "-7", dbg.Format(int8(-7)))
	assert.Equal(t, "3.5", dbg.Format(3.5))
	assert.Equal(t, "(1+2i)", dbg.Format(complex(1, 2)))
}

func TestFormatPair(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `(1, "x")`, dbg.Format(dbg.PairOf(1, "x")))
	assert.Equal(t, "(3, 4)", dbg.Format(coord{First: 3, Second: 4}))
	// Pairs nest through the same entry point.
	assert.Equal(t, `((1, 2), "deep")`, dbg.Format(dbg.PairOf(dbg.PairOf(1, 2), "deep")))
}

func TestFormatTuple(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `("bob", 3)`, dbg.Format(person{Name: "bob", Age: 3}))
	assert.Equal(t, "(1)", dbg.Format(partiallyExported{A: 1, b: 2}))
	assert.Equal(t, "[unprintable type]", dbg.Format(nothingExported{a: 1, b: "x"}))
}

func TestFormatStack(t *testing.T) {
	t.Parallel()
	var st dbg.Stack[int]
	st.Push(1)
	st.Push(2)
	st.Push(3)

	assert.Equal(t, "[3, 2, 1]", dbg.Format(st))

	// Formatting drains a copy: the stack is untouched.
	require.Equal(t, 3, st.Len())
	assert.Equal(t, 3, st.Top())
}

func TestFormatQueue(t *testing.T) {
	t.Parallel()
	var q dbg.Queue[string]
	q.Push("a")
	q.Push("b")

	assert.Equal(t, `["a", "b"]`, dbg.Format(q))
	require.Equal(t, 2, q.Len())
	assert.Equal(t, "a", q.Front())
}

func TestFormatPriorityQueue(t *testing.T) {
	t.Parallel()
	pq := dbg.NewPriorityQueue(func(a, b int) bool { return a > b })
	pq.Push(2)
	pq.Push(5)
	pq.Push(1)

	assert.Equal(t, "[5, 2, 1]", dbg.Format(pq))
	require.Equal(t, 3, pq.Len())
	assert.Equal(t, 5, pq.Top())
}

func TestFormatMap(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `{"a": 1, "b": 2}`, dbg.Format(map[string]int{"a": 1, "b": 2}))
	// Numeric keys sort numerically, not lexically.
	assert.Equal(t, `{2: "y", 10: "x"}`, dbg.Format(map[int]string{10: "x", 2: "y"}))
	assert.Equal(t, "{}", dbg.Format(map[string]int{}))
}

func TestFormatSequence(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "[1, 2, 3]", dbg.Format([]int{1, 2, 3}))
	assert.Equal(t, "[true, false]", dbg.Format([2]bool{true, false}))
	assert.Equal(t, "[]", dbg.Format([]int{}))
}

func TestFormatIterSeq(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "[1, 2, 3]", dbg.Format(slices.Values([]int{1, 2, 3})))
}

func TestFormatStream(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "v1.2", dbg.Format(version{major: 1, minor: 2}))
	assert.Equal(t, "boom", dbg.Format(errors.New("boom")))
}

func TestFormatOpaque(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "[unprintable type]", dbg.Format(make(chan int)))
	assert.Equal(t, "[unprintable type]", dbg.Format(TestFormatOpaque))
}

func TestFormatNested(t *testing.T) {
	t.Parallel()
	v := map[string][]dbg.Pair[int, string]{
		"a": {dbg.PairOf(1, "one"), dbg.PairOf(2, "two")},
	}
	assert.Equal(t, `{"a": [(1, "one"), (2, "two")]}`, dbg.Format(v))
}

func TestShapeOf(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		v    any
		want dbg.Shape
	}{
		{"bool", true, dbg.ShapeBoolean},
		{"char", dbg.Char('x'), dbg.ShapeChar},
		{"string", "s", dbg.ShapeText},
		{"bytes", []byte("s"), dbg.ShapeText},
		{"pointer", new(int), dbg.ShapePointer},
		{"nil", nil, dbg.ShapePointer},
		{"pair", dbg.PairOf(1, 2), dbg.ShapePair},
		{"stack", dbg.Stack[int]{}, dbg.ShapeStack},
		{"queue", dbg.Queue[int]{}, dbg.ShapeQueue},
		{"pqueue", dbg.NewPriorityQueue(func(a, b int) bool { return a < b }), dbg.ShapePriorityQueue},
		{"map", map[int]int{}, dbg.ShapeMap},
		{"slice", []int{}, dbg.ShapeSequence},
		{"array", [3]int{}, dbg.ShapeSequence},
		{"iter", slices.Values([]int{}), dbg.ShapeSequence},
		{"int", 1, dbg.ShapeStream},
		{"stringer", version{}, dbg.ShapeStream},
		{"error", errors.New("e"), dbg.ShapeStream},
		{"struct", person{}, dbg.ShapeTuple},
		{"chan", make(chan int), dbg.ShapeOpaque},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dbg.ShapeOf(tt.v))
		})
	}
}

func TestShapePrecedence(t *testing.T) {
	t.Parallel()
	// A type with both stack and queue capability renders as a stack, and
	// priority order beats FIFO: neither may fall back to the weaker shape.
	assert.Equal(t, dbg.ShapeStack, dbg.ShapeOf(deque{}))
	assert.Equal(t, "[2, 1]", dbg.Format(deque{}))
	assert.Equal(t, dbg.ShapePriorityQueue, dbg.ShapeOf(orderedQueue{}))
	assert.Equal(t, "[9, 1]", dbg.Format(orderedQueue{}))
}

func TestShapeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "stack", dbg.ShapeStack.String())
	assert.Equal(t, "opaque", dbg.ShapeOpaque.String())
	assert.Equal(t, "shape(99)", dbg.Shape(99).String())
}

func TestAdapters(t *testing.T) {
	t.Parallel()

	t.Run("stack", func(t *testing.T) {
		t.Parallel()
		var st dbg.Stack[int]
		assert.True(t, st.Empty())
		st.Push(1)
		st.Push(2)
		assert.Equal(t, 2, st.Top())
		assert.Equal(t, 2, st.Pop())
		assert.Equal(t, 1, st.Pop())
		assert.True(t, st.Empty())
	})

	t.Run("queue", func(t *testing.T) {
		t.Parallel()
		var q dbg.Queue[int]
		q.Push(1)
		q.Push(2)
		assert.Equal(t, 1, q.Front())
		assert.Equal(t, 1, q.Pop())
		assert.Equal(t, 2, q.Pop())
		assert.True(t, q.Empty())
	})

	t.Run("priority queue", func(t *testing.T) {
		t.Parallel()
		pq := dbg.NewPriorityQueue(func(a, b int) bool { return a < b })
		for _, v := range []int{5, 1, 4, 2} {
			pq.Push(v)
		}
		var got []int
		for !pq.Empty() {
			got = append(got, pq.Pop())
		}
		assert.Equal(t, []int{1, 2, 4, 5}, got)
	})

	t.Run("zero priority queue", func(t *testing.T) {
		t.Parallel()
		var pq dbg.PriorityQueue[int]
		assert.True(t, pq.Empty())
		assert.Nil(t, pq.PriorityOrder())
	})
}
