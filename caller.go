package dbg

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
)

// Go has no preprocessor, so the literal argument text of a call is
// recovered from the caller's source file: runtime.Caller gives the call
// site, the file is read once and cached, and a small scanner locates the
// call token and its matching close paren. Every step degrades rather than
// fails: when the source is unavailable (stripped build, generated code,
// moved file) the caller gets positional placeholder names and values
// still print.

var (
	srcFiles sync.Map // file path -> []string, nil when unreadable
	argTexts sync.Map // "file:line:fn" -> raw argument text, "" when unresolved
)

// argNames resolves the argument names for a call to fn with n values,
// skip frames above this function. drop discards leading arguments that
// are not debugged values, such as the writer of Fdebug.
func argNames(skip int, fn string, n, drop int) []string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return placeholderNames(n)
	}
	raw, ok := callText(file, line, fn)
	if !ok {
		return placeholderNames(n)
	}
	if drop == 0 && n == 1 {
		// Single-argument calls bypass splitting: the whole text is the
		// one name, commas and all.
		return []string{strings.TrimSpace(raw)}
	}
	names := splitNames(raw)
	if drop >= len(names) {
		return placeholderNames(n)
	}
	return names[drop:]
}

func placeholderNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = "arg" + strconv.Itoa(i+1)
	}
	return names
}

func callText(file string, line int, fn string) (string, bool) {
	key := file + ":" + strconv.Itoa(line) + ":" + fn
	if v, ok := argTexts.Load(key); ok {
		return v.(string), v.(string) != ""
	}
	text := extractArgs(file, line, fn)
	argTexts.Store(key, text)
	return text, text != ""
}

// extractArgs finds the fn( token at or shortly before the reported line
// (the runtime may attribute a multi-line call to a later line) and
// returns the text between its parentheses.
func extractArgs(file string, line int, fn string) string {
	lines := sourceLines(file)
	if lines == nil || line < 1 || line > len(lines) {
		return ""
	}
	for back := 0; back <= 8 && line-1-back >= 0; back++ {
		li := line - 1 - back
		if col := findCall(lines[li], fn); col >= 0 {
			return scanArgs(lines, li, col+len(fn)+1)
		}
	}
	return ""
}

// findCall returns the column of the first fn( token in s that is not a
// suffix of a longer identifier, or -1.
func findCall(s, fn string) int {
	for from := 0; ; {
		i := strings.Index(s[from:], fn+"(")
		if i < 0 {
			return -1
		}
		i += from
		if i == 0 || !isIdentByte(s[i-1]) {
			return i
		}
		from = i + 1
	}
}

func isIdentByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}

// scanArgs collects source text from just after an open paren to its
// matching close paren, possibly across lines. Unlike splitNames this
// scanner must be string-aware: a paren inside a quoted literal would
// otherwise unbalance the match and capture unrelated lines. Raw string
// literals spanning lines are not followed; the scan comes up unbalanced
// and the caller falls back to placeholders.
func scanArgs(lines []string, li, col int) string {
	var b strings.Builder
	depth := 1
	for ; li < len(lines); li++ {
		s := lines[li]
		i := col
		col = 0
		for i < len(s) {
			c := s[i]
			if c == '"' || c == '\'' || c == '`' {
				j := skipString(s, i)
				b.WriteString(s[i:j])
				i = j
				continue
			}
			if c == '/' && i+1 < len(s) && s[i+1] == '/' {
				break // line comment
			}
			switch c {
			case '(', '[', '{':
				depth++
			case ')', ']', '}':
				depth--
				if depth == 0 {
					return b.String()
				}
			}
			b.WriteByte(c)
			i++
		}
		b.WriteByte(' ')
	}
	return ""
}

// skipString returns the index just past the string or rune literal
// starting at s[i], or len(s) if it does not close on this line.
func skipString(s string, i int) int {
	quote := s[i]
	for j := i + 1; j < len(s); j++ {
		if s[j] == '\\' && quote != '`' {
			j++
			continue
		}
		if s[j] == quote {
			return j + 1
		}
	}
	return len(s)
}

func sourceLines(path string) []string {
	if v, ok := srcFiles.Load(path); ok {
		return v.([]string)
	}
	var lines []string
	if data, err := os.ReadFile(path); err == nil {
		lines = strings.Split(string(data), "\n")
	}
	srcFiles.Store(path, lines)
	return lines
}

// shortFuncName trims a runtime function name like
// "github.com/bjaus/dbg_test.(*T).Method" down to "Method".
func shortFuncName(pc uintptr) string {
	f := runtime.FuncForPC(pc)
	if f == nil {
		return "?"
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// location formats a caller frame as file:line.
func location(file string, line int) string {
	return fmt.Sprintf("%s:%d", file, line)
}
