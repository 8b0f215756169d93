package dbg

import "strings"

// maxNames caps how many argument names one call retains. Names past the
// cap are silently dropped, and values without a name are not printed.
const maxNames = 32

// splitNames splits the literal text of an argument list on top-level
// commas. The scanner keeps a single nesting depth across <, (, [ and {
// and their closers, and a comma separates arguments only at depth zero,
// so "a, f(b,c), d" yields three pieces. Each piece is trimmed.
//
// The scanner is a pure text operation and knows nothing about string
// literals: an argument whose source text contains a quoted comma or
// bracket mis-tokenizes. Known limitation, kept as is.
func splitNames(s string) []string {
	var names []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(', '[', '{':
			depth++
		case '>', ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				if len(names) < maxNames {
					names = append(names, strings.TrimSpace(s[start:i]))
				}
				start = i + 1
			}
		}
	}
	if last := strings.TrimSpace(s[start:]); last != "" && len(names) < maxNames {
		names = append(names, last)
	}
	return names
}
