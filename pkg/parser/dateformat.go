package parser

import "strings"

// formatTokens maps date-pattern tokens like MM/dd/yyyy onto Go reference
// layout fragments. Longer tokens are listed before their prefixes so the
// translation is greedy.
var formatTokens = []struct {
	pattern string
	layout  string
}{
	{"yyyy", "2006"},
	{"yy", "06"},
	{"MM", "01"},
	{"M", "1"},
	{"dd", "02"},
	{"d", "2"},
	{"HH", "15"},
	{"hh", "03"},
	{"mm", "04"},
	{"ss", "05"},
	{"tt", "PM"},
}

// translateDateFormat converts a MM/dd/yyyy-style pattern into a Go time
// layout. Unrecognized characters pass through as literals.
func translateDateFormat(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		matched := false
		for _, tok := range formatTokens {
			if strings.HasPrefix(pattern[i:], tok.pattern) {
				b.WriteString(tok.layout)
				i += len(tok.pattern)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(pattern[i])
			i++
		}
	}
	return b.String()
}
