package interpreter

import (
	"strings"
)

// Preprocess removes // comments up to end of line and trims leading and
// trailing whitespace from the whole buffer. A "//" inside a string
// literal is not a comment. Comment-only lines are kept as empty lines.
func Preprocess(src string) string {
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		lines[i] = stripComment(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// stripComment cuts line at the first // that is outside a string literal.
func stripComment(line string) string {
	inString := false
	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case inString && c == '\\':
			i++ // skip the escaped byte
		case c == '"':
			inString = !inString
		case !inString && c == '/' && i+1 < len(line) && line[i+1] == '/':
			return strings.TrimRight(line[:i], " \t\r")
		}
	}
	return line
}
