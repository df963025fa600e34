package cliutil

import (
	"strings"
)

// Wrap the string `s` to a maximum width `w`.  Pass `w` == 0 to do no wrapping.
//
// In order to have some room for slop to avoid things like a short word being on a line by itself,
// most lines are actually wrapped to `w - 5`.
func Wrap(w int, s string) string {
	return wrap(0, w, s)
}

// Wrap the string `s` to a maximum width `w` with leading indent `i`.  The first line is not
// indented (this is assumed to be done by caller).  Pass `w` == 0 to do no wrapping
//
// In order to have some room for slop to avoid things like a short word being on a line by itself,
// most lines are actually wrapped to `w - 5`.
func WrapIndent(i, w int, s string) string {
	return wrap(i, w, s)
}

func wrap(indent, width int, s string) string {
	if width == 0 {
		return s
	}
	limit := width - 5

	var out strings.Builder
	for lineNum, line := range strings.Split(s, "\n") {
		if lineNum > 0 {
			out.WriteString("\n")
		}
		// Leave pre-formatted (indented) lines alone.
		if line == "" || line[0] == ' ' || line[0] == '\t' {
			out.WriteString(line)
			continue
		}
		lineLen := indent
		for pos := 0; pos < len(line); {
			sepEnd := pos
			for sepEnd < len(line) && line[sepEnd] == ' ' {
				sepEnd++
			}
			wordEnd := sepEnd
			for wordEnd < len(line) && line[wordEnd] != ' ' {
				wordEnd++
			}
			sep := line[pos:sepEnd]
			word := line[sepEnd:wordEnd]
			switch {
			case lineLen == indent && pos == 0:
				// first word on the first line; emit as-is
				out.WriteString(sep)
				out.WriteString(word)
				lineLen += len(sep) + len(word)
			case lineLen+len(sep)+len(word) >= limit:
				out.WriteString("\n")
				out.WriteString(strings.Repeat(" ", indent))
				out.WriteString(word)
				lineLen = indent + len(word)
			default:
				out.WriteString(sep)
				out.WriteString(word)
				lineLen += len(sep) + len(word)
			}
			pos = wordEnd
		}
	}
	return out.String()
}
