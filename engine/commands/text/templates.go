// Package text provides text formatting utilities for CLI help and output.
package text

import (
	"strings"
)

// Indentation is the standard indentation for CLI help text.
const Indentation = `  `

// LongDesc normalizes a command's long description: surrounding blank lines
// are dropped and the indentation shared by all lines is removed, so help
// text can be written indented inside raw string literals.
func LongDesc(s string) string {
	if len(s) == 0 {
		return s
	}

	return normalizer{s}.dedent().trim().string
}

// Examples normalizes a command's examples: every line is trimmed and
// re-indented by Indentation.
func Examples(s string) string {
	if len(s) == 0 {
		return s
	}

	return normalizer{s}.trim().indent().string
}

type normalizer struct {
	string
}

func (s normalizer) trim() normalizer {
	s.string = strings.TrimSpace(s.string)

	return s
}

func (s normalizer) indent() normalizer {
	indentedLines := make([]string, 0, strings.Count(s.string, "\n")+1)
	for line := range strings.SplitSeq(s.string, "\n") {
		trimmed := strings.TrimSpace(line)
		indented := Indentation + trimmed
		indentedLines = append(indentedLines, indented)
	}
	s.string = strings.Join(indentedLines, "\n")

	return s
}

// dedent removes the longest whitespace prefix shared by every non-blank line.
func (s normalizer) dedent() normalizer {
	lines := strings.Split(s.string, "\n")

	prefix := ""
	first := true
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lead := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			prefix, first = lead, false
			continue
		}
		for !strings.HasPrefix(lead, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}

	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, prefix)
	}
	s.string = strings.Join(lines, "\n")

	return s
}
