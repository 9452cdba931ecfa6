// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fluiddoc

package fluiddoc

import (
	"strings"
)

// headline renders a title between two "=" lines as long as the title in bytes.
// The block carries no trailing newline.
func headline(title string) string {
	decoration := strings.Repeat("=", len(title))
	return decoration + "\n" + title + "\n" + decoration
}

// underline renders a title followed by a line of marker repeated to the title length.
func underline(title, marker string) string {
	if marker == "" {
		marker = "-"
	}

	return title + "\n" + strings.Repeat(marker[:1], len(title))
}

// indentLines prefixes every non-empty line with width spaces.
func indentLines(width int, text string) string {
	prefix := strings.Repeat(" ", width)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}

		lines[i] = prefix + line
	}

	return strings.Join(lines, "\n")
}

// inlineLiteral wraps value as an RST inline literal.
func inlineLiteral(value string) string {
	return "``" + value + "``"
}

// normalizeDescription keeps schema documentation verbatim apart from
// line endings, common indentation and surrounding blank lines.
func normalizeDescription(text string) string {
	lines := strings.Split(normalizeLineEndings(text), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	common := -1
	for _, line := range lines {
		if line == "" {
			continue
		}

		width := len(line) - len(strings.TrimLeft(line, " \t"))
		if common < 0 || width < common {
			common = width
		}
	}

	if common > 0 {
		for i, line := range lines {
			if len(line) >= common {
				lines[i] = line[common:]
			}
		}
	}

	return strings.Join(lines, "\n")
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}

// normalizeRSTOutput strips trailing whitespace of every line and trailing blank lines.
// Blank line runs are kept because RST section layout depends on them.
func normalizeRSTOutput(text string) string {
	lines := strings.Split(normalizeLineEndings(text), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	value = strings.TrimRight(value, "\n")
	return value + "\n"
}
