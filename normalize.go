// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/htmltext

package htmltext

import (
	"strings"
	"unicode"
)

// normalizeListMarker validates bullet marker and falls back to default.
func normalizeListMarker(value string) string {
	switch strings.TrimSpace(value) {
	case "*":
		return "*"
	case "-":
		return "-"
	case "+":
		return "+"
	default:
		return defaultListMarker
	}
}

// collapseWhitespace replaces every whitespace run with a single space.
func collapseWhitespace(text string) string {
	var out strings.Builder
	out.Grow(len(text))

	inSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !inSpace {
				out.WriteByte(' ')
			}

			inSpace = true
			continue
		}

		inSpace = false
		out.WriteRune(r)
	}

	return out.String()
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}

// normalizeOutput trims trailing blanks and collapses repeated blank lines.
func normalizeOutput(text string) string {
	text = normalizeLineEndings(text)
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	blankCount := 0
	for _, rawLine := range lines {
		line := strings.TrimRight(rawLine, " \t")
		if line == "" {
			if blankCount == 0 && len(out) > 0 {
				out = append(out, "")
			}

			blankCount++
			continue
		}

		blankCount = 0
		out = append(out, line)
	}

	result := strings.TrimRight(strings.Join(out, "\n"), "\n")
	if result == "" {
		return ""
	}

	return ensureTrailingNewline(result)
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	value = strings.TrimRight(value, "\n")
	return value + "\n"
}
