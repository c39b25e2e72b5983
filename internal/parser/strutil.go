package parser

import (
	"strconv"
	"strings"
)

// Quote wraps s in double quotes, escaping as needed.
func Quote(s string) string {
	return strconv.Quote(s)
}

// Indent prefixes every line of s with n spaces. Empty lines are left alone.
func Indent(s string, n int) string {
	if n <= 0 || s == "" {
		return s
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}

// Uniq returns vals with duplicates removed, keeping the first occurrence of
// each value in place.
func Uniq[T comparable](vals []T) []T {
	seen := make(map[T]struct{}, len(vals))
	out := make([]T, 0, len(vals))
	for _, v := range vals {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
