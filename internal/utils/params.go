// Package utils holds query-parameter helpers shared by the handlers and
// services.
package utils

import (
	"strconv"
	"strings"
)

// AtoiDefault parses s (surrounding spaces ignored) and returns def when it
// is blank or not an integer.
func AtoiDefault(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// ClampInt bounds n to [lo, hi]. Values below lo fall back to def.
func ClampInt(n, def, lo, hi int) int {
	if n < lo {
		return def
	}
	if n > hi {
		return hi
	}
	return n
}
