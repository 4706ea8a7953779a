// Package search implements the FAQ search semantics shared by the SQL path
// and the in-memory fallback: a case-insensitive substring match of one term
// against a handful of text fields.
//
// The in-memory side uses Unicode case folding (golang.org/x/text/cases). The
// SQL side lowercases both sides and escapes LIKE wildcards so user input is
// matched literally.
package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// Normalize trims surrounding whitespace from a user-supplied term.
func Normalize(term string) string {
	return strings.TrimSpace(term)
}

// Fold returns the case-folded form of s.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// MatchAny reports whether term occurs, case-insensitively, in any field.
// A blank term matches everything.
func MatchAny(term string, fields ...string) bool {
	term = Normalize(term)
	if term == "" {
		return true
	}
	needle := Fold(term)
	for _, f := range fields {
		if strings.Contains(Fold(f), needle) {
			return true
		}
	}
	return false
}

// LikePattern builds a lowercase "%term%" pattern for
// "LOWER(col) LIKE ? ESCAPE '\'". The second result is false for a blank
// term, meaning no filter should be applied.
func LikePattern(term string) (string, bool) {
	term = Normalize(term)
	if term == "" {
		return "", false
	}
	return "%" + escapeLike(strings.ToLower(term)) + "%", true
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
