// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate

import (
	"strings"

	"golang.org/x/text/cases"
)

// SameName reports whether two names are equal once surrounding whitespace is
// trimmed and Unicode case is folded.
func SameName(a, b string) bool {
	// A Caser keeps internal state, so each call gets its own.
	fold := cases.Fold()
	return fold.String(strings.TrimSpace(a)) == fold.String(strings.TrimSpace(b))
}

// ContainsName reports whether any element of items has a name equal to
// candidate under [SameName].
func ContainsName[T any](items []T, candidate string, name func(T) string) bool {
	for _, item := range items {
		if SameName(name(item), candidate) {
			return true
		}
	}
	return false
}
