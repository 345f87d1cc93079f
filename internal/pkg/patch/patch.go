// Package patch merges optional request fields over stored values.
package patch

import "strings"

// Coalesce returns *ptr, or fallback when the field was absent.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Text is Coalesce for free-form input. A present value is trimmed; an
// explicit empty string clears the field.
func Text(ptr *string, fallback string) string {
	if ptr == nil {
		return fallback
	}
	return strings.TrimSpace(*ptr)
}
