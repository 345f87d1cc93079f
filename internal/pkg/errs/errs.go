// Package errs is the project's thin layer over cockroachdb/errors. Sentinels
// created here carry a stack, and Mark lets a wrapped error answer Is for a
// use-case sentinel without losing its cause.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

// Mark returns mark itself when err is nil.
func Mark(err error, mark error) error {
	if err == nil {
		return mark
	}
	return cr.Mark(err, mark)
}

func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// IsAny reports whether err matches one of references.
func IsAny(err error, references ...error) bool {
	return cr.IsAny(err, references...)
}

// ExtractStackLines renders err with its stack and keeps the first maxLines
// non-blank lines; maxLines <= 0 keeps all of them.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}

	var lines []string
	for line := range strings.SplitSeq(fmt.Sprintf("%+v", err), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if maxLines > 0 && len(lines) == maxLines {
			break
		}
	}
	return lines
}
