package util

import (
	"errors"
	"strings"
	"unicode"
)

const maxFileNameLen = 64

// SanitizeFileName turns a company name into a lowercase, dash separated
// file name stem that is safe on every filesystem and in a
// Content-Disposition header.
func SanitizeFileName(name string) (string, error) {
	var b strings.Builder
	dash := false
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(unicode.ToLower(r))
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
		if b.Len() >= maxFileNameLen {
			break
		}
	}
	s := strings.Trim(b.String(), "-")
	if s == "" {
		return "", errors.New("invalid file name")
	}
	return s, nil
}
