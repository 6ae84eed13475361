package errors

import (
	"strings"
	"unicode"
)

// maxLabelLength bounds series labels, metadata strings and ordinal entries.
const maxLabelLength = 512

// ValidateLabel checks a user-supplied string that will end up as SVG text.
// Empty labels are allowed; the renderer simply draws nothing.
//
// The validation rules are intentionally conservative:
//   - Maximum length of 512 bytes
//   - No control characters other than tab
//   - No null bytes
func ValidateLabel(field, s string) error {
	if len(s) > maxLabelLength {
		return New(ErrCodeInvalidChart, "%s too long (max %d characters)", field, maxLabelLength)
	}
	for _, r := range s {
		if r == '\t' {
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidChart, "%s contains invalid control characters", field)
		}
	}
	return nil
}

// ValidateFormat checks that format is one of allowed.
func ValidateFormat(format string, allowed []string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(allowed, ", "))
}

// ValidatePath validates a user-supplied input path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}
	return nil
}
