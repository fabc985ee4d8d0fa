package errors

import (
	"strings"
	"unicode"
)

// ValidateNodeLabel validates a node label from external input.
// It rejects labels that could break the wire format or log output.
//
// The validation rules are intentionally conservative:
//   - No empty labels
//   - No control characters
//   - Maximum length of 256 characters
func ValidateNodeLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidGraph, "node label cannot be empty")
	}

	if len(label) > 256 {
		return New(ErrCodeInvalidGraph, "node label too long (max 256 characters)")
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidGraph, "node label contains invalid control characters")
		}
	}

	return nil
}

// ValidateOutputPath validates a user-supplied output filename.
// It ensures the path is reasonable and free of null bytes.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	if len(path) > 500 {
		return New(ErrCodeInvalidInput, "output path too long (max 500 characters)")
	}

	if strings.Contains(path, "\x00") {
		return New(ErrCodeInvalidInput, "output path contains null byte")
	}

	return nil
}
