package errors

import (
	"strings"
	"unicode"
)

// ValidateProblemName validates a TSPLIB problem name.
// The name is embedded verbatim in the NAME header line of the problem file,
// so anything that could break the line-oriented format is rejected.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters (including newlines)
//   - No path separators (the name doubles as the problem file base name)
//   - Maximum length of 128 characters
func ValidateProblemName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidArgument, "problem name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidArgument, "problem name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidArgument, "problem name contains control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidArgument, "problem name cannot contain path separators")
	}

	return nil
}

// ValidateComment validates a TSPLIB comment line.
// Comments share a line with the COMMENT keyword and must stay on it.
func ValidateComment(comment string) error {
	for _, r := range comment {
		if r == '\n' || r == '\r' {
			return New(ErrCodeInvalidArgument, "comment cannot contain line breaks")
		}
	}
	return nil
}
