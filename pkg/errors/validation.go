package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateBox checks that box dimensions are finite and positive.
func ValidateBox(width, height float64) error {
	if math.IsNaN(width) || math.IsInf(width, 0) || width <= 0 {
		return New(ErrCodeInvalidDimensions, "box width must be a positive number, got %g", width)
	}
	if math.IsNaN(height) || math.IsInf(height, 0) || height <= 0 {
		return New(ErrCodeInvalidDimensions, "box height must be a positive number, got %g", height)
	}
	return nil
}

// ValidateRange checks that [lo, hi] is a non-empty interval. name is used in
// the message to say which placement range collapsed.
func ValidateRange(name string, lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return New(ErrCodeInvalidRules, "%s range is empty: [%g, %g]", name, lo, hi)
	}
	return nil
}

// ValidateOutputPath validates a path an artifact will be written to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid control characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "path must name a file, not a directory: %q", path)
	}

	return nil
}
