package wikibuild

import (
	"fmt"
	"regexp"
	"strings"
)

// MatchesPattern checks if a filename matches any of the given regex
// patterns.
//
// This is a helper for builder implementations to decide whether they
// can handle a given manifest file. If a pattern is invalid regex, it is
// silently skipped.
//
//	if MatchesPattern(filename, `Cargo\.toml$`) {
//	    // Handle Cargo.toml
//	}
func MatchesPattern(filename string, patterns ...string) bool {
	for _, pattern := range patterns {
		if matched, _ := regexp.MatchString(pattern, filename); matched {
			return true
		}
	}
	return false
}

// MatchesExtension checks if a filename has any of the given extensions.
//
// The check is case-insensitive and works with or without a leading dot.
// Useful for recognizing compiled shared libraries (.so, .dylib, .dll).
func MatchesExtension(filename string, extensions ...string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(strings.ToLower(filename), strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// NewBuildError creates a standardized build failure error with output
// context. The returned error wraps ErrBuildFailed so callers can
// classify it, and includes the captured build output for debugging:
//
//	Cargo build failed: exit status 101
//
//	Build output:
//	error[E0425]: cannot find value `x` in this scope
func NewBuildError(builder string, output []string, err error) error {
	outputStr := strings.Join(output, "\n")

	switch {
	case err != nil && outputStr != "":
		return fmt.Errorf("%s %w: %v\n\nBuild output:\n%s", builder, ErrBuildFailed, err, outputStr)
	case err != nil:
		return fmt.Errorf("%s %w: %v", builder, ErrBuildFailed, err)
	case outputStr != "":
		return fmt.Errorf("%s %w\n\nBuild output:\n%s", builder, ErrBuildFailed, outputStr)
	default:
		return fmt.Errorf("%s %w", builder, ErrBuildFailed)
	}
}
