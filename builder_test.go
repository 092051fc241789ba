package wikibuild

import (
	"errors"
	"strings"
	"testing"
)

func TestBuilderFactory(t *testing.T) {
	factory := NewBuilderFactory()

	builders := factory.ListBuilders()
	if len(builders) != 1 {
		t.Errorf("Expected 1 builder, got %d", len(builders))
	}

	testCases := []struct {
		manifestFile string
		expectedName string
	}{
		{"Cargo.toml", "Cargo"},
		{"rust/Cargo.toml", "Cargo"},
	}

	for _, tc := range testCases {
		t.Run(tc.manifestFile, func(t *testing.T) {
			builder, err := factory.BuilderFor(tc.manifestFile)
			if err != nil {
				t.Fatalf("Expected builder for %s, got error: %v", tc.manifestFile, err)
			}

			if builder.Name() != tc.expectedName {
				t.Errorf("Expected builder %s for %s, got %s", tc.expectedName, tc.manifestFile, builder.Name())
			}
		})
	}

	// Unknown manifest files have no builder
	if _, err := factory.BuilderFor("Makefile"); err == nil {
		t.Error("Expected error for unsupported manifest file")
	}
}

func TestCargoBuilderDetection(t *testing.T) {
	builder := &CargoBuilder{}

	validFiles := []string{
		"Cargo.toml",
		"rust/Cargo.toml",
		"path/to/Cargo.toml",
	}
	invalidFiles := []string{
		"cargo.toml",
		"Makefile",
		"CMakeLists.txt",
		"Cargo.lock",
		"build.py",
	}

	for _, file := range validFiles {
		if !builder.CanBuild(file) {
			t.Errorf("Cargo builder should be able to build %s", file)
		}
	}

	for _, file := range invalidFiles {
		if builder.CanBuild(file) {
			t.Errorf("Cargo builder should not be able to build %s", file)
		}
	}
}

func TestMatchesPattern(t *testing.T) {
	testCases := []struct {
		filename string
		patterns []string
		expected bool
	}{
		{"Cargo.toml", []string{`Cargo\.toml$`}, true},
		{"rust/Cargo.toml", []string{`Cargo\.toml$`}, true},
		{"cargo.toml", []string{`Cargo\.toml$`}, false},
		{"Cargo.toml.bak", []string{`Cargo\.toml$`}, false},
		{"Makefile", []string{`Cargo\.toml$`, `Makefile$`}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.filename, func(t *testing.T) {
			result := MatchesPattern(tc.filename, tc.patterns...)
			if result != tc.expected {
				t.Errorf("MatchesPattern(%s, %v) = %v, expected %v",
					tc.filename, tc.patterns, result, tc.expected)
			}
		})
	}
}

func TestMatchesExtension(t *testing.T) {
	testCases := []struct {
		filename   string
		extensions []string
		expected   bool
	}{
		{"libwikiplugin_internal.so", []string{".so"}, true},
		{"libwikiplugin_internal.DYLIB", []string{".dylib"}, true},
		{"wikiplugin_internal.dll", []string{".so", ".dll"}, true},
		{"wikiplugin_internal.rlib", []string{".so", ".dylib", ".dll"}, false},
		{"noext", []string{".so"}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.filename, func(t *testing.T) {
			result := MatchesExtension(tc.filename, tc.extensions...)
			if result != tc.expected {
				t.Errorf("MatchesExtension(%s, %v) = %v, expected %v",
					tc.filename, tc.extensions, result, tc.expected)
			}
		})
	}
}

func TestNewBuildError(t *testing.T) {
	output := []string{"Compiling wikiplugin_internal v0.1.0", "error: linking failed"}
	err := NewBuildError("Cargo", output, errors.New("exit status 101"))

	if !errors.Is(err, ErrBuildFailed) {
		t.Errorf("Expected error to wrap ErrBuildFailed, got %v", err)
	}

	msg := err.Error()
	if !strings.HasPrefix(msg, "Cargo build failed: exit status 101") {
		t.Errorf("Unexpected error prefix: %s", msg)
	}
	if !strings.Contains(msg, "Build output:\nCompiling wikiplugin_internal v0.1.0\nerror: linking failed") {
		t.Errorf("Expected build output in error, got: %s", msg)
	}
}

func TestNewBuildErrorWithoutOutput(t *testing.T) {
	err := NewBuildError("Cargo", nil, errors.New("exit status 1"))

	if !errors.Is(err, ErrBuildFailed) {
		t.Errorf("Expected error to wrap ErrBuildFailed, got %v", err)
	}

	want := "Cargo build failed: exit status 1"
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
}
