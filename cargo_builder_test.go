package wikibuild

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCargoArgs(t *testing.T) {
	builder := &CargoBuilder{}
	crateDir := t.TempDir()

	// No Cargo.lock, no extras
	args := builder.cargoArgs(&BuildConfig{}, crateDir)
	want := []string{"build", "--release"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("Expected args %v, got %v", want, args)
	}

	// Cargo.lock present forces --locked
	lockPath := filepath.Join(crateDir, "Cargo.lock")
	if err := os.WriteFile(lockPath, []byte("# lock"), 0o600); err != nil {
		t.Fatalf("failed to write Cargo.lock: %v", err)
	}

	config := &BuildConfig{
		Jobs:      4,
		BuildArgs: []string{"--features", "test-helpers"},
	}
	args = builder.cargoArgs(config, crateDir)
	want = []string{"build", "--release", "--locked", "--jobs", "4", "--features", "test-helpers"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("Expected args %v, got %v", want, args)
	}
}

func TestCargoPathOverride(t *testing.T) {
	builder := &CargoBuilder{}

	t.Setenv("CARGO", "/opt/rust/bin/cargo")
	if got := builder.cargoPath(); got != "/opt/rust/bin/cargo" {
		t.Errorf("Expected CARGO override, got %q", got)
	}

	t.Setenv("CARGO", "")
	if got := builder.cargoPath(); got != "cargo" {
		t.Errorf("Expected default cargo path, got %q", got)
	}
}

func TestCargoBuilderRequiredTools(t *testing.T) {
	builder := &CargoBuilder{}

	tools := builder.RequiredTools()
	if len(tools) != 1 {
		t.Fatalf("Expected 1 required tool, got %d", len(tools))
	}
	if tools[0].Name != "cargo" {
		t.Errorf("Expected cargo requirement, got %q", tools[0].Name)
	}
	if tools[0].Optional {
		t.Error("cargo must not be optional")
	}
}

func TestFindCargoOutputs(t *testing.T) {
	releaseDir := t.TempDir()

	files := []string{
		"libwikiplugin_internal.so",
		"libwikiplugin_internal.dylib",
		"wikiplugin_internal.dll",
		"libwikiplugin_internal.rlib",
		"wikiplugin_internal.d",
	}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(releaseDir, name), []byte("x"), 0o600); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	builder := &CargoBuilder{}
	outputs, err := builder.findCargoOutputs(releaseDir)
	if err != nil {
		t.Fatalf("findCargoOutputs returned error: %v", err)
	}

	if len(outputs) != 3 {
		t.Errorf("Expected 3 shared libraries, got %d: %v", len(outputs), outputs)
	}
	for _, out := range outputs {
		if !MatchesExtension(out, ".so", ".dylib", ".dll") {
			t.Errorf("Unexpected output %s", out)
		}
	}
}
