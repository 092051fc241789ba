package wikibuild

import "fmt"

// LibraryName is the crate's library name as declared in Cargo.toml.
// Both the cargo output filename and the published filename derive from
// it, and the Lua side requires the module to load under this exact
// name, so it is deliberately a fixed constant rather than configuration.
const LibraryName = "wikiplugin_internal"

// Platform identifiers as reported by runtime.GOOS.
const (
	platformLinux   = "linux"
	platformDarwin  = "darwin"
	platformWindows = "windows"
)

// PlatformNames resolves an operating system identifier to the pair of
// artifact filenames the pipeline works with: the filename cargo writes
// under target/release, and the filename the artifact is published
// under in the lua/ directory.
//
// Neovim resolves Lua C modules through package.cpath, which probes for
// .so on Linux and macOS and .dll on Windows. That is why the macOS
// .dylib is published under a .so name.
//
// Any identifier outside the three supported platforms returns an error
// wrapping ErrUnsupportedPlatform. The lookup has no side effects.
func PlatformNames(goos string) (source, target string, err error) {
	switch goos {
	case platformLinux:
		return "lib" + LibraryName + ".so", LibraryName + ".so", nil
	case platformDarwin:
		return "lib" + LibraryName + ".dylib", LibraryName + ".so", nil
	case platformWindows:
		return LibraryName + ".dll", LibraryName + ".dll", nil
	default:
		return "", "", fmt.Errorf("%w %q", ErrUnsupportedPlatform, goos)
	}
}
