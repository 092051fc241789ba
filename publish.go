package wikibuild

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// PublishArtifact copies the built shared library into the publish
// directory under its published name.
//
// The source is read from the cargo release directory
// (target/release/<source> by default) and written to
// <PublishDir>/<target>, creating the publish directory if needed and
// preserving the source file mode.
//
// Every failure returns an error wrapping ErrPublishFailed: a missing
// or unreadable source, a publish directory that cannot be created, or
// a copy that cannot complete. The built artifact is never removed, so
// a failed publish leaves it in place for manual recovery.
func PublishArtifact(config *BuildConfig, source, target string) error {
	srcPath := filepath.Join(config.releaseDir(), source)
	destPath := filepath.Join(config.publishDir(), target)

	if err := copyFile(srcPath, destPath); err != nil {
		return fmt.Errorf("%w: copying %s to %s: %v", ErrPublishFailed, srcPath, destPath, err)
	}

	config.logger().Infof("Published %s -> %s", srcPath, destPath)
	return nil
}

// copyFile copies a regular file, creating the destination directory
// and carrying over the source file mode. The source is stat'ed before
// anything is created, so a missing source leaves no empty directories
// behind.
func copyFile(srcPath, destPath string) error {
	info, err := os.Stat(srcPath)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", srcPath)
	}

	if mkErr := os.MkdirAll(filepath.Dir(destPath), 0o755); mkErr != nil {
		return mkErr
	}

	in, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}

	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
