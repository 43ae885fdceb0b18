// Package fileutils holds the small file operations shared by the report and
// command packages.
package fileutils

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriteFile writes data at path, creating parent directories when needed.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
	}

	return os.WriteFile(path, data, 0o644) //nolint:gosec // reports are meant to be shared
}

// Move renames src to dst. When a rename is not possible, for example across
// filesystems, the file is copied and the source removed.
func Move(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	} else if errors.Is(err, os.ErrNotExist) {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err = out.Close(); err != nil {
		return err
	}

	return os.Remove(src)
}

// WithExt replaces the extension of path with ext (which includes the dot).
// A path without extension gets ext appended.
func WithExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// Base returns the file name of path without directory and extension.
func Base(path string) string {
	b := filepath.Base(path)

	return strings.TrimSuffix(b, filepath.Ext(b))
}
