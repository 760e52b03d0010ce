// Package fileutil writes command output files.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// OwnerReadWrite is the file permission mode for converted documents, which
// may describe non-public APIs (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// SanitizeOutputPath cleans an output path and resolves it to an absolute
// path. Existing symlinks are refused; files that do not exist yet are fine.
func SanitizeOutputPath(path string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("fileutil: cannot resolve absolute path: %w", err)
	}

	info, err := os.Lstat(abs)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("fileutil: refusing to write to symlink: %s", abs)
		}
	case os.IsNotExist(err):
	default:
		return "", fmt.Errorf("fileutil: cannot stat path: %w", err)
	}
	return abs, nil
}

// WriteOutput writes data to path with OwnerReadWrite permissions after
// sanitizing the path.
func WriteOutput(path string, data []byte) error {
	target, err := SanitizeOutputPath(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(target, data, OwnerReadWrite); err != nil {
		return fmt.Errorf("fileutil: writing %s: %w", path, err)
	}
	return nil
}
