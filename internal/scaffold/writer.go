package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// errExists is returned by writeProjectFile when the target exists and
// overwriting was not requested.
var errExists = errors.New("file already exists")

// writeProjectFile writes content to relativePath under dir, creating parent
// directories. Existing files are only replaced when overwrite is set.
func writeProjectFile(dir, relativePath string, content []byte, overwrite bool) (string, error) {
	if dir == "" {
		return "", errors.New("project directory is required")
	}
	if relativePath == "" {
		return "", errors.New("output path is required")
	}

	cleanRel := filepath.Clean(relativePath)
	if filepath.IsAbs(cleanRel) || strings.HasPrefix(cleanRel, "..") {
		return "", errors.New("output path must be relative to the project")
	}

	fullPath := filepath.Join(dir, cleanRel)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	// #nosec G302 G304 -- fullPath stays under dir; scaffolded files are committed and world-readable
	file, err := os.OpenFile(fullPath, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) || errors.Is(err, syscall.EEXIST) {
			return fullPath, errExists
		}
		return "", fmt.Errorf("write output file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if _, err := file.Write(content); err != nil {
		return "", fmt.Errorf("write output file: %w", err)
	}
	return fullPath, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
