package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading ~/ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

// EnsureDir creates dir (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	return nil
}

// WriteSummary writes a plain-text summary file.
func WriteSummary(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

// DumpPages writes one text file per extracted page, numbered from 1.
func DumpPages(dir string, pages []string) error {
	if err := EnsureDir(dir); err != nil {
		return err
	}
	for i, text := range pages {
		path := filepath.Join(dir, fmt.Sprintf("page%02d.txt", i+1))
		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			return fmt.Errorf("writing page dump: %w", err)
		}
	}
	return nil
}
