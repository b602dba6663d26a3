// Package templates provides the embedded Android base project.
package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// AndroidBase is the directory inside FS holding the base project tree.
const AndroidBase = "android-base"

//go:embed all:android-base
var FS embed.FS

// ListFiles returns every file in the embedded filesystem under root, in
// lexical order.
func ListFiles(root string) ([]string, error) {
	var files []string

	err := fs.WalkDir(FS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, p)
		}
		return nil
	})

	return files, err
}

// ReadFile reads a file from the embedded filesystem.
func ReadFile(path string) ([]byte, error) {
	return FS.ReadFile(path)
}

// Export writes the base project tree into dst, which must be missing or
// empty. It returns the exported paths relative to dst, slash separated.
func Export(dst string) ([]string, error) {
	entries, err := os.ReadDir(dst)
	switch {
	case err == nil && len(entries) > 0:
		return nil, fmt.Errorf("export template: %s is not empty", dst)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("export template: %w", err)
	}

	files, err := ListFiles(AndroidBase)
	if err != nil {
		return nil, err
	}

	exported := make([]string, 0, len(files))
	for _, file := range files {
		rel := strings.TrimPrefix(file, AndroidBase+"/")
		data, err := ReadFile(file)
		if err != nil {
			return exported, err
		}

		target := filepath.Join(dst, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return exported, fmt.Errorf("export template: %w", err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return exported, fmt.Errorf("export template: %w", err)
		}
		exported = append(exported, rel)
	}

	return exported, nil
}
