// Package pkgpath maps dotted package identifiers onto source directories.
package pkgpath

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Placeholder marks the package directory inside templated relative paths.
const Placeholder = "{{PACKAGE_PATH}}"

// ToPath converts "com.example.app" into "com/example/app" using the host separator.
func ToPath(packageName string) string {
	return filepath.FromSlash(strings.ReplaceAll(packageName, ".", "/"))
}

// ExpandPlaceholder substitutes the package directory into a slash-separated
// template path and returns it in host form.
func ExpandPlaceholder(rel, packageName string) string {
	expanded := strings.ReplaceAll(rel, Placeholder, strings.ReplaceAll(packageName, ".", "/"))
	return filepath.FromSlash(expanded)
}

// Relocate creates <sourceRoot>/<package path> and moves <sourceRoot>/<fileName>
// into it. A missing origin is not an error; moved reports whether a move happened.
func Relocate(sourceRoot, packageName, fileName string) (target string, moved bool, err error) {
	packageDir := filepath.Join(sourceRoot, ToPath(packageName))
	if err := os.MkdirAll(packageDir, 0o755); err != nil {
		return "", false, fmt.Errorf("create package directory %s: %w", packageDir, err)
	}

	origin := filepath.Join(sourceRoot, fileName)
	target = filepath.Join(packageDir, fileName)

	if _, err := os.Stat(origin); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return target, false, nil
		}
		return "", false, fmt.Errorf("stat %s: %w", origin, err)
	}

	if err := move(origin, target); err != nil {
		return "", false, err
	}

	return target, true, nil
}

// move renames origin to target, falling back to copy+remove across devices.
func move(origin, target string) error {
	if err := os.Rename(origin, target); err == nil {
		return nil
	}

	info, err := os.Stat(origin)
	if err != nil {
		return fmt.Errorf("stat %s: %w", origin, err)
	}

	data, err := os.ReadFile(origin)
	if err != nil {
		return fmt.Errorf("read %s: %w", origin, err)
	}

	if err := os.WriteFile(target, data, info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}

	if err := os.Remove(origin); err != nil {
		return fmt.Errorf("remove %s: %w", origin, err)
	}

	return nil
}
