package materialize

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// copyTree copies every file below root in fsys into dst, creating
// directories as needed. Content is copied byte for byte. It returns the
// number of files written.
func copyTree(fsys fs.FS, root, dst string) (int, error) {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return 0, err
	}

	copied := 0
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Skip the root itself to avoid nesting it inside dst.
		if p == root {
			return nil
		}

		rel := p
		if root != "." {
			rel = path.Clean(p[len(root)+1:])
		}
		target := filepath.Join(dst, filepath.FromSlash(rel))

		info, err := d.Info()
		if err != nil {
			return err
		}

		if d.Type()&fs.ModeSymlink != 0 {
			// Follow the link; linked directories are not descended into.
			info, err = fs.Stat(fsys, p)
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}
		}

		if info.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		if err := copyFile(fsys, p, target, filePerm(info.Mode())); err != nil {
			return err
		}
		copied++
		return nil
	})

	return copied, err
}

// copyFile copies a single file from fsys to target on disk.
func copyFile(fsys fs.FS, name, target string, perm os.FileMode) error {
	src, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("copy %s: %w", name, err)
	}

	return dst.Close()
}

// copyPath copies one file on disk to target.
func copyPath(source, target string) error {
	info, err := os.Stat(source)
	if err != nil {
		return err
	}
	return copyFile(os.DirFS(filepath.Dir(source)), filepath.Base(source), target, filePerm(info.Mode()))
}

// filePerm normalises source modes: embedded files are read-only, so
// generated files get 0644 and keep only the executable bit.
func filePerm(mode fs.FileMode) os.FileMode {
	if mode&0o111 != 0 {
		return 0o755
	}
	return 0o644
}
