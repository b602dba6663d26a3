//go:build !windows

package substitute

import (
	"os"

	"github.com/google/renameio/v2"
)

// writeFile replaces path via temp file, fsync and rename.
func writeFile(path string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(path, data, perm)
}
