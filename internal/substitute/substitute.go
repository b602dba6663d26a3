// Package substitute resolves literal placeholder tokens in generated files.
package substitute

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Token names recognised in the Android base template.
const (
	TokenAppName          = "{{APP_NAME}}"
	TokenPackageName      = "{{PACKAGE_NAME}}"
	TokenPermissions      = "{{PERMISSIONS}}"
	TokenPrimaryColor     = "{{PRIMARY_COLOR}}"
	TokenPrimaryColorDark = "{{PRIMARY_COLOR_DARK}}"
	TokenAccentColor      = "{{ACCENT_COLOR}}"
	TokenSourceURL        = "{{SOURCE_URL}}"
	TokenSourceType       = "{{SOURCE_TYPE}}"
	TokenLoadURL          = "{{LOAD_URL}}"
	TokenVersionName      = "{{VERSION_NAME}}"
	TokenVersionCode      = "{{VERSION_CODE}}"
	TokenMinSDK           = "{{MIN_SDK}}"
	TokenTargetSDK        = "{{TARGET_SDK}}"
)

// Tokens maps literal placeholder markers to their replacement values.
type Tokens map[string]string

// Replacer builds a single-pass replacer for the token set. Replacement
// values are never scanned again, so a value that happens to contain a token
// is written verbatim.
func (t Tokens) Replacer() *strings.Replacer {
	pairs := make([]string, 0, len(t)*2)
	for token, value := range t {
		if token == "" {
			continue
		}
		pairs = append(pairs, token, value)
	}
	return strings.NewReplacer(pairs...)
}

// Apply replaces every occurrence of every token in content.
func Apply(content string, tokens Tokens) string {
	if len(tokens) == 0 {
		return content
	}
	return tokens.Replacer().Replace(content)
}

// ApplyFile rewrites path in place. The file mode is preserved and the new
// content replaces the old one atomically. changed is false when no token
// was present, in which case the file is not rewritten.
func ApplyFile(path string, tokens Tokens) (changed bool, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	original := string(data)
	updated := Apply(original, tokens)
	if updated == original {
		return false, nil
	}

	if err := writeFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}

	return true, nil
}

// Outcome reports what ApplyTree did with one allowlisted file.
type Outcome struct {
	Path    string
	Exists  bool
	Changed bool
}

// ApplyTree applies tokens to each relative path under root. Paths that do
// not exist are skipped and reported with Exists=false.
func ApplyTree(root string, files []string, tokens Tokens) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(files))

	for _, rel := range files {
		full := filepath.Join(root, rel)

		changed, err := ApplyFile(full, tokens)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				outcomes = append(outcomes, Outcome{Path: rel})
				continue
			}
			return outcomes, err
		}

		outcomes = append(outcomes, Outcome{Path: rel, Exists: true, Changed: changed})
	}

	return outcomes, nil
}
