package materialize

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/alexisbeaulieu97/aabuilder/internal/config"
	"github.com/alexisbeaulieu97/aabuilder/internal/pkgpath"
	"github.com/alexisbeaulieu97/aabuilder/internal/substitute"
	aaberrors "github.com/alexisbeaulieu97/aabuilder/pkg/errors"
)

// Change is one allowlisted file as it would be written for a project.
type Change struct {
	// Template is the file's path inside the template, slash separated.
	Template string
	// Path is the file's path inside the generated project, slash separated.
	Path   string
	Before []byte
	After  []byte
}

// Preview computes the customised content of every allowlisted template file
// without writing anything. Files the template does not provide are omitted.
func (m *Materializer) Preview(cfg config.ProjectConfig) ([]Change, error) {
	cfg = config.ApplyDefaults(cfg)
	fsys, root, label := m.templateSource(cfg)

	if info, err := fs.Stat(fsys, root); err != nil || !info.IsDir() {
		if err == nil {
			err = fmt.Errorf("%s is not a directory", label)
		}
		return nil, aaberrors.NewGenerationError(aaberrors.KindTemplateMissing, label, templateErrMsg, err)
	}

	tokens, _, err := BuildTokens(cfg)
	if err != nil {
		return nil, aaberrors.NewValidationError(aaberrors.KindInvalidField, "colorScheme", err.Error(), err)
	}

	changes := make([]Change, 0, len(substitutionTargets))
	for _, rel := range substitutionTargets {
		source := strings.Replace(rel, pkgpath.Placeholder+"/", "", 1)
		data, err := fs.ReadFile(fsys, path.Join(root, source))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, aaberrors.NewIOError(source, "read template file", err)
		}

		changes = append(changes, Change{
			Template: source,
			Path:     strings.ReplaceAll(rel, pkgpath.Placeholder, strings.ReplaceAll(cfg.PackageName, ".", "/")),
			Before:   data,
			After:    []byte(substitute.Apply(string(data), tokens)),
		})
	}

	return changes, nil
}
