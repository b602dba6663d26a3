package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	aaberrors "github.com/alexisbeaulieu97/aabuilder/pkg/errors"
)

func writeConfig(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	validYAML := `appName: Test WebView App
packageName: com.varabit.testapp
sourceType: local
sourcePath: site
colorScheme: "#2196F3"
permissions:
  - INTERNET
  - CAMERA
iconPath: /abs/icon.png
initGit: true
`

	validJSON := `{
  "appName": "Remote",
  "packageName": "com.example.remote",
  "sourceType": "url",
  "sourceUrl": "https://example.com",
  "permissions": ["INTERNET"]
}`

	unknownKey := `appName: Typo
packageNmae: com.example.app
`

	brokenYAML := `appName: [unterminated
packageName: com.example.app
`

	cases := []struct {
		name     string
		file     string
		contents string
		assert   func(t *testing.T, path string, cfg ProjectConfig, err error)
	}{
		{
			name:     "yaml document is parsed and paths resolved",
			file:     "app.yaml",
			contents: validYAML,
			assert: func(t *testing.T, path string, cfg ProjectConfig, err error) {
				require.NoError(t, err)
				require.Equal(t, "Test WebView App", cfg.AppName)
				require.Equal(t, SourceLocal, cfg.SourceType)
				require.Equal(t, filepath.Join(filepath.Dir(path), "site"), cfg.SourcePath)
				require.Equal(t, "/abs/icon.png", cfg.IconPath)
				require.Equal(t, []string{"INTERNET", "CAMERA"}, cfg.Permissions)
				require.True(t, cfg.InitGit)
				require.Empty(t, cfg.OutputPath)
			},
		},
		{
			name:     "json document is accepted",
			file:     "app.json",
			contents: validJSON,
			assert: func(t *testing.T, _ string, cfg ProjectConfig, err error) {
				require.NoError(t, err)
				require.Equal(t, "com.example.remote", cfg.PackageName)
				require.Equal(t, SourceURL, cfg.SourceType)
				require.Equal(t, "https://example.com", cfg.SourceURL)
			},
		},
		{
			name:     "unknown keys are rejected",
			file:     "typo.yaml",
			contents: unknownKey,
			assert: func(t *testing.T, _ string, _ ProjectConfig, err error) {
				var parseErr *aaberrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name:     "syntax errors carry the file",
			file:     "broken.yaml",
			contents: brokenYAML,
			assert: func(t *testing.T, path string, _ ProjectConfig, err error) {
				var parseErr *aaberrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, path, parseErr.Path)
			},
		},
		{
			name:     "empty document is an error",
			file:     "empty.yaml",
			contents: "",
			assert: func(t *testing.T, _ string, _ ProjectConfig, err error) {
				require.Error(t, err)
				require.Contains(t, err.Error(), "empty")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeConfig(t, tc.file, tc.contents)
			cfg, err := Load(path)
			tc.assert(t, path, cfg, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *aaberrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
}
