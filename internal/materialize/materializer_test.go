package materialize

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/aabuilder/internal/config"
	"github.com/alexisbeaulieu97/aabuilder/internal/model"
	aaberrors "github.com/alexisbeaulieu97/aabuilder/pkg/errors"
)

const testID = "1a2b3c4d"

func fixedID() string { return testID }

func urlConfig(output string) config.ProjectConfig {
	return config.ProjectConfig{
		AppName:     "My App",
		PackageName: "com.example.app",
		SourceType:  config.SourceURL,
		SourceURL:   "https://example.com",
		Permissions: []string{"INTERNET"},
		OutputPath:  output,
	}
}

func readFile(t *testing.T, root string, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestMaterializeURLProject(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	m := New(Options{NewID: fixedID})

	projectPath, err := m.Materialize(context.Background(), urlConfig(out))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(out, "My_App_"+testID), projectPath)
	require.True(t, filepath.IsAbs(projectPath))

	manifest := readFile(t, projectPath, "app/src/main/AndroidManifest.xml")
	require.Contains(t, manifest, `package="com.example.app"`)
	require.Contains(t, manifest, `<uses-permission android:name="android.permission.INTERNET" />`)

	activity := readFile(t, projectPath, "app/src/main/java/com/example/app/MainActivity.java")
	require.Contains(t, activity, "package com.example.app;")
	require.Contains(t, activity, `webView.loadUrl("https://example.com");`)
	require.NoFileExists(t, filepath.Join(projectPath, "app", "src", "main", "java", "MainActivity.java"))

	colors := readFile(t, projectPath, "app/src/main/res/values/colors.xml")
	require.Contains(t, colors, "#f26a1e")
	require.Contains(t, colors, "#c15418")
	require.Contains(t, colors, "#ff5f1f")

	require.Contains(t, readFile(t, projectPath, "app/src/main/res/values/strings.xml"), "My App")
	require.Contains(t, readFile(t, projectPath, "settings.gradle"), "My App")

	for _, rel := range SubstitutionTargets("com.example.app") {
		require.NotContains(t, readFile(t, projectPath, filepath.ToSlash(rel)), "{{", rel)
	}

	require.NoDirExists(t, filepath.Join(projectPath, "app", "src", "main", "assets"))
	require.NoDirExists(t, filepath.Join(projectPath, ".git"))
}

func TestMaterializeEscapesQuotedSourceURL(t *testing.T) {
	t.Parallel()

	cfg := urlConfig(t.TempDir())
	cfg.SourceURL = `https://example.com/?q="x"`

	projectPath, err := New(Options{NewID: fixedID}).Materialize(context.Background(), cfg)
	require.NoError(t, err)

	activity := readFile(t, projectPath, "app/src/main/java/com/example/app/MainActivity.java")
	require.Contains(t, activity, `webView.loadUrl("https://example.com/?q=\"x\"");`)
	require.Contains(t, activity, `private static final String SOURCE_TYPE = "url";`)
	require.NotContains(t, activity, `"x""`)

	for _, line := range strings.Split(activity, "\n") {
		if !strings.Contains(line, "example.com") {
			continue
		}
		unescaped := strings.Count(line, `"`) - strings.Count(line, `\"`)
		require.Zero(t, unescaped%2, "unbalanced string literal: %s", line)
	}
}

func TestMaterializeLocalProject(t *testing.T) {
	t.Parallel()

	const page = "<title>{{APP_NAME}}</title><h1>Test WebView App</h1>"

	source := t.TempDir()
	writeFile(t, filepath.Join(source, "index.html"), []byte(page))
	writeFile(t, filepath.Join(source, "css", "style.css"), []byte("body{}"))

	cfg := config.ProjectConfig{
		AppName:     "Test WebView App",
		PackageName: "com.example.offline",
		SourceType:  config.SourceLocal,
		SourcePath:  source,
		ColorScheme: "2196F3",
		OutputPath:  t.TempDir(),
	}

	projectPath, err := New(Options{NewID: fixedID}).Materialize(context.Background(), cfg)
	require.NoError(t, err)

	require.Equal(t, page, readFile(t, projectPath, "app/src/main/assets/index.html"))
	require.Equal(t, "body{}", readFile(t, projectPath, "app/src/main/assets/css/style.css"))

	activity := readFile(t, projectPath, "app/src/main/java/com/example/offline/MainActivity.java")
	require.Contains(t, activity, `webView.loadUrl("file:///android_asset/index.html");`)

	colors := readFile(t, projectPath, "app/src/main/res/values/colors.xml")
	require.Contains(t, colors, `<color name="colorPrimary">#2196F3</color>`)
	require.Contains(t, colors, "#1a78c2")
	require.Contains(t, colors, "#2487ff")

	manifest := readFile(t, projectPath, "app/src/main/AndroidManifest.xml")
	require.NotContains(t, manifest, "uses-permission")
}

func TestMaterializeLocalSourceFailures(t *testing.T) {
	t.Parallel()

	t.Run("missing source directory", func(t *testing.T) {
		t.Parallel()

		cfg := config.ProjectConfig{
			AppName:     "Offline",
			PackageName: "com.example.offline",
			SourceType:  config.SourceLocal,
			SourcePath:  filepath.Join(t.TempDir(), "nope"),
			OutputPath:  t.TempDir(),
		}

		_, err := New(Options{NewID: fixedID}).Materialize(context.Background(), cfg)
		require.True(t, aaberrors.IsKind(err, aaberrors.KindSourceNotFound), "%v", err)
	})

	t.Run("missing entry point", func(t *testing.T) {
		t.Parallel()

		source := t.TempDir()
		writeFile(t, filepath.Join(source, "main.html"), []byte("x"))
		output := t.TempDir()

		cfg := config.ProjectConfig{
			AppName:     "Offline",
			PackageName: "com.example.offline",
			SourceType:  config.SourceLocal,
			SourcePath:  source,
			OutputPath:  output,
		}

		_, err := New(Options{NewID: fixedID}).Materialize(context.Background(), cfg)
		require.True(t, aaberrors.IsKind(err, aaberrors.KindEntryPointMissing), "%v", err)
		require.Contains(t, err.Error(), "index.html not found")

		// Earlier steps are not rolled back.
		require.DirExists(t, filepath.Join(output, "Offline_"+testID))
		require.NoDirExists(t, filepath.Join(output, "Offline_"+testID, "app", "src", "main", "assets"))
	})
}

func TestMaterializeTemplateMissing(t *testing.T) {
	t.Parallel()

	t.Run("embedded root absent", func(t *testing.T) {
		t.Parallel()

		m := New(Options{Template: fstest.MapFS{}, TemplateRoot: "android-base", NewID: fixedID})
		_, err := m.Materialize(context.Background(), urlConfig(t.TempDir()))
		require.True(t, aaberrors.IsKind(err, aaberrors.KindTemplateMissing), "%v", err)
	})

	t.Run("template dir absent", func(t *testing.T) {
		t.Parallel()

		cfg := urlConfig(t.TempDir())
		cfg.TemplateDir = filepath.Join(t.TempDir(), "missing")

		_, err := New(Options{NewID: fixedID}).Materialize(context.Background(), cfg)
		require.True(t, aaberrors.IsKind(err, aaberrors.KindTemplateMissing), "%v", err)
	})
}

func TestMaterializeCustomTemplate(t *testing.T) {
	t.Parallel()

	tpl := fstest.MapFS{
		"settings.gradle":                     {Data: []byte(`rootProject.name = "{{APP_NAME}}"`)},
		"gradlew":                             {Data: []byte("#!/bin/sh\n"), Mode: 0o755},
		"app/src/main/AndroidManifest.xml":    {Data: []byte(`<manifest package="{{PACKAGE_NAME}}">{{PERMISSIONS}}</manifest>`)},
		"app/src/main/res/values/strings.xml": {Data: []byte("{{APP_NAME}} {{UNKNOWN}}")},
		"README.md":                           {Data: []byte("{{APP_NAME}} is not substituted here")},
	}

	var (
		mu      sync.Mutex
		results []model.StepResult
	)
	m := New(Options{
		Template: tpl,
		NewID:    fixedID,
		Progress: func(r model.StepResult) {
			mu.Lock()
			defer mu.Unlock()
			results = append(results, r)
		},
	})

	projectPath, err := m.Materialize(context.Background(), urlConfig(t.TempDir()))
	require.NoError(t, err)

	require.Equal(t, `rootProject.name = "My App"`, readFile(t, projectPath, "settings.gradle"))
	require.Equal(t, "My App {{UNKNOWN}}", readFile(t, projectPath, "app/src/main/res/values/strings.xml"))
	require.Equal(t, "{{APP_NAME}} is not substituted here", readFile(t, projectPath, "README.md"))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(filepath.Join(projectPath, "gradlew"))
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	}

	terminal := map[string]string{}
	for _, r := range results {
		if r.Done() {
			terminal[r.StepID] = r.Status
		}
	}
	require.Equal(t, model.StatusSkipped, terminal[model.StepRelocate])
	require.Equal(t, model.StatusSuccess, terminal[model.StepSubstitute])
	require.Equal(t, model.StatusSkipped, terminal[model.StepAssets])
	require.Equal(t, model.StatusSkipped, terminal[model.StepIcon])
	require.Equal(t, model.StatusSkipped, terminal[model.StepGit])
}

func TestMaterializeReportsStepsInOrder(t *testing.T) {
	t.Parallel()

	var order []string
	m := New(Options{
		NewID: fixedID,
		Progress: func(r model.StepResult) {
			if r.Status == model.StatusRunning {
				order = append(order, r.StepID)
			}
		},
	})

	_, err := m.Materialize(context.Background(), urlConfig(t.TempDir()))
	require.NoError(t, err)
	require.Equal(t, model.Steps[1:], order)
}

func TestMaterializeIcon(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		data   []byte
		status string
	}{
		{name: "square png", data: pngBytes(t, 64, 64), status: model.StatusSuccess},
		{name: "wide png", data: pngBytes(t, 64, 32), status: model.StatusWarning},
		{name: "not an image", data: []byte("definitely not pixels"), status: model.StatusWarning},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			icon := filepath.Join(t.TempDir(), "icon.png")
			writeFile(t, icon, tc.data)

			var status string
			m := New(Options{
				NewID: fixedID,
				Progress: func(r model.StepResult) {
					if r.StepID == model.StepIcon && r.Done() {
						status = r.Status
					}
				},
			})

			cfg := urlConfig(t.TempDir())
			cfg.IconPath = icon
			projectPath, err := m.Materialize(context.Background(), cfg)
			require.NoError(t, err)
			require.Equal(t, tc.status, status)

			for _, density := range IconDensities {
				got := readFile(t, projectPath, "app/src/main/res/"+density.Folder+"/"+IconFileName)
				require.Equal(t, string(tc.data), got)
			}
		})
	}
}

func TestMaterializeMissingIconIsAWarning(t *testing.T) {
	t.Parallel()

	var icon model.StepResult
	m := New(Options{
		NewID: fixedID,
		Progress: func(r model.StepResult) {
			if r.StepID == model.StepIcon && r.Done() {
				icon = r
			}
		},
	})

	cfg := urlConfig(t.TempDir())
	cfg.IconPath = filepath.Join(t.TempDir(), "absent.png")

	projectPath, err := m.Materialize(context.Background(), cfg)
	require.NoError(t, err)
	require.Equal(t, model.StatusWarning, icon.Status)
	require.NoDirExists(t, filepath.Join(projectPath, "app", "src", "main", "res", "mipmap-mdpi"))
}

func TestMaterializeInitialisesGit(t *testing.T) {
	t.Parallel()

	cfg := urlConfig(t.TempDir())
	cfg.InitGit = true

	projectPath, err := New(Options{NewID: fixedID}).Materialize(context.Background(), cfg)
	require.NoError(t, err)

	repo, err := git.PlainOpen(projectPath)
	require.NoError(t, err)

	head, err := repo.Head()
	require.NoError(t, err)

	commit, err := repo.CommitObject(head.Hash())
	require.NoError(t, err)
	require.Equal(t, "Initial commit for My App", commit.Message)
	require.Equal(t, commitAuthorName, commit.Author.Name)

	_, err = commit.File("app/src/main/java/com/example/app/MainActivity.java")
	require.NoError(t, err)
}

func TestMaterializeHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := t.TempDir()
	_, err := New(Options{NewID: fixedID}).Materialize(ctx, urlConfig(out))
	require.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestMaterializeDoesNotMutateConfig(t *testing.T) {
	t.Parallel()

	cfg := urlConfig(t.TempDir())
	cfg.Permissions = []string{"INTERNET", "INTERNET"}
	before := strings.Join(cfg.Permissions, ",")

	_, err := New(Options{NewID: fixedID}).Materialize(context.Background(), cfg)
	require.NoError(t, err)
	require.Equal(t, before, strings.Join(cfg.Permissions, ","))
	require.Empty(t, cfg.ColorScheme)
}
