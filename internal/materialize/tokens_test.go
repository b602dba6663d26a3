package materialize

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/aabuilder/internal/config"
	"github.com/alexisbeaulieu97/aabuilder/internal/substitute"
)

func TestSubstitutionTargetsExpandPackagePath(t *testing.T) {
	t.Parallel()

	targets := SubstitutionTargets("com.varabit.app")
	require.Len(t, targets, 7)
	require.Contains(t, targets, filepath.FromSlash("app/src/main/java/com/varabit/app/MainActivity.java"))
	for _, target := range targets {
		require.NotContains(t, target, "{{")
	}
}

func TestBuildTokensForURLSource(t *testing.T) {
	t.Parallel()

	cfg := config.ApplyDefaults(config.ProjectConfig{
		AppName:     "My App",
		PackageName: "com.example.app",
		SourceType:  config.SourceURL,
		SourceURL:   "https://example.com",
		Permissions: []string{"INTERNET", "CAMERA"},
	})

	tokens, palette, err := BuildTokens(cfg)
	require.NoError(t, err)

	require.Equal(t, "My App", tokens[substitute.TokenAppName])
	require.Equal(t, "com.example.app", tokens[substitute.TokenPackageName])
	require.Equal(t, "#f26a1e", palette.Primary)
	require.Equal(t, "#c15418", tokens[substitute.TokenPrimaryColorDark])
	require.Equal(t, "#ff5f1f", tokens[substitute.TokenAccentColor])
	require.Equal(t, `webView.loadUrl("https://example.com");`, tokens[substitute.TokenLoadURL])
	require.Equal(t, "url", tokens[substitute.TokenSourceType])
	require.Equal(t, "1.0.0", tokens[substitute.TokenVersionName])
	require.Equal(t, "1", tokens[substitute.TokenVersionCode])
	require.Equal(t, "24", tokens[substitute.TokenMinSDK])
	require.Equal(t, "34", tokens[substitute.TokenTargetSDK])

	lines := strings.Split(tokens[substitute.TokenPermissions], "\n")
	require.Equal(t, []string{
		`    <uses-permission android:name="android.permission.INTERNET" />`,
		`    <uses-permission android:name="android.permission.CAMERA" />`,
	}, lines)
}

func TestBuildTokensForLocalSource(t *testing.T) {
	t.Parallel()

	cfg := config.ApplyDefaults(config.ProjectConfig{
		AppName:     "Offline",
		PackageName: "com.example.offline",
		SourceType:  config.SourceLocal,
		SourcePath:  "/srv/site",
	})

	tokens, _, err := BuildTokens(cfg)
	require.NoError(t, err)
	require.Equal(t, `webView.loadUrl("file:///android_asset/index.html");`, tokens[substitute.TokenLoadURL])
	require.Empty(t, tokens[substitute.TokenPermissions])
	require.Empty(t, tokens[substitute.TokenSourceURL])
}

func TestBuildTokensRejectsMalformedColor(t *testing.T) {
	t.Parallel()

	cfg := config.ApplyDefaults(config.ProjectConfig{AppName: "x", PackageName: "a", ColorScheme: "orange"})
	_, _, err := BuildTokens(cfg)
	require.Error(t, err)
}
