package materialize

import (
	"strconv"

	"github.com/alexisbeaulieu97/aabuilder/internal/color"
	"github.com/alexisbeaulieu97/aabuilder/internal/config"
	"github.com/alexisbeaulieu97/aabuilder/internal/pkgpath"
	"github.com/alexisbeaulieu97/aabuilder/internal/substitute"
)

// substitutionTargets lists the template files that receive token
// substitution, relative to the project root. Other files are copied untouched.
var substitutionTargets = []string{
	"app/src/main/AndroidManifest.xml",
	"app/src/main/res/values/strings.xml",
	"app/src/main/res/values/colors.xml",
	"app/src/main/java/" + pkgpath.Placeholder + "/MainActivity.java",
	"app/build.gradle",
	"build.gradle",
	"settings.gradle",
}

// SubstitutionTargets returns the allowlist with the package path expanded,
// in host path form.
func SubstitutionTargets(packageName string) []string {
	out := make([]string, len(substitutionTargets))
	for i, rel := range substitutionTargets {
		out[i] = pkgpath.ExpandPlaceholder(rel, packageName)
	}
	return out
}

// BuildTokens derives the token table for cfg. cfg is expected to have
// defaults applied.
func BuildTokens(cfg config.ProjectConfig) (substitute.Tokens, color.Palette, error) {
	palette, err := color.DerivePalette(cfg.ColorScheme)
	if err != nil {
		return nil, color.Palette{}, err
	}

	remote := cfg.EffectiveSourceType() == config.SourceURL

	tokens := substitute.Tokens{
		substitute.TokenAppName:          cfg.AppName,
		substitute.TokenPackageName:      cfg.PackageName,
		substitute.TokenPermissions:      substitute.PermissionBlock(cfg.Permissions),
		substitute.TokenPrimaryColor:     palette.Primary,
		substitute.TokenPrimaryColorDark: palette.PrimaryDark,
		substitute.TokenAccentColor:      palette.Accent,
		substitute.TokenSourceURL:        cfg.SourceURL,
		substitute.TokenSourceType:       string(cfg.EffectiveSourceType()),
		substitute.TokenLoadURL:          substitute.LoadStatement(remote, cfg.SourceURL),
		substitute.TokenVersionName:      cfg.VersionName,
		substitute.TokenVersionCode:      strconv.Itoa(cfg.VersionCode),
		substitute.TokenMinSDK:           strconv.Itoa(cfg.MinSDK),
		substitute.TokenTargetSDK:        strconv.Itoa(cfg.TargetSDK),
	}

	return tokens, palette, nil
}
