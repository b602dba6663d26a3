package config

import (
	"strings"

	"github.com/alexisbeaulieu97/aabuilder/internal/color"
)

// SourceType selects where the generated app loads its content from.
type SourceType string

const (
	// SourceURL loads a remote page.
	SourceURL SourceType = "url"
	// SourceLocal bundles a local directory as app assets.
	SourceLocal SourceType = "local"
)

// Defaults applied by ApplyDefaults.
const (
	DefaultOutputPath  = "./output"
	DefaultVersionName = "1.0.0"
	DefaultVersionCode = 1
	DefaultMinSDK      = 24
	DefaultTargetSDK   = 34
)

// ProjectConfig is the declarative description of one generated project.
// Keys are camelCase so the same document can be written as YAML or JSON.
type ProjectConfig struct {
	AppName     string     `yaml:"appName" validate:"required"`
	PackageName string     `yaml:"packageName" validate:"required,package_name"`
	SourceType  SourceType `yaml:"sourceType" validate:"required,oneof=url local"`
	SourceURL   string     `yaml:"sourceUrl,omitempty" validate:"required_if=SourceType url,absolute_url"`
	SourcePath  string     `yaml:"sourcePath,omitempty" validate:"required_if=SourceType local"`
	ColorScheme string     `yaml:"colorScheme,omitempty" validate:"omitempty,hex_color"`
	Permissions []string   `yaml:"permissions,omitempty" validate:"omitempty,dive,required,permission"`
	IconPath    string     `yaml:"iconPath,omitempty"`
	OutputPath  string     `yaml:"outputPath,omitempty"`

	VersionName string `yaml:"versionName,omitempty" validate:"omitempty,semver"`
	VersionCode int    `yaml:"versionCode,omitempty" validate:"omitempty,min=1"`
	MinSDK      int    `yaml:"minSdk,omitempty" validate:"omitempty,min=21,max=35"`
	TargetSDK   int    `yaml:"targetSdk,omitempty" validate:"omitempty,min=21,max=35,gtefield=MinSDK"`

	TemplateDir string `yaml:"templateDir,omitempty"`
	InitGit     bool   `yaml:"initGit,omitempty"`
}

// ApplyDefaults returns a copy of cfg with every optional field filled in.
// cfg itself is left untouched.
func ApplyDefaults(cfg ProjectConfig) ProjectConfig {
	out := cfg

	if strings.TrimSpace(out.ColorScheme) == "" {
		out.ColorScheme = color.Default
	}
	if strings.TrimSpace(out.OutputPath) == "" {
		out.OutputPath = DefaultOutputPath
	}
	if out.VersionName == "" {
		out.VersionName = DefaultVersionName
	}
	if out.VersionCode == 0 {
		out.VersionCode = DefaultVersionCode
	}
	if out.MinSDK == 0 {
		out.MinSDK = DefaultMinSDK
	}
	if out.TargetSDK == 0 {
		out.TargetSDK = DefaultTargetSDK
	}

	out.Permissions = dedupe(cfg.Permissions)
	return out
}

// EffectiveSourceType falls back to url when no type was given.
func (c ProjectConfig) EffectiveSourceType() SourceType {
	if c.SourceType == "" {
		return SourceURL
	}
	return c.SourceType
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
