package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	aaberrors "github.com/alexisbeaulieu97/aabuilder/pkg/errors"
)

// Validate checks cfg for completeness and syntactic validity. It never touches
// the filesystem. When several rules fail, the most fundamental one is
// reported: missing fields, then missing sources, then the package name, then
// everything else.
func Validate(cfg ProjectConfig) error {
	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

var requiredFields = map[string]struct{}{"AppName": {}, "PackageName": {}, "SourceType": {}}

// precedence orders failure kinds; lower reports first.
var precedence = map[aaberrors.Kind]int{
	aaberrors.KindMissingField:       0,
	aaberrors.KindMissingSource:      1,
	aaberrors.KindInvalidPackageName: 2,
	aaberrors.KindInvalidField:       3,
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return aaberrors.NewValidationError(aaberrors.KindInvalidField, "config", err.Error(), err)
	}

	best := ves[0]
	bestKind := classify(best)
	for _, fe := range ves[1:] {
		kind := classify(fe)
		if precedence[kind] < precedence[bestKind] {
			best, bestKind = fe, kind
		}
	}

	return aaberrors.NewValidationError(bestKind, best.Field(), describe(best, bestKind), err)
}

func classify(fe validator.FieldError) aaberrors.Kind {
	switch fe.Tag() {
	case "required":
		if _, ok := requiredFields[fe.StructField()]; ok {
			return aaberrors.KindMissingField
		}
		return aaberrors.KindInvalidField
	case "required_if":
		return aaberrors.KindMissingSource
	case "package_name":
		return aaberrors.KindInvalidPackageName
	default:
		return aaberrors.KindInvalidField
	}
}

func describe(fe validator.FieldError, kind aaberrors.Kind) string {
	switch kind {
	case aaberrors.KindMissingField:
		return fmt.Sprintf("missing required field: %s", fe.Field())
	case aaberrors.KindMissingSource:
		if fe.StructField() == "SourceURL" {
			return "source URL is required for URL type"
		}
		return "source path is required for local type"
	case aaberrors.KindInvalidPackageName:
		return fmt.Sprintf("invalid package name format %q", fe.Value())
	}

	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value())
	case "hex_color":
		return fmt.Sprintf("%s must be a 6-digit hex color, got %q", fe.Field(), fe.Value())
	case "absolute_url":
		return fmt.Sprintf("%s must be an absolute URL, got %q", fe.Field(), fe.Value())
	case "semver":
		return fmt.Sprintf("%s must be a semantic version, got %q", fe.Field(), fe.Value())
	case "permission":
		return fmt.Sprintf("invalid permission name %q", fe.Value())
	case "gtefield":
		return fmt.Sprintf("%s must not be lower than %s", fe.Field(), fe.Param())
	}

	return fmt.Sprintf("%s failed validation for tag '%s'", fe.Field(), fe.Tag())
}
