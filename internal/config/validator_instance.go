package config

import (
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/mod/semver"

	"github.com/alexisbeaulieu97/aabuilder/internal/color"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	packageNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*(\.([a-zA-Z0-9_]+))*$`)
	permissionPattern  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z0-9_]+)*$`)
)

// validatorInstance configures and returns the shared validator used by Validate.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their document key so messages read "packageName", not "PackageName".
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})

		_ = v.RegisterValidation("package_name", func(fl validator.FieldLevel) bool {
			return packageNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("permission", func(fl validator.FieldLevel) bool {
			return permissionPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("hex_color", func(fl validator.FieldLevel) bool {
			return color.Valid(fl.Field().String())
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semver.IsValid("v" + strings.TrimPrefix(fl.Field().String(), "v"))
		})

		_ = v.RegisterValidation("absolute_url", func(fl validator.FieldLevel) bool {
			raw := fl.Field().String()
			if raw == "" {
				return true // presence is required_if's job
			}
			parsed, err := url.Parse(raw)
			return err == nil && parsed.IsAbs() && parsed.Host != ""
		})

		validateInst = v
	})

	return validateInst
}

// ValidatePackageName reports whether name is a well-formed package identifier.
func ValidatePackageName(name string) bool {
	return packageNamePattern.MatchString(name)
}
