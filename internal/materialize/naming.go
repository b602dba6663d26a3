package materialize

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// IDLength is the number of hex characters appended to project directory names.
const IDLength = 8

// NewRandomID returns the first eight hex characters of a random UUID.
func NewRandomID() string {
	return uuid.NewString()[:IDLength]
}

// SanitizeName maps an app display name onto [A-Za-z0-9_-]. Every other rune
// becomes '_' and runs of '_' collapse to one. The name is NFC-normalised
// first so composed and decomposed spellings produce the same directory.
func SanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastUnderscore := false
	for _, r := range norm.NFC.String(name) {
		if !isNameRune(r) {
			r = '_'
		}
		if r == '_' {
			if lastUnderscore {
				continue
			}
			lastUnderscore = true
		} else {
			lastUnderscore = false
		}
		b.WriteRune(r)
	}

	return b.String()
}

// DirName joins the sanitized app name and id into the project directory name.
func DirName(appName, id string) string {
	return SanitizeName(appName) + "_" + id
}

func isNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_':
		return true
	default:
		return false
	}
}
