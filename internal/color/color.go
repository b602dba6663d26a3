// Package color derives the Android theme palette from a single brand color.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Default is the brand color used when a configuration names none.
const Default = "#f26a1e"

// Color is an RGB triple parsed from a 6-digit hex string.
type Color struct {
	R, G, B uint8
}

// Palette is the set of colors written into colors.xml.
type Palette struct {
	Primary     string
	PrimaryDark string
	Accent      string
}

// Parse accepts "#rrggbb" or "rrggbb" in any case.
func Parse(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("color %q must have exactly 6 hex digits", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q is not hexadecimal", s)
	}

	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Valid reports whether s parses as a color.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Hex renders the color as lowercase "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Dark returns the color with every channel scaled by 0.8.
func (c Color) Dark() Color {
	return Color{
		R: scale(c.R, 0.8),
		G: scale(c.G, 0.8),
		B: scale(c.B, 0.8),
	}
}

// Accent shifts the hue slightly: red up 10%, green down 10%, blue up 5%.
func (c Color) Accent() Color {
	return Color{
		R: scale(c.R, 1.1),
		G: scale(c.G, 0.9),
		B: scale(c.B, 1.05),
	}
}

// Derive returns the dark and accent variants of base.
func Derive(base Color) (primaryDark, accent Color) {
	return base.Dark(), base.Accent()
}

// DerivePalette parses hex and returns the full palette. Primary keeps the
// caller's case so colors.xml matches the configuration, with the leading
// '#' added when the caller left it off.
func DerivePalette(hex string) (Palette, error) {
	base, err := Parse(hex)
	if err != nil {
		return Palette{}, err
	}

	primary := strings.TrimSpace(hex)
	if !strings.HasPrefix(primary, "#") {
		primary = "#" + primary
	}

	dark, accent := Derive(base)
	return Palette{
		Primary:     primary,
		PrimaryDark: dark.Hex(),
		Accent:      accent.Hex(),
	}, nil
}

// scale multiplies a channel, floors the result and clamps it to 255.
func scale(v uint8, factor float64) uint8 {
	return uint8(math.Min(255, math.Floor(float64(v)*factor)))
}
