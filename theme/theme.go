// SPDX-License-Identifier: Unlicense OR MIT

// Package theme holds the colors used to draw previews, and parses
// color names.
package theme

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"

	material "golang.org/x/exp/shiny/materialdesign/colornames"
	"golang.org/x/image/colornames"
)

// Theme is a set of colors for a preview.
type Theme struct {
	// Background fills the preview behind every widget.
	Background color.NRGBA
	// Primary is the default color of filled boxes.
	Primary color.NRGBA
	// OnPrimary contrasts with Primary.
	OnPrimary color.NRGBA
}

// Light returns the default light theme.
func Light() Theme {
	return Theme{
		Background: color.NRGBA{R: 0xff, G: 0xfb, B: 0xfe, A: 0xff},
		Primary:    rgb(material.DeepPurple500),
		OnPrimary:  rgb(colornames.White),
	}
}

// materialPrefix selects the Material Design palette in ParseColor.
const materialPrefix = "material:"

var materialPalette = map[string]color.RGBA{
	"red500":        material.Red500,
	"pink500":       material.Pink500,
	"purple500":     material.Purple500,
	"deeppurple500": material.DeepPurple500,
	"indigo500":     material.Indigo500,
	"blue500":       material.Blue500,
	"lightblue500":  material.LightBlue500,
	"cyan500":       material.Cyan500,
	"teal500":       material.Teal500,
	"green500":      material.Green500,
	"lime500":       material.Lime500,
	"amber500":      material.Amber500,
	"orange500":     material.Orange500,
	"brown500":      material.Brown500,
	"grey500":       material.Grey500,
	"bluegrey500":   material.BlueGrey500,
}

// ParseColor parses a color written as #rrggbb, #rrggbbaa, a CSS color
// name such as "blue", or a Material Design palette name such as
// "material:blue500". Names are case insensitive.
func ParseColor(s string) (color.NRGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(name, "#"):
		return parseHex(name[1:])
	case strings.HasPrefix(name, materialPrefix):
		c, ok := materialPalette[strings.TrimPrefix(name, materialPrefix)]
		if !ok {
			return color.NRGBA{}, fmt.Errorf("theme: unknown material color %q", s)
		}
		return rgb(c), nil
	}
	c, ok := colornames.Map[name]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("theme: unknown color %q", s)
	}
	return rgb(c), nil
}

func parseHex(s string) (color.NRGBA, error) {
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("theme: invalid hex color %q", "#"+s)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("theme: invalid hex color %q: %w", "#"+s, err)
	}
	c := color.NRGBA{R: b[0], G: b[1], B: b[2], A: 0xff}
	if len(b) == 4 {
		c.A = b[3]
	}
	return c, nil
}

// rgb converts an opaque palette color.
func rgb(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
