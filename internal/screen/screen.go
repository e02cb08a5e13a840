// SPDX-License-Identifier: Unlicense OR MIT

// Package screen lays out and renders the demo screen: a sized box
// holding a padded color box that is moved by an offset modifier.
package screen

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/assessment/layoutmodifier/layout"
	"github.com/assessment/layoutmodifier/op"
	"github.com/assessment/layoutmodifier/op/clip"
	"github.com/assessment/layoutmodifier/op/paint"
	"github.com/assessment/layoutmodifier/raster"
	"github.com/assessment/layoutmodifier/theme"
	"github.com/assessment/layoutmodifier/unit"
)

// Sizes of the demo screen.
const (
	ScreenWidth  unit.Dp = 120
	ScreenHeight unit.Dp = 80
	BoxWidth     unit.Dp = 50
	BoxHeight    unit.Dp = 10
	BoxPadding   unit.Dp = 1
)

// Config selects how the color box is placed and drawn.
type Config struct {
	// Fraction moves the box left by a fraction of its width.
	// It is ignored when Fixed is set.
	Fraction float32
	// Fixed, if set, moves the box by a fixed offset in pixels.
	Fixed *image.Point
	// Density is the number of pixels per dp.
	Density float32
	RTL     bool
	// Color of the box.
	Color color.NRGBA
	// Corner radius of the box.
	Corner unit.Dp
	Theme  theme.Theme
}

// Report describes the result of laying out the screen.
type Report struct {
	// Size of the screen, in pixels.
	Size image.Point
	// Placement of the color box by its offset modifier.
	Placement layout.Placement
}

// DefaultConfig returns the configuration of the original demo:
// a blue box moved left by half its width.
func DefaultConfig() Config {
	return Config{
		Fraction: 0.5,
		Density:  1,
		Color:    color.NRGBA{B: 0xff, A: 0xff},
		Theme:    theme.Light(),
	}
}

// Validate the configuration.
func (c Config) Validate() error {
	if c.Density <= 0 || isBad(c.Density) {
		return fmt.Errorf("screen: density must be positive, got %v", c.Density)
	}
	if isBad(c.Fraction) {
		return fmt.Errorf("screen: fraction must be finite, got %v", c.Fraction)
	}
	if c.Corner < 0 {
		return errors.New("screen: negative corner radius")
	}
	return nil
}

func (c Config) placer() layout.Placer {
	if c.Fixed != nil {
		return layout.FixedOffset(*c.Fixed)
	}
	return layout.Fraction(c.Fraction)
}

// Layout the screen into gtx.
func Layout(gtx layout.Context, cfg Config) (Report, error) {
	if err := gtx.Constraints.Validate(); err != nil {
		return Report{}, err
	}
	var rep Report
	var err error
	dims := layout.Sized{Width: ScreenWidth, Height: ScreenHeight}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Stack{}.Layout(gtx,
			layout.Stacked(func(gtx layout.Context) layout.Dimensions {
				var dims layout.Dimensions
				dims, rep.Placement, err = colorBox(gtx, cfg)
				return dims
			}),
		)
	})
	if err != nil {
		return Report{}, err
	}
	rep.Size = dims.Size
	return rep, nil
}

func colorBox(gtx layout.Context, cfg Config) (layout.Dimensions, layout.Placement, error) {
	var pl layout.Placement
	var err error
	dims := layout.UniformInset(BoxPadding).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Sized{Width: BoxWidth, Height: BoxHeight}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			var m *layout.Measured
			m, err = layout.MeasureOnce(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Background{}.Layout(gtx, fill(cfg.Color, gtx.Dp(cfg.Corner)), empty)
			})
			if err != nil {
				return layout.Dimensions{}
			}
			pl = m.Place(gtx, cfg.placer())
			return m.Dimensions
		})
	})
	return dims, pl, err
}

// Render the screen over the theme background at cfg.Density.
func Render(cfg Config) (*image.RGBA, Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, Report{}, err
	}
	m := unit.Metric{PxPerDp: cfg.Density}
	size := image.Pt(m.Dp(ScreenWidth), m.Dp(ScreenHeight))
	gtx := layout.NewContext(new(op.Ops), m, size)
	gtx.RTL = cfg.RTL
	paint.Fill(gtx.Ops, cfg.Theme.Background)
	rep, err := Layout(gtx, cfg)
	if err != nil {
		return nil, Report{}, fmt.Errorf("screen: layout: %w", err)
	}
	img := image.NewRGBA(image.Rectangle{Max: rep.Size})
	var r raster.Rasterizer
	r.Frame(gtx.Ops, img)
	return img, rep, nil
}

func fill(c color.NRGBA, corner int) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		sz := gtx.Constraints.Min()
		shape := clip.Rect{Max: sz}.Op()
		if corner > 0 {
			shape = clip.RRect{Rect: image.Rectangle{Max: sz}, Radius: float32(corner)}.Op()
		}
		paint.FillShape(gtx.Ops, c, shape)
		return layout.Dimensions{Size: sz}
	}
}

func empty(gtx layout.Context) layout.Dimensions {
	return layout.Dimensions{Size: gtx.Constraints.Min()}
}

func isBad(v float32) bool {
	f := float64(v)
	return math.IsNaN(f) || math.IsInf(f, 0)
}
