// SPDX-License-Identifier: Unlicense OR MIT

package layout

// FractionOffset lays out a widget and moves it left by a fraction of
// its own width. The space reserved for the widget is unchanged.
type FractionOffset struct {
	Fraction float32
}

// Offset lays out a widget and moves it by a fixed number of pixels.
// The space reserved for the widget is unchanged.
type Offset struct {
	X, Y int
}

// Layout a widget. Layout panics with a *ConstraintsError if
// gtx.Constraints are malformed.
func (f FractionOffset) Layout(gtx Context, w Widget) Dimensions {
	return layoutPlaced(gtx, Fraction(f.Fraction), w)
}

// Layout a widget. Layout panics with a *ConstraintsError if
// gtx.Constraints are malformed.
func (o Offset) Layout(gtx Context, w Widget) Dimensions {
	return layoutPlaced(gtx, FixedOffset{X: o.X, Y: o.Y}, w)
}

func layoutPlaced(gtx Context, p Placer, w Widget) Dimensions {
	m, err := MeasureOnce(gtx, w)
	if err != nil {
		panic(err)
	}
	pl := m.Place(gtx, p)
	dims := m.Dimensions
	if dims.Baseline != 0 {
		dims.Baseline -= pl.Offset.Y
	}
	return dims
}
