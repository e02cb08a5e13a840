// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/assessment/layoutmodifier/op"
	"github.com/assessment/layoutmodifier/unit"
)

func TestInset(t *testing.T) {
	gtx := Context{
		Ops:         new(op.Ops),
		Metric:      unit.Metric{PxPerDp: 2},
		Constraints: loose(image.Pt(100, 100)),
	}
	var inner Constraints
	dims := UniformInset(1).Layout(gtx, func(gtx Context) Dimensions {
		inner = gtx.Constraints
		return Dimensions{Size: image.Pt(50, 10)}
	})
	if want := loose(image.Pt(96, 96)); inner != want {
		t.Errorf("inner constraints %+v, want %+v", inner, want)
	}
	if want := image.Pt(54, 14); dims.Size != want {
		t.Errorf("size %v, want %v", dims.Size, want)
	}
	if diff := cmp.Diff([]image.Point{{2, 2}}, pushedOffsets(gtx.Ops)); diff != "" {
		t.Errorf("transforms mismatch (-want +got):\n%s", diff)
	}
}

func TestInsetNoSpace(t *testing.T) {
	gtx := Context{
		Ops:         new(op.Ops),
		Constraints: Exact(image.Pt(1, 1)),
	}
	var inner Constraints
	UniformInset(5).Layout(gtx, func(gtx Context) Dimensions {
		inner = gtx.Constraints
		return Dimensions{}
	})
	if err := inner.Validate(); err != nil {
		t.Errorf("inset produced invalid constraints: %v", err)
	}
	if inner.Max() != (image.Point{}) {
		t.Errorf("inner max %v, want (0,0)", inner.Max())
	}
}

func TestSized(t *testing.T) {
	gtx := Context{
		Ops:         new(op.Ops),
		Constraints: loose(image.Pt(120, 80)),
	}
	var inner Constraints
	dims := Sized{Width: 50, Height: 10}.Layout(gtx, func(gtx Context) Dimensions {
		inner = gtx.Constraints
		return Dimensions{}
	})
	if want := Exact(image.Pt(50, 10)); inner != want {
		t.Errorf("inner constraints %+v, want %+v", inner, want)
	}
	if want := image.Pt(50, 10); dims.Size != want {
		t.Errorf("size %v, want %v", dims.Size, want)
	}

	// Coerced into smaller incoming constraints.
	gtx.Constraints = loose(image.Pt(30, 30))
	dims = Sized{Width: 50, Height: 10}.Layout(gtx, func(gtx Context) Dimensions {
		return Dimensions{Size: gtx.Constraints.Min()}
	})
	if want := image.Pt(30, 10); dims.Size != want {
		t.Errorf("coerced size %v, want %v", dims.Size, want)
	}
}

func TestStack(t *testing.T) {
	gtx := Context{
		Ops:         new(op.Ops),
		Constraints: Exact(image.Pt(120, 80)),
	}
	var expanded Constraints
	dims := Stack{Alignment: Center}.Layout(gtx,
		Stacked(func(gtx Context) Dimensions {
			if gtx.Constraints.Min() != (image.Point{}) {
				t.Errorf("stacked child got min %v", gtx.Constraints.Min())
			}
			return Dimensions{Size: image.Pt(50, 10)}
		}),
		Expanded(func(gtx Context) Dimensions {
			expanded = gtx.Constraints
			return Dimensions{Size: gtx.Constraints.Min()}
		}),
	)
	if want := image.Pt(120, 80); dims.Size != want {
		t.Errorf("size %v, want %v", dims.Size, want)
	}
	if want := image.Pt(50, 10); expanded.Min() != want {
		t.Errorf("expanded min %v, want %v", expanded.Min(), want)
	}
	if diff := cmp.Diff([]image.Point{{35, 35}, {35, 35}}, pushedOffsets(gtx.Ops)); diff != "" {
		t.Errorf("transforms mismatch (-want +got):\n%s", diff)
	}
}

func TestStackNW(t *testing.T) {
	gtx := Context{
		Ops:         new(op.Ops),
		Constraints: loose(image.Pt(120, 80)),
	}
	dims := Stack{}.Layout(gtx,
		Stacked(func(gtx Context) Dimensions {
			return Dimensions{Size: image.Pt(52, 12)}
		}),
	)
	if want := image.Pt(52, 12); dims.Size != want {
		t.Errorf("size %v, want %v", dims.Size, want)
	}
}

func TestBackground(t *testing.T) {
	gtx := Context{
		Ops:         new(op.Ops),
		Constraints: loose(image.Pt(100, 100)),
	}
	var bg Constraints
	dims := Background{}.Layout(gtx,
		func(gtx Context) Dimensions {
			bg = gtx.Constraints
			return Dimensions{Size: gtx.Constraints.Min()}
		},
		func(gtx Context) Dimensions {
			return Dimensions{Size: image.Pt(50, 10), Baseline: 3}
		},
	)
	if want := image.Pt(50, 10); bg.Min() != want {
		t.Errorf("background min %v, want %v", bg.Min(), want)
	}
	want := Dimensions{Size: image.Pt(50, 10), Baseline: 3}
	if diff := cmp.Diff(want, dims); diff != "" {
		t.Errorf("dimensions mismatch (-want +got):\n%s", diff)
	}
}

func TestStackAllocs(t *testing.T) {
	var ops op.Ops
	allocs := testing.AllocsPerRun(1, func() {
		ops.Reset()
		gtx := Context{
			Ops: &ops,
		}
		Stack{}.Layout(gtx,
			Stacked(func(gtx Context) Dimensions {
				return Dimensions{Size: image.Point{X: 50, Y: 50}}
			}),
		)
	})
	if allocs != 0 {
		t.Errorf("expected no allocs, got %f", allocs)
	}
}

func TestDirectionString(t *testing.T) {
	if got := Center.String(); got != "Center" {
		t.Errorf("Center.String() = %q", got)
	}
	if got := Vertical.String(); got != "Vertical" {
		t.Errorf("Vertical.String() = %q", got)
	}
}
