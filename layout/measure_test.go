// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"

	"github.com/assessment/layoutmodifier/internal/ops"
	"github.com/assessment/layoutmodifier/op"
)

// countingChild is a widget that records how often it is measured.
type countingChild struct {
	size  image.Point
	calls int
}

func (c *countingChild) Layout(gtx Context) Dimensions {
	c.calls++
	return Dimensions{Size: gtx.Constraints.Constrain(c.size)}
}

func loose(sz image.Point) Constraints {
	return Constraints{
		Width:  Constraint{Max: sz.X},
		Height: Constraint{Max: sz.Y},
	}
}

// pushedOffsets returns the offsets of every transform in o, in
// execution order.
func pushedOffsets(o *op.Ops) []image.Point {
	var r ops.Reader
	r.Reset(&o.Internal)
	var offs []image.Point
	for enc, ok := r.Decode(); ok; enc, ok = r.Decode() {
		if ops.OpType(enc.Data[0]) == ops.TypeTransform {
			off, _ := ops.DecodeTransform(enc.Data)
			offs = append(offs, off)
		}
	}
	return offs
}

func TestFractionPlace(t *testing.T) {
	tests := []struct {
		width    int
		fraction float32
		want     int
	}{
		{50, 0.5, -25},
		{5, 0.5, -3},
		{5, -0.5, 3},
		{7, 0.5, -4},
		{3, 0.5, -2},
		{50, 0, 0},
		{50, 1, -50},
		{0, 1, 0},
		{10, 1.5, -15},
		{10, 0.25, -3},
		{10, 0.24, -2},
	}
	for _, tc := range tests {
		got := Fraction(tc.fraction).Place(image.Pt(tc.width, 10))
		if want := image.Pt(tc.want, 0); got != want {
			t.Errorf("Fraction(%v).Place(width %d) = %v, want %v", tc.fraction, tc.width, got, want)
		}
	}
}

func TestComputeReportsMeasuredSize(t *testing.T) {
	fractions := []float32{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1}
	for w := 0; w <= 64; w += 7 {
		for h := 0; h <= 32; h += 5 {
			size := image.Pt(w, h)
			cs := Exact(size)
			for _, f := range fractions {
				pl, err := Compute(cs, size, Fraction(f))
				if err != nil {
					t.Fatalf("Compute(%v, %v, %v): %v", cs, size, f, err)
				}
				if pl.Size != size {
					t.Errorf("size %v, fraction %v: reported %v", size, f, pl.Size)
				}
				if pl.Offset.Y != 0 {
					t.Errorf("size %v, fraction %v: offset.y = %d", size, f, pl.Offset.Y)
				}
				if pl.Offset.X > 0 || pl.Offset.X < -w {
					t.Errorf("size %v, fraction %v: offset.x = %d out of [-%d, 0]", size, f, pl.Offset.X, w)
				}
			}
		}
	}
}

func TestComputeIdentityAndFull(t *testing.T) {
	size := image.Pt(50, 10)
	pl, err := Compute(loose(size), size, Fraction(0))
	if err != nil {
		t.Fatal(err)
	}
	if pl.Offset != (image.Point{}) {
		t.Errorf("fraction 0: offset = %v, want (0,0)", pl.Offset)
	}
	pl, err = Compute(loose(size), size, Fraction(1))
	if err != nil {
		t.Fatal(err)
	}
	if want := image.Pt(-50, 0); pl.Offset != want {
		t.Errorf("fraction 1: offset = %v, want %v", pl.Offset, want)
	}
}

func TestComputeHalfWidth(t *testing.T) {
	size := image.Pt(50, 10)
	pl, err := Compute(loose(size), size, Fraction(0.5))
	if err != nil {
		t.Fatal(err)
	}
	want := Placement{Size: image.Pt(50, 10), Offset: image.Pt(-25, 0)}
	if diff := cmp.Diff(want, pl); diff != "" {
		t.Errorf("Compute mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeFixedOffset(t *testing.T) {
	for _, size := range []image.Point{{50, 10}, {0, 0}, {120, 80}} {
		pl, err := Compute(loose(image.Pt(120, 80)), size, FixedOffset{X: 90, Y: 50})
		if err != nil {
			t.Fatal(err)
		}
		want := Placement{Size: size, Offset: image.Pt(90, 50)}
		if diff := cmp.Diff(want, pl); diff != "" {
			t.Errorf("size %v: Compute mismatch (-want +got):\n%s", size, diff)
		}
	}
}

func TestComputeInvalidConstraints(t *testing.T) {
	tests := []struct {
		name string
		cs   Constraints
		axis Axis
	}{
		{"negative min width", Constraints{Width: Constraint{Min: -1, Max: 10}, Height: Constraint{Max: 10}}, Horizontal},
		{"negative max width", Constraints{Width: Constraint{Min: 0, Max: -5}, Height: Constraint{Max: 10}}, Horizontal},
		{"width min above max", Constraints{Width: Constraint{Min: 20, Max: 10}, Height: Constraint{Max: 10}}, Horizontal},
		{"height min above max", Constraints{Width: Constraint{Max: 10}, Height: Constraint{Min: 11, Max: 10}}, Vertical},
		{"negative height", Constraints{Width: Constraint{Max: 10}, Height: Constraint{Min: -2, Max: -1}}, Vertical},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compute(tc.cs, image.Pt(5, 5), Fraction(0.5))
			if !errors.Is(err, ErrInvalidConstraints) {
				t.Fatalf("got error %v, want ErrInvalidConstraints", err)
			}
			var cerr *ConstraintsError
			if !errors.As(err, &cerr) {
				t.Fatalf("error %v is not a *ConstraintsError", err)
			}
			if cerr.Axis != tc.axis {
				t.Errorf("axis = %v, want %v", cerr.Axis, tc.axis)
			}
		})
	}
}

func TestMeasureChildOnce(t *testing.T) {
	child := &countingChild{size: image.Pt(50, 10)}
	gtx := Context{
		Ops:         new(op.Ops),
		Constraints: loose(image.Pt(50, 10)),
	}
	pl, err := Measure(gtx, 0.5, child.Layout)
	if err != nil {
		t.Fatal(err)
	}
	if child.calls != 1 {
		t.Errorf("child measured %d times, want 1", child.calls)
	}
	want := Placement{Size: image.Pt(50, 10), Offset: image.Pt(-25, 0)}
	if diff := cmp.Diff(want, pl); diff != "" {
		t.Errorf("Measure mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]image.Point{{-25, 0}}, pushedOffsets(gtx.Ops)); diff != "" {
		t.Errorf("transforms mismatch (-want +got):\n%s", diff)
	}
}

func TestMeasureIdempotent(t *testing.T) {
	gtx := Context{
		Ops:         new(op.Ops),
		Constraints: loose(image.Pt(100, 100)),
	}
	child := &countingChild{size: image.Pt(33, 7)}
	first, err := Measure(gtx, 0.3, child.Layout)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Measure(gtx, 0.3, child.Layout)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("repeated Measure: %+v != %+v", first, second)
	}
	if child.calls != 2 {
		t.Errorf("child measured %d times over two passes, want 2", child.calls)
	}
}

func TestMeasureInvalidSkipsChild(t *testing.T) {
	child := &countingChild{size: image.Pt(5, 5)}
	gtx := Context{
		Ops: new(op.Ops),
		Constraints: Constraints{
			Width:  Constraint{Min: 10, Max: 5},
			Height: Constraint{Max: 5},
		},
	}
	if _, err := Measure(gtx, 0.5, child.Layout); !errors.Is(err, ErrInvalidConstraints) {
		t.Errorf("got error %v, want ErrInvalidConstraints", err)
	}
	if child.calls != 0 {
		t.Errorf("child measured %d times under invalid constraints", child.calls)
	}
	if n := len(gtx.Ops.Internal.Data()); n != 0 {
		t.Errorf("invalid measurement wrote %d bytes of ops", n)
	}
}

func TestMeasuredPlaceTwice(t *testing.T) {
	gtx := Context{
		Ops:         new(op.Ops),
		Constraints: loose(image.Pt(10, 10)),
	}
	child := &countingChild{size: image.Pt(10, 10)}
	m, err := MeasureOnce(gtx, child.Layout)
	if err != nil {
		t.Fatal(err)
	}
	m.Place(gtx, Fraction(0.5))
	defer func() {
		if err := recover(); err == nil {
			t.Error("second Place didn't panic")
		}
	}()
	m.Place(gtx, Fraction(0.5))
}

func TestPlacementRTL(t *testing.T) {
	gtx := Context{
		Ops:         new(op.Ops),
		Constraints: Exact(image.Pt(50, 10)),
		RTL:         true,
	}
	child := &countingChild{}
	pl, err := Measure(gtx, 0.5, child.Layout)
	if err != nil {
		t.Fatal(err)
	}
	if want := image.Pt(-25, 0); pl.Offset != want {
		t.Errorf("offset = %v, want %v", pl.Offset, want)
	}
	if diff := cmp.Diff([]image.Point{{25, 0}}, pushedOffsets(gtx.Ops)); diff != "" {
		t.Errorf("mirrored transform mismatch (-want +got):\n%s", diff)
	}
}

func TestFractionOffsetLayout(t *testing.T) {
	gtx := Context{
		Ops:         new(op.Ops),
		Constraints: Exact(image.Pt(50, 10)),
	}
	child := &countingChild{}
	dims := FractionOffset{Fraction: 0.5}.Layout(gtx, child.Layout)
	if want := image.Pt(50, 10); dims.Size != want {
		t.Errorf("reported size %v, want %v", dims.Size, want)
	}
	if child.calls != 1 {
		t.Errorf("child measured %d times, want 1", child.calls)
	}
}

func TestOffsetLayout(t *testing.T) {
	gtx := Context{
		Ops:         new(op.Ops),
		Constraints: Exact(image.Pt(50, 10)),
	}
	dims := Offset{X: 90, Y: 50}.Layout(gtx, func(gtx Context) Dimensions {
		return Dimensions{Size: gtx.Constraints.Min(), Baseline: 60}
	})
	want := Dimensions{Size: image.Pt(50, 10), Baseline: 10}
	if diff := cmp.Diff(want, dims); diff != "" {
		t.Errorf("dimensions mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]image.Point{{90, 50}}, pushedOffsets(gtx.Ops)); diff != "" {
		t.Errorf("transforms mismatch (-want +got):\n%s", diff)
	}
}

func TestFractionOffsetInvalidConstraints(t *testing.T) {
	gtx := Context{
		Ops: new(op.Ops),
		Constraints: Constraints{
			Width:  Constraint{Max: 10},
			Height: Constraint{Min: -1, Max: 10},
		},
	}
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, ErrInvalidConstraints) {
			t.Errorf("recovered %v, want ErrInvalidConstraints", err)
		}
	}()
	FractionOffset{Fraction: 0.5}.Layout(gtx, func(gtx Context) Dimensions {
		t.Error("child measured under invalid constraints")
		return Dimensions{}
	})
}

func TestComputeConcurrent(t *testing.T) {
	var g errgroup.Group
	results := make([]Placement, 16)
	for i := range results {
		i := i
		g.Go(func() error {
			pl, err := Compute(loose(image.Pt(50, 10)), image.Pt(50, 10), Fraction(0.5))
			results[i] = pl
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	for i, pl := range results {
		if pl != results[0] {
			t.Errorf("result %d = %+v, want %+v", i, pl, results[0])
		}
	}
}
