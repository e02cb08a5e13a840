// SPDX-License-Identifier: Unlicense OR MIT

/*

Package unit implements device independent units.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device.

Pixels, or px, is the unit for display dependent pixels. Their size
vary between platforms and displays.

To maintain a constant visual size across platforms and displays, always
use dps to define user interfaces. Only use pixels for derived values.

*/
package unit

import (
	"fmt"
	"math"
)

// Dp represents device independent pixels. 1 dp will
// have the same apparent size across platforms and
// display resolutions.
type Dp float32

// Metric converts Dp values to device pixels.
type Metric struct {
	// PxPerDp is the device pixels per dp. The zero
	// value means 1.
	PxPerDp float32
}

// Dp converts v to pixels, rounded half away from zero.
func (m Metric) Dp(v Dp) int {
	return int(math.Round(float64(nonZero(m.PxPerDp) * float32(v))))
}

// PxToDp converts v px to dp.
func (m Metric) PxToDp(v int) Dp {
	return Dp(float32(v) / nonZero(m.PxPerDp))
}

func (v Dp) String() string {
	return fmt.Sprintf("%gdp", float32(v))
}

func nonZero(v float32) float32 {
	if v == 0. {
		return 1
	}
	return v
}
