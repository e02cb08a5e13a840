// SPDX-License-Identifier: Unlicense OR MIT

/*
Package paint provides drawing operations for 2D graphics.

The PaintOp operation fills the current clip area with the current
material, taking the current transformation into account.

The material is set by a ColorOp for a constant color.
*/
package paint
