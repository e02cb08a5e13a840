// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"encoding/json"
	"fmt"
	"image"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/assessment/layoutmodifier/internal/screen"
	"github.com/assessment/layoutmodifier/layout"
	"github.com/assessment/layoutmodifier/op"
	"github.com/assessment/layoutmodifier/unit"
)

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type report struct {
	Screen    point `json:"screen"`
	Size      point `json:"size"`
	Offset    point `json:"offset"`
	Placement point `json:"placement"`
}

func newMeasureCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Lay out the screen and print the placement of the box",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.cfg.Screen.Build()
			if err != nil {
				return err
			}
			m := unit.Metric{PxPerDp: cfg.Density}
			size := image.Pt(m.Dp(screen.ScreenWidth), m.Dp(screen.ScreenHeight))
			gtx := layout.NewContext(new(op.Ops), m, size)
			gtx.RTL = cfg.RTL
			rep, err := screen.Layout(gtx, cfg)
			if err != nil {
				return err
			}
			a.log.Debug("measured",
				zap.Stringer("size", rep.Placement.Size),
				zap.Stringer("offset", rep.Placement.Offset))
			return writeReport(cmd.OutOrStdout(), a.cfg.Output.Format, rep, cfg.RTL)
		},
	}
	cmd.Flags().String("format", "text", `report format, "text" or "json"`)
	if err := a.v.BindPFlag("output.format", cmd.Flags().Lookup("format")); err != nil {
		panic(err)
	}
	return cmd
}

func writeReport(w io.Writer, format string, rep screen.Report, rtl bool) error {
	out := report{
		Screen:    pt(rep.Size),
		Size:      pt(rep.Placement.Size),
		Offset:    pt(rep.Placement.Offset),
		Placement: pt(rep.Placement.Relative(rtl)),
	}
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	_, err := fmt.Fprintf(w, "screen: %v\nsize: %v\noffset: %v\nplacement: %v\n",
		rep.Size, rep.Placement.Size, rep.Placement.Offset, rep.Placement.Relative(rtl))
	return err
}

func pt(p image.Point) point {
	return point{X: p.X, Y: p.Y}
}
