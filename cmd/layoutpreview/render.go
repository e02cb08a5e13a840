// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"github.com/assessment/layoutmodifier/internal/screen"
)

func newRenderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a PNG preview of the screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.cfg.Screen.Build()
			if err != nil {
				return err
			}
			img, rep, err := screen.Render(cfg)
			if err != nil {
				return err
			}
			out := zoom(img, a.cfg.Output.Zoom)
			path := a.cfg.Output.Path
			if path == "-" {
				return encode(cmd.OutOrStdout(), out)
			}
			if err := writePNG(path, out); err != nil {
				return err
			}
			a.log.Info("rendered preview",
				zap.String("path", path),
				zap.Stringer("size", out.Bounds().Size()),
				zap.Stringer("offset", rep.Placement.Offset))
			return nil
		},
	}
	cmd.Flags().StringP("out", "o", "preview.png", `output file, or "-" for stdout`)
	cmd.Flags().Int("zoom", 1, "scale the preview by an integer factor")
	if err := a.v.BindPFlag("output.path", cmd.Flags().Lookup("out")); err != nil {
		panic(err)
	}
	if err := a.v.BindPFlag("output.zoom", cmd.Flags().Lookup("zoom")); err != nil {
		panic(err)
	}
	return cmd
}

// zoom scales img by an integer factor without smoothing.
func zoom(img *image.RGBA, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rectangle{Max: b.Size().Mul(factor)})
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("render: %w", cerr)
		}
	}()
	return encode(f, img)
}

func encode(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}
