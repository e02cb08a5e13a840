// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/assessment/layoutmodifier/internal/config"
	"github.com/assessment/layoutmodifier/internal/logging"
)

// Version is set at build time with
// -ldflags "-X main.Version=...".
var Version = "dev"

// app carries the state shared by the subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}
	config.SetDefaults(a.v)

	root := &cobra.Command{
		Use:           "layoutpreview",
		Short:         "Lay out and preview a box moved by an offset modifier.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./layoutpreview.yaml)")
	pf.Float32("fraction", 0.5, "move the box left by this fraction of its width")
	pf.String("offset", "", `fixed "x,y" offset in pixels, overrides --fraction`)
	pf.Float32("density", 1, "pixels per dp")
	pf.Bool("rtl", false, "lay out right-to-left")
	pf.String("color", "blue", "box color: #rrggbb, a CSS name or material:<name>")
	pf.Float32("corner", 0, "box corner radius in dp")
	pf.String("background", "", "preview background color")
	pf.String("log-level", "info", "log level")
	pf.String("log-format", "console", `log format, "console" or "json"`)
	for key, flag := range map[string]string{
		"screen.fraction":   "fraction",
		"screen.offset":     "offset",
		"screen.density":    "density",
		"screen.rtl":        "rtl",
		"screen.color":      "color",
		"screen.corner":     "corner",
		"screen.background": "background",
		"logger.level":      "log-level",
		"logger.format":     "log-format",
	} {
		if err := a.v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(newMeasureCmd(a), newRenderCmd(a), newVersionCmd())
	return root
}

// init reads the configuration and sets up logging.
func (a *app) init(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigName("layoutpreview")
		a.v.SetConfigType("yaml")
	}
	config.BindEnv(a.v)
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	log, err := logging.New(cfg.Logger, zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr())))
	if err != nil {
		return err
	}
	a.log = log
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("loaded config", zap.String("file", used))
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}
