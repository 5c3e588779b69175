package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/willbeason/newton-fractal/internal/config"
	"github.com/willbeason/newton-fractal/internal/logging"
	"github.com/willbeason/newton-fractal/pkg/algebra"
	"github.com/willbeason/newton-fractal/pkg/render"
)

// polynomial is f(x) = x^3 + 1.
func polynomial() algebra.Polynomial {
	return algebra.NewPolynomial(
		algebra.Real(1),
		algebra.Zero,
		algebra.Zero,
		algebra.Real(1),
	)
}

func mainCmd() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "newton [width height]",
		Short: "Render the Newton fractal of x^3 + 1",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCmd(cmd, args, v)
		},
	}

	flags := cmd.Flags()
	flags.String("config", "", "path to a configuration file")
	flags.Int("width", defaults.Render.Width, "image width in pixels")
	flags.Int("height", defaults.Render.Height, "image height in pixels")
	flags.StringP("output", "o", defaults.Render.Output, "output image; the extension picks the format")
	flags.Int("max-retries", defaults.Newton.MaxRetries, "cap on overshooting Newton steps per pixel, 0 for none")
	flags.Bool("legacy-ids", defaults.Roots.LegacyIDs, "number matched roots from 0 while new roots start at 1")
	flags.String("log-level", defaults.Logging.Level, "debug, info, warn or error")
	flags.String("log-format", defaults.Logging.Format, "text or json")

	bindFlags(v, flags)

	return cmd
}

// flagKeys maps configuration keys to the flags that override them.
var flagKeys = map[string]string{
	"render.width":       "width",
	"render.height":      "height",
	"render.output":      "output",
	"newton.max_retries": "max-retries",
	"roots.legacy_ids":   "legacy-ids",
	"logging.level":      "log-level",
	"logging.format":     "log-format",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	for key, name := range flagKeys {
		// BindPFlag only fails on a nil flag.
		if f := flags.Lookup(name); f != nil {
			_ = v.BindPFlag(key, f)
		}
	}
}

func runCmd(cmd *cobra.Command, args []string, v *viper.Viper) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if err = config.ReadFile(v, configPath); err != nil {
		return errors.Wrapf(err, "reading config %s", configPath)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)

	width, height, err := resolveSize(args, cfg.Render.Width, cfg.Render.Height, cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	opts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}

	f := polynomial()
	rc := render.NewContext(width, height, f, opts)

	logger.Info("f(x) = " + rc.Polynomial.String())
	logger.Info("f'(x) = " + rc.Derivative.String())

	logger = logger.With("width", width, "height", height)
	logger.Debug("rendering", "window", fmt.Sprintf("%+v", rc.Window), "max_retries", opts.MaxRetries)

	start := time.Now()
	canvas := render.NewImageCanvas(width, height, cfg.Render.Output)

	if err = rc.Render(cmd.Context(), canvas); err != nil {
		return errors.Wrap(err, "rendering")
	}
	if err = canvas.Save(); err != nil {
		return err
	}

	for i, root := range rc.Registry.Roots() {
		logger.Debug("root", "index", i, "value", root.String())
	}
	logger.Info("saved",
		"path", cfg.Render.Output,
		"roots", rc.Registry.Len(),
		"elapsed", time.Since(start).String(),
	)

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := mainCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
