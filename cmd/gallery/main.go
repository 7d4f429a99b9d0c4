// Command gallery opens a rotating memory gallery window.
//
//	gallery --config gallery.toml
//	gallery --variant gift --images a.jpg,b.jpg,c.jpg --dir ./photos
//	gallery config --variant gift > gallery.toml
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/phanxgames/gallery"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	variant    string
	images     []string
	imageDir   string
	seed       uint64
	script     string
	shotDir    string
	verbose    bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:           "gallery",
		Short:         "Rotating 3D gallery of images above a reflective floor",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			setupLogging(stderr, opts.verbose || cfg.Debug)

			var run gallery.RunOptions
			run.ScreenshotDir = opts.shotDir
			if opts.script != "" {
				data, err := os.ReadFile(opts.script)
				if err != nil {
					return fmt.Errorf("read script: %w", err)
				}
				if run.Script, err = gallery.LoadTestScript(data); err != nil {
					return err
				}
			}
			return gallery.Run(cfg, run)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	pf.StringVar(&opts.variant, "variant", "", `"classic" or "gift" (overrides the config)`)
	pf.StringSliceVar(&opts.images, "images", nil, "panel image sources in ring order")
	pf.StringVar(&opts.imageDir, "dir", "", "directory local images are read from")
	pf.Uint64Var(&opts.seed, "seed", 0, "seed for backdrop and confetti (0 = random)")

	f := root.Flags()
	f.StringVar(&opts.script, "script", "", "JSON input script to replay")
	f.StringVar(&opts.shotDir, "screenshots", "", "directory for screenshots")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newConfigCmd(&opts))
	return root
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			data, err := cfg.Encode()
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// resolve loads the config file (or the variant defaults) and applies flag
// overrides.
func (o *options) resolve(cmd *cobra.Command) (gallery.Config, error) {
	var cfg gallery.Config
	if o.configPath != "" {
		var err error
		if cfg, err = gallery.LoadConfig(o.configPath); err != nil {
			return gallery.Config{}, err
		}
	} else {
		cfg = gallery.ConfigFor(gallery.Variant(o.variant))
	}

	flags := cmd.Flags()
	if v := gallery.Variant(o.variant); flags.Changed("variant") && cfg.Variant != v {
		// Switching variant resets the variant-specific knobs.
		def := gallery.ConfigFor(v)
		cfg.Variant = v
		cfg.Title = def.Title
		cfg.RotationStep = def.RotationStep
		cfg.ReflectionScale = def.ReflectionScale
	}
	if flags.Changed("images") {
		cfg.Images = o.images
	}
	if flags.Changed("dir") {
		cfg.ImageDir = o.imageDir
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}

	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return gallery.Config{}, err
	}
	return cfg, nil
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	gallery.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
