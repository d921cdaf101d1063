package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gridshot/gridshot/pkg/grid"
)

// successPrefix is the marker the builder puts in front of the output path.
const successPrefix = "Grid image saved to: "

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	columns      int    // tiles per row
	padding      int    // gap between tiles in pixels
	maxEdge      int    // canvas width in dynamic-width mode
	tileWidth    int    // fixed tile width (needs tile-height too)
	tileHeight   int    // fixed tile height (needs tile-width too)
	fit          string // fit mode in fixed-tile mode: contain or cover
	labels       bool   // draw index labels on tiles
	prefix       string // label prefix
	background   string // canvas background color (hex)
	textColor    string // label text color (hex)
	outlineColor string // tile outline color (hex)
	outlineWidth int    // tile outline stroke width
	output       string // explicit output file path
	outputDir    string // output directory for generated filenames
	namePrefix   string // output filename prefix
	configFile   string // TOML settings file with defaults
}

// buildCommand creates the build command for one-shot grid generation.
func (c *CLI) buildCommand() *cobra.Command {
	opts := buildOpts{labels: true}

	cmd := &cobra.Command{
		Use:   "build [images...]",
		Short: "Composite images into a labeled contact sheet",
		Long: `Composite images into a labeled contact sheet.

Images are arranged row by row into a single PNG. By default the canvas
width is fixed and tile heights follow each image's aspect ratio; pass both
--tile-width and --tile-height for uniform tiles with contain or cover
fitting.

Settings may also come from a TOML file via --config; flags set on the
command line take precedence over the file.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd.Context(), cmd, args, &opts)
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&opts.columns, "columns", grid.DefaultColumns, "tiles per row")
	fl.IntVar(&opts.padding, "padding", grid.DefaultPadding, "pixels between tiles and around the edge")
	fl.IntVar(&opts.maxEdge, "max-edge", grid.DefaultMaxLongestEdge, "canvas width in dynamic-width mode")
	fl.IntVar(&opts.tileWidth, "tile-width", 0, "fixed tile width (requires --tile-height)")
	fl.IntVar(&opts.tileHeight, "tile-height", 0, "fixed tile height (requires --tile-width)")
	fl.StringVar(&opts.fit, "fit", grid.FitContain, "fit mode for fixed tiles: contain or cover")
	fl.BoolVar(&opts.labels, "labels", opts.labels, "draw index labels on tiles")
	fl.StringVar(&opts.prefix, "prefix", grid.DefaultTilePrefix, "label prefix")
	fl.StringVar(&opts.background, "bg", "#ffffff", "canvas background color (hex)")
	fl.StringVar(&opts.textColor, "text-color", "#000000", "label text color (hex)")
	fl.StringVar(&opts.outlineColor, "outline-color", "#000000", "tile outline color (hex)")
	fl.IntVar(&opts.outlineWidth, "outline-width", 0, "tile outline stroke width (0 disables)")
	fl.StringVarP(&opts.output, "output", "o", "", "output file path (overrides directory and prefix)")
	fl.StringVar(&opts.outputDir, "output-dir", "", "output directory for generated filenames")
	fl.StringVar(&opts.namePrefix, "name-prefix", grid.DefaultNamePrefix, "output filename prefix")
	fl.StringVar(&opts.configFile, "config", "", "TOML settings file with defaults")

	return cmd
}

// runBuild layers flag settings over the optional TOML file and runs the
// builder. Domain failures come back as status strings and are returned as
// errors; the success path prints the styled result.
func (c *CLI) runBuild(ctx context.Context, cmd *cobra.Command, args []string, opts *buildOpts) error {
	logger := loggerFromContext(ctx)

	settings := map[string]any{}
	if opts.configFile != "" {
		fileSettings, err := loadSettingsFile(opts.configFile)
		if err != nil {
			return fmt.Errorf("load settings file %s: %w", opts.configFile, err)
		}
		settings = fileSettings
		logger.Debug("loaded settings file", "path", opts.configFile, "keys", len(settings))
	}
	applyFlagSettings(settings, opts, cmd.Flags().Changed)

	status, err := grid.NewBuilder(logger).Build(args, settings)
	if err != nil {
		return err
	}

	if path, ok := strings.CutPrefix(status, successPrefix); ok {
		printSuccess("Grid image saved")
		printFile(path)
		return nil
	}
	return errors.New(status)
}

// applyFlagSettings copies every flag the user actually set into the loose
// settings map, keyed the way the settings resolver expects. Untouched flags
// are left out so TOML-file values survive.
func applyFlagSettings(settings map[string]any, opts *buildOpts, changed func(string) bool) {
	set := func(flag, key string, value any) {
		if changed(flag) {
			settings[key] = value
		}
	}

	set("columns", "columns", opts.columns)
	set("padding", "padding", opts.padding)
	set("max-edge", "maxLongestEdge", opts.maxEdge)
	set("tile-width", "tileWidth", opts.tileWidth)
	set("tile-height", "tileHeight", opts.tileHeight)
	set("fit", "fitMode", opts.fit)
	set("labels", "addLabels", opts.labels)
	set("prefix", "tilePrefix", opts.prefix)
	set("bg", "backgroundColor", opts.background)
	set("text-color", "textColor", opts.textColor)
	set("outline-color", "tileOutlineColor", opts.outlineColor)
	set("outline-width", "tileOutlineWidth", opts.outlineWidth)
	set("output", "outputPath", opts.output)
	set("output-dir", "outputDir", opts.outputDir)
	set("name-prefix", "outputNamePrefix", opts.namePrefix)
}
