package grid

import (
	"fmt"
	"image"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
)

// Status strings returned by Build. The contract is "always return a
// descriptive string": every domain outcome, success or failure, maps to one
// of these. Only infrastructure failures (directory creation, encoding)
// surface as errors alongside an empty status.
const (
	// StatusNoImages is returned when normalization yields no items.
	StatusNoImages = "No images provided."

	// StatusNoValidImages is returned when every single item failed to load.
	StatusNoValidImages = "No valid images to process."

	// StatusLayoutTooSmall is returned when the dynamic-mode cell width
	// drops below one pixel for the selected padding and column count.
	StatusLayoutTooSmall = "Grid settings too small for the selected padding/columns."
)

// Builder runs the normalize -> layout -> render -> compose -> save pipeline.
// It is stateless apart from the logger and clock; a single Builder can be
// reused across builds, and each Build call is self-contained.
type Builder struct {
	Logger *log.Logger

	// Now supplies the output filename timestamp. Overridable so tests can
	// freeze it; defaults to time.Now.
	Now func() time.Time
}

// NewBuilder creates a Builder with the given logger. A nil logger disables
// logging.
func NewBuilder(logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Builder{Logger: logger, Now: time.Now}
}

// Build composites the given images into a contact sheet and writes it as a
// PNG. The input is either a list of path strings or a structured "items"
// list inside the settings map (the latter wins when present); settings is
// the loosely-typed configuration resolved by ParseSettings and may be nil.
//
// The returned string is a human-readable status: the success message with
// the final path, or one of the Status constants. A non-nil error means an
// infrastructure failure (directory creation, encoding) after which no
// status applies.
func (b *Builder) Build(paths []string, settings map[string]any) (string, error) {
	s := ParseSettings(settings)

	items := normalizeItems(paths, settings, s.TilePrefix)
	if len(items) == 0 {
		return StatusNoImages, nil
	}

	// Fixed-tile mode keeps input order; dynamic mode sorts naturally by
	// base name. Labels were assigned before this point, so indices stick
	// to their items across the sort.
	var plan layoutPlan
	if s.fixedTile() {
		plan = planFixed(s)
	} else {
		sortNatural(items)
		var ok bool
		if plan, ok = planDynamic(s); !ok {
			return StatusLayoutTooSmall, nil
		}
	}

	b.Logger.Debug("planned grid",
		"items", len(items),
		"columns", plan.columns,
		"cell_width", plan.cellWidth,
		"fixed_tile", s.fixedTile())

	tiles := make([]*image.NRGBA, 0, len(items))
	heights := make([]int, 0, len(items))
	failed := 0
	for _, item := range items {
		tile, err := renderTile(item, s, plan.cellWidth)
		if err != nil {
			// One bad image never aborts the batch: the slot is kept and
			// rendered as a fully transparent placeholder.
			b.Logger.Warn("failed to open image", "path", item.Path, "err", err)
			tile = placeholderTile(s, plan.cellWidth)
			failed++
		}
		tiles = append(tiles, tile)
		heights = append(heights, tile.Bounds().Dy())
	}
	if failed == len(items) {
		return StatusNoValidImages, nil
	}

	plan.finalize(heights)
	canvas := compose(tiles, plan, s.Background)

	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	outputPath, err := resolveOutputPath(s, items, now())
	if err != nil {
		return "", err
	}
	if err := imaging.Save(canvas, outputPath); err != nil {
		return "", fmt.Errorf("save grid image: %w", err)
	}

	b.Logger.Info("grid image saved",
		"path", outputPath,
		"tiles", len(tiles),
		"failed", failed,
		"size", fmt.Sprintf("%dx%d", plan.canvasWidth, plan.canvasHeight()))

	return fmt.Sprintf("Grid image saved to: %s", outputPath), nil
}
