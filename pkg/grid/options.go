package grid

import (
	"encoding/json"
	"image/color"
	"strconv"
	"strings"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultColumns is the number of tiles per row.
	DefaultColumns = 3

	// DefaultMaxLongestEdge is the canvas width in dynamic-width mode.
	DefaultMaxLongestEdge = 4096

	// DefaultPadding is the gap between tiles and around the canvas edge.
	DefaultPadding = 32

	// DefaultTilePrefix is the label prefix for unlabeled items.
	DefaultTilePrefix = "SHOT"

	// DefaultNamePrefix is the output filename prefix.
	DefaultNamePrefix = "grid_overview"
)

// Fit modes for fixed-tile sizing.
const (
	FitContain = "contain" // scale to fit, letterbox with transparency
	FitCover   = "cover"   // scale to fill, center-crop overflow
)

// =============================================================================
// Settings
// =============================================================================

// Settings is the fully resolved grid configuration. It is constructed once
// by ParseSettings and never mutated afterward.
//
// Every field has an invalid-value policy of "keep the default": a missing
// key, a wrong type, or an unparsable value silently leaves the default in
// place. Numeric fields are clamped after parsing (Columns and MaxLongestEdge
// floor at 1, Padding and TileOutlineWidth floor at 0).
type Settings struct {
	Columns        int    // tiles per row ("xTiles" > "columns" > "x", first present wins)
	MaxLongestEdge int    // canvas width in dynamic-width mode
	Padding        int    // pixels between tiles and around the edge
	AddLabels      bool   // draw an index label on each tile
	TilePrefix     string // label prefix, e.g. "SHOT" -> "SHOT 1"
	FitMode        string // "contain" or "cover"; unrecognized falls back to contain

	// TileWidth and TileHeight enable fixed-tile mode when both are >= 1.
	// A lone or non-positive value is discarded and the build stays dynamic.
	TileWidth  int
	TileHeight int

	Background  color.NRGBA // canvas fill ("backgroundColor" hex)
	Text        color.NRGBA // label color ("textColor" hex)
	TileOutline color.NRGBA // outline color ("tileOutlineColor" hex)

	TileOutlineWidth int // outline stroke width; 0 disables the outline

	OutputDir        string // base directory for generated filenames
	OutputNamePrefix string // filename prefix, sanitized at use
	OutputPath       string // explicit full path, overrides dir+prefix
}

// DefaultSettings returns the settings used when no configuration is given.
func DefaultSettings() Settings {
	return Settings{
		Columns:          DefaultColumns,
		MaxLongestEdge:   DefaultMaxLongestEdge,
		Padding:          DefaultPadding,
		AddLabels:        true,
		TilePrefix:       DefaultTilePrefix,
		FitMode:          FitContain,
		Background:       color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Text:             color.NRGBA{A: 255},
		TileOutline:      color.NRGBA{A: 255},
		OutputNamePrefix: DefaultNamePrefix,
	}
}

// fixedTile reports whether fixed-tile mode is enabled.
func (s Settings) fixedTile() bool {
	return s.TileWidth > 0 && s.TileHeight > 0
}

// ParseSettings resolves a loosely-typed settings map into Settings.
// Unknown keys are ignored; recognized keys are coerced per field and a
// failed coercion keeps the default. The map may be nil.
func ParseSettings(data map[string]any) Settings {
	s := DefaultSettings()
	if data == nil {
		return s
	}

	// Column count precedence: first present key wins, even if its value
	// turns out to be unusable.
	for _, key := range []string{"xTiles", "columns", "x"} {
		if v, ok := data[key]; ok {
			if n, ok := intValue(v); ok {
				s.Columns = n
			}
			break
		}
	}

	if v, ok := data["maxLongestEdge"]; ok {
		if n, ok := intValue(v); ok {
			s.MaxLongestEdge = n
		}
	}
	if v, ok := data["padding"]; ok {
		if n, ok := intValue(v); ok {
			s.Padding = n
		}
	}
	if v, ok := data["addLabels"]; ok {
		if b, ok := boolValue(v); ok {
			s.AddLabels = b
		}
	}
	if v, ok := data["tilePrefix"]; ok {
		if t, ok := stringValue(v); ok && strings.TrimSpace(t) != "" {
			s.TilePrefix = strings.TrimSpace(t)
		}
	}
	if v, ok := data["backgroundColor"]; ok {
		if t, ok := stringValue(v); ok {
			s.Background = ParseHex(t, s.Background)
		}
	}
	if v, ok := data["textColor"]; ok {
		if t, ok := stringValue(v); ok {
			s.Text = ParseHex(t, s.Text)
		}
	}
	if v, ok := data["tileOutlineColor"]; ok {
		if t, ok := stringValue(v); ok {
			s.TileOutline = ParseHex(t, s.TileOutline)
		}
	}
	if v, ok := data["tileOutlineWidth"]; ok {
		if n, ok := intValue(v); ok {
			s.TileOutlineWidth = n
		}
	}
	if v, ok := data["fitMode"]; ok {
		if t, ok := stringValue(v); ok {
			if mode := strings.ToLower(strings.TrimSpace(t)); mode == FitCover {
				s.FitMode = FitCover
			}
		}
	}
	if v, ok := data["outputDir"]; ok {
		if t, ok := stringValue(v); ok {
			s.OutputDir = t
		}
	}
	if v, ok := data["outputNamePrefix"]; ok {
		if t, ok := stringValue(v); ok && strings.TrimSpace(t) != "" {
			s.OutputNamePrefix = t
		}
	}
	if v, ok := data["outputPath"]; ok {
		if t, ok := stringValue(v); ok {
			s.OutputPath = t
		}
	}

	// Fixed-tile mode needs both dimensions; a partial pair is discarded.
	tw, okW := intValue(data["tileWidth"])
	th, okH := intValue(data["tileHeight"])
	if okW && okH && tw >= 1 && th >= 1 {
		s.TileWidth = tw
		s.TileHeight = th
	}

	// Clamp to minimums after parsing.
	if s.Columns < 1 {
		s.Columns = 1
	}
	if s.MaxLongestEdge < 1 {
		s.MaxLongestEdge = 1
	}
	if s.Padding < 0 {
		s.Padding = 0
	}
	if s.TileOutlineWidth < 0 {
		s.TileOutlineWidth = 0
	}

	return s
}

// =============================================================================
// Coercion Helpers
// =============================================================================

// intValue coerces a loosely-typed value to an int. JSON decoding yields
// float64, TOML yields int64, and callers may pass plain ints or numeric
// strings; everything else fails the coercion.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		if f, err := n.Float64(); err == nil {
			return int(f), true
		}
		return 0, false
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// boolValue coerces a loosely-typed value to a bool.
func boolValue(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		if parsed, err := strconv.ParseBool(strings.TrimSpace(b)); err == nil {
			return parsed, true
		}
		return false, false
	default:
		return false, false
	}
}

// stringValue coerces a loosely-typed value to a string. Numbers are
// formatted rather than rejected, mirroring the permissive inputs the
// service accepts.
func stringValue(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	default:
		return "", false
	}
}
