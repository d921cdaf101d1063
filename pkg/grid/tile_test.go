package grid

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

// writeTestImage saves a solid-color PNG fixture and returns its path.
func writeTestImage(t *testing.T, dir, name string, w, h int, c color.NRGBA) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := imaging.Save(imaging.New(w, h, c), path); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

// writeCorruptImage saves a file with a .png name that is not a PNG.
func writeCorruptImage(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatalf("write corrupt fixture: %v", err)
	}
	return path
}

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

func TestPlaceholderTileFixedMode(t *testing.T) {
	s := DefaultSettings()
	s.TileWidth = 200
	s.TileHeight = 150

	tile := placeholderTile(s, s.TileWidth)
	if got := tile.Bounds(); got.Dx() != 200 || got.Dy() != 150 {
		t.Errorf("placeholder = %dx%d, want 200x150", got.Dx(), got.Dy())
	}
	if a := tile.NRGBAAt(100, 75).A; a != 0 {
		t.Errorf("placeholder alpha = %d, want fully transparent", a)
	}
}

func TestPlaceholderTileDynamicModeIsSquare(t *testing.T) {
	tile := placeholderTile(DefaultSettings(), 260)
	if got := tile.Bounds(); got.Dx() != 260 || got.Dy() != 260 {
		t.Errorf("placeholder = %dx%d, want 260x260", got.Dx(), got.Dy())
	}
}

func TestRenderTileLoadFailures(t *testing.T) {
	dir := t.TempDir()
	corrupt := writeCorruptImage(t, dir, "broken.png")

	s := DefaultSettings()
	for _, path := range []string{"", filepath.Join(dir, "missing.png"), corrupt} {
		if _, err := renderTile(Item{Path: path, Label: "SHOT 1"}, s, 100); err == nil {
			t.Errorf("renderTile(%q) error = nil, want load failure", path)
		}
	}
}

func TestRenderTileContainLetterboxes(t *testing.T) {
	dir := t.TempDir()
	path := writeTestImage(t, dir, "wide.png", 100, 50, blue)

	s := DefaultSettings()
	s.TileWidth = 200
	s.TileHeight = 200
	s.AddLabels = false

	tile, err := renderTile(Item{Path: path}, s, s.TileWidth)
	if err != nil {
		t.Fatalf("renderTile() error: %v", err)
	}
	if got := tile.Bounds(); got.Dx() != 200 || got.Dy() != 200 {
		t.Fatalf("tile = %dx%d, want exactly 200x200", got.Dx(), got.Dy())
	}

	// 100x50 scales to 200x100, centered: rows 50..149 are image, the rest
	// is transparent letterboxing.
	if a := tile.NRGBAAt(100, 10).A; a != 0 {
		t.Errorf("letterbox pixel alpha = %d, want 0", a)
	}
	if got := tile.NRGBAAt(100, 100); got != blue {
		t.Errorf("center pixel = %v, want %v", got, blue)
	}
}

func TestRenderTileCoverFillsExactly(t *testing.T) {
	dir := t.TempDir()
	path := writeTestImage(t, dir, "wide.png", 100, 50, green)

	s := DefaultSettings()
	s.TileWidth = 100
	s.TileHeight = 100
	s.FitMode = FitCover
	s.AddLabels = false

	tile, err := renderTile(Item{Path: path}, s, s.TileWidth)
	if err != nil {
		t.Fatalf("renderTile() error: %v", err)
	}
	if got := tile.Bounds(); got.Dx() != 100 || got.Dy() != 100 {
		t.Fatalf("tile = %dx%d, want exactly 100x100", got.Dx(), got.Dy())
	}
	// Cover crops instead of letterboxing: every corner is opaque.
	for _, pt := range [][2]int{{1, 1}, {98, 1}, {1, 98}, {98, 98}} {
		if a := tile.NRGBAAt(pt[0], pt[1]).A; a != 255 {
			t.Errorf("corner %v alpha = %d, want opaque", pt, a)
		}
	}
}

func TestRenderTileDynamicScalesToCellWidth(t *testing.T) {
	dir := t.TempDir()
	path := writeTestImage(t, dir, "wide.png", 100, 50, red)

	s := DefaultSettings()
	s.AddLabels = false

	tile, err := renderTile(Item{Path: path}, s, 300)
	if err != nil {
		t.Fatalf("renderTile() error: %v", err)
	}
	if got := tile.Bounds(); got.Dx() != 300 || got.Dy() != 150 {
		t.Errorf("tile = %dx%d, want 300x150 (aspect preserved)", got.Dx(), got.Dy())
	}
}

func TestRenderTileDynamicIgnoresFitMode(t *testing.T) {
	dir := t.TempDir()
	path := writeTestImage(t, dir, "wide.png", 100, 50, red)

	s := DefaultSettings()
	s.FitMode = FitCover
	s.AddLabels = false

	tile, err := renderTile(Item{Path: path}, s, 200)
	if err != nil {
		t.Fatalf("renderTile() error: %v", err)
	}
	if got := tile.Bounds(); got.Dx() != 200 || got.Dy() != 100 {
		t.Errorf("tile = %dx%d, want 200x100 regardless of fitMode", got.Dx(), got.Dy())
	}
}

func TestDecorateTileKeepsDimensions(t *testing.T) {
	s := DefaultSettings()
	s.TileWidth = 120
	s.TileHeight = 80
	s.TileOutlineWidth = 4

	tile := imaging.New(120, 80, blue)
	decorated := decorateTile(tile, "SHOT 1", s)
	if got := decorated.Bounds(); got.Dx() != 120 || got.Dy() != 80 {
		t.Errorf("decorated = %dx%d, want unchanged 120x80", got.Dx(), got.Dy())
	}
}

func TestDecorateTileDrawsOutline(t *testing.T) {
	s := DefaultSettings()
	s.AddLabels = false
	s.TileOutlineWidth = 6
	s.TileOutline = red

	tile := imaging.New(100, 100, blue)
	decorated := decorateTile(tile, "", s)

	// The stroke is centered on a rectangle inset by 3px, so the border
	// region is red while the center stays untouched.
	if got := decorated.NRGBAAt(3, 50); got != red {
		t.Errorf("border pixel = %v, want %v", got, red)
	}
	if got := decorated.NRGBAAt(50, 50); got != blue {
		t.Errorf("center pixel = %v, want %v", got, blue)
	}
}

func TestDecorateTileNoOverlaysReturnsSameTile(t *testing.T) {
	s := DefaultSettings()
	s.AddLabels = false

	tile := imaging.New(50, 50, green)
	if got := decorateTile(tile, "SHOT 1", s); got != tile {
		t.Error("decorateTile() copied the tile with no overlays enabled")
	}
}
