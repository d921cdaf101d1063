package grid

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/gridshot/gridshot/pkg/fonts"
)

// renderTile loads the item's source image and fits it into a tile.
//
// Fixed-tile mode produces a tile of exactly TileWidth x TileHeight:
// "contain" letterboxes the scaled source on a transparent tile, "cover"
// scales to fill and center-crops. Dynamic mode scales the source to the
// cell width and lets the aspect ratio dictate the height.
//
// Any load or decode failure is returned to the caller, which substitutes a
// placeholder; the item itself is never dropped.
func renderTile(item Item, s Settings, cellWidth int) (*image.NRGBA, error) {
	src, err := imaging.Open(item.Path)
	if err != nil {
		return nil, err
	}

	var tile *image.NRGBA
	if s.fixedTile() {
		switch s.FitMode {
		case FitCover:
			tile = imaging.Fill(src, s.TileWidth, s.TileHeight, imaging.Center, imaging.Lanczos)
		default:
			tile = containTile(src, s.TileWidth, s.TileHeight)
		}
	} else {
		tile = scaleToWidth(src, cellWidth)
	}

	return decorateTile(tile, item.Label, s), nil
}

// placeholderTile builds the fully transparent stand-in for an item whose
// source could not be loaded. Fixed mode knows the exact tile size; dynamic
// mode has no aspect ratio to work from and falls back to a square.
func placeholderTile(s Settings, cellWidth int) *image.NRGBA {
	height := cellWidth
	if s.fixedTile() {
		height = s.TileHeight
	}
	return imaging.New(cellWidth, height, color.NRGBA{})
}

// containTile scales the source by the smaller edge ratio and centers it on
// a transparent tile of exactly (width, height).
func containTile(src image.Image, width, height int) *image.NRGBA {
	bounds := src.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()

	scale := math.Min(float64(width)/float64(srcW), float64(height)/float64(srcH))
	scaledW := max(1, int(math.Round(float64(srcW)*scale)))
	scaledH := max(1, int(math.Round(float64(srcH)*scale)))

	scaled := imaging.Resize(src, scaledW, scaledH, imaging.Lanczos)
	tile := imaging.New(width, height, color.NRGBA{})
	return imaging.PasteCenter(tile, scaled)
}

// scaleToWidth resizes the source to exactly width pixels wide, preserving
// the aspect ratio. Extreme panoramas still get at least one pixel of
// height.
func scaleToWidth(src image.Image, width int) *image.NRGBA {
	bounds := src.Bounds()
	height := bounds.Dy() * width / bounds.Dx()
	if height < 1 {
		height = 1
	}
	return imaging.Resize(src, width, height, imaging.Lanczos)
}

// decorateTile draws the label and outline overlays onto the tile. The label
// backdrop rectangle is a fixed-tile-mode behavior only; dynamic mode draws
// bare text, matching the historical asymmetry between the two modes.
func decorateTile(tile *image.NRGBA, label string, s Settings) *image.NRGBA {
	if !s.AddLabels && s.TileOutlineWidth <= 0 {
		return tile
	}

	dc := gg.NewContextForImage(tile)
	w := float64(tile.Bounds().Dx())
	h := float64(tile.Bounds().Dy())

	if s.AddLabels {
		drawLabel(dc, label, w, h, s.Text, s.fixedTile())
	}
	if s.TileOutlineWidth > 0 {
		drawOutline(dc, w, h, s.TileOutline, s.TileOutlineWidth)
	}

	return imaging.Clone(dc.Image())
}

// drawLabel draws the label anchored at the bottom-left corner. The font
// size scales with the smaller tile edge (floor 12pt) and the inset margin
// scales with the font size (floor 6px). With backdrop enabled, a
// semi-transparent black box is drawn behind the text for contrast.
func drawLabel(dc *gg.Context, label string, w, h float64, textColor color.NRGBA, backdrop bool) {
	fontSize := math.Max(12, math.Round(0.06*math.Min(w, h)))
	dc.SetFontFace(fonts.Face(fontSize))

	textW, textH := dc.MeasureString(label)
	margin := math.Max(6, math.Round(0.3*fontSize))

	x := margin
	top := math.Max(0, h-textH-margin)

	if backdrop {
		dc.SetRGBA(0, 0, 0, 80.0/255.0)
		dc.DrawRectangle(x-4, top-2, textW+8, textH+4)
		dc.Fill()
	}

	dc.SetColor(textColor)
	dc.DrawString(label, x, top+textH)
}

// drawOutline strokes a border rectangle inset by half the stroke width, so
// the stroke stays within the tile's extent.
func drawOutline(dc *gg.Context, w, h float64, outlineColor color.NRGBA, width int) {
	inset := float64(width / 2)
	dc.SetColor(outlineColor)
	dc.SetLineWidth(float64(width))
	dc.DrawRectangle(inset, inset, w-2*inset, h-2*inset)
	dc.Stroke()
}
