package grid

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// compose fills a canvas with the background color and pastes the rendered
// tiles onto it in a single row-major pass. Each tile is vertically centered
// within its row and alpha-composited, so transparent placeholder tiles
// leave the background visible. Tiles are consumed exactly once; nothing
// else touches the canvas.
func compose(tiles []*image.NRGBA, plan layoutPlan, background color.NRGBA) *image.NRGBA {
	canvas := imaging.New(plan.canvasWidth, plan.canvasHeight(), background)

	x, y := plan.padding, plan.padding
	row := 0
	for i, tile := range tiles {
		rowHeight := plan.rowHeights[row]
		offset := (rowHeight - tile.Bounds().Dy()) / 2
		canvas = imaging.Overlay(canvas, tile, image.Pt(x, y+offset), 1.0)

		x += plan.cellWidth + plan.padding
		if (i+1)%plan.columns == 0 {
			x = plan.padding
			y += rowHeight + plan.padding
			row++
		}
	}
	return canvas
}
