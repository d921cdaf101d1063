package grid

// layoutPlan holds the computed grid geometry. The cell width and canvas
// width are known up front; row heights are filled in by finalize once every
// tile has been rendered, because dynamic-mode heights depend on each
// source's aspect ratio.
type layoutPlan struct {
	columns     int
	padding     int
	cellWidth   int
	canvasWidth int
	rowHeights  []int
}

// planFixed computes the geometry for fixed-tile mode. Every cell is exactly
// tileWidth wide and every row is tileHeight tall.
func planFixed(s Settings) layoutPlan {
	return layoutPlan{
		columns:     s.Columns,
		padding:     s.Padding,
		cellWidth:   s.TileWidth,
		canvasWidth: s.Padding + s.Columns*(s.TileWidth+s.Padding),
	}
}

// planDynamic computes the geometry for dynamic-width mode. The canvas width
// is fixed at maxLongestEdge and the cell width is whatever remains per
// column after padding. ok is false when the cell width drops below one
// pixel, which fails the whole build before any image is opened.
func planDynamic(s Settings) (layoutPlan, bool) {
	cellWidth := (s.MaxLongestEdge - (s.Columns+1)*s.Padding) / s.Columns
	if cellWidth < 1 {
		return layoutPlan{}, false
	}
	return layoutPlan{
		columns:     s.Columns,
		padding:     s.Padding,
		cellWidth:   cellWidth,
		canvasWidth: s.MaxLongestEdge,
	}, true
}

// finalize derives the per-row heights from the rendered tile heights:
// each row is as tall as its tallest tile. Items are assigned to rows
// strictly by position, columns per row.
func (p *layoutPlan) finalize(tileHeights []int) {
	p.rowHeights = p.rowHeights[:0]
	for start := 0; start < len(tileHeights); start += p.columns {
		end := min(start+p.columns, len(tileHeights))
		rowMax := 0
		for _, h := range tileHeights[start:end] {
			if h > rowMax {
				rowMax = h
			}
		}
		p.rowHeights = append(p.rowHeights, rowMax)
	}
}

// canvasHeight is the total height: one padding band above each row plus one
// below the last.
func (p layoutPlan) canvasHeight() int {
	h := p.padding * (len(p.rowHeights) + 1)
	for _, rh := range p.rowHeights {
		h += rh
	}
	return h
}
