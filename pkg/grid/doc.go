// Package grid composites a set of source images into a single labeled
// contact-sheet PNG.
//
// The pipeline has four stages:
//
//  1. Resolve: coerce a loosely-typed settings map into validated Settings
//  2. Normalize: turn raw paths or {path, label} records into ordered items
//  3. Render: fit, label, and outline each item into a fixed-size tile
//  4. Compose: paste tiles row-major onto a background canvas and save it
//
// Two sizing modes exist. When both tileWidth and tileHeight are set, every
// tile is exactly that size and items keep their input order. Otherwise the
// canvas width is fixed (maxLongestEdge), the cell width is derived from the
// column count and padding, tile heights follow each source's aspect ratio,
// and items are ordered naturally by base name.
//
// A failed image load never aborts a build; the item degrades to a fully
// transparent placeholder tile and the batch continues.
//
// # Usage
//
//	builder := grid.NewBuilder(logger)
//	status, err := builder.Build(paths, map[string]any{
//	    "columns": 4,
//	    "padding": 16,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(status) // "Grid image saved to: ..."
package grid
