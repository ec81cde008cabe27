// Package render draws flowsheet documents and circuit vectors as PNG images.
//
// # Overview
//
// Both renderers build Graphviz DOT source by hand and hand it to the
// in-process engine from [github.com/goccy/go-graphviz]. No external
// binaries are required.
//
//	dot := render.GraphDOT(doc, render.Options{ShowLabels: true})
//	png, err := render.PNG(ctx, dot)
//
// [WriteGraph] and [WriteTable] do both steps and store the image.
//
// # Graph Layout
//
// Flowsheets are laid out left to right at 300 dpi. Each stream leaves its
// unit from a fixed side so the three outputs stay visually apart:
//
//   - concentrate: top of the source, left of the target
//   - intermediate: right of the source, left of the target
//   - tailing: bottom of the source, left of the target
//   - feed and unknown streams: right of the source, left of the target
//
// Hiding edge labels never changes ports or colors.
//
// # Vector Table
//
// [TableDOT] draws the raw vector as an HTML-like table: a header row with
// Feed and one three-column Unit cell per unit, and a data row with every
// value.
//
// # Errors
//
// Engine start-up, DOT parsing and rasterizing failures wrap
// [errs.ErrRender]. Failures writing the image wrap [errs.ErrIO].
package render
