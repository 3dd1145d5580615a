// SPDX-License-Identifier: MIT

// Package render rasterizes a gridgraph.Grid, and optionally a route over it,
// into an image.
//
// Each Cell is a CellPixels-wide square. A wall is drawn on a Cell side unless
// that side is a link, so isolated Cells appear boxed in and corridors appear
// open. Route Cells are filled with RouteColor; the first and last route Cells
// carry start and end markers composed on top with image_utils.
//
// Coordinates outside the bounding box of the Grid's Cells, and holes inside
// it, are drawn as background.
package render
