// Package raster wraps a gg drawing context with the small set of
// bounding-box drawing operations the scenes are written in.
//
// Coordinates follow pixel-art conventions: a rectangle or ellipse is given
// by its inclusive bounding box, so Rect(2, 2, 4, 4) covers a 3x3 block of
// pixels. Lines and polygon vertices are placed on pixel centers.
//
// Canvases from New are anti-aliased by gg. Canvases from NewAliased fill
// only pixels whose centers a shape covers, for pixel art that must keep
// its exact palette.
//
// Drawing errors are sticky: the first failure is kept and every later call
// is a no-op. Check Err once after a frame is drawn.
//
// Pixel operations (Decay, Brightness, ChangedPixels) act on opaque buffers
// and treat alpha as constant.
package raster
