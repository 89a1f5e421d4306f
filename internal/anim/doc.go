// Package anim provides the frame-loop primitives shared by every generator.
//
// A generator describes its output with a [Spec] and renders frames one at a
// time. The [Runner] drives it from frame 0 to the last frame, feeding each
// finished frame to registered metrics and observers:
//
//   - [Generator]: renders frame i of a fixed-length sequence
//   - [Resetter]: optional hook for generators that carry state across frames
//   - [Metric]: accumulates a scalar over the frame sequence
//   - [Observer]: receives every finished frame
//   - [Runner]: orchestrates a run and collects the [Result]
//
// # Example
//
//	gen := scenes.NewPixelCat()
//	r := anim.NewRunner(logger)
//	res, err := r.Run(ctx, gen)
//
// # Ordering
//
// Frames are always rendered in order, on the calling goroutine. Generators
// that keep cross-frame state (the flow-field trails) rely on this.
package anim
