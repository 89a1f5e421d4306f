// Package flowfield renders the nebula animation: particles steered by a
// time-varying grid of angles, drawn as short segments onto a persistent
// canvas that fades a little every frame.
//
// # Ordering
//
// Each frame the generator performs, in order:
//   - Decay of the trail canvas
//   - Field update for t = frame * 0.1
//   - One simulator step (accelerate, damp, move, age, respawn)
//   - One segment per particle from its previous to current position
//
// Frames depend on all earlier frames, so Render must be called with
// consecutive indices starting at 0 after Reset.
package flowfield
