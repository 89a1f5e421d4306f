// Package motion plays short declarative scenes: shapes and text
// (mobjects) animated by a timeline of plays and waits, rendered at a fixed
// frame rate.
//
// Scene coordinates are centered units with y pointing up. The visible frame
// is 8 units tall and as wide as the output aspect ratio allows.
//
// Key types:
//   - Mobject: a shape, text or group, stored in scene coordinates
//   - Animation: captures its start state in Begin, then Interpolate(alpha)
//   - Scene: display list plus the ordered timeline
//   - Generator: renders a Script frame by frame as an anim.Generator
//
// Example:
//
//	s := motion.NewScene()
//	c := motion.Circle(1.5, motion.Blue)
//	s.Play(motion.Create(c))
//	s.Play(motion.Shift(c, motion.V(2, 0)))
//	s.Wait(1)
package motion
