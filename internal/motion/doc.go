// Package motion provides the core primitives shared by every animation
// component of the page.
//
// The package defines the vocabulary used by timelines, triggers and
// section controllers:
//
//   - [Prop]: name of an animatable visual property (offset, scale, rotation, opacity, blur)
//   - [Props]: a named property set, used for from/to/rest values
//   - [Target]: anything with styleable properties and a mounted flag
//
// # Example
//
//	from := motion.Props{motion.Y: 100, motion.Opacity: 0}
//	to := motion.Props{motion.Y: 0, motion.Opacity: 1}
//	if !from.SameKeys(to) {
//		return motion.ErrPropMismatch
//	}
//
// # Thread Safety
//
// Nothing in this package is synchronised. The whole page runs on a single
// cooperative frame loop, see package frame.
package motion
