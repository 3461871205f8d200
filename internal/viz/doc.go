// Package viz renders the page in a terminal.
//
// [Rasterize] maps the viewport onto a character grid: text where nodes
// draw text, shading for media, outlines for cards and braille dots for
// particles. Opacity picks the colour between the theme background and
// foreground, faces turned edge-on draw nothing and blurred text draws
// as dots.
//
// [App] is the interactive Bubble Tea front end.
//
// # Key Bindings
//
//	j/k, ↑/↓      - Scroll by one step
//	PgUp/PgDn     - Scroll by one screen
//	1-4           - Jump to a section
//	Tab           - Move hover focus to the next zone
//	Enter         - Follow the focused link
//	T             - Cycle color themes
//	G             - Toggle GIF recording
//	?             - Show help overlay
//	Q             - Quit
package viz
