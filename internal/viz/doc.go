// Package viz presents a finished decay run in the terminal.
//
// The package provides:
//
//   - [Viewer]: interactive Bubble Tea model for inspecting the decay curve day by day
//   - [Summary]: styled end-of-run report with locale-aware number formatting
//   - [Present]: picks the viewer when a terminal is attached, a static preview otherwise
//
// # Key Bindings
//
//	←/→ h/l   - Move the day cursor by one day
//	PgUp/PgDn - Move the day cursor by one report stride (30 days)
//	Home/End  - Jump to the first or last day
//	T         - Cycle color themes
//	Q/Esc     - Close the viewer
package viz
