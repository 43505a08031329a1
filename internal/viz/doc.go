// Package viz is the terminal front end of tzclock.
//
// The package implements the rendering collaborator and the Bubble Tea
// program around it:
//
//   - [View]: the renderer; keeps one slot per clock plus the timer display
//   - [Model]: the Bubble Tea model wiring keys to [app.App]
//   - [Canvas]: Braille-based pixel canvas used for analog faces
//   - Theme selection with 5 built-in colour schemes plus TOML theme files
//
// # Key Bindings
//
//	Tab   - Switch between clocks and timer
//	V     - Digital/analog faces
//	H     - 12/24-hour format
//	A     - Add a time zone
//	X     - Remove the selected clock
//	S     - Start or resume the timer
//	P     - Pause the timer
//	R     - Reset the timer
//	C     - Set the timer colour
//	T     - Cycle color themes
//	?     - Show help
package viz
