// Package viz is the terminal front end for the gravity toy.
//
// It implements an interactive TUI using the Bubble Tea framework:
//
//   - [RunInteractive]: preset menu, then the live view
//   - [Model]: live view driving a [sim.Universe] once per frame
//   - [Canvas]: Braille-based pixel canvas with per-cell color
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	Click - Spawn a body at the cursor
//	N     - Spawn a body at a random position
//	+/-   - Scale gravity
//	]/[   - Raise/lower spawn mass
//	R     - Reset to initial state
//	V     - Toggle velocity vectors
//	T     - Cycle color themes
//	?     - Toggle the key list in the stats panel
//	Esc   - Back to the preset menu
package viz
