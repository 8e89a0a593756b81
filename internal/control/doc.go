// Package control is the user-facing control surface of a universe.
//
// Front ends translate their raw events (terminal keys, mouse clicks, window
// input) into one [Input] per frame and hand it to [Surface.Apply]:
//
//	in := control.Input{TogglePause: spacePressed}
//	if err := surface.Apply(u, in); err != nil {
//	    // show err, nothing else to do
//	}
//
// Apply never blocks and is meant to run between ticks on the same goroutine
// that calls [sim.Universe.Frame].
package control
