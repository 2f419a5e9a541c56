// Package player runs an app against the live tree backend in a terminal.
//
// Each turn the player optionally prints the tree, lists the nodes with
// event listeners, asks the user to pick one, dispatches the event and
// renders the app again. Inputs ask for a value first. On terminals the
// choice is an interactive pterm select; otherwise a numbered prompt is
// read line by line, which is also what tests drive.
package player
