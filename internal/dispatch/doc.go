// Package dispatch implements the line-oriented command protocol on top of a
// board.Manager.
//
// A Session reads the protocol header (the skill vocabulary and the number of
// commands), then hands each command line to a Dispatcher. The Dispatcher
// runs the command against the Manager and renders the single line of output,
// if any, that the command produces.
package dispatch
