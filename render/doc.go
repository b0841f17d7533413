// Package render turns Steps and Traces into text: a terminal view of one
// Step, an ascii plot of its values, tables of the algorithm list and of a
// trace's phases, and JSON or YAML export of a whole Trace.
//
// Rendering only reads; nothing here mutates a Step or a Trace.
//
// Plain output (WithColor(false)) marks roles with one letter per column
// under the values:
//
//	S swapping   C comparing   P pivot   A active   * path
//	v visited    = sorted      x discarded
//
// Colored output paints the values instead.
package render
