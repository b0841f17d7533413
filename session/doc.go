// Package session wires one interactive run together: an input generator,
// the selected algorithm, its Trace and a playback Controller.
//
// Data flow:
//
//	Generator -> registry.Generate -> registry.Run -> Trace -> Controller.Load
//
// Regenerating or submitting input replaces the Trace and resets playback.
// Input refused by the adapter leaves the previous Trace and playback state
// untouched; the validation error is returned to the caller and counted.
//
// Playback observers registered through WithPlayback run while the Session
// loads a Trace and must not call back into the Session.
package session
