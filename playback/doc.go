// Package playback replays a finished trace.Trace step by step.
//
// What:
//
//	A Controller is the state machine {cursor, playing, speed} over one
//	Trace. Play arms a single timer that advances the cursor once per
//	interval and stops by itself on the last Step without wrapping. Pause
//	cancels it. Next, Prev and Seek move the cursor only while paused and
//	clamp to [0, Len()-1]. Load replaces the Trace and always resets.
//
// Timers:
//
//	At most one timer is armed per Controller. Arming cancels the previous
//	timer and bumps a generation counter; a tick whose generation is stale
//	is ignored, so a timer that fired while being cancelled never moves the
//	cursor. Close cancels the timer for good.
//
//	Time comes from a benbjohnson/clock Clock, so tests drive playback with
//	clock.NewMock.
//
// Errors:
//
//	ErrInvalidSpeed for a speed outside the presets Slow, Medium and Fast.
//	Navigation on a playing Controller is refused by returning false, and an
//	out of range Seek is clamped; neither is an error.
//
// Concurrency:
//
//	All methods are safe for concurrent use. OnStep observers run outside the
//	lock, on the timer goroutine for autoplay ticks. Calls are serialized and
//	a frame superseded by a later cursor change (Load, Reset, navigation or
//	tick) is dropped. Observers may query the Controller but must not move
//	its cursor.
package playback
