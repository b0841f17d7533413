// Package observability builds the logger and the metrics shared by the
// playback, session and CLI layers.
//
// What:
//
//   - NewLogger returns a logrus Logger with the configured level and a text
//     or json formatter. Discard returns an Entry that drops everything and is
//     the default of every component accepting a logger.
//   - Metrics holds prometheus collectors for traces built, inputs rejected,
//     playback ticks and the step count distribution. All methods are safe on
//     a nil *Metrics, so components can be built without metrics.
//
// The algorithm packages never log or count; only the layers that own a
// Trace do.
package observability
