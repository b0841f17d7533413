// Package input produces and validates the initial data of algorithm runs.
//
// What:
//
//   - Generator: deterministic seeded producer of integer, fractional,
//     sorted and grid input. seed==0 selects a fixed default seed, so
//     runs are reproducible without any time based source.
//   - Profile: the default shape of an algorithm's random input (length,
//     value range, grid size and wall density). Profiles are bounds checked
//     before generation.
//   - Check*: validators shared by every adapter. They report all offending
//     elements at once and classify the failure as ErrInvalidInput.
//
// Errors:
//
//   - ErrInvalidInput   input rejected; the adapter records nothing
//   - ErrBadProfile     generator bounds cannot be satisfied
//
// Concurrency:
//
//   - Generator is not goroutine safe. Use Derive to create independent
//     streams for concurrent workers.
package input
