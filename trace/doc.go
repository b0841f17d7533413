// Package trace implements the recording side of stepviz: the Step snapshot,
// the Recorder that algorithm adapters write into, and the finished Trace.
//
// What:
//
//   - Step: one immutable instant of algorithm state. A Step carries exactly one
//     primary representation (Values, Tree or Grid), optional auxiliary storage
//     (Buckets, Counts, Output), advisory Roles, scalar Marks, a Phase and a
//     narration Message. Terminal search/traversal Steps carry an Outcome.
//   - Recorder: append-only sink with value snapshotting. Every Record call
//     deep-copies the Step so adapters may continue mutating their working
//     storage. Invariant violations are sticky and surface from Finish.
//   - Trace: the finished, immutable sequence; at least one Step, first Step is
//     the unmodified input, last Step is PhaseComplete.
//   - Changes: the atomic distance between two Steps. Every adapter in this
//     module guarantees Changes(step[i], step[i+1]) <= 1.
//
// Errors:
//
//   - ErrEmptyTrace       nothing was recorded
//   - ErrNotTerminal      last Step is not PhaseComplete
//   - ErrSealed           Record after Finish
//   - ErrRepresentation   more than one of Values/Tree/Grid set, or a Grid
//     with len(Cells) != Rows*Cols
//   - ErrOrigins          len(Origins) != len(Values)
//   - ErrUnknownRole      role outside the closed role set
//   - ErrRoleOutOfRange   role position outside the current extent
//
// Complexity:
//
//   - Record: O(size of the Step) time and memory.
//   - Trace.At: O(size of the Step).
//   - Changes: O(size of both Steps).
package trace
