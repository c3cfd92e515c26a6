// Package generate orchestrates one end-to-end synthetic SS-MIX2 run: read
// rows via rowsource, validate them (unless the caller already has),
// synthesize patient identity details, assemble messages in clinical
// order, and write them to the SS-MIX2 storage tree via store.
//
// Parallelism follows the patient: every message for one patient is
// produced on a single worker, so per-patient ordering never needs
// cross-worker coordination. Each worker owns its own synth.Generator,
// seeded from the run's global seed and the worker's index, so a given
// patient's synthesized fields are identical regardless of how many
// workers a run uses or which one happens to process that patient —
// reassigning patients across a different worker count never changes
// the output, a property generate_test.go exercises directly.
package generate

import "errors"

// ErrValidationFailed is returned when a pre-flight sweep finds input rows
// that fail entity construction; the caller finds the structured report at
// output_dir/validation_errors.json.
var ErrValidationFailed = errors.New("generate: input validation failed, see validation_errors.json")
