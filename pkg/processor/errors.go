package processor

import "errors"

// Code classifies a Reason.
type Code string

const (
	// CodeValueMissing means a required value is absent.
	CodeValueMissing Code = "value_missing"
	// CodeTypeMismatch means the value has the wrong kind.
	CodeTypeMismatch Code = "type_mismatch"
	// CodePredicateFailed means a predicate rejected the value.
	CodePredicateFailed Code = "predicate_failed"
	// CodeNoCoercionFound means a coercion could not convert its input.
	CodeNoCoercionFound Code = "no_coercion_found"
	// CodeAllCandidatesFailed summarizes a coercer whose candidates all failed.
	CodeAllCandidatesFailed Code = "all_candidates_failed"
	// CodeDisallowed means a property that must be absent is present.
	CodeDisallowed Code = "disallowed"
	// CodeDuplicate means two fields produced the same key.
	CodeDuplicate Code = "duplicate"
	// CodeDepthExceeded means the input is nested deeper than the run allows.
	CodeDepthExceeded Code = "depth_exceeded"
	// CodeCustom marks a reason whose message was replaced by the caller.
	CodeCustom Code = "custom"
)

// ErrValidationFailed is matched by every Reasons value via errors.Is.
var ErrValidationFailed = errors.New("validation failed")
