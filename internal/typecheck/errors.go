package typecheck

import (
	"fmt"
	"strings"
)

// ErrorKind identifies the category of type error (spec §7).
type ErrorKind string

const (
	UnboundVariable       ErrorKind = "unbound_variable"
	AnnotationMismatch    ErrorKind = "annotation_mismatch"
	NotAFunction          ErrorKind = "not_a_function"
	ParameterMismatch     ErrorKind = "parameter_mismatch"
	MergeLabelMismatch    ErrorKind = "merge_label_mismatch"
	HandlerNotFunction    ErrorKind = "handler_not_function"
	HandlerOutputMismatch ErrorKind = "handler_output_mismatch"
	EmptyMergeNoAnnotation ErrorKind = "empty_merge_no_annotation"
	DuplicateLabel        ErrorKind = "duplicate_label"
	MissingField          ErrorKind = "missing_field"
	NotARecordOrUnion     ErrorKind = "not_a_record_or_union"
	InconsistentUniverse  ErrorKind = "inconsistent_universe"
	SortHasNoType         ErrorKind = "sort_has_no_type"
)

// Error is a type-checking failure. Path accumulates the canonical form
// of each enclosing subexpression as the failure bubbles up through
// Infer's recursive calls (spec §7: "each recursive type inference call
// wraps a failure with the offending subexpression's canonical form"),
// innermost first.
//
// Grounded on the teacher's types.TypeCheckError: same Kind/Path/
// Expected/Actual/Message shape. Error() joins the message, then the
// expected/actual pair, then the path.
type Error struct {
	Kind     ErrorKind
	Path     []string
	Message  string
	Expected string
	Actual   string
}

func (e *Error) Error() string {
	var parts []string
	parts = append(parts, e.Message)
	if e.Expected != "" || e.Actual != "" {
		parts = append(parts, fmt.Sprintf("expected: %s, actual: %s", e.Expected, e.Actual))
	}
	if len(e.Path) > 0 {
		parts = append(parts, fmt.Sprintf("in: %s", strings.Join(e.Path, " <- ")))
	}
	return strings.Join(parts, "; ")
}
