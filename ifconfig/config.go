// Package ifconfig prunes conditional-compilation directives from a syntax
// tree. Given an immutable tree and a build configuration, Fold returns an
// equivalent tree containing only the branches the configuration selects,
// plus diagnostics for every directive whose condition could not be
// evaluated. The input tree is never mutated; untouched subtrees are shared
// between input and output.
package ifconfig

import (
	"github.com/colemancda/swift-syntax/diag"
	"github.com/colemancda/swift-syntax/source"
	"github.com/colemancda/swift-syntax/syntax"
)

// BuildConfiguration decides which clause of a directive is active.
//
// ActiveClause must be deterministic for fixed inputs and must honor
// first-eligible-clause-wins ordering: at most one clause is active. It
// returns nil with a nil error when no clause applies. Condition semantics
// are entirely the configuration's business; the engine treats them as
// opaque.
type BuildConfiguration interface {
	ActiveClause(directive *syntax.IfConfigDecl) (*syntax.IfConfigClause, error)
}

// EvaluationError reports a directive condition that could not be resolved.
// The engine converts it into a diagnostic and keeps the directive verbatim;
// it never aborts the pass.
type EvaluationError struct {
	Span    source.Span
	Code    diag.Code
	Message string
}

func (e *EvaluationError) Error() string {
	return e.Message
}
