// Package buildcfg provides a concrete build configuration backed by a flat
// flag table. Conditions stay opaque names: a clause condition must be a bare
// identifier, and anything else fails evaluation rather than being guessed.
package buildcfg

import (
	"crypto/sha256"
	"fmt"
	"sort"

	"github.com/colemancda/swift-syntax/diag"
	"github.com/colemancda/swift-syntax/ifconfig"
	"github.com/colemancda/swift-syntax/syntax"
)

// Digest is a fixed 256-bit hash, compatible with source.File.Hash.
type Digest [32]byte

// FlagTable maps flag names to their declared value. A flag is tri-state:
// declared true, declared false, or undeclared. Evaluating an undeclared flag
// is an error, not false, so that misspelled flags surface as diagnostics
// instead of silently dropping code.
type FlagTable struct {
	flags map[string]bool
}

// NewFlagTable builds a table from declared flags. The map is copied.
func NewFlagTable(flags map[string]bool) *FlagTable {
	cp := make(map[string]bool, len(flags))
	for k, v := range flags {
		cp[k] = v
	}
	return &FlagTable{flags: cp}
}

// Declared reports whether the flag exists and its value.
func (t *FlagTable) Declared(name string) (value, ok bool) {
	value, ok = t.flags[name]
	return value, ok
}

// ActiveClause walks the directive's clauses in order and returns the first
// eligible one: a clause whose condition evaluates to true, or the
// unconditional #else. At most one clause is ever returned. A condition that
// cannot be evaluated fails the whole directive.
func (t *FlagTable) ActiveClause(directive *syntax.IfConfigDecl) (*syntax.IfConfigClause, error) {
	for _, clause := range directive.Clauses {
		if clause.Condition == nil {
			return clause, nil
		}
		active, err := t.eval(clause.Condition)
		if err != nil {
			return nil, err
		}
		if active {
			return clause, nil
		}
	}
	return nil, nil
}

func (t *FlagTable) eval(condition syntax.Node) (bool, error) {
	switch cond := condition.(type) {
	case *syntax.BooleanLiteralExpr:
		return cond.Value, nil
	case *syntax.IdentifierExpr:
		value, ok := t.flags[cond.Name]
		if !ok {
			return false, &ifconfig.EvaluationError{
				Span:    cond.Span(),
				Code:    diag.CfgUnknownFlag,
				Message: fmt.Sprintf("build flag %q is not declared", cond.Name),
			}
		}
		return value, nil
	}
	return false, &ifconfig.EvaluationError{
		Span:    condition.Span(),
		Code:    diag.CfgBadCondition,
		Message: fmt.Sprintf("unsupported condition of kind %s", condition.Kind()),
	}
}

// Fingerprint returns a stable digest of the table: H(name=value || ...) over
// entries sorted by name. Suitable as a cache key component.
func (t *FlagTable) Fingerprint() Digest {
	names := make([]string, 0, len(t.flags))
	for name := range t.flags {
		names = append(names, name)
	}
	sort.Strings(names)

	h := sha256.New()
	for _, name := range names {
		_, _ = fmt.Fprintf(h, "%s=%t\n", name, t.flags[name])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// Combine builds a compound cache key: H( content || fingerprint ).
func Combine(content [32]byte, fingerprint Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	_, _ = h.Write(fingerprint[:])
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
