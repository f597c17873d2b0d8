package ifconfig

import (
	"fmt"

	"github.com/colemancda/swift-syntax/syntax"
)

// foldPostfix collapses a directive that appears in postfix position into a
// single expression containing no directive. outerBase is the receiver
// accumulated by an enclosing postfix rewrite, nil at the top level.
func (f *folder) foldPostfix(outerBase syntax.Node, node *syntax.PostfixIfConfigExpr) syntax.Node {
	clause, ok := f.activeClause(node.Directive)
	if !ok {
		// Unresolvable condition: one diagnostic, directive kept verbatim.
		return node
	}

	base := node.Base
	if base == nil {
		base = outerBase
	}

	var suffix syntax.Node
	if clause != nil {
		suffix = clause.Elements
	}
	if suffix == nil || !isPostfixSuffix(suffix) {
		if base != nil {
			return base
		}
		return syntax.NewMissingExpr(node.Span())
	}

	if base == nil {
		// No receiver to thread: the suffix is already a complete
		// expression, e.g. a bare call.
		return suffix
	}
	return f.threadBase(base, suffix)
}

// threadBase descends expr along its single inner-expression edge and
// substitutes base at the innermost position: either a member access without
// a base, or a nested postfix directive. Each wrapper on the way down is
// rebuilt around the rewritten inner expression.
func (f *folder) threadBase(base, expr syntax.Node) syntax.Node {
	switch e := expr.(type) {
	case *syntax.MemberAccessExpr:
		if e.Base == nil {
			return e.WithBase(base)
		}
		return e.WithBase(f.threadBase(base, e.Base))
	case *syntax.GenericSpecializationExpr:
		return e.WithExpr(f.threadBase(base, e.Expr))
	case *syntax.FunctionCallExpr:
		return e.WithCallee(f.threadBase(base, e.Callee))
	case *syntax.SubscriptExpr:
		return e.WithTarget(f.threadBase(base, e.Target))
	case *syntax.OptionalChainingExpr:
		return e.WithOperand(f.threadBase(base, e.Operand))
	case *syntax.ForceUnwrapExpr:
		return e.WithOperand(f.threadBase(base, e.Operand))
	case *syntax.PostfixUnaryExpr:
		return e.WithOperand(f.threadBase(base, e.Operand))
	case *syntax.PostfixIfConfigExpr:
		return f.foldPostfix(base, e)
	}
	panic(fmt.Sprintf("ifconfig: unhandled postfix expression %s in directive elimination", expr.Kind()))
}

// isPostfixSuffix reports whether n belongs to the closed set of postfix
// wrapper kinds the rewriter knows how to thread a receiver through.
func isPostfixSuffix(n syntax.Node) bool {
	switch n.(type) {
	case *syntax.MemberAccessExpr,
		*syntax.GenericSpecializationExpr,
		*syntax.FunctionCallExpr,
		*syntax.SubscriptExpr,
		*syntax.OptionalChainingExpr,
		*syntax.ForceUnwrapExpr,
		*syntax.PostfixUnaryExpr,
		*syntax.PostfixIfConfigExpr:
		return true
	}
	return false
}
