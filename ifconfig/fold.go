package ifconfig

import (
	"errors"

	"github.com/colemancda/swift-syntax/diag"
	"github.com/colemancda/swift-syntax/syntax"
)

// Fold rewrites tree under cfg, removing every directive reachable from an
// active region. It returns the rewritten tree (the same handle when nothing
// changed) and the pass's diagnostics in first-encountered order. The buffer
// is unbounded: every failing directive yields its entry no matter how many
// there are.
func Fold(tree syntax.Node, cfg BuildConfiguration) (syntax.Node, *diag.Bag) {
	return FoldWithLimit(tree, cfg, 0)
}

// FoldWithLimit is Fold with an explicit diagnostics cap for hosts that want
// to bound the buffer; maxDiagnostics <= 0 means unbounded.
func FoldWithLimit(tree syntax.Node, cfg BuildConfiguration, maxDiagnostics int) (syntax.Node, *diag.Bag) {
	bag := diag.NewBag(maxDiagnostics)
	folded := FoldWith(tree, cfg, diag.BagReporter{Bag: bag})
	return folded, bag
}

// FoldWith streams diagnostics to reporter instead of collecting a Bag, for
// hosts that forward them elsewhere as the pass runs.
func FoldWith(tree syntax.Node, cfg BuildConfiguration, reporter diag.Reporter) syntax.Node {
	f := &folder{
		config:   cfg,
		reporter: reporter,
	}
	return f.fold(tree)
}

// folder runs one pass. The reporter is owned exclusively by this pass; the
// input tree is read-only for its whole duration.
type folder struct {
	config   BuildConfiguration
	reporter diag.Reporter
	failed   map[*syntax.IfConfigDecl]bool
}

// activeClause asks the configuration for the active clause. ok is false when
// evaluation failed, in which case the diagnostic has already been recorded.
// A directive that already failed in this pass is not re-evaluated: re-walking
// a rewritten chain must not report the same node twice.
func (f *folder) activeClause(d *syntax.IfConfigDecl) (*syntax.IfConfigClause, bool) {
	if f.failed[d] {
		return nil, false
	}
	clause, err := f.config.ActiveClause(d)
	if err != nil {
		if f.failed == nil {
			f.failed = make(map[*syntax.IfConfigDecl]bool)
		}
		f.failed[d] = true
		sp := d.Span()
		code := diag.CfgEvalError
		var evalErr *EvaluationError
		if errors.As(err, &evalErr) {
			if !evalErr.Span.Empty() {
				sp = evalErr.Span
			}
			if evalErr.Code != diag.UnknownCode {
				code = evalErr.Code
			}
		}
		f.reporter.Report(code, diag.SevError, sp, err.Error(), nil)
		return nil, false
	}
	return clause, true
}

// fold is the generic recursive walk. Lists are pruned before descending so
// that directives nested below the immediate list level are still found; a
// postfix directive result is re-walked because it may still contain
// directives in a substituted base or a nested clause.
func (f *folder) fold(n syntax.Node) syntax.Node {
	if n == nil {
		return nil
	}
	switch n := n.(type) {
	case *syntax.SourceFile:
		stmts := f.foldCodeBlockItemList(n.Statements)
		if stmts == n.Statements {
			return n
		}
		return n.WithStatements(stmts)

	case *syntax.CodeBlockItemList:
		return f.foldCodeBlockItemList(n)
	case *syntax.MemberBlockItemList:
		return f.foldMemberBlockItemList(n)
	case *syntax.SwitchCaseList:
		return f.foldSwitchCaseList(n)
	case *syntax.AttributeList:
		return f.foldAttributeList(n)

	case *syntax.CodeBlockItem:
		item := f.fold(n.Item)
		if item == n.Item {
			return n
		}
		return n.WithItem(item)
	case *syntax.MemberBlockItem:
		decl := f.fold(n.Decl)
		if decl == n.Decl {
			return n
		}
		return n.WithDecl(decl)

	case *syntax.NominalDecl:
		attrs := f.foldAttributeList(n.Attributes)
		members := f.foldMemberBlockItemList(n.Members)
		if attrs == n.Attributes && members == n.Members {
			return n
		}
		return n.WithAttributes(attrs).WithMembers(members)
	case *syntax.FunctionDecl:
		attrs := f.foldAttributeList(n.Attributes)
		body := f.foldCodeBlockItemList(n.Body)
		if attrs == n.Attributes && body == n.Body {
			return n
		}
		return n.WithAttributes(attrs).WithBody(body)
	case *syntax.SwitchExpr:
		subject := f.fold(n.Subject)
		cases := f.foldSwitchCaseList(n.Cases)
		if subject == n.Subject && cases == n.Cases {
			return n
		}
		return n.WithSubject(subject).WithCases(cases)
	case *syntax.SwitchCase:
		stmts := f.foldCodeBlockItemList(n.Statements)
		if stmts == n.Statements {
			return n
		}
		return n.WithStatements(stmts)

	case *syntax.PostfixIfConfigExpr:
		result := f.foldPostfix(nil, n)
		if result == syntax.Node(n) {
			// Evaluation failed and the directive survives verbatim.
			return n
		}
		return f.fold(result)

	case *syntax.TupleExpr:
		elements, changed := f.foldNodes(n.Elements)
		if !changed {
			return n
		}
		return n.WithElements(elements)
	case *syntax.MemberAccessExpr:
		base := f.fold(n.Base)
		if base == n.Base {
			return n
		}
		return n.WithBase(base)
	case *syntax.GenericSpecializationExpr:
		expr := f.fold(n.Expr)
		if expr == n.Expr {
			return n
		}
		return n.WithExpr(expr)
	case *syntax.FunctionCallExpr:
		callee := f.fold(n.Callee)
		args, argsChanged := f.foldNodes(n.Arguments)
		if callee == n.Callee && !argsChanged {
			return n
		}
		return n.WithCallee(callee).WithArguments(args)
	case *syntax.SubscriptExpr:
		target := f.fold(n.Target)
		args, argsChanged := f.foldNodes(n.Arguments)
		if target == n.Target && !argsChanged {
			return n
		}
		return n.WithTarget(target).WithArguments(args)
	case *syntax.OptionalChainingExpr:
		operand := f.fold(n.Operand)
		if operand == n.Operand {
			return n
		}
		return n.WithOperand(operand)
	case *syntax.ForceUnwrapExpr:
		operand := f.fold(n.Operand)
		if operand == n.Operand {
			return n
		}
		return n.WithOperand(operand)
	case *syntax.PostfixUnaryExpr:
		operand := f.fold(n.Operand)
		if operand == n.Operand {
			return n
		}
		return n.WithOperand(operand)
	}

	// Leaves and bare directives outside any list or postfix position
	// (the latter only constructible by hand) pass through unchanged.
	return n
}

// foldNodes walks a homogeneous child slice, copying it only on first change.
func (f *folder) foldNodes(nodes []syntax.Node) ([]syntax.Node, bool) {
	out := nodes
	changed := false
	for i, n := range nodes {
		folded := f.fold(n)
		if folded == n {
			continue
		}
		if !changed {
			changed = true
			out = make([]syntax.Node, len(nodes))
			copy(out, nodes)
		}
		out[i] = folded
	}
	return out, changed
}

func (f *folder) foldCodeBlockItemList(l *syntax.CodeBlockItemList) *syntax.CodeBlockItemList {
	if l == nil {
		return nil
	}
	items, pruned := pruneList(f, l.Items, codeBlockShape)
	out := items
	walked := false
	for i, it := range items {
		folded := f.fold(it).(*syntax.CodeBlockItem)
		if folded == it {
			continue
		}
		if !walked {
			walked = true
			out = make([]*syntax.CodeBlockItem, len(items))
			copy(out, items)
		}
		out[i] = folded
	}
	if !pruned && !walked {
		return l
	}
	return l.WithItems(out)
}

func (f *folder) foldMemberBlockItemList(l *syntax.MemberBlockItemList) *syntax.MemberBlockItemList {
	if l == nil {
		return nil
	}
	items, pruned := pruneList(f, l.Items, memberBlockShape)
	out := items
	walked := false
	for i, it := range items {
		folded := f.fold(it).(*syntax.MemberBlockItem)
		if folded == it {
			continue
		}
		if !walked {
			walked = true
			out = make([]*syntax.MemberBlockItem, len(items))
			copy(out, items)
		}
		out[i] = folded
	}
	if !pruned && !walked {
		return l
	}
	return l.WithItems(out)
}

func (f *folder) foldSwitchCaseList(l *syntax.SwitchCaseList) *syntax.SwitchCaseList {
	if l == nil {
		return nil
	}
	cases, pruned := pruneList(f, l.Cases, switchCaseShape)
	out, walked := f.foldNodes(cases)
	if !pruned && !walked {
		return l
	}
	return l.WithCases(out)
}

func (f *folder) foldAttributeList(l *syntax.AttributeList) *syntax.AttributeList {
	if l == nil {
		return nil
	}
	attrs, pruned := pruneList(f, l.Attributes, attributeShape)
	out, walked := f.foldNodes(attrs)
	if !pruned && !walked {
		return l
	}
	return l.WithAttributes(out)
}
