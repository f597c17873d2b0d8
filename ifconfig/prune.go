package ifconfig

import (
	"github.com/colemancda/swift-syntax/syntax"
)

// listShape gives the pruner the two per-kind capabilities it needs: finding
// the directive inside an element, and extracting clause elements of the
// matching list kind. Adding a new list kind means adding one shape.
type listShape[E any] struct {
	directive   func(E) *syntax.IfConfigDecl
	clauseItems func(syntax.Node) ([]E, bool)
}

// pruneList removes inactive directive regions from one ordered list.
//
// The scan keeps a changed flag: elements before the first change are
// recovered for free by returning the input slice when nothing fires.
// A directive whose condition fails to evaluate is kept verbatim, so an
// unevaluatable condition never deletes code. Active clause elements of the
// matching kind are pruned recursively (directives nest) and spliced in;
// elements of a mismatched kind are dropped, which is only reachable from
// hand-built trees.
func pruneList[E any](f *folder, items []E, shape listShape[E]) ([]E, bool) {
	var out []E
	changed := false
	mark := func(i int) {
		if changed {
			return
		}
		changed = true
		out = make([]E, 0, len(items))
		out = append(out, items[:i]...)
	}

	for i, el := range items {
		dir := shape.directive(el)
		if dir == nil {
			if changed {
				out = append(out, el)
			}
			continue
		}

		clause, ok := f.activeClause(dir)
		if !ok {
			// Evaluation failed: diagnostic already recorded, keep the
			// directive element untouched.
			if changed {
				out = append(out, el)
			}
			continue
		}

		mark(i)
		if clause == nil || clause.Elements == nil {
			continue
		}
		inner, ok := shape.clauseItems(clause.Elements)
		if !ok {
			continue
		}
		pruned, _ := pruneList(f, inner, shape)
		out = append(out, pruned...)
	}

	if !changed {
		return items, false
	}
	return out, true
}

func codeBlockDirective(it *syntax.CodeBlockItem) *syntax.IfConfigDecl {
	d, _ := it.Item.(*syntax.IfConfigDecl)
	return d
}

func codeBlockClauseItems(n syntax.Node) ([]*syntax.CodeBlockItem, bool) {
	l, ok := n.(*syntax.CodeBlockItemList)
	if !ok {
		return nil, false
	}
	return l.Items, true
}

func memberBlockDirective(it *syntax.MemberBlockItem) *syntax.IfConfigDecl {
	d, _ := it.Decl.(*syntax.IfConfigDecl)
	return d
}

func memberBlockClauseItems(n syntax.Node) ([]*syntax.MemberBlockItem, bool) {
	l, ok := n.(*syntax.MemberBlockItemList)
	if !ok {
		return nil, false
	}
	return l.Items, true
}

func switchCaseDirective(el syntax.Node) *syntax.IfConfigDecl {
	d, _ := el.(*syntax.IfConfigDecl)
	return d
}

func switchCaseClauseItems(n syntax.Node) ([]syntax.Node, bool) {
	l, ok := n.(*syntax.SwitchCaseList)
	if !ok {
		return nil, false
	}
	return l.Cases, true
}

func attributeDirective(el syntax.Node) *syntax.IfConfigDecl {
	d, _ := el.(*syntax.IfConfigDecl)
	return d
}

func attributeClauseItems(n syntax.Node) ([]syntax.Node, bool) {
	l, ok := n.(*syntax.AttributeList)
	if !ok {
		return nil, false
	}
	return l.Attributes, true
}

var (
	codeBlockShape = listShape[*syntax.CodeBlockItem]{
		directive:   codeBlockDirective,
		clauseItems: codeBlockClauseItems,
	}
	memberBlockShape = listShape[*syntax.MemberBlockItem]{
		directive:   memberBlockDirective,
		clauseItems: memberBlockClauseItems,
	}
	switchCaseShape = listShape[syntax.Node]{
		directive:   switchCaseDirective,
		clauseItems: switchCaseClauseItems,
	}
	attributeShape = listShape[syntax.Node]{
		directive:   attributeDirective,
		clauseItems: attributeClauseItems,
	}
)
