package ifconfig

import (
	"fmt"
	"testing"

	"github.com/colemancda/swift-syntax/diag"
	"github.com/colemancda/swift-syntax/source"
	"github.com/colemancda/swift-syntax/syntax"
)

// stubConfig evaluates identifier conditions against a fixed flag map.
// Unknown flags fail evaluation, which is how tests exercise the
// failure-preservation path.
type stubConfig struct {
	flags map[string]bool
}

func (c *stubConfig) ActiveClause(directive *syntax.IfConfigDecl) (*syntax.IfConfigClause, error) {
	for _, clause := range directive.Clauses {
		if clause.Condition == nil {
			return clause, nil
		}
		ident, ok := clause.Condition.(*syntax.IdentifierExpr)
		if !ok {
			return nil, &EvaluationError{
				Span:    clause.Condition.Span(),
				Code:    diag.CfgBadCondition,
				Message: fmt.Sprintf("unsupported condition of kind %s", clause.Condition.Kind()),
			}
		}
		value, declared := c.flags[ident.Name]
		if !declared {
			return nil, &EvaluationError{
				Span:    ident.Span(),
				Code:    diag.CfgUnknownFlag,
				Message: fmt.Sprintf("build flag %q is not declared", ident.Name),
			}
		}
		if value {
			return clause, nil
		}
	}
	return nil, nil
}

func ident(name string) *syntax.IdentifierExpr {
	return syntax.NewIdentifierExpr(name, source.Span{})
}

func item(n syntax.Node) *syntax.CodeBlockItem {
	return syntax.NewCodeBlockItem(n, source.Span{})
}

func stmts(items ...*syntax.CodeBlockItem) *syntax.CodeBlockItemList {
	return syntax.NewCodeBlockItemList(items, source.Span{})
}

func member(n syntax.Node) *syntax.MemberBlockItem {
	return syntax.NewMemberBlockItem(n, source.Span{})
}

func members(items ...*syntax.MemberBlockItem) *syntax.MemberBlockItemList {
	return syntax.NewMemberBlockItemList(items, source.Span{})
}

func clause(keyword syntax.ClauseKeyword, condition, elements syntax.Node) *syntax.IfConfigClause {
	return syntax.NewIfConfigClause(keyword, condition, elements, source.Span{})
}

func ifClause(flag string, elements syntax.Node) *syntax.IfConfigClause {
	return clause(syntax.KeywordIf, ident(flag), elements)
}

func elseifClause(flag string, elements syntax.Node) *syntax.IfConfigClause {
	return clause(syntax.KeywordElseif, ident(flag), elements)
}

func elseClause(elements syntax.Node) *syntax.IfConfigClause {
	return clause(syntax.KeywordElse, nil, elements)
}

func directive(clauses ...*syntax.IfConfigClause) *syntax.IfConfigDecl {
	return syntax.NewIfConfigDecl(clauses, source.Span{File: 0, Start: 1, End: 2})
}

// itemNames flattens a statement list to the identifier names of its items,
// with directives rendered as "#if".
func itemNames(t *testing.T, l *syntax.CodeBlockItemList) []string {
	t.Helper()
	names := make([]string, 0, len(l.Items))
	for _, it := range l.Items {
		switch n := it.Item.(type) {
		case *syntax.IdentifierExpr:
			names = append(names, n.Name)
		case *syntax.IfConfigDecl:
			names = append(names, "#if")
		default:
			t.Fatalf("unexpected item kind %s", it.Item.Kind())
		}
	}
	return names
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// countDirectives walks the raw form and counts IfConfig nodes anywhere in
// the tree, including inside preserved clauses.
func countDirectives(n syntax.Node) int {
	if n == nil {
		return 0
	}
	return countRawDirectives(syntax.Encode(n))
}

func countRawDirectives(r *syntax.Raw) int {
	if r == nil {
		return 0
	}
	count := 0
	if syntax.Kind(r.Kind) == syntax.KindIfConfigDecl || syntax.Kind(r.Kind) == syntax.KindPostfixIfConfigExpr {
		count++
	}
	for _, c := range r.Children {
		count += countRawDirectives(c)
	}
	return count
}
