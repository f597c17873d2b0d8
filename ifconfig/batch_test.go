package ifconfig

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/colemancda/swift-syntax/syntax"
)

func TestFoldAll_IndependentPasses(t *testing.T) {
	cfg := &stubConfig{flags: map[string]bool{"on": true}}

	trees := make([]syntax.Node, 8)
	for i := range trees {
		dir := directive(ifClause("on", stmts(item(ident(fmt.Sprintf("kept%d", i))))))
		trees[i] = stmts(item(dir))
	}

	results, err := FoldAll(context.Background(), trees, cfg, 4)
	if err != nil {
		t.Fatalf("FoldAll() error = %v", err)
	}
	if len(results) != len(trees) {
		t.Fatalf("expected %d results, got %d", len(trees), len(results))
	}
	for i, res := range results {
		got := itemNames(t, res.Tree.(*syntax.CodeBlockItemList))
		want := []string{fmt.Sprintf("kept%d", i)}
		if !equalNames(got, want) {
			t.Errorf("result %d = %v, want %v", i, got, want)
		}
		if res.Bag.Len() != 0 {
			t.Errorf("result %d has %d diagnostics, want 0", i, res.Bag.Len())
		}
	}
}

func TestFoldAll_DiagnosticsStayPerTree(t *testing.T) {
	cfg := &stubConfig{flags: map[string]bool{"known": true}}

	ok := stmts(item(directive(ifClause("known", stmts(item(ident("a")))))))
	bad := stmts(item(directive(ifClause("unknown", stmts(item(ident("b")))))))

	results, err := FoldAll(context.Background(), []syntax.Node{ok, bad}, cfg, 0)
	if err != nil {
		t.Fatalf("FoldAll() error = %v", err)
	}
	if results[0].Bag.Len() != 0 {
		t.Errorf("clean tree has %d diagnostics, want 0", results[0].Bag.Len())
	}
	if results[1].Bag.Len() != 1 {
		t.Errorf("failing tree has %d diagnostics, want 1", results[1].Bag.Len())
	}
}

func TestFoldAll_Empty(t *testing.T) {
	results, err := FoldAll(context.Background(), nil, &stubConfig{}, 0)
	if err != nil {
		t.Fatalf("FoldAll() error = %v", err)
	}
	if results != nil {
		t.Errorf("expected nil results for no trees, got %v", results)
	}
}

func TestFoldAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	trees := []syntax.Node{stmts(item(ident("a")))}
	_, err := FoldAll(ctx, trees, &stubConfig{}, 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
