package syntax

import (
	"errors"
	"testing"

	"github.com/colemancda/swift-syntax/source"
)

func sampleTree() Node {
	sp := func(start, end uint32) source.Span {
		return source.Span{File: 1, Start: start, End: end}
	}
	dir := NewIfConfigDecl([]*IfConfigClause{
		NewIfConfigClause(KeywordIf, NewIdentifierExpr("DEBUG", sp(2, 7)),
			NewCodeBlockItemList([]*CodeBlockItem{
				NewCodeBlockItem(NewIdentifierExpr("trace", sp(8, 13)), sp(8, 13)),
			}, sp(8, 13)),
			sp(0, 13)),
		NewIfConfigClause(KeywordElse, nil, nil, sp(13, 18)),
	}, sp(0, 20))
	chain := NewPostfixIfConfigExpr(
		NewIdentifierExpr("store", sp(21, 26)),
		NewIfConfigDecl([]*IfConfigClause{
			NewIfConfigClause(KeywordIf, NewBooleanLiteralExpr(true, sp(30, 34)),
				NewOptionalChainingExpr(
					NewForceUnwrapExpr(
						NewSubscriptExpr(
							NewFunctionCallExpr(
								NewMemberAccessExpr(nil, "load", sp(35, 40)),
								[]Node{NewIntegerLiteralExpr("7", sp(41, 42))},
								sp(35, 43)),
							[]Node{NewIntegerLiteralExpr("0", sp(44, 45))},
							sp(35, 46)),
						sp(35, 47)),
					sp(35, 48)),
				sp(27, 48)),
		}, sp(27, 50)),
		sp(21, 50))
	decl := NewNominalDecl("struct", "Config",
		NewAttributeList([]Node{NewAttribute("frozen", sp(51, 58))}, sp(51, 58)),
		NewMemberBlockItemList([]*MemberBlockItem{
			NewMemberBlockItem(NewGenericSpecializationExpr(
				NewIdentifierExpr("Box", sp(60, 63)), []string{"Int"}, sp(60, 68)),
				sp(60, 68)),
		}, sp(59, 70)),
		sp(51, 70))
	sw := NewSwitchExpr(NewIdentifierExpr("mode", sp(71, 75)),
		NewSwitchCaseList([]Node{
			NewSwitchCase("fast", NewCodeBlockItemList(nil, sp(76, 76)), sp(76, 80)),
		}, sp(76, 80)),
		sp(71, 81))
	fn := NewFunctionDecl("main", nil,
		NewCodeBlockItemList([]*CodeBlockItem{
			NewCodeBlockItem(NewTupleExpr([]Node{
				NewPostfixUnaryExpr(NewIdentifierExpr("n", sp(82, 83)), "++", sp(82, 85)),
				NewMissingExpr(sp(86, 86)),
			}, sp(82, 87)), sp(82, 87)),
		}, sp(82, 87)),
		sp(82, 90))

	return NewSourceFile(NewCodeBlockItemList([]*CodeBlockItem{
		NewCodeBlockItem(dir, sp(0, 20)),
		NewCodeBlockItem(chain, sp(21, 50)),
		NewCodeBlockItem(decl, sp(51, 70)),
		NewCodeBlockItem(sw, sp(71, 81)),
		NewCodeBlockItem(fn, sp(82, 90)),
	}, sp(0, 90)), sp(0, 90))
}

func TestRawRoundTrip(t *testing.T) {
	tree := sampleTree()

	decoded, err := Decode(Encode(tree))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	// Re-encoding the decoded tree must produce an identical raw form.
	before := Encode(tree)
	after := Encode(decoded)
	if !rawEqual(before, after) {
		t.Errorf("raw form changed across a round trip")
	}
}

func rawEqual(a, b *Raw) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if a == nil {
		return true
	}
	if a.Kind != b.Kind || a.Text != b.Text || a.Flag != b.Flag || a.Span != b.Span {
		return false
	}
	if len(a.Aux) != len(b.Aux) || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Aux {
		if a.Aux[i] != b.Aux[i] {
			return false
		}
	}
	for i := range a.Children {
		if !rawEqual(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

func TestDecode_Nil(t *testing.T) {
	n, err := Decode(nil)
	if err != nil {
		t.Fatalf("Decode(nil) error = %v", err)
	}
	if n != nil {
		t.Errorf("Decode(nil) = %v, want nil", n)
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  *Raw
	}{
		{
			name: "unknown kind",
			raw:  &Raw{Kind: 250},
		},
		{
			name: "bad clause keyword",
			raw: &Raw{
				Kind:     uint8(KindIfConfigClause),
				Text:     "#elif",
				Children: []*Raw{nil, nil},
			},
		},
		{
			name: "missing child",
			raw:  &Raw{Kind: uint8(KindSourceFile)},
		},
		{
			name: "wrong child kind",
			raw: &Raw{
				Kind:     uint8(KindSourceFile),
				Children: []*Raw{{Kind: uint8(KindAttribute), Text: "x"}},
			},
		},
		{
			name: "nominal decl without keyword aux",
			raw: &Raw{
				Kind:     uint8(KindNominalDecl),
				Text:     "S",
				Children: []*Raw{nil, nil},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.raw)
			if !errors.Is(err, ErrBadRaw) {
				t.Errorf("Decode() error = %v, want ErrBadRaw", err)
			}
		})
	}
}
