package syntax

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/colemancda/swift-syntax/source"
)

// Current schema version - increment when the Raw layout changes.
const RawSchemaVersion uint16 = 1

// ErrBadRaw is returned when a raw node cannot be decoded back into a tree.
var ErrBadRaw = errors.New("syntax: malformed raw node")

// RawSpan is the serialized form of source.Span.
type RawSpan struct {
	File  uint32 `msgpack:"f"`
	Start uint32 `msgpack:"s"`
	End   uint32 `msgpack:"e"`
}

// Raw is a flat, serialization-friendly form of a Node. Children appear in a
// fixed per-kind order; optional edges are nil entries.
type Raw struct {
	Kind     uint8    `msgpack:"k"`
	Text     string   `msgpack:"t,omitempty"`
	Aux      []string `msgpack:"a,omitempty"`
	Flag     bool     `msgpack:"b,omitempty"`
	Span     RawSpan  `msgpack:"sp"`
	Children []*Raw   `msgpack:"c,omitempty"`
}

func rawSpan(sp source.Span) RawSpan {
	return RawSpan{File: uint32(sp.File), Start: sp.Start, End: sp.End}
}

func (r RawSpan) span() source.Span {
	return source.Span{File: source.FileID(r.File), Start: r.Start, End: r.End}
}

// Encode converts a tree into its raw form. A nil node encodes to nil.
func Encode(n Node) *Raw {
	if n == nil {
		return nil
	}
	// Optional edges of concrete pointer type arrive as non-nil interfaces
	// wrapping nil pointers.
	if v := reflect.ValueOf(n); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil
	}
	r := &Raw{Kind: uint8(n.Kind()), Span: rawSpan(n.Span())}
	switch n := n.(type) {
	case *SourceFile:
		r.Children = []*Raw{Encode(n.Statements)}
	case *CodeBlockItem:
		r.Children = []*Raw{Encode(n.Item)}
	case *CodeBlockItemList:
		for _, it := range n.Items {
			r.Children = append(r.Children, Encode(it))
		}
	case *MemberBlockItem:
		r.Children = []*Raw{Encode(n.Decl)}
	case *MemberBlockItemList:
		for _, it := range n.Items {
			r.Children = append(r.Children, Encode(it))
		}
	case *SwitchCaseList:
		for _, c := range n.Cases {
			r.Children = append(r.Children, Encode(c))
		}
	case *AttributeList:
		for _, a := range n.Attributes {
			r.Children = append(r.Children, Encode(a))
		}
	case *NominalDecl:
		r.Text = n.Name
		r.Aux = []string{n.Keyword}
		r.Children = []*Raw{Encode(n.Attributes), Encode(n.Members)}
	case *FunctionDecl:
		r.Text = n.Name
		r.Children = []*Raw{Encode(n.Attributes), Encode(n.Body)}
	case *SwitchExpr:
		r.Children = []*Raw{Encode(n.Subject), Encode(n.Cases)}
	case *SwitchCase:
		r.Text = n.Label
		r.Children = []*Raw{Encode(n.Statements)}
	case *Attribute:
		r.Text = n.Name
	case *IfConfigDecl:
		for _, c := range n.Clauses {
			r.Children = append(r.Children, Encode(c))
		}
	case *IfConfigClause:
		r.Text = n.Keyword.String()
		r.Children = []*Raw{Encode(n.Condition), Encode(n.Elements)}
	case *IdentifierExpr:
		r.Text = n.Name
	case *BooleanLiteralExpr:
		r.Flag = n.Value
	case *IntegerLiteralExpr:
		r.Text = n.Text
	case *TupleExpr:
		for _, e := range n.Elements {
			r.Children = append(r.Children, Encode(e))
		}
	case *MemberAccessExpr:
		r.Text = n.Name
		r.Children = []*Raw{Encode(n.Base)}
	case *GenericSpecializationExpr:
		r.Aux = n.Arguments
		r.Children = []*Raw{Encode(n.Expr)}
	case *FunctionCallExpr:
		r.Children = []*Raw{Encode(n.Callee)}
		for _, a := range n.Arguments {
			r.Children = append(r.Children, Encode(a))
		}
	case *SubscriptExpr:
		r.Children = []*Raw{Encode(n.Target)}
		for _, a := range n.Arguments {
			r.Children = append(r.Children, Encode(a))
		}
	case *OptionalChainingExpr:
		r.Children = []*Raw{Encode(n.Operand)}
	case *ForceUnwrapExpr:
		r.Children = []*Raw{Encode(n.Operand)}
	case *PostfixUnaryExpr:
		r.Text = n.Operator
		r.Children = []*Raw{Encode(n.Operand)}
	case *PostfixIfConfigExpr:
		r.Children = []*Raw{Encode(n.Base), Encode(n.Directive)}
	case *MissingExpr:
	default:
		panic(fmt.Sprintf("syntax: cannot encode node kind %T", n))
	}
	return r
}

// Decode rebuilds a typed tree from its raw form. A nil raw decodes to nil.
func Decode(r *Raw) (Node, error) {
	if r == nil {
		return nil, nil
	}
	sp := r.Span.span()
	switch Kind(r.Kind) {
	case KindSourceFile:
		stmts, err := decodeAs[*CodeBlockItemList](r, 0)
		if err != nil {
			return nil, err
		}
		return NewSourceFile(stmts, sp), nil
	case KindCodeBlockItem:
		item, err := decodeChild(r, 0)
		if err != nil {
			return nil, err
		}
		return NewCodeBlockItem(item, sp), nil
	case KindCodeBlockItemList:
		items := make([]*CodeBlockItem, 0, len(r.Children))
		for i := range r.Children {
			it, err := decodeAs[*CodeBlockItem](r, i)
			if err != nil {
				return nil, err
			}
			items = append(items, it)
		}
		return NewCodeBlockItemList(items, sp), nil
	case KindMemberBlockItem:
		decl, err := decodeChild(r, 0)
		if err != nil {
			return nil, err
		}
		return NewMemberBlockItem(decl, sp), nil
	case KindMemberBlockItemList:
		items := make([]*MemberBlockItem, 0, len(r.Children))
		for i := range r.Children {
			it, err := decodeAs[*MemberBlockItem](r, i)
			if err != nil {
				return nil, err
			}
			items = append(items, it)
		}
		return NewMemberBlockItemList(items, sp), nil
	case KindSwitchCaseList:
		cases := make([]Node, 0, len(r.Children))
		for i := range r.Children {
			c, err := decodeChild(r, i)
			if err != nil {
				return nil, err
			}
			cases = append(cases, c)
		}
		return NewSwitchCaseList(cases, sp), nil
	case KindAttributeList:
		attrs := make([]Node, 0, len(r.Children))
		for i := range r.Children {
			a, err := decodeChild(r, i)
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, a)
		}
		return NewAttributeList(attrs, sp), nil
	case KindNominalDecl:
		if len(r.Aux) != 1 {
			return nil, fmt.Errorf("%w: NominalDecl wants 1 aux entry, got %d", ErrBadRaw, len(r.Aux))
		}
		attrs, err := decodeAs[*AttributeList](r, 0)
		if err != nil {
			return nil, err
		}
		members, err := decodeAs[*MemberBlockItemList](r, 1)
		if err != nil {
			return nil, err
		}
		return NewNominalDecl(r.Aux[0], r.Text, attrs, members, sp), nil
	case KindFunctionDecl:
		attrs, err := decodeAs[*AttributeList](r, 0)
		if err != nil {
			return nil, err
		}
		body, err := decodeAs[*CodeBlockItemList](r, 1)
		if err != nil {
			return nil, err
		}
		return NewFunctionDecl(r.Text, attrs, body, sp), nil
	case KindSwitchExpr:
		subject, err := decodeChild(r, 0)
		if err != nil {
			return nil, err
		}
		cases, err := decodeAs[*SwitchCaseList](r, 1)
		if err != nil {
			return nil, err
		}
		return NewSwitchExpr(subject, cases, sp), nil
	case KindSwitchCase:
		stmts, err := decodeAs[*CodeBlockItemList](r, 0)
		if err != nil {
			return nil, err
		}
		return NewSwitchCase(r.Text, stmts, sp), nil
	case KindAttribute:
		return NewAttribute(r.Text, sp), nil
	case KindIfConfigDecl:
		clauses := make([]*IfConfigClause, 0, len(r.Children))
		for i := range r.Children {
			c, err := decodeAs[*IfConfigClause](r, i)
			if err != nil {
				return nil, err
			}
			clauses = append(clauses, c)
		}
		return NewIfConfigDecl(clauses, sp), nil
	case KindIfConfigClause:
		keyword, ok := clauseKeywords[r.Text]
		if !ok {
			return nil, fmt.Errorf("%w: unknown clause keyword %q", ErrBadRaw, r.Text)
		}
		cond, err := decodeChild(r, 0)
		if err != nil {
			return nil, err
		}
		elems, err := decodeChild(r, 1)
		if err != nil {
			return nil, err
		}
		return NewIfConfigClause(keyword, cond, elems, sp), nil
	case KindIdentifierExpr:
		return NewIdentifierExpr(r.Text, sp), nil
	case KindBooleanLiteralExpr:
		return NewBooleanLiteralExpr(r.Flag, sp), nil
	case KindIntegerLiteralExpr:
		return NewIntegerLiteralExpr(r.Text, sp), nil
	case KindTupleExpr:
		elems := make([]Node, 0, len(r.Children))
		for i := range r.Children {
			e, err := decodeChild(r, i)
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
		}
		return NewTupleExpr(elems, sp), nil
	case KindMemberAccessExpr:
		base, err := decodeChild(r, 0)
		if err != nil {
			return nil, err
		}
		return NewMemberAccessExpr(base, r.Text, sp), nil
	case KindGenericSpecializationExpr:
		expr, err := decodeChild(r, 0)
		if err != nil {
			return nil, err
		}
		return NewGenericSpecializationExpr(expr, r.Aux, sp), nil
	case KindFunctionCallExpr:
		callee, err := decodeChild(r, 0)
		if err != nil {
			return nil, err
		}
		args, err := decodeTail(r, 1)
		if err != nil {
			return nil, err
		}
		return NewFunctionCallExpr(callee, args, sp), nil
	case KindSubscriptExpr:
		target, err := decodeChild(r, 0)
		if err != nil {
			return nil, err
		}
		args, err := decodeTail(r, 1)
		if err != nil {
			return nil, err
		}
		return NewSubscriptExpr(target, args, sp), nil
	case KindOptionalChainingExpr:
		operand, err := decodeChild(r, 0)
		if err != nil {
			return nil, err
		}
		return NewOptionalChainingExpr(operand, sp), nil
	case KindForceUnwrapExpr:
		operand, err := decodeChild(r, 0)
		if err != nil {
			return nil, err
		}
		return NewForceUnwrapExpr(operand, sp), nil
	case KindPostfixUnaryExpr:
		operand, err := decodeChild(r, 0)
		if err != nil {
			return nil, err
		}
		return NewPostfixUnaryExpr(operand, r.Text, sp), nil
	case KindPostfixIfConfigExpr:
		base, err := decodeChild(r, 0)
		if err != nil {
			return nil, err
		}
		directive, err := decodeAs[*IfConfigDecl](r, 1)
		if err != nil {
			return nil, err
		}
		return NewPostfixIfConfigExpr(base, directive, sp), nil
	case KindMissingExpr:
		return NewMissingExpr(sp), nil
	}
	return nil, fmt.Errorf("%w: unknown kind %d", ErrBadRaw, r.Kind)
}

var clauseKeywords = map[string]ClauseKeyword{
	"#if":     KeywordIf,
	"#elseif": KeywordElseif,
	"#else":   KeywordElse,
}

// decodeChild decodes the i-th child, which may be nil.
func decodeChild(r *Raw, i int) (Node, error) {
	if i >= len(r.Children) {
		return nil, fmt.Errorf("%w: %s wants child %d, has %d", ErrBadRaw, Kind(r.Kind), i, len(r.Children))
	}
	return Decode(r.Children[i])
}

// decodeTail decodes children from index i to the end.
func decodeTail(r *Raw, i int) ([]Node, error) {
	if i > len(r.Children) {
		return nil, fmt.Errorf("%w: %s wants children from %d, has %d", ErrBadRaw, Kind(r.Kind), i, len(r.Children))
	}
	out := make([]Node, 0, len(r.Children)-i)
	for ; i < len(r.Children); i++ {
		n, err := Decode(r.Children[i])
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// decodeAs decodes the i-th child and asserts its concrete type.
// A nil child stays nil.
func decodeAs[T Node](r *Raw, i int) (T, error) {
	var zero T
	n, err := decodeChild(r, i)
	if err != nil {
		return zero, err
	}
	if n == nil {
		return zero, nil
	}
	typed, ok := n.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s child %d has kind %s", ErrBadRaw, Kind(r.Kind), i, n.Kind())
	}
	return typed, nil
}
