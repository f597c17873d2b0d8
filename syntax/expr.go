package syntax

import (
	"github.com/colemancda/swift-syntax/source"
)

// IdentifierExpr is a bare name reference.
type IdentifierExpr struct {
	spanned
	Name string
}

func NewIdentifierExpr(name string, sp source.Span) *IdentifierExpr {
	return &IdentifierExpr{spanned: spanned{sp}, Name: name}
}

func (*IdentifierExpr) Kind() Kind { return KindIdentifierExpr }

// BooleanLiteralExpr is a true/false literal.
type BooleanLiteralExpr struct {
	spanned
	Value bool
}

func NewBooleanLiteralExpr(value bool, sp source.Span) *BooleanLiteralExpr {
	return &BooleanLiteralExpr{spanned: spanned{sp}, Value: value}
}

func (*BooleanLiteralExpr) Kind() Kind { return KindBooleanLiteralExpr }

// IntegerLiteralExpr keeps the literal's source text verbatim.
type IntegerLiteralExpr struct {
	spanned
	Text string
}

func NewIntegerLiteralExpr(text string, sp source.Span) *IntegerLiteralExpr {
	return &IntegerLiteralExpr{spanned: spanned{sp}, Text: text}
}

func (*IntegerLiteralExpr) Kind() Kind { return KindIntegerLiteralExpr }

// TupleExpr groups a parenthesized element list.
type TupleExpr struct {
	spanned
	Elements []Node
}

func NewTupleExpr(elements []Node, sp source.Span) *TupleExpr {
	return &TupleExpr{spanned: spanned{sp}, Elements: elements}
}

func (*TupleExpr) Kind() Kind { return KindTupleExpr }

func (e *TupleExpr) WithElements(elements []Node) *TupleExpr {
	cp := *e
	cp.Elements = elements
	return &cp
}

// MemberAccessExpr is `base.name`. Base is nil for the leading-dot form
// (`.name`), which is how a postfix suffix chain starts before a receiver is
// threaded in.
type MemberAccessExpr struct {
	spanned
	Base Node
	Name string
}

func NewMemberAccessExpr(base Node, name string, sp source.Span) *MemberAccessExpr {
	return &MemberAccessExpr{spanned: spanned{sp}, Base: base, Name: name}
}

func (*MemberAccessExpr) Kind() Kind { return KindMemberAccessExpr }

func (e *MemberAccessExpr) WithBase(base Node) *MemberAccessExpr {
	cp := *e
	cp.Base = base
	return &cp
}

// GenericSpecializationExpr is `expr<Args>`.
type GenericSpecializationExpr struct {
	spanned
	Expr      Node
	Arguments []string
}

func NewGenericSpecializationExpr(expr Node, arguments []string, sp source.Span) *GenericSpecializationExpr {
	return &GenericSpecializationExpr{spanned: spanned{sp}, Expr: expr, Arguments: arguments}
}

func (*GenericSpecializationExpr) Kind() Kind { return KindGenericSpecializationExpr }

func (e *GenericSpecializationExpr) WithExpr(expr Node) *GenericSpecializationExpr {
	cp := *e
	cp.Expr = expr
	return &cp
}

// FunctionCallExpr is `callee(arguments...)`.
type FunctionCallExpr struct {
	spanned
	Callee    Node
	Arguments []Node
}

func NewFunctionCallExpr(callee Node, arguments []Node, sp source.Span) *FunctionCallExpr {
	return &FunctionCallExpr{spanned: spanned{sp}, Callee: callee, Arguments: arguments}
}

func (*FunctionCallExpr) Kind() Kind { return KindFunctionCallExpr }

func (e *FunctionCallExpr) WithCallee(callee Node) *FunctionCallExpr {
	cp := *e
	cp.Callee = callee
	return &cp
}

func (e *FunctionCallExpr) WithArguments(arguments []Node) *FunctionCallExpr {
	cp := *e
	cp.Arguments = arguments
	return &cp
}

// SubscriptExpr is `target[arguments...]`.
type SubscriptExpr struct {
	spanned
	Target    Node
	Arguments []Node
}

func NewSubscriptExpr(target Node, arguments []Node, sp source.Span) *SubscriptExpr {
	return &SubscriptExpr{spanned: spanned{sp}, Target: target, Arguments: arguments}
}

func (*SubscriptExpr) Kind() Kind { return KindSubscriptExpr }

func (e *SubscriptExpr) WithTarget(target Node) *SubscriptExpr {
	cp := *e
	cp.Target = target
	return &cp
}

func (e *SubscriptExpr) WithArguments(arguments []Node) *SubscriptExpr {
	cp := *e
	cp.Arguments = arguments
	return &cp
}

// OptionalChainingExpr is `operand?`.
type OptionalChainingExpr struct {
	spanned
	Operand Node
}

func NewOptionalChainingExpr(operand Node, sp source.Span) *OptionalChainingExpr {
	return &OptionalChainingExpr{spanned: spanned{sp}, Operand: operand}
}

func (*OptionalChainingExpr) Kind() Kind { return KindOptionalChainingExpr }

func (e *OptionalChainingExpr) WithOperand(operand Node) *OptionalChainingExpr {
	cp := *e
	cp.Operand = operand
	return &cp
}

// ForceUnwrapExpr is `operand!`.
type ForceUnwrapExpr struct {
	spanned
	Operand Node
}

func NewForceUnwrapExpr(operand Node, sp source.Span) *ForceUnwrapExpr {
	return &ForceUnwrapExpr{spanned: spanned{sp}, Operand: operand}
}

func (*ForceUnwrapExpr) Kind() Kind { return KindForceUnwrapExpr }

func (e *ForceUnwrapExpr) WithOperand(operand Node) *ForceUnwrapExpr {
	cp := *e
	cp.Operand = operand
	return &cp
}

// PostfixUnaryExpr is `operand OP` for a postfix operator token.
type PostfixUnaryExpr struct {
	spanned
	Operand  Node
	Operator string
}

func NewPostfixUnaryExpr(operand Node, operator string, sp source.Span) *PostfixUnaryExpr {
	return &PostfixUnaryExpr{spanned: spanned{sp}, Operand: operand, Operator: operator}
}

func (*PostfixUnaryExpr) Kind() Kind { return KindPostfixUnaryExpr }

func (e *PostfixUnaryExpr) WithOperand(operand Node) *PostfixUnaryExpr {
	cp := *e
	cp.Operand = operand
	return &cp
}

// PostfixIfConfigExpr is a directive in postfix position: an optional receiver
// expression followed by an #if whose active clause supplies the next suffix.
type PostfixIfConfigExpr struct {
	spanned
	Base      Node
	Directive *IfConfigDecl
}

func NewPostfixIfConfigExpr(base Node, directive *IfConfigDecl, sp source.Span) *PostfixIfConfigExpr {
	return &PostfixIfConfigExpr{spanned: spanned{sp}, Base: base, Directive: directive}
}

func (*PostfixIfConfigExpr) Kind() Kind { return KindPostfixIfConfigExpr }

// MissingExpr is a well-formed placeholder standing in for an expression the
// rewrite could not produce. It never carries children.
type MissingExpr struct {
	spanned
}

func NewMissingExpr(sp source.Span) *MissingExpr {
	return &MissingExpr{spanned: spanned{sp}}
}

func (*MissingExpr) Kind() Kind { return KindMissingExpr }
