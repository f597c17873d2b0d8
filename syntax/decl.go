package syntax

import (
	"github.com/colemancda/swift-syntax/source"
)

// SourceFile is the root of a parsed file.
type SourceFile struct {
	spanned
	Statements *CodeBlockItemList
}

func NewSourceFile(statements *CodeBlockItemList, sp source.Span) *SourceFile {
	return &SourceFile{spanned: spanned{sp}, Statements: statements}
}

func (*SourceFile) Kind() Kind { return KindSourceFile }

func (f *SourceFile) WithStatements(statements *CodeBlockItemList) *SourceFile {
	cp := *f
	cp.Statements = statements
	return &cp
}

// NominalDecl is a struct/class/enum-style declaration with an attribute list
// and a member body. Keyword keeps the introducing keyword verbatim.
type NominalDecl struct {
	spanned
	Keyword    string
	Name       string
	Attributes *AttributeList
	Members    *MemberBlockItemList
}

func NewNominalDecl(keyword, name string, attributes *AttributeList, members *MemberBlockItemList, sp source.Span) *NominalDecl {
	return &NominalDecl{spanned: spanned{sp}, Keyword: keyword, Name: name, Attributes: attributes, Members: members}
}

func (*NominalDecl) Kind() Kind { return KindNominalDecl }

func (d *NominalDecl) WithAttributes(attributes *AttributeList) *NominalDecl {
	cp := *d
	cp.Attributes = attributes
	return &cp
}

func (d *NominalDecl) WithMembers(members *MemberBlockItemList) *NominalDecl {
	cp := *d
	cp.Members = members
	return &cp
}

// FunctionDecl is a function with an attribute list and a statement body.
type FunctionDecl struct {
	spanned
	Name       string
	Attributes *AttributeList
	Body       *CodeBlockItemList
}

func NewFunctionDecl(name string, attributes *AttributeList, body *CodeBlockItemList, sp source.Span) *FunctionDecl {
	return &FunctionDecl{spanned: spanned{sp}, Name: name, Attributes: attributes, Body: body}
}

func (*FunctionDecl) Kind() Kind { return KindFunctionDecl }

func (d *FunctionDecl) WithAttributes(attributes *AttributeList) *FunctionDecl {
	cp := *d
	cp.Attributes = attributes
	return &cp
}

func (d *FunctionDecl) WithBody(body *CodeBlockItemList) *FunctionDecl {
	cp := *d
	cp.Body = body
	return &cp
}

// SwitchExpr is `switch subject { cases }`.
type SwitchExpr struct {
	spanned
	Subject Node
	Cases   *SwitchCaseList
}

func NewSwitchExpr(subject Node, cases *SwitchCaseList, sp source.Span) *SwitchExpr {
	return &SwitchExpr{spanned: spanned{sp}, Subject: subject, Cases: cases}
}

func (*SwitchExpr) Kind() Kind { return KindSwitchExpr }

func (e *SwitchExpr) WithSubject(subject Node) *SwitchExpr {
	cp := *e
	cp.Subject = subject
	return &cp
}

func (e *SwitchExpr) WithCases(cases *SwitchCaseList) *SwitchExpr {
	cp := *e
	cp.Cases = cases
	return &cp
}

// SwitchCase is one labeled case with its statement list.
type SwitchCase struct {
	spanned
	Label      string
	Statements *CodeBlockItemList
}

func NewSwitchCase(label string, statements *CodeBlockItemList, sp source.Span) *SwitchCase {
	return &SwitchCase{spanned: spanned{sp}, Label: label, Statements: statements}
}

func (*SwitchCase) Kind() Kind { return KindSwitchCase }

func (c *SwitchCase) WithStatements(statements *CodeBlockItemList) *SwitchCase {
	cp := *c
	cp.Statements = statements
	return &cp
}

// Attribute is a single `@name` attribute.
type Attribute struct {
	spanned
	Name string
}

func NewAttribute(name string, sp source.Span) *Attribute {
	return &Attribute{spanned: spanned{sp}, Name: name}
}

func (*Attribute) Kind() Kind { return KindAttribute }
