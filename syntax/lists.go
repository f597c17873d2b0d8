package syntax

import (
	"github.com/colemancda/swift-syntax/source"
)

// CodeBlockItem wraps one element of a statement list. Item is a declaration,
// statement, or expression node; it may be an *IfConfigDecl.
type CodeBlockItem struct {
	spanned
	Item Node
}

func NewCodeBlockItem(item Node, sp source.Span) *CodeBlockItem {
	return &CodeBlockItem{spanned: spanned{sp}, Item: item}
}

func (*CodeBlockItem) Kind() Kind { return KindCodeBlockItem }

// WithItem returns a copy with Item replaced.
func (c *CodeBlockItem) WithItem(item Node) *CodeBlockItem {
	cp := *c
	cp.Item = item
	return &cp
}

// CodeBlockItemList is an ordered list of statement items.
type CodeBlockItemList struct {
	spanned
	Items []*CodeBlockItem
}

func NewCodeBlockItemList(items []*CodeBlockItem, sp source.Span) *CodeBlockItemList {
	return &CodeBlockItemList{spanned: spanned{sp}, Items: items}
}

func (*CodeBlockItemList) Kind() Kind { return KindCodeBlockItemList }

// WithItems returns a copy with Items replaced.
func (l *CodeBlockItemList) WithItems(items []*CodeBlockItem) *CodeBlockItemList {
	cp := *l
	cp.Items = items
	return &cp
}

// MemberBlockItem wraps one member declaration of a type body.
// Decl may be an *IfConfigDecl.
type MemberBlockItem struct {
	spanned
	Decl Node
}

func NewMemberBlockItem(decl Node, sp source.Span) *MemberBlockItem {
	return &MemberBlockItem{spanned: spanned{sp}, Decl: decl}
}

func (*MemberBlockItem) Kind() Kind { return KindMemberBlockItem }

func (m *MemberBlockItem) WithDecl(decl Node) *MemberBlockItem {
	cp := *m
	cp.Decl = decl
	return &cp
}

// MemberBlockItemList is an ordered list of member items.
type MemberBlockItemList struct {
	spanned
	Items []*MemberBlockItem
}

func NewMemberBlockItemList(items []*MemberBlockItem, sp source.Span) *MemberBlockItemList {
	return &MemberBlockItemList{spanned: spanned{sp}, Items: items}
}

func (*MemberBlockItemList) Kind() Kind { return KindMemberBlockItemList }

func (l *MemberBlockItemList) WithItems(items []*MemberBlockItem) *MemberBlockItemList {
	cp := *l
	cp.Items = items
	return &cp
}

// SwitchCaseList is an ordered list whose elements are *SwitchCase or
// *IfConfigDecl nodes, in source order.
type SwitchCaseList struct {
	spanned
	Cases []Node
}

func NewSwitchCaseList(cases []Node, sp source.Span) *SwitchCaseList {
	return &SwitchCaseList{spanned: spanned{sp}, Cases: cases}
}

func (*SwitchCaseList) Kind() Kind { return KindSwitchCaseList }

func (l *SwitchCaseList) WithCases(cases []Node) *SwitchCaseList {
	cp := *l
	cp.Cases = cases
	return &cp
}

// AttributeList is an ordered list whose elements are *Attribute or
// *IfConfigDecl nodes.
type AttributeList struct {
	spanned
	Attributes []Node
}

func NewAttributeList(attributes []Node, sp source.Span) *AttributeList {
	return &AttributeList{spanned: spanned{sp}, Attributes: attributes}
}

func (*AttributeList) Kind() Kind { return KindAttributeList }

func (l *AttributeList) WithAttributes(attributes []Node) *AttributeList {
	cp := *l
	cp.Attributes = attributes
	return &cp
}
