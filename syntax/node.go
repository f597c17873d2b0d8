// Package syntax defines an immutable, persistent syntax tree.
//
// Nodes are never mutated after construction: every rewrite either returns the
// original handle (nothing changed below it) or a freshly built replacement
// whose untouched subtrees are shared with the original by reference. The Node
// union is sealed so that tree passes can switch over it exhaustively.
package syntax

import (
	"github.com/colemancda/swift-syntax/source"
)

// Kind identifies the variant of a Node. It is stable across releases and is
// what the raw (serialized) form stores.
type Kind uint8

const (
	KindUnknown Kind = iota

	KindSourceFile
	KindCodeBlockItem
	KindCodeBlockItemList
	KindMemberBlockItem
	KindMemberBlockItemList
	KindSwitchCaseList
	KindAttributeList

	KindNominalDecl
	KindFunctionDecl
	KindSwitchExpr
	KindSwitchCase
	KindAttribute

	KindIfConfigDecl
	KindIfConfigClause

	KindIdentifierExpr
	KindBooleanLiteralExpr
	KindIntegerLiteralExpr
	KindTupleExpr
	KindMemberAccessExpr
	KindGenericSpecializationExpr
	KindFunctionCallExpr
	KindSubscriptExpr
	KindOptionalChainingExpr
	KindForceUnwrapExpr
	KindPostfixUnaryExpr
	KindPostfixIfConfigExpr
	KindMissingExpr
)

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

var kindNames = [...]string{
	KindUnknown:                   "Unknown",
	KindSourceFile:                "SourceFile",
	KindCodeBlockItem:             "CodeBlockItem",
	KindCodeBlockItemList:         "CodeBlockItemList",
	KindMemberBlockItem:           "MemberBlockItem",
	KindMemberBlockItemList:       "MemberBlockItemList",
	KindSwitchCaseList:            "SwitchCaseList",
	KindAttributeList:             "AttributeList",
	KindNominalDecl:               "NominalDecl",
	KindFunctionDecl:              "FunctionDecl",
	KindSwitchExpr:                "SwitchExpr",
	KindSwitchCase:                "SwitchCase",
	KindAttribute:                 "Attribute",
	KindIfConfigDecl:              "IfConfigDecl",
	KindIfConfigClause:            "IfConfigClause",
	KindIdentifierExpr:            "IdentifierExpr",
	KindBooleanLiteralExpr:        "BooleanLiteralExpr",
	KindIntegerLiteralExpr:        "IntegerLiteralExpr",
	KindTupleExpr:                 "TupleExpr",
	KindMemberAccessExpr:          "MemberAccessExpr",
	KindGenericSpecializationExpr: "GenericSpecializationExpr",
	KindFunctionCallExpr:          "FunctionCallExpr",
	KindSubscriptExpr:             "SubscriptExpr",
	KindOptionalChainingExpr:      "OptionalChainingExpr",
	KindForceUnwrapExpr:           "ForceUnwrapExpr",
	KindPostfixUnaryExpr:          "PostfixUnaryExpr",
	KindPostfixIfConfigExpr:       "PostfixIfConfigExpr",
	KindMissingExpr:               "MissingExpr",
}

// Node is the sealed union of all tree node variants.
type Node interface {
	Kind() Kind
	Span() source.Span
	isNode()
}

// spanned carries the byte span shared by every node variant.
type spanned struct {
	span source.Span
}

func (s spanned) Span() source.Span { return s.span }
func (spanned) isNode()             {}
