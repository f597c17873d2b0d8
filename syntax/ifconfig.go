package syntax

import (
	"github.com/colemancda/swift-syntax/source"
)

// ClauseKeyword distinguishes how a clause was introduced.
type ClauseKeyword uint8

const (
	// KeywordIf introduces the first clause of a directive (#if).
	KeywordIf ClauseKeyword = iota
	// KeywordElseif introduces a conditional alternative (#elseif).
	KeywordElseif
	// KeywordElse introduces the unconditional fallback (#else).
	KeywordElse
)

func (k ClauseKeyword) String() string {
	switch k {
	case KeywordIf:
		return "#if"
	case KeywordElseif:
		return "#elseif"
	case KeywordElse:
		return "#else"
	}
	return "#?"
}

// IfConfigClause is one guarded alternative of a directive.
//
// Condition is nil for an unconditional #else clause. Elements holds the
// clause body: one of the four ordered list kinds for list positions, an
// expression for the postfix position, or nil for an empty clause.
type IfConfigClause struct {
	spanned
	Keyword   ClauseKeyword
	Condition Node
	Elements  Node
}

func NewIfConfigClause(keyword ClauseKeyword, condition, elements Node, sp source.Span) *IfConfigClause {
	return &IfConfigClause{spanned: spanned{sp}, Keyword: keyword, Condition: condition, Elements: elements}
}

func (*IfConfigClause) Kind() Kind { return KindIfConfigClause }

// IfConfigDecl is a conditional-compilation directive: an ordered sequence of
// mutually exclusive clauses, at most one of which is active for a given
// build configuration.
type IfConfigDecl struct {
	spanned
	Clauses []*IfConfigClause
}

func NewIfConfigDecl(clauses []*IfConfigClause, sp source.Span) *IfConfigDecl {
	return &IfConfigDecl{spanned: spanned{sp}, Clauses: clauses}
}

func (*IfConfigDecl) Kind() Kind { return KindIfConfigDecl }
