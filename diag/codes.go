package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Build-configuration evaluation
	CfgInfo             Code = 1000
	CfgEvalError        Code = 1001
	CfgUnknownFlag      Code = 1002
	CfgBadCondition     Code = 1003
	CfgEmptyDirective   Code = 1004
	CfgClauseKindMangle Code = 1005

	// Tree integrity
	TreeInfo         Code = 2000
	TreeDecodeError  Code = 2001
	TreeUnknownKind  Code = 2002
	TreeMissingChild Code = 2003

	// I/O
	IOInfo          Code = 9000
	IOLoadFileError Code = 9001
)

// String returns the stable textual form of the code, e.g. "CFG1001".
func (c Code) String() string {
	switch {
	case c >= 1000 && c < 2000:
		return fmt.Sprintf("CFG%04d", uint16(c))
	case c >= 2000 && c < 3000:
		return fmt.Sprintf("TREE%04d", uint16(c))
	case c >= 9000 && c < 10000:
		return fmt.Sprintf("IO%04d", uint16(c))
	}
	return fmt.Sprintf("UNK%04d", uint16(c))
}
