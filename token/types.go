package token

import "fmt"

type TokenType int

const (
	TStart TokenType = iota
	TEnd
	TAttr
	TData
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TStart: "TStart",
		TEnd:   "TEnd",
		TAttr:  "TAttr",
		TData:  "TData",
	}[t]
}

// Token is one unit of scanner output. TStart and TEnd carry Tag,
// TAttr carries Key and Value, TData carries Value only.
type Token struct {
	Type  TokenType
	Pos   Pos
	Tag   string
	Key   string
	Value string
}

func (t *Token) Info() string {
	switch t.Type {
	case TStart, TEnd:
		return fmt.Sprintf("%s %q %s", t.Type, t.Tag, t.Pos)
	case TAttr:
		return fmt.Sprintf("%s %s=%q %s", t.Type, t.Key, t.Value, t.Pos)
	default:
		return fmt.Sprintf("%s %q %s", t.Type, t.Value, t.Pos)
	}
}
