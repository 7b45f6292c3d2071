package token

import "testing"

func TestTokenInfo(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		want string
	}{
		{"start", Token{Type: TStart, Tag: "a", Pos: 0}, `TStart "a" offset 0`},
		{"end", Token{Type: TEnd, Tag: "a", Pos: 10}, `TEnd "a" offset 10`},
		{"attr", Token{Type: TAttr, Key: "k", Value: "v", Pos: 3}, `TAttr k="v" offset 3`},
		{"data", Token{Type: TData, Value: "text", Pos: 7}, `TData "text" offset 7`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.Info(); got != tt.want {
				t.Errorf("Info() = %q, want %q", got, tt.want)
			}
		})
	}
}
