package amarantine

import "testing"

func TestLexerTokenTypes(t *testing.T) {
	toks, err := NewLexer([]byte("a.(b)|c*")).Tokens()
	if err != nil {
		t.Fatalf("Tokens() error = %v", err)
	}
	want := []TokenType{
		TokenLiteral, TokenDot, TokenLParen, TokenLiteral, TokenRParen,
		TokenPipe, TokenLiteral, TokenStar, TokenEOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, tt := range want {
		if toks[i].Type != tt {
			t.Errorf("token %d: got type %v, want %v", i, toks[i].Type, tt)
		}
	}
}

func TestLexerSkipsWhitespace(t *testing.T) {
	toks, err := NewLexer([]byte("a b")).Tokens()
	if err != nil {
		t.Fatalf("Tokens() error = %v", err)
	}
	if len(toks) != 3 { // 'a', 'b', EOF
		t.Fatalf("got %d tokens, want 3: %v", len(toks), toks)
	}
}

func TestLexerEscape(t *testing.T) {
	toks, err := NewLexer([]byte(`\d`)).Tokens()
	if err != nil {
		t.Fatalf("Tokens() error = %v", err)
	}
	if toks[0].Type != TokenEscape || toks[0].Val != 'd' {
		t.Errorf("got %+v, want TokenEscape 'd'", toks[0])
	}
}

func TestLexerIncompleteEscape(t *testing.T) {
	_, err := NewLexer([]byte(`a\`)).Tokens()
	if err == nil {
		t.Fatal("expected error for trailing backslash, got nil")
	}
}
