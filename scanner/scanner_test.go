package scanner

import (
	"testing"

	"charis/token"
)

func scanAll(source string) []token.Token {
	s := New(source)
	var tokens []token.Token
	for {
		tok := s.ScanToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.Eof {
			return tokens
		}
	}
}

func TestScanOperators(t *testing.T) {
	tokens := scanAll("==/=*+>-<!=<=>=!!")
	kinds := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	expected := []token.Kind{
		token.EqualEqual, token.Slash, token.Equal, token.Star, token.Plus,
		token.Greater, token.Minus, token.Less, token.BangEqual,
		token.LessEqual, token.GreaterEqual, token.Bang, token.Bang, token.Eof,
	}
	if len(kinds) != len(expected) {
		t.Fatalf("scanned %d tokens, want %d", len(kinds), len(expected))
	}
	for i := range expected {
		if kinds[i] != expected[i] {
			t.Errorf("token[%d] = %v, want %v", i, kinds[i], expected[i])
		}
	}
}

func TestScanNumber(t *testing.T) {
	tests := []struct {
		source string
		lexeme string
	}{
		{"1.2", "1.2"},
		{"1.", "1"},    // trailing dot without digits is not consumed
		{"42", "42"},
	}
	for _, tt := range tests {
		s := New(tt.source)
		tok := s.ScanToken()
		if tok.Kind != token.Number {
			t.Fatalf("ScanToken(%q).Kind = %v, want Number", tt.source, tok.Kind)
		}
		if tok.Lexeme != tt.lexeme {
			t.Errorf("ScanToken(%q).Lexeme = %q, want %q", tt.source, tok.Lexeme, tt.lexeme)
		}
	}
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	tests := []struct {
		source string
		kind   token.Kind
	}{
		{"true", token.True},
		{"false", token.False},
		{"null", token.Null},
		{"print", token.Print},
		{"and", token.And},
		{"or", token.Or},
		{"foobar", token.Identifier},
		{"_underscored1", token.Identifier},
	}
	for _, tt := range tests {
		s := New(tt.source)
		tok := s.ScanToken()
		if tok.Kind != tt.kind {
			t.Errorf("ScanToken(%q).Kind = %v, want %v", tt.source, tok.Kind, tt.kind)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	s := New(`"hello`)
	tok := s.ScanToken()
	if tok.Kind != token.Error || tok.Lexeme != "Unterminated string." {
		t.Errorf("ScanToken(unterminated) = %+v, want Error \"Unterminated string.\"", tok)
	}
}

func TestStringSpansNewlines(t *testing.T) {
	s := New("\"a\nb\"")
	tok := s.ScanToken()
	if tok.Kind != token.String {
		t.Fatalf("ScanToken().Kind = %v, want String", tok.Kind)
	}
	eof := s.ScanToken()
	if eof.Line != 2 {
		t.Errorf("line after multi-line string = %d, want 2", eof.Line)
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	s := New("@")
	tok := s.ScanToken()
	if tok.Kind != token.Error || tok.Lexeme != "Unexpected Character" {
		t.Errorf("ScanToken(%q) = %+v, want Error \"Unexpected Character\"", "@", tok)
	}
}

func TestCommentsAndEOFRepeat(t *testing.T) {
	s := New("1 # a comment\n")
	first := s.ScanToken()
	if first.Kind != token.Number {
		t.Fatalf("first token kind = %v, want Number", first.Kind)
	}
	for i := 0; i < 3; i++ {
		tok := s.ScanToken()
		if tok.Kind != token.Eof {
			t.Errorf("ScanToken() after exhaustion = %v, want Eof", tok.Kind)
		}
	}
}

func TestScanIsPureOverImmutableSource(t *testing.T) {
	source := "(-1 + 2) * 3 - -4"
	if got, want := scanAll(source), scanAll(source); len(got) != len(want) {
		t.Fatalf("scanning twice produced different lengths: %d vs %d", len(got), len(want))
	} else {
		for i := range got {
			if got[i].Kind != want[i].Kind || got[i].Lexeme != want[i].Lexeme {
				t.Errorf("token[%d] differs between runs: %+v vs %+v", i, got[i], want[i])
			}
		}
	}
}
