package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"newt/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `let five = 5
const name = "newt"
fn add(a, b) { a + b }
if five >= 5 && !false {
	add(five, 2.5)
}
let xs = [1, 2]
xs[0] = 9
import math
math.sqrt(4) # trailing comment
// whole-line comment
xs != nil || five % 2 < 3`

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.LET, "let"},
		{token.IDENT, "five"},
		{token.ASSIGN, "="},
		{token.NUMBER, "5"},
		{token.NEWLINE, "\n"},
		{token.CONST, "const"},
		{token.IDENT, "name"},
		{token.ASSIGN, "="},
		{token.STRING, "newt"},
		{token.NEWLINE, "\n"},
		{token.FUNCTION, "fn"},
		{token.IDENT, "add"},
		{token.LPAREN, "("},
		{token.IDENT, "a"},
		{token.COMMA, ","},
		{token.IDENT, "b"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.IDENT, "a"},
		{token.PLUS, "+"},
		{token.IDENT, "b"},
		{token.RBRACE, "}"},
		{token.NEWLINE, "\n"},
		{token.IF, "if"},
		{token.IDENT, "five"},
		{token.GT_EQ, ">="},
		{token.NUMBER, "5"},
		{token.LOGICAL_AND, "&&"},
		{token.BANG, "!"},
		{token.FALSE, "false"},
		{token.LBRACE, "{"},
		{token.NEWLINE, "\n"},
		{token.IDENT, "add"},
		{token.LPAREN, "("},
		{token.IDENT, "five"},
		{token.COMMA, ","},
		{token.NUMBER, "2.5"},
		{token.RPAREN, ")"},
		{token.NEWLINE, "\n"},
		{token.RBRACE, "}"},
		{token.NEWLINE, "\n"},
		{token.LET, "let"},
		{token.IDENT, "xs"},
		{token.ASSIGN, "="},
		{token.LBRACKET, "["},
		{token.NUMBER, "1"},
		{token.COMMA, ","},
		{token.NUMBER, "2"},
		{token.RBRACKET, "]"},
		{token.NEWLINE, "\n"},
		{token.IDENT, "xs"},
		{token.LBRACKET, "["},
		{token.NUMBER, "0"},
		{token.RBRACKET, "]"},
		{token.ASSIGN, "="},
		{token.NUMBER, "9"},
		{token.NEWLINE, "\n"},
		{token.IMPORT, "import"},
		{token.IDENT, "math"},
		{token.NEWLINE, "\n"},
		{token.IDENT, "math"},
		{token.PERIOD, "."},
		{token.IDENT, "sqrt"},
		{token.LPAREN, "("},
		{token.NUMBER, "4"},
		{token.RPAREN, ")"},
		{token.NEWLINE, "\n"},
		{token.NEWLINE, "\n"},
		{token.IDENT, "xs"},
		{token.NOT_EQ, "!="},
		{token.NIL, "nil"},
		{token.LOGICAL_OR, "||"},
		{token.IDENT, "five"},
		{token.PERCENT, "%"},
		{token.NUMBER, "2"},
		{token.LT, "<"},
		{token.NUMBER, "3"},
		{token.EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - wrong token type. expected=%q, got=%q (literal %q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - wrong literal. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	input := `"a\nb\t\"c\"\\"`
	l := New(input)
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("wrong token type. expected=%q, got=%q", token.STRING, tok.Type)
	}
	if want := "a\nb\t\"c\"\\"; tok.Literal != want {
		t.Errorf("wrong literal. expected=%q, got=%q", want, tok.Literal)
	}
}

func TestTokenPositions(t *testing.T) {
	input := "let x = 10"
	l := New(input)

	var got []int
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		got = append(got, tok.Position)
	}

	want := []int{0, 4, 6, 8}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token positions mismatch (-want +got):\n%s", diff)
	}
}

func TestIllegalToken(t *testing.T) {
	l := New("let @ = 1")
	l.NextToken()
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("wrong token type. expected=%q, got=%q", token.ILLEGAL, tok.Type)
	}
}
