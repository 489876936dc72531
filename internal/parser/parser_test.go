package parser

import (
	"fmt"
	"testing"

	"newt/internal/ast"
	"newt/internal/lexer"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	l := lexer.New(input)
	p := New(l, input)
	program := p.ParseProgram()
	checkParserErrors(t, p)
	return program
}

func checkParserErrors(t *testing.T, p *Parser) {
	t.Helper()
	errors := p.Errors()
	if len(errors) == 0 {
		return
	}
	t.Errorf("parser has %d errors", len(errors))
	for _, msg := range errors {
		t.Errorf("parser error: %q", msg)
	}
	t.FailNow()
}

func TestLetStatements(t *testing.T) {
	tests := []struct {
		input              string
		expectedIdentifier string
		expectedValue      interface{}
	}{
		{"let x = 5", "x", 5.0},
		{"let y = true", "y", true},
		{"let foobar = y", "foobar", "y"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)

		if len(program.Statements) != 1 {
			t.Fatalf("program.Statements does not contain 1 statement. got=%d",
				len(program.Statements))
		}
		stmt, ok := program.Statements[0].(*ast.LetStatement)
		if !ok {
			t.Fatalf("statement not *ast.LetStatement. got=%T", program.Statements[0])
		}
		if stmt.Name.Value != tt.expectedIdentifier {
			t.Errorf("stmt.Name.Value not %q. got=%q", tt.expectedIdentifier, stmt.Name.Value)
		}
		testLiteralExpression(t, stmt.Value, tt.expectedValue)
	}
}

func TestConstStatement(t *testing.T) {
	program := parseProgram(t, `const y = "fixed"`)

	stmt, ok := program.Statements[0].(*ast.ConstStatement)
	if !ok {
		t.Fatalf("statement not *ast.ConstStatement. got=%T", program.Statements[0])
	}
	if stmt.Name.Value != "y" {
		t.Errorf("stmt.Name.Value not %q. got=%q", "y", stmt.Name.Value)
	}
	str, ok := stmt.Value.(*ast.StringLiteral)
	if !ok {
		t.Fatalf("stmt.Value not *ast.StringLiteral. got=%T", stmt.Value)
	}
	if str.Value != "fixed" {
		t.Errorf("str.Value not %q. got=%q", "fixed", str.Value)
	}
}

func TestOperatorPrecedenceParsing(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a * b + c", "((a * b) + c)"},
		{"a + b * c", "(a + (b * c))"},
		{"a % b + c", "((a % b) + c)"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"a <= b && c >= d", "((a <= b) && (c >= d))"},
		{"a || b && c", "(a || (b && c))"},
		{"!(true == true)", "(!(true == true))"},
		{"(a + b) * c", "((a + b) * c)"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"xs[1] + xs[2]", "((xs[1]) + (xs[2]))"},
		{"a.b.c", "((a.b).c)"},
		{"a.b(c)", "(a.b)(c)"},
		{"x = y = z", "(x = (y = z))"},
		{"x = a + b", "(x = (a + b))"},
		{"xs[0] = 1", "((xs[0]) = 1)"},
		{"p.x = 1", "((p.x) = 1)"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		actual := program.String()
		if actual != tt.expected {
			t.Errorf("input %q: expected=%q, got=%q", tt.input, tt.expected, actual)
		}
	}
}

func TestIfElseChain(t *testing.T) {
	input := `if x < 0 {
	-1
} else if x == 0 {
	0
} else {
	1
}`
	program := parseProgram(t, input)

	stmt, ok := program.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("statement not *ast.ExpressionStatement. got=%T", program.Statements[0])
	}
	ifExp, ok := stmt.Expression.(*ast.IfExpression)
	if !ok {
		t.Fatalf("expression not *ast.IfExpression. got=%T", stmt.Expression)
	}
	if ifExp.ElseBranch == nil {
		t.Fatal("ifExp.ElseBranch is nil")
	}
	elseIf, ok := ifExp.ElseBranch.(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("else branch not *ast.ExpressionStatement. got=%T", ifExp.ElseBranch)
	}
	nested, ok := elseIf.Expression.(*ast.IfExpression)
	if !ok {
		t.Fatalf("nested else branch not *ast.IfExpression. got=%T", elseIf.Expression)
	}
	if nested.ElseBranch == nil {
		t.Fatal("nested.ElseBranch is nil")
	}
}

func TestWhileStatement(t *testing.T) {
	program := parseProgram(t, `while i < 10 { i = i + 1 }`)

	stmt, ok := program.Statements[0].(*ast.WhileStatement)
	if !ok {
		t.Fatalf("statement not *ast.WhileStatement. got=%T", program.Statements[0])
	}
	if stmt.Condition.String() != "(i < 10)" {
		t.Errorf("condition wrong. got=%q", stmt.Condition.String())
	}
	if len(stmt.Body.Statements) != 1 {
		t.Errorf("body should have 1 statement. got=%d", len(stmt.Body.Statements))
	}
}

func TestForStatements(t *testing.T) {
	program := parseProgram(t, `for v in xs { v }`)
	stmt, ok := program.Statements[0].(*ast.ForStatement)
	if !ok {
		t.Fatalf("statement not *ast.ForStatement. got=%T", program.Statements[0])
	}
	if stmt.Value.Value != "v" {
		t.Errorf("value identifier wrong. got=%q", stmt.Value.Value)
	}
	if stmt.Index != nil {
		t.Errorf("index should be nil. got=%q", stmt.Index.Value)
	}

	program = parseProgram(t, `for v, i in xs { v }`)
	stmt = program.Statements[0].(*ast.ForStatement)
	if stmt.Index == nil || stmt.Index.Value != "i" {
		t.Errorf("index identifier wrong. got=%v", stmt.Index)
	}
}

func TestFunctionStatement(t *testing.T) {
	program := parseProgram(t, `fn add(a, b) { return a + b }`)

	stmt, ok := program.Statements[0].(*ast.FunctionStatement)
	if !ok {
		t.Fatalf("statement not *ast.FunctionStatement. got=%T", program.Statements[0])
	}
	if stmt.Name.Value != "add" {
		t.Errorf("function name wrong. got=%q", stmt.Name.Value)
	}
	if len(stmt.Function.Parameters) != 2 {
		t.Fatalf("want 2 parameters. got=%d", len(stmt.Function.Parameters))
	}
}

func TestStructStatement(t *testing.T) {
	input := `struct Point {
	let x = 0
	let y
	fn init(a, b) {
		this.x = a
		this.y = b
	}
	fn norm() { this.x }
}`
	program := parseProgram(t, input)

	stmt, ok := program.Statements[0].(*ast.StructStatement)
	if !ok {
		t.Fatalf("statement not *ast.StructStatement. got=%T", program.Statements[0])
	}
	if stmt.Name.Value != "Point" {
		t.Errorf("struct name wrong. got=%q", stmt.Name.Value)
	}
	if len(stmt.Fields) != 2 {
		t.Fatalf("want 2 fields. got=%d", len(stmt.Fields))
	}
	if stmt.Fields[0].Default == nil {
		t.Error("field x should have a default")
	}
	if stmt.Fields[1].Default != nil {
		t.Error("field y should have no default")
	}
	if len(stmt.Methods) != 2 {
		t.Fatalf("want 2 methods. got=%d", len(stmt.Methods))
	}
	if stmt.Methods[0].Name.Value != "init" {
		t.Errorf("first method name wrong. got=%q", stmt.Methods[0].Name.Value)
	}
}

func TestImportStatement(t *testing.T) {
	program := parseProgram(t, `import math`)

	stmt, ok := program.Statements[0].(*ast.ImportStatement)
	if !ok {
		t.Fatalf("statement not *ast.ImportStatement. got=%T", program.Statements[0])
	}
	if stmt.Name.Value != "math" {
		t.Errorf("module name wrong. got=%q", stmt.Name.Value)
	}
}

func TestNewExpression(t *testing.T) {
	program := parseProgram(t, `new Point(3, 4)`)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	exp, ok := stmt.Expression.(*ast.NewExpression)
	if !ok {
		t.Fatalf("expression not *ast.NewExpression. got=%T", stmt.Expression)
	}
	if exp.Type.String() != "Point" {
		t.Errorf("type wrong. got=%q", exp.Type.String())
	}
	if len(exp.Arguments) != 2 {
		t.Errorf("want 2 arguments. got=%d", len(exp.Arguments))
	}
}

func TestMultilineArrayLiteral(t *testing.T) {
	input := `let xs = [
	1,
	2,
	3
]`
	program := parseProgram(t, input)
	stmt := program.Statements[0].(*ast.LetStatement)
	arr, ok := stmt.Value.(*ast.ArrayLiteral)
	if !ok {
		t.Fatalf("value not *ast.ArrayLiteral. got=%T", stmt.Value)
	}
	if len(arr.Elements) != 3 {
		t.Errorf("want 3 elements. got=%d", len(arr.Elements))
	}
}

func TestStatementSeparators(t *testing.T) {
	program := parseProgram(t, "let a = 1; let b = 2\nlet c = 3")
	if len(program.Statements) != 3 {
		t.Fatalf("want 3 statements. got=%d", len(program.Statements))
	}
}

func TestParserErrors(t *testing.T) {
	tests := []struct {
		input string
	}{
		{"let = 5"},
		{"let x 5"},
		{"1 + 2 = 3"},
		{"struct P { if }"},
		{"fn f( {"},
	}

	for _, tt := range tests {
		l := lexer.New(tt.input)
		p := New(l, tt.input)
		p.ParseProgram()
		if len(p.Errors()) == 0 {
			t.Errorf("input %q: expected parser errors, got none", tt.input)
		}
	}
}

func testLiteralExpression(t *testing.T, exp ast.Expression, expected interface{}) {
	t.Helper()
	switch v := expected.(type) {
	case float64:
		num, ok := exp.(*ast.NumberLiteral)
		if !ok {
			t.Fatalf("exp not *ast.NumberLiteral. got=%T", exp)
		}
		if num.Value != v {
			t.Errorf("number value not %v. got=%v", v, num.Value)
		}
	case bool:
		b, ok := exp.(*ast.Boolean)
		if !ok {
			t.Fatalf("exp not *ast.Boolean. got=%T", exp)
		}
		if b.Value != v {
			t.Errorf("boolean value not %v. got=%v", v, b.Value)
		}
	case string:
		ident, ok := exp.(*ast.Identifier)
		if !ok {
			t.Fatalf("exp not *ast.Identifier. got=%T", exp)
		}
		if ident.Value != v {
			t.Errorf("identifier value not %q. got=%q", v, ident.Value)
		}
	default:
		t.Fatalf("type of expected value not handled: %v", fmt.Sprintf("%T", expected))
	}
}
