package object

import (
	"bytes"
	"fmt"
	"io"
	"newt/internal/ast"
	"sort"
	"strconv"
	"strings"
)

const (
	NIL_OBJ     = "NIL"
	BOOLEAN_OBJ = "BOOLEAN"
	NUMBER_OBJ  = "NUMBER"
	STRING_OBJ  = "STRING"
	ARRAY_OBJ   = "ARRAY"

	REFERENCE_OBJ   = "REFERENCE"
	FUNCTION_OBJ    = "FUNCTION"
	STRUCT_TYPE_OBJ = "STRUCT_TYPE"
	STRUCT_OBJ      = "STRUCT"
	MODULE_OBJ      = "MODULE"
	BUILTIN_OBJ     = "BUILTIN"

	ERROR_OBJ        = "ERROR"
	RETURN_VALUE_OBJ = "RETURN_VALUE"
	BREAK_OBJ        = "BREAK"
	CONTINUE_OBJ     = "CONTINUE"
)

var (
	NIL   = &Nil{}
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}

	BREAK    = &BreakSignal{}
	CONTINUE = &ContinueSignal{}
)

type ObjectType string

type Object interface {
	Type() ObjectType
	Inspect() string
}

// CallContext is the bridge between native Go operations and the evaluator.
// The output sink is threaded through here rather than living in a package
// global so embedders and tests can capture it.
type CallContext interface {
	Out() io.Writer
	NewError(kind ErrorKind, format string, a ...interface{}) *Error
}

// BuiltinFunction is the signature every native module operation implements.
// Arguments arrive in order; a Reference argument may be mutated in place.
type BuiltinFunction func(ctx CallContext, args ...Object) Object

type Nil struct{}

func (n *Nil) Type() ObjectType { return NIL_OBJ }
func (n *Nil) Inspect() string  { return "nil" }

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string  { return fmt.Sprintf("%t", b.Value) }

// Number is the single numeric type, a double-precision float.
type Number struct {
	Value float64
}

func (n *Number) Type() ObjectType { return NUMBER_OBJ }
func (n *Number) Inspect() string  { return FormatNumber(n.Value) }

// FormatNumber renders integral values without a fractional part.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return s.Value }

// Array is an ordered mutable sequence with value semantics: binding,
// assigning or passing an array duplicates it unless wrapped in a Reference.
type Array struct {
	Elements []Object
}

func (a *Array) Type() ObjectType { return ARRAY_OBJ }
func (a *Array) Inspect() string {
	var out bytes.Buffer
	elements := []string{}
	for _, e := range a.Elements {
		elements = append(elements, e.Inspect())
	}
	out.WriteString("[")
	out.WriteString(strings.Join(elements, ", "))
	out.WriteString("]")
	return out.String()
}

// Cell is the shared mutable box behind a Reference. Every alias of a
// Reference holds the same cell; mutation through one alias is visible
// through all of them.
type Cell struct {
	Value Object
}

// Reference is the explicit escape from value semantics. Copying a Reference
// copies the handle, never the contents.
type Reference struct {
	Cell *Cell
}

func (r *Reference) Type() ObjectType { return REFERENCE_OBJ }
func (r *Reference) Inspect() string {
	return "ref(" + r.Cell.Value.Inspect() + ")"
}

// Function is immutable once created: parameters, body and the environment
// captured at definition time (shared, not copied).
type Function struct {
	Name       string // empty for anonymous literals
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	var out bytes.Buffer
	params := []string{}
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}
	out.WriteString("fn")
	if f.Name != "" {
		out.WriteString(" " + f.Name)
	}
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") { ... }")
	return out.String()
}

// StructFieldDef is one declared field; the default expression is evaluated
// at instantiation time against the type's captured environment.
type StructFieldDef struct {
	Name    string
	Default ast.Expression
}

// StructType holds a declaration: ordered fields with defaults and a flat
// name→method table shared by every instance.
type StructType struct {
	Name    string
	Fields  []StructFieldDef
	Methods map[string]*Function
	Env     *Environment
}

func (s *StructType) Type() ObjectType { return STRUCT_TYPE_OBJ }
func (s *StructType) Inspect() string {
	var out bytes.Buffer
	out.WriteString("struct ")
	out.WriteString(s.Name)
	out.WriteString(" {")
	parts := []string{}
	for _, f := range s.Fields {
		parts = append(parts, f.Name)
	}
	out.WriteString(strings.Join(parts, ", "))
	out.WriteString("}")
	return out.String()
}

// Method resolves a method in the type's table.
func (s *StructType) Method(name string) (*Function, bool) {
	fn, ok := s.Methods[name]
	return fn, ok
}

type StructInstance struct {
	TypeDef *StructType
	Fields  map[string]Object
}

func (s *StructInstance) Type() ObjectType { return STRUCT_OBJ }
func (s *StructInstance) Inspect() string {
	var out bytes.Buffer
	out.WriteString(s.TypeDef.Name)
	out.WriteString(" {")
	parts := []string{}
	for _, f := range s.TypeDef.Fields {
		if val, ok := s.Fields[f.Name]; ok {
			parts = append(parts, f.Name+": "+val.Inspect())
		}
	}
	out.WriteString(strings.Join(parts, ", "))
	out.WriteString("}")
	return out.String()
}

// Builtin is a single native operation provided by the host.
type Builtin struct {
	Name string
	Fn   BuiltinFunction
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return "builtin " + b.Name + " { <native> }" }

// Module is a host-provided namespace of native operations, bound into a
// scope by `import`.
type Module struct {
	Name string
	Ops  map[string]*Builtin
}

func (m *Module) Type() ObjectType { return MODULE_OBJ }
func (m *Module) Inspect() string {
	names := make([]string, 0, len(m.Ops))
	for name := range m.Ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return "module " + m.Name + " {" + strings.Join(names, ", ") + "}"
}

// Op resolves a member of the module's dispatch table.
func (m *Module) Op(name string) (*Builtin, bool) {
	op, ok := m.Ops[name]
	return op, ok
}

// ReturnValue carries a `return` through nested blocks to the nearest call
// boundary, which unwraps it.
type ReturnValue struct {
	Value Object
}

func (rv *ReturnValue) Type() ObjectType { return RETURN_VALUE_OBJ }
func (rv *ReturnValue) Inspect() string  { return rv.Value.Inspect() }

// BreakSignal unwinds to the nearest enclosing loop.
type BreakSignal struct{}

func (b *BreakSignal) Type() ObjectType { return BREAK_OBJ }
func (b *BreakSignal) Inspect() string  { return "break" }

// ContinueSignal unwinds to the nearest enclosing loop's next iteration.
type ContinueSignal struct{}

func (c *ContinueSignal) Type() ObjectType { return CONTINUE_OBJ }
func (c *ContinueSignal) Inspect() string  { return "continue" }
