package object

import "strconv"

// Copy returns a value-semantics duplicate of v. Arrays copy deeply;
// References copy the handle so every copy aliases the same cell; Functions,
// StructInstances and Modules have handle semantics. Immutable scalar kinds
// are returned as-is.
func Copy(v Object) Object {
	switch v := v.(type) {
	case *Array:
		elements := make([]Object, len(v.Elements))
		for i, e := range v.Elements {
			elements[i] = Copy(e)
		}
		return &Array{Elements: elements}
	default:
		return v
	}
}

// Unwrap reads through a Reference to its current contents. Read sites
// (arithmetic, display, indexing, iteration) dereference implicitly.
func Unwrap(v Object) Object {
	if ref, ok := v.(*Reference); ok {
		return ref.Cell.Value
	}
	return v
}

// IsTruthy implements the coercion table: nil and false are falsy, a number
// is falsy iff exactly 0, strings and arrays are falsy iff empty, a
// Reference takes the truthiness of its contents, everything else is truthy.
func IsTruthy(v Object) bool {
	switch v := Unwrap(v).(type) {
	case *Nil:
		return false
	case *Boolean:
		return v.Value
	case *Number:
		return v.Value != 0
	case *String:
		return v.Value != ""
	case *Array:
		return len(v.Elements) > 0
	default:
		return true
	}
}

// ToNumber coerces v to a float64. A Number is identity; a String is parsed.
func ToNumber(v Object) (float64, *Error) {
	switch v := Unwrap(v).(type) {
	case *Number:
		return v.Value, nil
	case *String:
		f, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return 0, NewError(TypeError, "cannot parse %q as a number", v.Value)
		}
		return f, nil
	default:
		return 0, NewError(TypeError, "cannot convert %s to a number", v.Type())
	}
}

// Equals is structural equality. References compare their current contents,
// never cell identity; arrays compare element-wise. Struct instances compare
// structurally over fields here; a user-defined `equals` method takes
// precedence and is handled at the evaluator.
func Equals(a, b Object) bool {
	a = Unwrap(a)
	b = Unwrap(b)

	if a.Type() != b.Type() {
		return false
	}

	switch a := a.(type) {
	case *Nil:
		return true
	case *Boolean:
		return a.Value == b.(*Boolean).Value
	case *Number:
		return a.Value == b.(*Number).Value
	case *String:
		return a.Value == b.(*String).Value
	case *Array:
		bArr := b.(*Array)
		if len(a.Elements) != len(bArr.Elements) {
			return false
		}
		for i, e := range a.Elements {
			if !Equals(e, bArr.Elements[i]) {
				return false
			}
		}
		return true
	case *StructInstance:
		bInst := b.(*StructInstance)
		if a.TypeDef.Name != bInst.TypeDef.Name || len(a.Fields) != len(bInst.Fields) {
			return false
		}
		for name, v := range a.Fields {
			other, ok := bInst.Fields[name]
			if !ok || !Equals(v, other) {
				return false
			}
		}
		return true
	default:
		// functions, modules, builtins: identity
		return a == b
	}
}
