package evaluator

import (
	"fmt"
	"strings"

	"newt/internal/object"
)

// globalBuiltins are bound in every program without an import. The array
// mutators are aliases for the ops of the array module.
func globalBuiltins() map[string]*object.Builtin {
	builtins := map[string]object.BuiltinFunction{
		"println": nativePrintln,
		"print":   nativePrint,
		"len":     nativeLen,
		"typeof":  nativeTypeof,
		"str":     nativeStr,
		"num":     nativeNum,
		"bool":    nativeBool,
		"ref":     nativeRef,
		"range":   nativeRange,
		"clone":   nativeClone,
		"push":    nativeArrayPush,
		"pop":     nativeArrayPop,
		"insert":  nativeArrayInsert,
		"remove":  nativeArrayRemove,
		"clear":   nativeArrayClear,
	}
	out := make(map[string]*object.Builtin, len(builtins))
	for name, fn := range builtins {
		out[name] = &object.Builtin{Name: name, Fn: fn}
	}
	return out
}

func wantArgs(ctx object.CallContext, name string, want int, args []object.Object) *object.Error {
	if len(args) != want {
		return ctx.NewError(object.ArityMismatchError,
			"%s expects %d arguments, got %d", name, want, len(args))
	}
	return nil
}

func argNumber(ctx object.CallContext, name string, arg object.Object) (float64, *object.Error) {
	num, ok := object.Unwrap(arg).(*object.Number)
	if !ok {
		return 0, ctx.NewError(object.TypeError, "%s expects a number, got %s", name, arg.Type())
	}
	return num.Value, nil
}

func argInt(ctx object.CallContext, name string, arg object.Object) (int, *object.Error) {
	v, err := argNumber(ctx, name, arg)
	if err != nil {
		return 0, err
	}
	if v != float64(int(v)) {
		return 0, ctx.NewError(object.TypeError, "%s expects an integer, got %s", name, object.FormatNumber(v))
	}
	return int(v), nil
}

func argString(ctx object.CallContext, name string, arg object.Object) (string, *object.Error) {
	str, ok := object.Unwrap(arg).(*object.String)
	if !ok {
		return "", ctx.NewError(object.TypeError, "%s expects a string, got %s", name, arg.Type())
	}
	return str.Value, nil
}

func argArray(ctx object.CallContext, name string, arg object.Object) (*object.Array, *object.Error) {
	arr, ok := object.Unwrap(arg).(*object.Array)
	if !ok {
		return nil, ctx.NewError(object.TypeError, "%s expects an array, got %s", name, arg.Type())
	}
	return arr, nil
}

func nativePrintln(ctx object.CallContext, args ...object.Object) object.Object {
	fmt.Fprintln(ctx.Out(), inspectAll(args))
	return NIL
}

func nativePrint(ctx object.CallContext, args ...object.Object) object.Object {
	fmt.Fprint(ctx.Out(), inspectAll(args))
	return NIL
}

func inspectAll(args []object.Object) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = object.Unwrap(arg).Inspect()
	}
	return strings.Join(parts, " ")
}

func nativeLen(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "len", 1, args); err != nil {
		return err
	}
	switch arg := object.Unwrap(args[0]).(type) {
	case *object.Array:
		return &object.Number{Value: float64(len(arg.Elements))}
	case *object.String:
		return &object.Number{Value: float64(len([]rune(arg.Value)))}
	default:
		return ctx.NewError(object.TypeError, "len not supported on %s", args[0].Type())
	}
}

func nativeTypeof(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "typeof", 1, args); err != nil {
		return err
	}
	return &object.String{Value: string(args[0].Type())}
}

func nativeStr(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "str", 1, args); err != nil {
		return err
	}
	return &object.String{Value: object.Unwrap(args[0]).Inspect()}
}

func nativeNum(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "num", 1, args); err != nil {
		return err
	}
	v, err := object.ToNumber(args[0])
	if err != nil {
		return err
	}
	return &object.Number{Value: v}
}

func nativeBool(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "bool", 1, args); err != nil {
		return err
	}
	if object.IsTruthy(args[0]) {
		return TRUE
	}
	return FALSE
}

// nativeRef wraps its argument in a fresh cell. The copy happened when the
// argument was bound, so the cell never aliases the caller's value.
func nativeRef(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "ref", 1, args); err != nil {
		return err
	}
	if args[0].Type() == object.REFERENCE_OBJ {
		return ctx.NewError(object.TypeError, "ref() cannot wrap a reference")
	}
	return &object.Reference{Cell: &object.Cell{Value: args[0]}}
}

func nativeRange(ctx object.CallContext, args ...object.Object) object.Object {
	if len(args) != 2 && len(args) != 3 {
		return ctx.NewError(object.ArityMismatchError,
			"range expects 2 or 3 arguments, got %d", len(args))
	}
	start, err := argNumber(ctx, "range", args[0])
	if err != nil {
		return err
	}
	end, err := argNumber(ctx, "range", args[1])
	if err != nil {
		return err
	}
	step := 1.0
	if len(args) == 3 {
		step, err = argNumber(ctx, "range", args[2])
		if err != nil {
			return err
		}
	}
	if step == 0 {
		return ctx.NewError(object.TypeError, "range step must not be zero")
	}

	var elements []object.Object
	if step > 0 {
		for v := start; v < end; v += step {
			elements = append(elements, &object.Number{Value: v})
		}
	} else {
		for v := start; v > end; v += step {
			elements = append(elements, &object.Number{Value: v})
		}
	}
	return &object.Array{Elements: elements}
}

// nativeClone returns an unaliased deep copy of its argument, reaching
// through references and into struct instance fields.
func nativeClone(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "clone", 1, args); err != nil {
		return err
	}
	return deepClone(object.Unwrap(args[0]))
}

func deepClone(obj object.Object) object.Object {
	switch obj := obj.(type) {
	case *object.Array:
		elements := make([]object.Object, len(obj.Elements))
		for i, el := range obj.Elements {
			elements[i] = deepClone(object.Unwrap(el))
		}
		return &object.Array{Elements: elements}
	case *object.StructInstance:
		fields := make(map[string]object.Object, len(obj.Fields))
		for name, val := range obj.Fields {
			fields[name] = deepClone(object.Unwrap(val))
		}
		return &object.StructInstance{TypeDef: obj.TypeDef, Fields: fields}
	default:
		return object.Copy(obj)
	}
}
