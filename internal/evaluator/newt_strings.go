package evaluator

import (
	"strings"

	"newt/internal/object"
)

func stringsModule() *object.Module {
	return mod("strings", map[string]object.BuiltinFunction{
		"upper":      stringsUnary("upper", strings.ToUpper),
		"lower":      stringsUnary("lower", strings.ToLower),
		"trim":       stringsUnary("trim", strings.TrimSpace),
		"split":      nativeStringsSplit,
		"join":       nativeStringsJoin,
		"contains":   stringsPredicate("contains", strings.Contains),
		"startsWith": stringsPredicate("startsWith", strings.HasPrefix),
		"endsWith":   stringsPredicate("endsWith", strings.HasSuffix),
		"indexOf":    nativeStringsIndexOf,
		"replace":    nativeStringsReplace,
		"substring":  nativeStringsSubstring,
		"repeat":     nativeStringsRepeat,
		"chars":      nativeStringsChars,
	})
}

func stringsUnary(name string, fn func(string) string) object.BuiltinFunction {
	return func(ctx object.CallContext, args ...object.Object) object.Object {
		if err := wantArgs(ctx, name, 1, args); err != nil {
			return err
		}
		s, err := argString(ctx, name, args[0])
		if err != nil {
			return err
		}
		return &object.String{Value: fn(s)}
	}
}

func stringsPredicate(name string, fn func(string, string) bool) object.BuiltinFunction {
	return func(ctx object.CallContext, args ...object.Object) object.Object {
		if err := wantArgs(ctx, name, 2, args); err != nil {
			return err
		}
		s, err := argString(ctx, name, args[0])
		if err != nil {
			return err
		}
		sub, err := argString(ctx, name, args[1])
		if err != nil {
			return err
		}
		if fn(s, sub) {
			return TRUE
		}
		return FALSE
	}
}

func nativeStringsSplit(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "split", 2, args); err != nil {
		return err
	}
	s, err := argString(ctx, "split", args[0])
	if err != nil {
		return err
	}
	sep, err := argString(ctx, "split", args[1])
	if err != nil {
		return err
	}
	parts := strings.Split(s, sep)
	elements := make([]object.Object, len(parts))
	for i, part := range parts {
		elements[i] = &object.String{Value: part}
	}
	return &object.Array{Elements: elements}
}

func nativeStringsJoin(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "join", 2, args); err != nil {
		return err
	}
	arr, err := argArray(ctx, "join", args[0])
	if err != nil {
		return err
	}
	sep, err := argString(ctx, "join", args[1])
	if err != nil {
		return err
	}
	parts := make([]string, len(arr.Elements))
	for i, el := range arr.Elements {
		s, err := argString(ctx, "join", el)
		if err != nil {
			return err
		}
		parts[i] = s
	}
	return &object.String{Value: strings.Join(parts, sep)}
}

func nativeStringsIndexOf(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "indexOf", 2, args); err != nil {
		return err
	}
	s, err := argString(ctx, "indexOf", args[0])
	if err != nil {
		return err
	}
	sub, err := argString(ctx, "indexOf", args[1])
	if err != nil {
		return err
	}
	// rune offset, consistent with len and substring
	idx := strings.Index(s, sub)
	if idx < 0 {
		return &object.Number{Value: -1}
	}
	return &object.Number{Value: float64(len([]rune(s[:idx])))}
}

func nativeStringsReplace(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "replace", 3, args); err != nil {
		return err
	}
	s, err := argString(ctx, "replace", args[0])
	if err != nil {
		return err
	}
	from, err := argString(ctx, "replace", args[1])
	if err != nil {
		return err
	}
	to, err := argString(ctx, "replace", args[2])
	if err != nil {
		return err
	}
	return &object.String{Value: strings.ReplaceAll(s, from, to)}
}

func nativeStringsSubstring(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "substring", 3, args); err != nil {
		return err
	}
	s, err := argString(ctx, "substring", args[0])
	if err != nil {
		return err
	}
	start, err := argInt(ctx, "substring", args[1])
	if err != nil {
		return err
	}
	end, err := argInt(ctx, "substring", args[2])
	if err != nil {
		return err
	}
	runes := []rune(s)
	if start < 0 || end > len(runes) || start > end {
		return ctx.NewError(object.IndexOutOfBoundsError,
			"substring bounds [%d:%d] out of range for length %d", start, end, len(runes))
	}
	return &object.String{Value: string(runes[start:end])}
}

func nativeStringsRepeat(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "repeat", 2, args); err != nil {
		return err
	}
	s, err := argString(ctx, "repeat", args[0])
	if err != nil {
		return err
	}
	count, err := argInt(ctx, "repeat", args[1])
	if err != nil {
		return err
	}
	if count < 0 {
		return ctx.NewError(object.TypeError, "repeat count must not be negative")
	}
	return &object.String{Value: strings.Repeat(s, count)}
}

func nativeStringsChars(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "chars", 1, args); err != nil {
		return err
	}
	s, err := argString(ctx, "chars", args[0])
	if err != nil {
		return err
	}
	runes := []rune(s)
	elements := make([]object.Object, len(runes))
	for i, r := range runes {
		elements[i] = &object.String{Value: string(r)}
	}
	return &object.Array{Elements: elements}
}
