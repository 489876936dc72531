package evaluator

import (
	"sort"

	"newt/internal/object"
)

func arrayModule() *object.Module {
	return mod("array", map[string]object.BuiltinFunction{
		"push":    nativeArrayPush,
		"pop":     nativeArrayPop,
		"insert":  nativeArrayInsert,
		"remove":  nativeArrayRemove,
		"set":     nativeArraySet,
		"get":     nativeArrayGet,
		"clear":   nativeArrayClear,
		"indexOf": nativeArrayIndexOf,
		"reverse": nativeArrayReverse,
		"sort":    nativeArraySort,
		"concat":  nativeArrayConcat,
		"slice":   nativeArraySlice,
	})
}

// mutationTarget resolves the array a mutating op works on. Given a
// Reference the shared cell's array is returned and edits are visible to
// every holder of the handle; given a plain Array the op edits the call
// copy, so a fresh array is what the caller gets back.
func mutationTarget(ctx object.CallContext, name string, arg object.Object) (*object.Array, bool, *object.Error) {
	isRef := arg.Type() == object.REFERENCE_OBJ
	arr, err := argArray(ctx, name, arg)
	if err != nil {
		return nil, false, err
	}
	return arr, isRef, nil
}

// mutationResult returns the handle for reference targets and the (new)
// array otherwise.
func mutationResult(arg object.Object, arr *object.Array, isRef bool) object.Object {
	if isRef {
		return arg
	}
	return arr
}

func nativeArrayPush(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "push", 2, args); err != nil {
		return err
	}
	arr, isRef, err := mutationTarget(ctx, "push", args[0])
	if err != nil {
		return err
	}
	arr.Elements = append(arr.Elements, object.Copy(args[1]))
	return mutationResult(args[0], arr, isRef)
}

func nativeArrayPop(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "pop", 1, args); err != nil {
		return err
	}
	arr, _, err := mutationTarget(ctx, "pop", args[0])
	if err != nil {
		return err
	}
	if len(arr.Elements) == 0 {
		return ctx.NewError(object.IndexOutOfBoundsError, "pop from empty array")
	}
	last := arr.Elements[len(arr.Elements)-1]
	arr.Elements = arr.Elements[:len(arr.Elements)-1]
	return last
}

func nativeArrayInsert(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "insert", 3, args); err != nil {
		return err
	}
	arr, isRef, err := mutationTarget(ctx, "insert", args[0])
	if err != nil {
		return err
	}
	idx, err := argInt(ctx, "insert", args[1])
	if err != nil {
		return err
	}
	if idx < 0 || idx > len(arr.Elements) {
		return ctx.NewError(object.IndexOutOfBoundsError,
			"insert index %d out of bounds for length %d", idx, len(arr.Elements))
	}
	arr.Elements = append(arr.Elements, nil)
	copy(arr.Elements[idx+1:], arr.Elements[idx:])
	arr.Elements[idx] = object.Copy(args[2])
	return mutationResult(args[0], arr, isRef)
}

func nativeArrayRemove(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "remove", 2, args); err != nil {
		return err
	}
	arr, _, err := mutationTarget(ctx, "remove", args[0])
	if err != nil {
		return err
	}
	idx, err := argInt(ctx, "remove", args[1])
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(arr.Elements) {
		return ctx.NewError(object.IndexOutOfBoundsError,
			"remove index %d out of bounds for length %d", idx, len(arr.Elements))
	}
	removed := arr.Elements[idx]
	arr.Elements = append(arr.Elements[:idx], arr.Elements[idx+1:]...)
	return removed
}

func nativeArraySet(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "set", 3, args); err != nil {
		return err
	}
	arr, isRef, err := mutationTarget(ctx, "set", args[0])
	if err != nil {
		return err
	}
	idx, err := argInt(ctx, "set", args[1])
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(arr.Elements) {
		return ctx.NewError(object.IndexOutOfBoundsError,
			"set index %d out of bounds for length %d", idx, len(arr.Elements))
	}
	arr.Elements[idx] = object.Copy(args[2])
	return mutationResult(args[0], arr, isRef)
}

func nativeArrayGet(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "get", 2, args); err != nil {
		return err
	}
	arr, err := argArray(ctx, "get", args[0])
	if err != nil {
		return err
	}
	idx, err := argInt(ctx, "get", args[1])
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(arr.Elements) {
		return ctx.NewError(object.IndexOutOfBoundsError,
			"get index %d out of bounds for length %d", idx, len(arr.Elements))
	}
	return arr.Elements[idx]
}

func nativeArrayClear(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "clear", 1, args); err != nil {
		return err
	}
	arr, isRef, err := mutationTarget(ctx, "clear", args[0])
	if err != nil {
		return err
	}
	arr.Elements = arr.Elements[:0]
	return mutationResult(args[0], arr, isRef)
}

func nativeArrayIndexOf(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "indexOf", 2, args); err != nil {
		return err
	}
	arr, err := argArray(ctx, "indexOf", args[0])
	if err != nil {
		return err
	}
	needle := object.Unwrap(args[1])
	for i, el := range arr.Elements {
		if object.Equals(object.Unwrap(el), needle) {
			return &object.Number{Value: float64(i)}
		}
	}
	return &object.Number{Value: -1}
}

func nativeArrayReverse(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "reverse", 1, args); err != nil {
		return err
	}
	arr, isRef, err := mutationTarget(ctx, "reverse", args[0])
	if err != nil {
		return err
	}
	for i, j := 0, len(arr.Elements)-1; i < j; i, j = i+1, j-1 {
		arr.Elements[i], arr.Elements[j] = arr.Elements[j], arr.Elements[i]
	}
	return mutationResult(args[0], arr, isRef)
}

func nativeArraySort(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "sort", 1, args); err != nil {
		return err
	}
	arr, isRef, err := mutationTarget(ctx, "sort", args[0])
	if err != nil {
		return err
	}
	if len(arr.Elements) == 0 {
		return mutationResult(args[0], arr, isRef)
	}

	switch object.Unwrap(arr.Elements[0]).(type) {
	case *object.Number:
		nums := make([]float64, len(arr.Elements))
		for i, el := range arr.Elements {
			n, e := argNumber(ctx, "sort", el)
			if e != nil {
				return ctx.NewError(object.TypeError, "sort requires uniform element types")
			}
			nums[i] = n
		}
		sort.Float64s(nums)
		for i, n := range nums {
			arr.Elements[i] = &object.Number{Value: n}
		}
	case *object.String:
		strs := make([]string, len(arr.Elements))
		for i, el := range arr.Elements {
			s, e := argString(ctx, "sort", el)
			if e != nil {
				return ctx.NewError(object.TypeError, "sort requires uniform element types")
			}
			strs[i] = s
		}
		sort.Strings(strs)
		for i, s := range strs {
			arr.Elements[i] = &object.String{Value: s}
		}
	default:
		return ctx.NewError(object.TypeError,
			"sort not supported on %s elements", object.Unwrap(arr.Elements[0]).Type())
	}
	return mutationResult(args[0], arr, isRef)
}

func nativeArrayConcat(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "concat", 2, args); err != nil {
		return err
	}
	left, err := argArray(ctx, "concat", args[0])
	if err != nil {
		return err
	}
	right, err := argArray(ctx, "concat", args[1])
	if err != nil {
		return err
	}
	elements := make([]object.Object, 0, len(left.Elements)+len(right.Elements))
	for _, el := range left.Elements {
		elements = append(elements, object.Copy(el))
	}
	for _, el := range right.Elements {
		elements = append(elements, object.Copy(el))
	}
	return &object.Array{Elements: elements}
}

func nativeArraySlice(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "slice", 3, args); err != nil {
		return err
	}
	arr, err := argArray(ctx, "slice", args[0])
	if err != nil {
		return err
	}
	start, err := argInt(ctx, "slice", args[1])
	if err != nil {
		return err
	}
	end, err := argInt(ctx, "slice", args[2])
	if err != nil {
		return err
	}
	if start < 0 || end > len(arr.Elements) || start > end {
		return ctx.NewError(object.IndexOutOfBoundsError,
			"slice bounds [%d:%d] out of range for length %d", start, end, len(arr.Elements))
	}
	elements := make([]object.Object, 0, end-start)
	for _, el := range arr.Elements[start:end] {
		elements = append(elements, object.Copy(el))
	}
	return &object.Array{Elements: elements}
}
