package evaluator

import (
	"math"

	"newt/internal/object"
)

func matrixModule() *object.Module {
	return mod("matrix", map[string]object.BuiltinFunction{
		"zeros":     nativeMatrixZeros,
		"identity":  nativeMatrixIdentity,
		"shape":     nativeMatrixShape,
		"add":       matrixElementwise("add", func(a, b float64) float64 { return a + b }),
		"sub":       matrixElementwise("sub", func(a, b float64) float64 { return a - b }),
		"scale":     nativeMatrixScale,
		"mul":       nativeMatrixMul,
		"transpose": nativeMatrixTranspose,
		"dot":       nativeMatrixDot,
		"norm":      nativeMatrixNorm,
	})
}

// matrixArg decodes an array of equal-length number arrays.
func matrixArg(ctx object.CallContext, name string, arg object.Object) ([][]float64, *object.Error) {
	arr, err := argArray(ctx, name, arg)
	if err != nil {
		return nil, err
	}
	if len(arr.Elements) == 0 {
		return nil, ctx.NewError(object.TypeError, "%s expects a non-empty matrix", name)
	}
	rows := make([][]float64, len(arr.Elements))
	width := -1
	for i, el := range arr.Elements {
		row, err := numericSlice(ctx, name, el)
		if err != nil {
			return nil, err
		}
		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			return nil, ctx.NewError(object.TypeError, "%s expects equal-length rows", name)
		}
		rows[i] = row
	}
	if width == 0 {
		return nil, ctx.NewError(object.TypeError, "%s expects non-empty rows", name)
	}
	return rows, nil
}

func matrixObject(rows [][]float64) *object.Array {
	out := make([]object.Object, len(rows))
	for i, row := range rows {
		elements := make([]object.Object, len(row))
		for j, v := range row {
			elements[j] = &object.Number{Value: v}
		}
		out[i] = &object.Array{Elements: elements}
	}
	return &object.Array{Elements: out}
}

func nativeMatrixZeros(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "zeros", 2, args); err != nil {
		return err
	}
	rows, err := argInt(ctx, "zeros", args[0])
	if err != nil {
		return err
	}
	cols, err := argInt(ctx, "zeros", args[1])
	if err != nil {
		return err
	}
	if rows <= 0 || cols <= 0 {
		return ctx.NewError(object.TypeError, "zeros dimensions must be positive")
	}
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
	}
	return matrixObject(out)
}

func nativeMatrixIdentity(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "identity", 1, args); err != nil {
		return err
	}
	n, err := argInt(ctx, "identity", args[0])
	if err != nil {
		return err
	}
	if n <= 0 {
		return ctx.NewError(object.TypeError, "identity dimension must be positive")
	}
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		out[i][i] = 1
	}
	return matrixObject(out)
}

func nativeMatrixShape(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "shape", 1, args); err != nil {
		return err
	}
	m, err := matrixArg(ctx, "shape", args[0])
	if err != nil {
		return err
	}
	return &object.Array{Elements: []object.Object{
		&object.Number{Value: float64(len(m))},
		&object.Number{Value: float64(len(m[0]))},
	}}
}

func matrixElementwise(name string, fn func(a, b float64) float64) object.BuiltinFunction {
	return func(ctx object.CallContext, args ...object.Object) object.Object {
		if err := wantArgs(ctx, name, 2, args); err != nil {
			return err
		}
		a, err := matrixArg(ctx, name, args[0])
		if err != nil {
			return err
		}
		b, err := matrixArg(ctx, name, args[1])
		if err != nil {
			return err
		}
		if len(a) != len(b) || len(a[0]) != len(b[0]) {
			return ctx.NewError(object.TypeError,
				"%s requires matching shapes, got %dx%d and %dx%d",
				name, len(a), len(a[0]), len(b), len(b[0]))
		}
		out := make([][]float64, len(a))
		for i := range a {
			out[i] = make([]float64, len(a[i]))
			for j := range a[i] {
				out[i][j] = fn(a[i][j], b[i][j])
			}
		}
		return matrixObject(out)
	}
}

func nativeMatrixScale(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "scale", 2, args); err != nil {
		return err
	}
	m, err := matrixArg(ctx, "scale", args[0])
	if err != nil {
		return err
	}
	factor, err := argNumber(ctx, "scale", args[1])
	if err != nil {
		return err
	}
	out := make([][]float64, len(m))
	for i := range m {
		out[i] = make([]float64, len(m[i]))
		for j := range m[i] {
			out[i][j] = m[i][j] * factor
		}
	}
	return matrixObject(out)
}

func nativeMatrixMul(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "mul", 2, args); err != nil {
		return err
	}
	a, err := matrixArg(ctx, "mul", args[0])
	if err != nil {
		return err
	}
	b, err := matrixArg(ctx, "mul", args[1])
	if err != nil {
		return err
	}
	if len(a[0]) != len(b) {
		return ctx.NewError(object.TypeError,
			"mul requires inner dimensions to match, got %dx%d and %dx%d",
			len(a), len(a[0]), len(b), len(b[0]))
	}
	out := make([][]float64, len(a))
	for i := range a {
		out[i] = make([]float64, len(b[0]))
		for j := range b[0] {
			acc := 0.0
			for k := range b {
				acc += a[i][k] * b[k][j]
			}
			out[i][j] = acc
		}
	}
	return matrixObject(out)
}

func nativeMatrixTranspose(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "transpose", 1, args); err != nil {
		return err
	}
	m, err := matrixArg(ctx, "transpose", args[0])
	if err != nil {
		return err
	}
	out := make([][]float64, len(m[0]))
	for j := range m[0] {
		out[j] = make([]float64, len(m))
		for i := range m {
			out[j][i] = m[i][j]
		}
	}
	return matrixObject(out)
}

func nativeMatrixDot(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "dot", 2, args); err != nil {
		return err
	}
	a, err := numericSlice(ctx, "dot", args[0])
	if err != nil {
		return err
	}
	b, err := numericSlice(ctx, "dot", args[1])
	if err != nil {
		return err
	}
	if len(a) != len(b) {
		return ctx.NewError(object.TypeError,
			"dot requires vectors of equal length, got %d and %d", len(a), len(b))
	}
	acc := 0.0
	for i := range a {
		acc += a[i] * b[i]
	}
	return &object.Number{Value: acc}
}

func nativeMatrixNorm(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "norm", 1, args); err != nil {
		return err
	}
	v, err := numericSlice(ctx, "norm", args[0])
	if err != nil {
		return err
	}
	acc := 0.0
	for _, x := range v {
		acc += x * x
	}
	return &object.Number{Value: math.Sqrt(acc)}
}
