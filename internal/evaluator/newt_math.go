package evaluator

import (
	"math"

	"newt/internal/object"
)

func mathModule() *object.Module {
	return mod("math", map[string]object.BuiltinFunction{
		"abs":   mathUnary("abs", math.Abs),
		"floor": mathUnary("floor", math.Floor),
		"ceil":  mathUnary("ceil", math.Ceil),
		"round": mathUnary("round", math.Round),
		"sqrt":  nativeMathSqrt,
		"pow":   mathBinary("pow", math.Pow),
		"min":   mathBinary("min", math.Min),
		"max":   mathBinary("max", math.Max),
		"pi":    nativeMathPi,
	})
}

func mathUnary(name string, fn func(float64) float64) object.BuiltinFunction {
	return func(ctx object.CallContext, args ...object.Object) object.Object {
		if err := wantArgs(ctx, name, 1, args); err != nil {
			return err
		}
		v, err := argNumber(ctx, name, args[0])
		if err != nil {
			return err
		}
		return &object.Number{Value: fn(v)}
	}
}

func mathBinary(name string, fn func(float64, float64) float64) object.BuiltinFunction {
	return func(ctx object.CallContext, args ...object.Object) object.Object {
		if err := wantArgs(ctx, name, 2, args); err != nil {
			return err
		}
		a, err := argNumber(ctx, name, args[0])
		if err != nil {
			return err
		}
		b, err := argNumber(ctx, name, args[1])
		if err != nil {
			return err
		}
		return &object.Number{Value: fn(a, b)}
	}
}

func nativeMathSqrt(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "sqrt", 1, args); err != nil {
		return err
	}
	v, err := argNumber(ctx, "sqrt", args[0])
	if err != nil {
		return err
	}
	if v < 0 {
		return ctx.NewError(object.TypeError, "sqrt of negative number")
	}
	return &object.Number{Value: math.Sqrt(v)}
}

func nativeMathPi(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "pi", 0, args); err != nil {
		return err
	}
	return &object.Number{Value: math.Pi}
}
