package evaluator

import (
	"math"
	"sort"

	"newt/internal/object"
)

func statModule() *object.Module {
	return mod("stat", map[string]object.BuiltinFunction{
		"sum":      nativeStatSum,
		"mean":     nativeStatMean,
		"median":   nativeStatMedian,
		"min":      nativeStatMin,
		"max":      nativeStatMax,
		"variance": nativeStatVariance,
		"stdev":    nativeStatStdev,
	})
}

// numericSlice extracts a []float64 from an array argument. Empty arrays
// are rejected by the ops that have no defined result for them.
func numericSlice(ctx object.CallContext, name string, arg object.Object) ([]float64, *object.Error) {
	arr, err := argArray(ctx, name, arg)
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(arr.Elements))
	for i, el := range arr.Elements {
		v, err := argNumber(ctx, name, el)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

func variance(values []float64) float64 {
	mean := sum(values) / float64(len(values))
	acc := 0.0
	for _, v := range values {
		d := v - mean
		acc += d * d
	}
	return acc / float64(len(values))
}

func nativeStatSum(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "sum", 1, args); err != nil {
		return err
	}
	values, err := numericSlice(ctx, "sum", args[0])
	if err != nil {
		return err
	}
	return &object.Number{Value: sum(values)}
}

func nativeStatMean(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "mean", 1, args); err != nil {
		return err
	}
	values, err := numericSlice(ctx, "mean", args[0])
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return ctx.NewError(object.TypeError, "mean of empty array")
	}
	return &object.Number{Value: sum(values) / float64(len(values))}
}

func nativeStatMedian(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "median", 1, args); err != nil {
		return err
	}
	values, err := numericSlice(ctx, "median", args[0])
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return ctx.NewError(object.TypeError, "median of empty array")
	}
	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return &object.Number{Value: values[mid]}
	}
	return &object.Number{Value: (values[mid-1] + values[mid]) / 2}
}

func nativeStatMin(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "min", 1, args); err != nil {
		return err
	}
	values, err := numericSlice(ctx, "min", args[0])
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return ctx.NewError(object.TypeError, "min of empty array")
	}
	low := values[0]
	for _, v := range values[1:] {
		low = math.Min(low, v)
	}
	return &object.Number{Value: low}
}

func nativeStatMax(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "max", 1, args); err != nil {
		return err
	}
	values, err := numericSlice(ctx, "max", args[0])
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return ctx.NewError(object.TypeError, "max of empty array")
	}
	high := values[0]
	for _, v := range values[1:] {
		high = math.Max(high, v)
	}
	return &object.Number{Value: high}
}

func nativeStatVariance(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "variance", 1, args); err != nil {
		return err
	}
	values, err := numericSlice(ctx, "variance", args[0])
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return ctx.NewError(object.TypeError, "variance of empty array")
	}
	return &object.Number{Value: variance(values)}
}

func nativeStatStdev(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "stdev", 1, args); err != nil {
		return err
	}
	values, err := numericSlice(ctx, "stdev", args[0])
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return ctx.NewError(object.TypeError, "stdev of empty array")
	}
	return &object.Number{Value: math.Sqrt(variance(values))}
}
