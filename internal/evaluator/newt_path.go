package evaluator

import (
	"path/filepath"

	"newt/internal/object"
)

func pathModule() *object.Module {
	return mod("path", map[string]object.BuiltinFunction{
		"join": nativePathJoin,
		"base": pathUnary("base", filepath.Base),
		"dir":  pathUnary("dir", filepath.Dir),
		"ext":  pathUnary("ext", filepath.Ext),
	})
}

func pathUnary(name string, fn func(string) string) object.BuiltinFunction {
	return func(ctx object.CallContext, args ...object.Object) object.Object {
		if err := wantArgs(ctx, name, 1, args); err != nil {
			return err
		}
		p, err := argString(ctx, name, args[0])
		if err != nil {
			return err
		}
		return &object.String{Value: fn(p)}
	}
}

func nativePathJoin(ctx object.CallContext, args ...object.Object) object.Object {
	if len(args) == 0 {
		return ctx.NewError(object.ArityMismatchError, "join expects at least 1 argument, got 0")
	}
	parts := make([]string, len(args))
	for i, arg := range args {
		p, err := argString(ctx, "join", arg)
		if err != nil {
			return err
		}
		parts[i] = p
	}
	return &object.String{Value: filepath.Join(parts...)}
}
