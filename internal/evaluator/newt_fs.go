package evaluator

import (
	"os"
	"sort"

	"newt/internal/object"
)

func fsModule() *object.Module {
	return mod("fs", map[string]object.BuiltinFunction{
		"readFile":   nativeFsReadFile,
		"writeFile":  nativeFsWriteFile,
		"appendFile": nativeFsAppendFile,
		"exists":     nativeFsExists,
		"listDir":    nativeFsListDir,
		"remove":     nativeFsRemove,
		"mkdir":      nativeFsMkdir,
	})
}

func nativeFsReadFile(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "readFile", 1, args); err != nil {
		return err
	}
	path, err := argString(ctx, "readFile", args[0])
	if err != nil {
		return err
	}
	data, rerr := os.ReadFile(path)
	if rerr != nil {
		return ctx.NewError(object.IOError, "readFile: %v", rerr)
	}
	return &object.String{Value: string(data)}
}

func nativeFsWriteFile(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "writeFile", 2, args); err != nil {
		return err
	}
	path, err := argString(ctx, "writeFile", args[0])
	if err != nil {
		return err
	}
	content, err := argString(ctx, "writeFile", args[1])
	if err != nil {
		return err
	}
	if werr := os.WriteFile(path, []byte(content), 0644); werr != nil {
		return ctx.NewError(object.IOError, "writeFile: %v", werr)
	}
	return NIL
}

func nativeFsAppendFile(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "appendFile", 2, args); err != nil {
		return err
	}
	path, err := argString(ctx, "appendFile", args[0])
	if err != nil {
		return err
	}
	content, err := argString(ctx, "appendFile", args[1])
	if err != nil {
		return err
	}
	f, oerr := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if oerr != nil {
		return ctx.NewError(object.IOError, "appendFile: %v", oerr)
	}
	defer f.Close()
	if _, werr := f.WriteString(content); werr != nil {
		return ctx.NewError(object.IOError, "appendFile: %v", werr)
	}
	return NIL
}

func nativeFsExists(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "exists", 1, args); err != nil {
		return err
	}
	path, err := argString(ctx, "exists", args[0])
	if err != nil {
		return err
	}
	if _, serr := os.Stat(path); serr != nil {
		return FALSE
	}
	return TRUE
}

func nativeFsListDir(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "listDir", 1, args); err != nil {
		return err
	}
	path, err := argString(ctx, "listDir", args[0])
	if err != nil {
		return err
	}
	entries, rerr := os.ReadDir(path)
	if rerr != nil {
		return ctx.NewError(object.IOError, "listDir: %v", rerr)
	}
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}
	sort.Strings(names)
	elements := make([]object.Object, len(names))
	for i, name := range names {
		elements[i] = &object.String{Value: name}
	}
	return &object.Array{Elements: elements}
}

func nativeFsRemove(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "remove", 1, args); err != nil {
		return err
	}
	path, err := argString(ctx, "remove", args[0])
	if err != nil {
		return err
	}
	if rerr := os.Remove(path); rerr != nil {
		return ctx.NewError(object.IOError, "remove: %v", rerr)
	}
	return NIL
}

func nativeFsMkdir(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "mkdir", 1, args); err != nil {
		return err
	}
	path, err := argString(ctx, "mkdir", args[0])
	if err != nil {
		return err
	}
	if merr := os.MkdirAll(path, 0755); merr != nil {
		return ctx.NewError(object.IOError, "mkdir: %v", merr)
	}
	return NIL
}
