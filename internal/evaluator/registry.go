package evaluator

import (
	"newt/internal/object"
)

// registerModules populates the builtin module table. Modules become
// visible to programs only through an import statement.
func (e *Evaluator) registerModules() {
	for _, m := range []*object.Module{
		arrayModule(),
		stringsModule(),
		mathModule(),
		statModule(),
		matrixModule(),
		pathModule(),
		fsModule(),
		dbModule(),
	} {
		e.modules[m.Name] = m
	}
}

// ModuleNames reports the registered builtin modules, for the repl's
// :modules command.
func (e *Evaluator) ModuleNames() []string {
	names := make([]string, 0, len(e.modules))
	for name := range e.modules {
		names = append(names, name)
	}
	return names
}

func mod(name string, ops map[string]object.BuiltinFunction) *object.Module {
	m := &object.Module{Name: name, Ops: make(map[string]*object.Builtin, len(ops))}
	for opName, fn := range ops {
		m.Ops[opName] = &object.Builtin{Name: name + "." + opName, Fn: fn}
	}
	return m
}
