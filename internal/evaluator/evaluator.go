package evaluator

import (
	"io"
	"math"
	"newt/internal/ast"
	"newt/internal/object"
	"os"
)

var (
	NIL   = object.NIL
	TRUE  = object.TRUE
	FALSE = object.FALSE
)

// Evaluator executes AST nodes against an environment. The output sink and
// the builtin module registry are instance state so embedders and tests can
// run isolated evaluators; there are no package-level mutables.
type Evaluator struct {
	out     io.Writer
	modules map[string]*object.Module
	globals map[string]*object.Builtin
}

func New(out io.Writer) *Evaluator {
	if out == nil {
		out = os.Stdout
	}
	e := &Evaluator{
		out:     out,
		modules: make(map[string]*object.Module),
	}
	e.globals = globalBuiltins()
	e.registerModules()
	return e
}

// Out implements object.CallContext for native operations.
func (e *Evaluator) Out() io.Writer { return e.out }

// NewError implements object.CallContext.
func (e *Evaluator) NewError(kind object.ErrorKind, format string, a ...interface{}) *object.Error {
	return object.NewError(kind, format, a...)
}

func newError(kind object.ErrorKind, format string, a ...interface{}) *object.Error {
	return object.NewError(kind, format, a...)
}

func isError(obj object.Object) bool {
	return object.IsError(obj)
}

func nativeBoolToBooleanObject(input bool) *object.Boolean {
	if input {
		return TRUE
	}
	return FALSE
}

func (e *Evaluator) Eval(node ast.Node, env *object.Environment) object.Object {
	switch node := node.(type) {

	// Statements
	case *ast.Program:
		return e.evalProgram(node, env)

	case *ast.BlockStatement:
		return e.evalBlockStatement(node, env)

	case *ast.ExpressionStatement:
		return e.Eval(node.Expression, env)

	case *ast.LetStatement:
		return e.evalDeclaration(node.Name, node.Value, true, env)

	case *ast.ConstStatement:
		return e.evalDeclaration(node.Name, node.Value, false, env)

	case *ast.FunctionStatement:
		fn := &object.Function{
			Name:       node.Name.Value,
			Parameters: node.Function.Parameters,
			Body:       node.Function.Body,
			Env:        env,
		}
		if err := env.Define(node.Name.Value, fn, false); err != nil {
			return err
		}
		return NIL

	case *ast.StructStatement:
		return e.evalStructStatement(node, env)

	case *ast.ImportStatement:
		return e.evalImportStatement(node, env)

	case *ast.ReturnStatement:
		val := object.Object(NIL)
		if node.ReturnValue != nil {
			val = e.Eval(node.ReturnValue, env)
			if isError(val) {
				return val
			}
		}
		return &object.ReturnValue{Value: val}

	case *ast.BreakStatement:
		return object.BREAK

	case *ast.ContinueStatement:
		return object.CONTINUE

	case *ast.WhileStatement:
		return e.evalWhileStatement(node, env)

	case *ast.ForStatement:
		return e.evalForStatement(node, env)

	// Expressions
	case *ast.NumberLiteral:
		return &object.Number{Value: node.Value}

	case *ast.StringLiteral:
		return &object.String{Value: node.Value}

	case *ast.Boolean:
		return nativeBoolToBooleanObject(node.Value)

	case *ast.Nil:
		return NIL

	case *ast.Identifier:
		return e.evalIdentifier(node, env)

	case *ast.PrefixExpression:
		right := e.Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return e.evalPrefixExpression(node.Operator, right)

	case *ast.InfixExpression:
		return e.evalInfixExpression(node, env)

	case *ast.AssignExpression:
		return e.evalAssignExpression(node, env)

	case *ast.IfExpression:
		return e.evalIfExpression(node, env)

	case *ast.FunctionLiteral:
		return &object.Function{
			Parameters: node.Parameters,
			Body:       node.Body,
			Env:        env,
		}

	case *ast.CallExpression:
		return e.evalCallExpression(node, env)

	case *ast.NewExpression:
		return e.evalNewExpression(node, env)

	case *ast.MemberExpression:
		return e.evalMemberExpression(node, env)

	case *ast.ArrayLiteral:
		elements := e.evalExpressions(node.Elements, env)
		if len(elements) == 1 && isError(elements[0]) {
			return elements[0]
		}
		for i, el := range elements {
			elements[i] = object.Copy(el)
		}
		return &object.Array{Elements: elements}

	case *ast.IndexExpression:
		left := e.Eval(node.Left, env)
		if isError(left) {
			return left
		}
		index := e.Eval(node.Index, env)
		if isError(index) {
			return index
		}
		return e.evalIndexExpression(left, index)
	}

	return NIL
}

func (e *Evaluator) evalProgram(program *ast.Program, env *object.Environment) object.Object {
	var result object.Object = NIL

	for _, statement := range program.Statements {
		result = e.Eval(statement, env)

		switch result := result.(type) {
		case *object.ReturnValue:
			return result.Value
		case *object.BreakSignal:
			return newError(object.ControlFlowError, "break outside loop")
		case *object.ContinueSignal:
			return newError(object.ControlFlowError, "continue outside loop")
		case *object.Error:
			return result
		}
	}

	return result
}

// evalBlockStatement runs statements in a fresh child scope. Control-flow
// signals and errors bubble out untouched; the block's value is the value of
// its last statement.
func (e *Evaluator) evalBlockStatement(block *ast.BlockStatement, env *object.Environment) object.Object {
	blockEnv := object.NewEnclosedEnvironment(env)

	var result object.Object = NIL

	for _, statement := range block.Statements {
		result = e.Eval(statement, blockEnv)

		if result != nil {
			rt := result.Type()
			if rt == object.RETURN_VALUE_OBJ || rt == object.BREAK_OBJ ||
				rt == object.CONTINUE_OBJ || rt == object.ERROR_OBJ {
				return result
			}
		}
	}

	return result
}

func (e *Evaluator) evalDeclaration(name *ast.Identifier, value ast.Expression, mutable bool, env *object.Environment) object.Object {
	val := e.Eval(value, env)
	if isError(val) {
		return val
	}
	if fn, ok := val.(*object.Function); ok && fn.Name == "" {
		fn.Name = name.Value
	}
	if err := env.Define(name.Value, object.Copy(val), mutable); err != nil {
		return err
	}
	return NIL
}

func (e *Evaluator) evalStructStatement(node *ast.StructStatement, env *object.Environment) object.Object {
	typ := &object.StructType{
		Name:    node.Name.Value,
		Methods: make(map[string]*object.Function),
		Env:     env,
	}
	for _, f := range node.Fields {
		typ.Fields = append(typ.Fields, object.StructFieldDef{
			Name:    f.Name.Value,
			Default: f.Default,
		})
	}
	for _, m := range node.Methods {
		typ.Methods[m.Name.Value] = &object.Function{
			Name:       m.Name.Value,
			Parameters: m.Function.Parameters,
			Body:       m.Function.Body,
			Env:        env,
		}
	}
	if err := env.Define(node.Name.Value, typ, false); err != nil {
		return err
	}
	return NIL
}

func (e *Evaluator) evalImportStatement(node *ast.ImportStatement, env *object.Environment) object.Object {
	module, ok := e.modules[node.Name.Value]
	if !ok {
		return newError(object.NameError, "module not found: %s", node.Name.Value)
	}
	if err := env.Define(node.Name.Value, module, false); err != nil {
		return err
	}
	return NIL
}

func (e *Evaluator) evalIdentifier(node *ast.Identifier, env *object.Environment) object.Object {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	if builtin, ok := e.globals[node.Value]; ok {
		return builtin
	}
	return newError(object.NameError, "identifier not found: %s", node.Value)
}

func (e *Evaluator) evalPrefixExpression(operator string, right object.Object) object.Object {
	switch operator {
	case "!":
		return nativeBoolToBooleanObject(!object.IsTruthy(right))
	case "-":
		if num, ok := object.Unwrap(right).(*object.Number); ok {
			return &object.Number{Value: -num.Value}
		}
		return newError(object.TypeError, "unknown operator: -%s", right.Type())
	default:
		return newError(object.TypeError, "unknown operator: %s%s", operator, right.Type())
	}
}

func (e *Evaluator) evalInfixExpression(node *ast.InfixExpression, env *object.Environment) object.Object {
	// && and || short-circuit on the coerced truthiness of the left side
	if node.Operator == "&&" || node.Operator == "||" {
		left := e.Eval(node.Left, env)
		if isError(left) {
			return left
		}
		truthy := object.IsTruthy(left)
		if node.Operator == "&&" && !truthy {
			return FALSE
		}
		if node.Operator == "||" && truthy {
			return TRUE
		}
		right := e.Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return nativeBoolToBooleanObject(object.IsTruthy(right))
	}

	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}
	right := e.Eval(node.Right, env)
	if isError(right) {
		return right
	}

	return e.evalBinaryOperator(node.Operator, left, right)
}

func (e *Evaluator) evalBinaryOperator(operator string, left, right object.Object) object.Object {
	if operator == "==" || operator == "!=" {
		eq := e.objectsEqual(left, right)
		if isError(eq) {
			return eq
		}
		if operator == "!=" {
			return nativeBoolToBooleanObject(!eq.(*object.Boolean).Value)
		}
		return eq
	}

	// read sites dereference transparently
	left = object.Unwrap(left)
	right = object.Unwrap(right)

	switch {
	case left.Type() == object.NUMBER_OBJ && right.Type() == object.NUMBER_OBJ:
		return e.evalNumberInfixExpression(operator, left.(*object.Number), right.(*object.Number))
	case left.Type() == object.STRING_OBJ && right.Type() == object.STRING_OBJ:
		return e.evalStringInfixExpression(operator, left.(*object.String), right.(*object.String))
	case operator == "+" && left.Type() == object.ARRAY_OBJ && right.Type() == object.ARRAY_OBJ:
		l := left.(*object.Array)
		r := right.(*object.Array)
		elements := make([]object.Object, 0, len(l.Elements)+len(r.Elements))
		for _, el := range l.Elements {
			elements = append(elements, object.Copy(el))
		}
		for _, el := range r.Elements {
			elements = append(elements, object.Copy(el))
		}
		return &object.Array{Elements: elements}
	case left.Type() != right.Type():
		return newError(object.TypeError, "type mismatch: %s %s %s", left.Type(), operator, right.Type())
	default:
		return newError(object.TypeError, "unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

func (e *Evaluator) evalNumberInfixExpression(operator string, left, right *object.Number) object.Object {
	switch operator {
	case "+":
		return &object.Number{Value: left.Value + right.Value}
	case "-":
		return &object.Number{Value: left.Value - right.Value}
	case "*":
		return &object.Number{Value: left.Value * right.Value}
	case "/":
		if right.Value == 0 {
			return newError(object.DivisionByZeroError, "division by zero")
		}
		return &object.Number{Value: left.Value / right.Value}
	case "%":
		if right.Value == 0 {
			return newError(object.DivisionByZeroError, "modulo by zero")
		}
		return &object.Number{Value: math.Mod(left.Value, right.Value)}
	case "<":
		return nativeBoolToBooleanObject(left.Value < right.Value)
	case "<=":
		return nativeBoolToBooleanObject(left.Value <= right.Value)
	case ">":
		return nativeBoolToBooleanObject(left.Value > right.Value)
	case ">=":
		return nativeBoolToBooleanObject(left.Value >= right.Value)
	default:
		return newError(object.TypeError, "unknown operator: NUMBER %s NUMBER", operator)
	}
}

func (e *Evaluator) evalStringInfixExpression(operator string, left, right *object.String) object.Object {
	switch operator {
	case "+":
		return &object.String{Value: left.Value + right.Value}
	case "<":
		return nativeBoolToBooleanObject(left.Value < right.Value)
	case "<=":
		return nativeBoolToBooleanObject(left.Value <= right.Value)
	case ">":
		return nativeBoolToBooleanObject(left.Value > right.Value)
	case ">=":
		return nativeBoolToBooleanObject(left.Value >= right.Value)
	default:
		return newError(object.TypeError, "unknown operator: STRING %s STRING", operator)
	}
}

// objectsEqual applies structural equality, delegating to a user-defined
// `equals` method when a struct instance's type declares one.
func (e *Evaluator) objectsEqual(left, right object.Object) object.Object {
	l := object.Unwrap(left)
	r := object.Unwrap(right)

	if inst, ok := l.(*object.StructInstance); ok {
		if method, ok := inst.TypeDef.Method("equals"); ok {
			result := e.applyMethod(inst, method, []object.Object{r})
			if isError(result) {
				return result
			}
			return nativeBoolToBooleanObject(object.IsTruthy(result))
		}
	}
	if inst, ok := r.(*object.StructInstance); ok {
		if method, ok := inst.TypeDef.Method("equals"); ok {
			result := e.applyMethod(inst, method, []object.Object{l})
			if isError(result) {
				return result
			}
			return nativeBoolToBooleanObject(object.IsTruthy(result))
		}
	}

	return nativeBoolToBooleanObject(object.Equals(l, r))
}

func (e *Evaluator) evalIfExpression(ie *ast.IfExpression, env *object.Environment) object.Object {
	condition := e.Eval(ie.Condition, env)
	if isError(condition) {
		return condition
	}

	if object.IsTruthy(condition) {
		return e.Eval(ie.ThenBranch, env)
	} else if ie.ElseBranch != nil {
		return e.Eval(ie.ElseBranch, env)
	}
	return NIL
}

func (e *Evaluator) evalWhileStatement(ws *ast.WhileStatement, env *object.Environment) object.Object {
	for {
		condition := e.Eval(ws.Condition, env)
		if isError(condition) {
			return condition
		}
		if !object.IsTruthy(condition) {
			break
		}

		result := e.Eval(ws.Body, env)
		if result != nil {
			switch result.Type() {
			case object.BREAK_OBJ:
				return NIL
			case object.CONTINUE_OBJ:
				continue
			case object.RETURN_VALUE_OBJ, object.ERROR_OBJ:
				return result
			}
		}
	}
	return NIL
}

func (e *Evaluator) evalForStatement(fs *ast.ForStatement, env *object.Environment) object.Object {
	iterable := e.Eval(fs.Iterable, env)
	if isError(iterable) {
		return iterable
	}

	arr, ok := object.Unwrap(iterable).(*object.Array)
	if !ok {
		return newError(object.TypeError, "for loop requires an array, got %s", iterable.Type())
	}

	for i, element := range arr.Elements {
		// fresh scope per iteration
		iterEnv := object.NewEnclosedEnvironment(env)
		if err := iterEnv.Define(fs.Value.Value, object.Copy(element), false); err != nil {
			return err
		}
		if fs.Index != nil {
			if err := iterEnv.Define(fs.Index.Value, &object.Number{Value: float64(i)}, false); err != nil {
				return err
			}
		}

		result := e.Eval(fs.Body, iterEnv)
		if result != nil {
			switch result.Type() {
			case object.BREAK_OBJ:
				return NIL
			case object.CONTINUE_OBJ:
				continue
			case object.RETURN_VALUE_OBJ, object.ERROR_OBJ:
				return result
			}
		}
	}
	return NIL
}

func (e *Evaluator) evalExpressions(exps []ast.Expression, env *object.Environment) []object.Object {
	var result []object.Object

	for _, exp := range exps {
		evaluated := e.Eval(exp, env)
		if isError(evaluated) {
			return []object.Object{evaluated}
		}
		result = append(result, evaluated)
	}

	return result
}

func (e *Evaluator) evalCallExpression(node *ast.CallExpression, env *object.Environment) object.Object {
	// module.op(...) and instance.method(...) dispatch through the member
	// table; the receiver binding is established here, per call
	if member, ok := node.Function.(*ast.MemberExpression); ok {
		obj := e.Eval(member.Object, env)
		if isError(obj) {
			return obj
		}

		switch target := object.Unwrap(obj).(type) {
		case *object.Module:
			op, ok := target.Op(member.Member.Value)
			if !ok {
				return newError(object.ModuleMemberNotFoundError,
					"module '%s' has no member '%s'", target.Name, member.Member.Value)
			}
			args := e.evalCallArguments(node.Arguments, env)
			if len(args) == 1 && isError(args[0]) {
				return args[0]
			}
			return op.Fn(e, args...)

		case *object.StructInstance:
			method, ok := target.TypeDef.Method(member.Member.Value)
			if !ok {
				// a field may hold a callable value
				if field, ok := target.Fields[member.Member.Value]; ok {
					args := e.evalCallArguments(node.Arguments, env)
					if len(args) == 1 && isError(args[0]) {
						return args[0]
					}
					return e.applyFunction(field, args)
				}
				return newError(object.MemberNotFoundError,
					"%s has no method '%s'", target.TypeDef.Name, member.Member.Value)
			}
			args := e.evalCallArguments(node.Arguments, env)
			if len(args) == 1 && isError(args[0]) {
				return args[0]
			}
			return e.applyMethod(target, method, args)

		default:
			return newError(object.TypeError, "member access not supported on %s", obj.Type())
		}
	}

	function := e.Eval(node.Function, env)
	if isError(function) {
		return function
	}

	args := e.evalCallArguments(node.Arguments, env)
	if len(args) == 1 && isError(args[0]) {
		return args[0]
	}

	return e.applyFunction(function, args)
}

// evalCallArguments evaluates arguments and applies value semantics: plain
// values are duplicated, Reference handles are copied and keep their cell.
func (e *Evaluator) evalCallArguments(exps []ast.Expression, env *object.Environment) []object.Object {
	args := e.evalExpressions(exps, env)
	if len(args) == 1 && isError(args[0]) {
		return args
	}
	for i, arg := range args {
		args[i] = object.Copy(arg)
	}
	return args
}

func (e *Evaluator) applyFunction(fnObj object.Object, args []object.Object) object.Object {
	switch fn := fnObj.(type) {
	case *object.Function:
		if len(args) != len(fn.Parameters) {
			return newError(object.ArityMismatchError,
				"%s expects %d arguments, got %d", functionName(fn), len(fn.Parameters), len(args))
		}

		env := object.NewEnclosedEnvironment(fn.Env)
		for i, param := range fn.Parameters {
			if err := env.Define(param.Value, args[i], true); err != nil {
				return err
			}
		}

		return e.unwrapCallResult(e.Eval(fn.Body, env))

	case *object.Builtin:
		return fn.Fn(e, args...)

	default:
		return newError(object.TypeError, "not a function: %s", fnObj.Type())
	}
}

// applyMethod invokes fn with `this` bound to the instance. The receiver
// binding is per call, not part of the captured closure environment, so one
// method body serves every instance.
func (e *Evaluator) applyMethod(instance *object.StructInstance, fn *object.Function, args []object.Object) object.Object {
	if len(args) != len(fn.Parameters) {
		return newError(object.ArityMismatchError,
			"%s.%s expects %d arguments, got %d",
			instance.TypeDef.Name, fn.Name, len(fn.Parameters), len(args))
	}

	env := object.NewEnclosedEnvironment(fn.Env)
	if err := env.Define("this", instance, false); err != nil {
		return err
	}
	for i, param := range fn.Parameters {
		if err := env.Define(param.Value, args[i], true); err != nil {
			return err
		}
	}

	return e.unwrapCallResult(e.Eval(fn.Body, env))
}

// unwrapCallResult is the call boundary: it catches ReturnValue and nothing
// else. A break/continue escaping a function body has no loop to land in.
func (e *Evaluator) unwrapCallResult(result object.Object) object.Object {
	switch result := result.(type) {
	case *object.ReturnValue:
		return result.Value
	case *object.BreakSignal:
		return newError(object.ControlFlowError, "break outside loop")
	case *object.ContinueSignal:
		return newError(object.ControlFlowError, "continue outside loop")
	default:
		return result
	}
}

func functionName(fn *object.Function) string {
	if fn.Name != "" {
		return fn.Name
	}
	return "function"
}

func (e *Evaluator) evalNewExpression(node *ast.NewExpression, env *object.Environment) object.Object {
	typeObj := e.Eval(node.Type, env)
	if isError(typeObj) {
		return typeObj
	}
	typ, ok := typeObj.(*object.StructType)
	if !ok {
		return newError(object.TypeError, "'new' requires a struct type, got %s", typeObj.Type())
	}

	args := e.evalCallArguments(node.Arguments, env)
	if len(args) == 1 && isError(args[0]) {
		return args[0]
	}

	instance := &object.StructInstance{
		TypeDef: typ,
		Fields:  make(map[string]object.Object, len(typ.Fields)),
	}

	// field defaults are evaluated against the type's defining environment
	for _, field := range typ.Fields {
		if field.Default == nil {
			instance.Fields[field.Name] = NIL
			continue
		}
		val := e.Eval(field.Default, typ.Env)
		if isError(val) {
			return val
		}
		instance.Fields[field.Name] = object.Copy(val)
	}

	if init, ok := typ.Method("init"); ok {
		result := e.applyMethod(instance, init, args)
		if isError(result) {
			return result
		}
		return instance
	}

	if len(args) > len(typ.Fields) {
		return newError(object.ArityMismatchError,
			"%s has %d fields, got %d arguments", typ.Name, len(typ.Fields), len(args))
	}
	for i, arg := range args {
		instance.Fields[typ.Fields[i].Name] = object.Copy(arg)
	}

	return instance
}

func (e *Evaluator) evalMemberExpression(node *ast.MemberExpression, env *object.Environment) object.Object {
	obj := e.Eval(node.Object, env)
	if isError(obj) {
		return obj
	}

	switch target := object.Unwrap(obj).(type) {
	case *object.Module:
		op, ok := target.Op(node.Member.Value)
		if !ok {
			return newError(object.ModuleMemberNotFoundError,
				"module '%s' has no member '%s'", target.Name, node.Member.Value)
		}
		return op

	case *object.StructInstance:
		if val, ok := target.Fields[node.Member.Value]; ok {
			return val
		}
		if method, ok := target.TypeDef.Method(node.Member.Value); ok {
			return method
		}
		return newError(object.MemberNotFoundError,
			"%s has no field or method '%s'", target.TypeDef.Name, node.Member.Value)

	default:
		return newError(object.TypeError, "member access not supported on %s", obj.Type())
	}
}

func (e *Evaluator) evalAssignExpression(node *ast.AssignExpression, env *object.Environment) object.Object {
	val := e.Eval(node.Value, env)
	if isError(val) {
		return val
	}

	switch target := node.Target.(type) {
	case *ast.Identifier:
		if err := env.Assign(target.Value, object.Copy(val)); err != nil {
			return err
		}
		return val

	case *ast.IndexExpression:
		container := e.Eval(target.Left, env)
		if isError(container) {
			return container
		}
		arr, ok := object.Unwrap(container).(*object.Array)
		if !ok {
			return newError(object.TypeError, "index assignment requires an array, got %s", container.Type())
		}
		idx, err := arrayIndex(arr, e.Eval(target.Index, env))
		if err != nil {
			return err
		}
		arr.Elements[idx] = object.Copy(val)
		return val

	case *ast.MemberExpression:
		obj := e.Eval(target.Object, env)
		if isError(obj) {
			return obj
		}
		instance, ok := object.Unwrap(obj).(*object.StructInstance)
		if !ok {
			return newError(object.TypeError, "member assignment not supported on %s", obj.Type())
		}
		if _, ok := instance.Fields[target.Member.Value]; !ok {
			return newError(object.MemberNotFoundError,
				"%s has no field '%s'", instance.TypeDef.Name, target.Member.Value)
		}
		instance.Fields[target.Member.Value] = object.Copy(val)
		return val

	default:
		return newError(object.TypeError, "invalid assignment target")
	}
}

func (e *Evaluator) evalIndexExpression(left, index object.Object) object.Object {
	switch target := object.Unwrap(left).(type) {
	case *object.Array:
		idx, err := arrayIndex(target, index)
		if err != nil {
			return err
		}
		return target.Elements[idx]

	case *object.String:
		i, err := integerIndex(index)
		if err != nil {
			return err
		}
		runes := []rune(target.Value)
		if i < 0 || i >= len(runes) {
			return newError(object.IndexOutOfBoundsError,
				"string index %d out of bounds for length %d", i, len(runes))
		}
		return &object.String{Value: string(runes[i])}

	default:
		return newError(object.TypeError, "index operator not supported on %s", left.Type())
	}
}

// arrayIndex validates an index expression result against an array.
func arrayIndex(arr *object.Array, index object.Object) (int, *object.Error) {
	if object.IsError(index) {
		return 0, index.(*object.Error)
	}
	i, err := integerIndex(index)
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= len(arr.Elements) {
		return 0, newError(object.IndexOutOfBoundsError,
			"index %d out of bounds for length %d", i, len(arr.Elements))
	}
	return i, nil
}

func integerIndex(index object.Object) (int, *object.Error) {
	num, ok := object.Unwrap(index).(*object.Number)
	if !ok {
		return 0, newError(object.TypeError, "index must be a number, got %s", index.Type())
	}
	if num.Value != math.Trunc(num.Value) {
		return 0, newError(object.TypeError, "index must be an integer, got %s", num.Inspect())
	}
	return int(num.Value), nil
}
