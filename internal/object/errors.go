package object

import "fmt"

// ErrorKind names the runtime error taxonomy. Control-flow signals
// (return/break/continue) are not errors and live as their own Object kinds;
// ControlFlowError reports the one case where a signal escapes every valid
// boundary (break/continue outside any loop).
type ErrorKind string

const (
	NameError                 ErrorKind = "NameError"
	RedeclarationError        ErrorKind = "RedeclarationError"
	ImmutableAssignmentError  ErrorKind = "ImmutableAssignmentError"
	TypeError                 ErrorKind = "TypeError"
	DivisionByZeroError       ErrorKind = "DivisionByZeroError"
	IndexOutOfBoundsError     ErrorKind = "IndexOutOfBoundsError"
	ArityMismatchError        ErrorKind = "ArityMismatchError"
	MemberNotFoundError       ErrorKind = "MemberNotFoundError"
	ModuleMemberNotFoundError ErrorKind = "ModuleMemberNotFoundError"
	ControlFlowError          ErrorKind = "ControlFlowError"

	// IOError covers host-side failures surfaced by the fs and db modules.
	IOError ErrorKind = "IOError"
)

// Error is a runtime error value. It propagates up through nested evaluation
// until the script or REPL boundary reports it; no evaluation boundary other
// than those may swallow it.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string  { return string(e.Kind) + ": " + e.Message }

func NewError(kind ErrorKind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

// IsError reports whether obj is a runtime error (not a control-flow signal).
func IsError(obj Object) bool {
	if obj != nil {
		return obj.Type() == ERROR_OBJ
	}
	return false
}
