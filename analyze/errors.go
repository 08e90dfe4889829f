package analyze

import "errors"

// Sentinel errors for every distinct semantic violation the analyzer can
// report. report/reportAt wrap one of these with fmt.Errorf("%w: ...", ...)
// so a caller — chiefly a test — can match a diagnostic with errors.Is
// without depending on its numbered code or formatted message text.
var (
	ErrVarRedefined          = errors.New("variable redefined")
	ErrParamRedefined        = errors.New("parameter redefined")
	ErrRedefinedNotFunction  = errors.New("redefined as a non-function")
	ErrFuncRedefined         = errors.New("function redefined")
	ErrFuncSignatureConflict = errors.New("conflicting declaration")
	ErrFuncNeverDefined      = errors.New("function declared but never defined")

	ErrStructMemberRedefined = errors.New("struct member redefined")
	ErrStructMemberDefault   = errors.New("struct member may not have a default value")
	ErrStructNotDefined      = errors.New("reference to undefined struct")
	ErrStructRedefinedAsKind = errors.New("redefined as a different kind")
	ErrStructRedefined       = errors.New("struct redefined")

	ErrVarNotDeclared = errors.New("undeclared variable")

	ErrLogicOperandType  = errors.New("operand must be int")
	ErrArithOperandType  = errors.New("operand is not arithmetic")
	ErrArithTypeMismatch = errors.New("arithmetic operands differ in type")
	ErrCompareTypes      = errors.New("types for comparison do not match")
	ErrCondNotInt        = errors.New("condition must be int")

	ErrAssignNotLValue    = errors.New("cannot assign to a non-lvalue")
	ErrAssignTypeMismatch = errors.New("assignment type mismatch")
	ErrInitTypeMismatch   = errors.New("initializer type mismatch")
	ErrReturnTypeMismatch = errors.New("return type mismatch")

	ErrFuncallNotFound    = errors.New("call to undeclared function")
	ErrFuncallNotDefined  = errors.New("call to undefined function")
	ErrFuncallNotCallable = errors.New("not a function")
	ErrFuncallArgsAmount  = errors.New("wrong number of arguments")
	ErrFuncallArgType     = errors.New("argument type mismatch")

	ErrArraySubNotArray = errors.New("indexing a non-array")
	ErrArraySubNotInt   = errors.New("array subscript must be int")

	ErrStructNotAccessingStruct = errors.New("member access on non-struct")
	ErrStructFieldNotFound      = errors.New("no such struct member")
)
