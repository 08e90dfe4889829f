package diag

import (
	"fmt"

	"github.com/minicc/minicc/node"
)

// SemanticError wraps one numbered diagnostic with the node that provoked
// it; Unwrap lets tests match against it with errors.Is/errors.As.
type SemanticError struct {
	Node    node.Node
	Code    int
	Line    int
	Wrapped error
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("error %d at line %d: %s", e.Code, e.Line, e.Wrapped)
}

func (e *SemanticError) Unwrap() error {
	return e.Wrapped
}
