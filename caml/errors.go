package caml

import (
	"errors"
	"fmt"
)

// ErrUnsupportedExpression is matched by every *UnsupportedExpressionError
var ErrUnsupportedExpression = errors.New("unsupported expression")

// UnsupportedExpressionError signals an expression the compiler has no rule for. It is a
// programming error, not a data error.
type UnsupportedExpressionError struct {
	Value interface{}
}

func (e *UnsupportedExpressionError) Error() string {
	switch v := e.Value.(type) {
	case Operator:
		return fmt.Sprintf("%s: operator %s", ErrUnsupportedExpression, v)
	case Condition:
		return fmt.Sprintf("%s: condition %s", ErrUnsupportedExpression, v)
	default:
		return fmt.Sprintf("%s: %T", ErrUnsupportedExpression, v)
	}
}

func (e *UnsupportedExpressionError) Is(target error) bool {
	return target == ErrUnsupportedExpression
}
