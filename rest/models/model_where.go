package models

import "github.com/spcommon/caml-data-apis/types"

// WhereRequest carries the expression to compile. A missing or null expression compiles to an
// empty Where clause.
type WhereRequest struct {
	Expression *types.ExpressionInput `json:"expression"`
}
