package errors

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/spcommon/caml-data-apis/types"
)

// TranslateValidatorError takes an error from the go-playground validator (internally just a map of errors) and converts it
// into a single user friendly error.
func TranslateValidatorError(err error, trans ut.Translator) error {
	switch err.(type) {
	case validator.ValidationErrors:
		errs := (err.(validator.ValidationErrors)).Translate(trans)

		vals := make([]string, 0, len(errs))

		for _, value := range errs {
			vals = append(vals, value)
		}
		sort.Strings(vals)

		return errors.New(strings.Join(vals, " "))
	default:
		return err
	}
}

// StatusCode maps an error produced while compiling a request to its HTTP status. Anything
// other than bad input, including caml.ErrUnsupportedExpression, is a server error.
func StatusCode(err error) int {
	var inputErr *types.InputError
	switch {
	case errors.As(err, &inputErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
