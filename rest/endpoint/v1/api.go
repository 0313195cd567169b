package endpoint

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/spcommon/caml-data-apis/caml"
	"github.com/spcommon/caml-data-apis/config"
	"github.com/spcommon/caml-data-apis/log"
	e "github.com/spcommon/caml-data-apis/rest/errors"
	m "github.com/spcommon/caml-data-apis/rest/models"
	"github.com/spcommon/caml-data-apis/types"
)

var (
	inputValidator *validator.Validate
	trans          ut.Translator
)

func init() {
	inputValidator = validator.New()
	inputValidator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	uni := ut.New(en.New(), en.New())
	trans, _ = uni.GetTranslator("en")

	_ = enTranslations.RegisterDefaultTranslations(inputValidator, trans)

	_ = inputValidator.RegisterTranslation("required", trans, func(ut ut.Translator) error {
		return ut.Add("required", "{0} is a required field", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		translator, _ := ut.T("required", fe.Field())
		return translator
	})
}

type routeList struct {
	logger    log.Logger
	naming    config.NamingConvention
	supported *config.SupportedOperators
}

type compileFunc func(expr caml.Expression) (string, error)

// Where compiles the request expression wrapped in the Where envelope
func (s *routeList) Where(w http.ResponseWriter, r *http.Request) {
	s.compile(w, r, caml.ToQueryString)
}

// Compile compiles the request expression without the envelope
func (s *routeList) Compile(w http.ResponseWriter, r *http.Request) {
	s.compile(w, r, caml.Compile)
}

func (s *routeList) GetOperators(w http.ResponseWriter, r *http.Request) {
	result := types.OperatorsResult{
		Operators:  s.supported.Load().Names(),
		Conditions: make([]string, 0, len(caml.Conditions)),
	}
	for _, c := range caml.Conditions {
		result.Conditions = append(result.Conditions, c.String())
	}

	RespondJSONObjectWithCode(w, http.StatusOK, result)
}

func (s *routeList) compile(w http.ResponseWriter, r *http.Request, fn compileFunc) {
	var request m.WhereRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil && err != io.EOF {
			RespondWithError(w, errors.New("request body is invalid"), http.StatusBadRequest)
			return
		}
	}

	if err := inputValidator.Struct(request); err != nil {
		RespondWithError(w, e.TranslateValidatorError(err, trans), http.StatusBadRequest)
		return
	}

	expr, err := request.Expression.ToExpression(s.naming, s.supported.Load())
	if err != nil {
		RespondWithError(w, err, e.StatusCode(err))
		return
	}

	query, err := fn(expr)
	if err != nil {
		s.logger.Error("unable to compile expression", "expression", expr, "error", err)
		RespondWithError(w, errors.New("unable to compile expression"), e.StatusCode(err))
		return
	}

	RespondJSONObjectWithCode(w, http.StatusOK, types.WhereResult{Query: query})
}
