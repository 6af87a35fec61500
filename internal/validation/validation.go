// Package validation binds JSON request bodies and turns binding or
// validation failures into the structured 400 payload returned to clients.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const (
	ErrorMessage = "There is an error"
	TimeLayout   = "2006-01-02 15:04:05"
	BodyField    = "body"
)

var (
	now       = time.Now
	setupOnce sync.Once
)

// ErrorResponse is the body of every 400 produced by BindJSON.
type ErrorResponse struct {
	Msg    string            `json:"msg"`
	Code   int               `json:"code"`
	Time   string            `json:"time"`
	Errors map[string]string `json:"errors"`
}

// Messenger is implemented by payloads that want their own wording for a
// failing field. field is the JSON name, tag the validator tag that failed.
type Messenger interface {
	ValidationMessage(field, tag string) (string, bool)
}

func NewErrorResponse(errs map[string]string) *ErrorResponse {
	return &ErrorResponse{
		Msg:    ErrorMessage,
		Code:   http.StatusBadRequest,
		Time:   now().Format(TimeLayout),
		Errors: errs,
	}
}

// BindJSON decodes the request body into payload and runs its binding
// rules. A nil result means payload is ready to use.
func BindJSON(c *gin.Context, payload interface{}) *ErrorResponse {
	setupOnce.Do(setupValidator)

	if err := c.ShouldBindJSON(payload); err != nil {
		return NewErrorResponse(fieldErrors(err, payload))
	}
	return nil
}

func setupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
}

func fieldErrors(err error, payload interface{}) map[string]string {
	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.As(err, &validationErrors):
		messenger, _ := payload.(Messenger)
		for _, fe := range validationErrors {
			field := fieldPath(fe)
			if _, exists := errs[field]; exists {
				continue
			}
			if messenger != nil {
				if msg, ok := messenger.ValidationMessage(field, fe.Tag()); ok {
					errs[field] = msg
					continue
				}
			}
			errs[field] = defaultMessage(fe)
		}
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = BodyField
		}
		errs[field] = fmt.Sprintf("must be of type %s", typeErr.Type.String())
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		errs[BodyField] = "malformed JSON"
	case errors.Is(err, io.EOF):
		errs[BodyField] = "request body is empty"
	default:
		errs[BodyField] = err.Error()
	}

	return errs
}

// fieldPath is the JSON path of the failing field below the payload root,
// e.g. "name" or "cards[0].comment".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func defaultMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "must not be blank"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	}
	if fe.Param() != "" {
		return fmt.Sprintf("failed on %s=%s", fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("failed on %s", fe.Tag())
}
