// Package validator plugs go-playground/validator into echo.
package validator

import (
	"net/http"
	"strings"
	"time"

	domainerrors "wearsync/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the request validator with the service's custom tags registered.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// isodate accepts a calendar day in YYYY-MM-DD form.
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(dateLayout, fl.Field().String())

		return err == nil
	})

	return &CustomValidator{validate: v}
}

// Validate checks i and flattens validation failures into one readable message.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fe.Field()+" failed on "+fe.Tag())
	}

	return &ValidationError{msg: strings.Join(msgs, "; ")}
}

// ValidationError lists the request fields that failed validation.
// It is answered like any other domain validation failure.
type ValidationError struct {
	msg string
}

var _ domainerrors.AppError = (*ValidationError)(nil)

func (e *ValidationError) Error() string {
	return e.msg
}

func (e *ValidationError) Kind() domainerrors.Kind {
	return domainerrors.KindValidation
}

func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

func (e *ValidationError) Message() string {
	return "invalid request"
}

func (e *ValidationError) Details() string {
	return e.msg
}
