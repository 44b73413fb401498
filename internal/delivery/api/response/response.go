// Package response writes the JSON envelope every API answer shares.
package response

import (
	"net/http"

	deliverycontext "wearsync/internal/delivery/context"
	domainerrors "wearsync/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse is {data, meta}.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is {error, meta}.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"` // 4xx only
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// Success writes data inside the envelope.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error writes an error envelope. Details are dropped for 5xx, 401 and 403 answers.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if hidesDetails(statusCode) {
		details = nil
	}
	if s, ok := details.(string); ok && s == "" {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// AppError writes the envelope described by a domain error.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// Redirect sends the browser to location with 302 Found.
func Redirect(c echo.Context, location string) error {
	return c.Redirect(http.StatusFound, location)
}

func hidesDetails(statusCode int) bool {
	return statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}
