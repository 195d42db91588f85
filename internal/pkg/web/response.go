package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/gopherkit/http/response"
	"github.com/ferdiebergado/riskapi/internal/pkg/errs"
	"github.com/ferdiebergado/riskapi/internal/pkg/message"
)

const (
	HeaderContentType = "Content-Type"
	MimeJSON          = "application/json"
	MimeText          = "text/plain; charset=utf-8"

	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the bare response wrapper. Payload structs embed it so that
// "status" sits next to their own keys.
type Envelope struct {
	Status string `json:"status"`
}

// Success returns the envelope carried by every successful response.
func Success() Envelope {
	return Envelope{Status: StatusSuccess}
}

// MessageResponse is the payload of writes that return no record.
type MessageResponse struct {
	Envelope
	Message string `json:"message"`
}

func NewMessageResponse(msg string) *MessageResponse {
	return &MessageResponse{Envelope: Success(), Message: msg}
}

// ErrorResponse represents the structure of a JSON-encoded error response.
//
// Errors holds field-level validation messages and is omitted when empty.
type ErrorResponse struct {
	Envelope
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// OK writes payload as JSON with the given status code.
func OK(w http.ResponseWriter, status int, payload any) {
	w.Header().Set(HeaderContentType, MimeJSON)
	response.JSON(w, status, payload)
}

// Text writes a plain text body.
func Text(w http.ResponseWriter, status int, body string) {
	w.Header().Set(HeaderContentType, MimeText)
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Error("write text response", "reason", err)
	}
}

// Fail writes a JSON-encoded error envelope and logs reason at Error level.
func Fail(w http.ResponseWriter, status int, reason error, msg string, fieldErrs map[string]string) {
	logFailure(status, reason)
	payload := &ErrorResponse{
		Envelope: Envelope{Status: StatusError},
		Message:  msg,
		Errors:   fieldErrs,
	}
	OK(w, status, payload)
}

// RespondError maps err onto an HTTP status and a client-facing message.
func RespondError(w http.ResponseWriter, err error) {
	status, msg := StatusFor(err)
	Fail(w, status, err, msg, nil)
}

// StatusFor returns the HTTP status and message for an error from the lower layers.
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, message.NotFound
	case errors.Is(err, errs.ErrInvalidInput):
		return http.StatusBadRequest, message.InvalidInput
	case errors.Is(err, errs.ErrUnsupportedMedia):
		return http.StatusUnsupportedMediaType, message.UnsupportedMedia
	case errors.Is(err, errs.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge, message.PayloadTooLarge
	case errors.Is(err, errs.ErrConstraintViolation):
		return http.StatusUnprocessableEntity, message.ConstraintFailed
	case errors.Is(err, errs.ErrUnavailable):
		return http.StatusServiceUnavailable, message.Unavailable
	case errs.IsContextError(err):
		return http.StatusRequestTimeout, message.RequestTimeout
	default:
		return http.StatusInternalServerError, message.ServerError
	}
}

func logFailure(status int, reason error) {
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "status", status, "reason", reason)
		return
	}
	slog.Warn("request failed", "status", status, "reason", reason)
}
