package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/laliga-insights/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

// Responses follow the Google JSON style guide envelope.
const (
	googleAPIVersion = "2.0"
	errorDomain      = "laliga-insights"
	internalMessage  = "internal server error"
)

type responseEnvelope struct {
	APIVersion string     `json:"apiVersion"`
	Data       any        `json:"data,omitempty"`
	Error      *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Errors  []errorItem `json:"errors,omitempty"`
}

type errorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type errorClass struct {
	target     error
	httpStatus int
	reason     string
	status     string
}

var errorClasses = []errorClass{
	{usecase.ErrInvalidInput, http.StatusBadRequest, "invalidInput", "INVALID_ARGUMENT"},
	{usecase.ErrNotFound, http.StatusNotFound, "notFound", "NOT_FOUND"},
	{usecase.ErrDependencyUnavailable, http.StatusServiceUnavailable, "dependencyUnavailable", "UNAVAILABLE"},
}

var internalClass = errorClass{httpStatus: http.StatusInternalServerError, reason: "internalError", status: "INTERNAL"}

func classify(err error) errorClass {
	for _, c := range errorClasses {
		if errors.Is(err, c.target) {
			return c
		}
	}
	return internalClass
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		status = http.StatusInternalServerError
		buf.Reset()
		_, _ = buf.WriteString(`{"apiVersion":"` + googleAPIVersion + `","error":{"code":500,"message":"encode response","status":"INTERNAL"}}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeSuccess(_ context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, responseEnvelope{APIVersion: googleAPIVersion, Data: data})
}

// writeError maps usecase sentinels to their HTTP status. Unclassified errors
// are reported as a bare 500 so driver messages stay server side.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	c := classify(err)
	message := internalMessage
	if c.target != nil {
		message = err.Error()
	} else {
		traceError(ctx, err)
	}
	writeFailure(w, c, message)
}

func writeInternalError(w http.ResponseWriter) {
	writeFailure(w, internalClass, internalMessage)
}

func writeFailure(w http.ResponseWriter, c errorClass, message string) {
	writeJSON(w, c.httpStatus, responseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &errorBody{
			Code:    c.httpStatus,
			Message: message,
			Status:  c.status,
			Errors:  []errorItem{{Domain: errorDomain, Reason: c.reason, Message: message}},
		},
	})
}
