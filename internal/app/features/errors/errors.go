// internal/app/features/errors/errors.go
package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/dalemusser/projecthub/internal/app/policy/workspacepolicy"
	"github.com/dalemusser/projecthub/internal/app/system/jsonutil"
	"github.com/dalemusser/projecthub/internal/app/system/requestlog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrLastMember is returned when an operation would leave a workspace with
// no members.
var ErrLastMember = stderrors.New("cannot remove or demote the only member of a workspace")

// ValidationError is a client input problem. Its message is shown verbatim.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return e.Field + ": " + e.Msg
}

// Invalid builds a ValidationError for one field.
func Invalid(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// ErrorLogger logs failures and writes the matching JSON error response.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// Respond maps err to a status code and writes {"error": ...}.
//
//	workspacepolicy.ErrUnauthorized  → 401
//	store ErrNotFound / no documents → 404
//	*ValidationError                 → 400
//	ErrLastMember                    → 409
//	anything else                    → 500, logged with msg
func (e *ErrorLogger) Respond(w http.ResponseWriter, r *http.Request, msg string, err error) {
	var verr *ValidationError
	switch {
	case stderrors.Is(err, workspacepolicy.ErrUnauthorized):
		jsonutil.WriteError(w, http.StatusUnauthorized, "Unauthorized")
	case stderrors.Is(err, mongo.ErrNoDocuments):
		jsonutil.WriteError(w, http.StatusNotFound, "Not found")
	case stderrors.As(err, &verr):
		e.LogBadRequest(w, r, msg, err, verr.Error())
	case stderrors.Is(err, ErrLastMember):
		jsonutil.WriteError(w, http.StatusConflict, ErrLastMember.Error())
	default:
		e.LogServerError(w, r, msg, err, "A database error occurred.")
	}
}

// LogServerError logs at error level and writes a generic 500.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string) {
	requestlog.Logger(r.Context(), e.Log).Error(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	jsonutil.WriteError(w, http.StatusInternalServerError, userMsg)
}

// LogBadRequest logs at warn level and writes a 400 with userMsg.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string) {
	requestlog.Logger(r.Context(), e.Log).Warn(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	jsonutil.WriteError(w, http.StatusBadRequest, userMsg)
}
