package errors

import "net/http"

var ErrInvalidStatus = &Exception{
	Message:    "status must be one of: pending, in_progress, completed",
	StatusCode: http.StatusUnprocessableEntity,
}
