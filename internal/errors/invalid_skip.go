package errors

import "net/http"

var ErrInvalidSkip = &Exception{
	Message:    "skip must be a non-negative integer",
	StatusCode: http.StatusUnprocessableEntity,
}
