package errors

import "net/http"

var ErrInvalidLimit = &Exception{
	Message:    "limit must be an integer between 1 and 1000",
	StatusCode: http.StatusUnprocessableEntity,
}
