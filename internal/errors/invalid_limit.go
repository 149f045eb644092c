package errors

import "net/http"

var ErrInvalidLimit = &Exception{
	Message:    "limit must be a non-negative integer",
	StatusCode: http.StatusBadRequest,
}
