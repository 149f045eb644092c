package errors

import "net/http"

var ErrPriorityOutOfRange = &Exception{
	Message:    "priority must be between 1 and 5",
	StatusCode: http.StatusBadRequest,
}
