package errors

import "net/http"

var ErrNoChanges = &Exception{
	Message:    "no changes specified",
	StatusCode: http.StatusBadRequest,
}
