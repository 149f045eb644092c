package errors

import "net/http"

var ErrTaskAlreadyDone = &Exception{
	Message:    "task is already done",
	StatusCode: http.StatusBadRequest,
}
