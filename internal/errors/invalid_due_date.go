package errors

import "net/http"

var ErrInvalidDueDate = &Exception{
	Message:    "invalid date format, use today, tomorrow or YYYY-MM-DD",
	StatusCode: http.StatusBadRequest,
}
