package errors

import "net/http"

var ErrUnknownExportFormat = &Exception{
	Message:    "unknown export format, use csv, json or pdf",
	StatusCode: http.StatusBadRequest,
}
