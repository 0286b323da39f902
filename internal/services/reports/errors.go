package reports

import (
	"errors"
	"net/http"
)

var (
	ErrReportNotFound = errors.New("report not found")
	ErrMissingReason  = errors.New("report reason is required")
)

var ErrorMap = map[error]int{
	ErrReportNotFound: http.StatusNotFound,
	ErrMissingReason:  http.StatusBadRequest,
}
