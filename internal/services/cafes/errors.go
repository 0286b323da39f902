package cafes

import (
	"errors"
	"net/http"
)

var (
	ErrCafeNotFound       = errors.New("cafe not found")
	ErrCafeAlreadyExists  = errors.New("cafe already added")
	ErrCafeAlreadyClaimed = errors.New("cafe already has an owner")
	ErrMissingCafeInfo    = errors.New("cafe id and name are required")
	ErrInvalidCategory    = errors.New("category must be one of: popular, recommended, nearby")
)

var ErrorMap = map[error]int{
	ErrCafeNotFound:       http.StatusNotFound,
	ErrCafeAlreadyExists:  http.StatusConflict,
	ErrCafeAlreadyClaimed: http.StatusConflict,
	ErrMissingCafeInfo:    http.StatusBadRequest,
	ErrInvalidCategory:    http.StatusBadRequest,
}
