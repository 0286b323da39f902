package reviews

import (
	"errors"
	"net/http"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("user already reviewed this cafe")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrMissingReviewText   = errors.New("review text is required")
	ErrNotReviewAuthor     = errors.New("review belongs to another user")
)

var ErrorMap = map[error]int{
	ErrReviewNotFound:      http.StatusNotFound,
	ErrReviewAlreadyExists: http.StatusConflict,
	ErrInvalidRating:       http.StatusBadRequest,
	ErrMissingReviewText:   http.StatusBadRequest,
	ErrNotReviewAuthor:     http.StatusForbidden,
}
