package users

import (
	"errors"
	"net/http"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserAlreadyExists   = errors.New("username or email already registered")
	ErrInvalidEmail        = errors.New("email is not valid")
	ErrInvalidUsername     = errors.New("username can only contain letters, numbers, hyphens and underscores")
	ErrPasswordTooShort    = errors.New("password must have at least 8 characters")
	ErrInvalidRole         = errors.New("role must be one of: user, owner, admin")
	ErrMissingRequiredInfo = errors.New("username, email and password are required")
)

var ErrorMap = map[error]int{
	ErrUserNotFound:        http.StatusNotFound,
	ErrUserAlreadyExists:   http.StatusConflict,
	ErrInvalidEmail:        http.StatusBadRequest,
	ErrInvalidUsername:     http.StatusBadRequest,
	ErrPasswordTooShort:    http.StatusBadRequest,
	ErrInvalidRole:         http.StatusBadRequest,
	ErrMissingRequiredInfo: http.StatusBadRequest,
}
