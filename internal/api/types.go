package api

type ErrorResponse struct {
	StatusCode   int    `json:"status_code"`
	ErrorMessage string `json:"error_message"`
}

type DefaultResponse struct {
	Message string `json:"message"`
}

// PublicPaths lists the routes the auth middleware lets through without a
// token, keyed by "METHOD /path". Matching is exact, so parameterized routes
// cannot be public.
var PublicPaths = map[string]bool{
	"GET /":       true,
	"POST /users": true,
	"POST /login": true,
	"GET /cafes":  true,
}
