package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/handlers"
)

const originWildcard = "*"

var corsMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// CORS wraps the whole engine so every non-preflight response carries the
// allow-origin header. Preflight requests go through to the router, where
// Preflight or a route-specific OPTIONS handler answers them.
func (mw Middleware) CORS(next http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(mw.origins()),
		handlers.AllowedMethods(corsMethods),
		handlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type", "Authorization", HeaderRequestID}),
		handlers.ExposedHeaders([]string{HeaderRequestID}),
		handlers.IgnoreOptions(),
	)(next)
}

// Preflight answers OPTIONS for a route group with the given methods.
func (mw Middleware) Preflight(methods ...string) gin.HandlerFunc {
	allow := strings.Join(append(methods, http.MethodOptions), ", ")
	return func(c *gin.Context) {
		origin := mw.allowOrigin(c.GetHeader("Origin"))
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
		}
		c.Header("Access-Control-Allow-Methods", allow)
		c.Header("Access-Control-Allow-Headers", originWildcard)
		c.Header("Access-Control-Max-Age", "3600")
		c.Status(http.StatusOK)
	}
}

func (mw Middleware) origins() []string {
	if len(mw.allowedOrigins) == 0 {
		return []string{originWildcard}
	}
	return mw.allowedOrigins
}

// allowOrigin returns the value for Access-Control-Allow-Origin, or "" when
// the origin is not on the allow-list.
func (mw Middleware) allowOrigin(origin string) string {
	origins := mw.origins()
	if slices.Contains(origins, originWildcard) {
		return originWildcard
	}
	if origin != "" && slices.Contains(origins, origin) {
		return origin
	}
	return ""
}
