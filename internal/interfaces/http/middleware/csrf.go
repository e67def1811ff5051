package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"reachdesk/internal/shared/constants"
	"reachdesk/internal/shared/utils"
)

// csrfExactPaths lists exact paths exempt from CSRF validation. Login has no
// CSRF cookie yet; logout is already session-gated and must work even after
// the backend rotated the token away.
var csrfExactPaths = map[string]struct{}{
	"/login":  {},
	"/logout": {},
}

// CSRF validates the double-submit pair the backend issued: the csrftoken
// cookie must match the X-CSRFToken header on every mutating request. The
// same pair is forwarded upstream, so a request that passes here will also
// pass the backend's own check.
func CSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isSafeMethod(c.Request.Method) {
			c.Next()
			return
		}

		if _, ok := csrfExactPaths[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		cookieToken, err := c.Cookie(constants.CSRFTokenCookie)
		if err != nil || cookieToken == "" {
			utils.ErrorResponse(c, http.StatusForbidden, "missing CSRF token")
			c.Abort()
			return
		}

		headerToken := c.GetHeader(constants.CSRFTokenHeader)
		if headerToken == "" {
			utils.ErrorResponse(c, http.StatusForbidden, "missing CSRF token header")
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(cookieToken), []byte(headerToken)) != 1 {
			utils.ErrorResponse(c, http.StatusForbidden, "invalid CSRF token")
			c.Abort()
			return
		}

		c.Next()
	}
}

// isSafeMethod returns true for HTTP methods that do not mutate state.
func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}
