package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"reachdesk/internal/infrastructure/crm"
	"reachdesk/internal/shared/constants"
	"reachdesk/internal/shared/utils"
)

// RequireSession extracts the backend session cookies and stores them in the
// request context for the CRM client. Requests without a session cookie are
// redirected to the login page; JSON requests get a 401 instead.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(constants.SessionCookie)
		if err != nil || sessionID == "" {
			rejectUnauthenticated(c)
			return
		}
		csrfToken, _ := c.Cookie(constants.CSRFTokenCookie)

		session := crm.Session{SessionID: sessionID, CSRFToken: csrfToken}
		c.Set(constants.ContextKeySession, session)
		c.Request = c.Request.WithContext(crm.ContextWithSession(c.Request.Context(), session))

		c.Next()
	}
}

func rejectUnauthenticated(c *gin.Context) {
	if wantsJSON(c) {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		c.Abort()
		return
	}

	next := c.Request.URL.RequestURI()
	c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(next))
	c.Abort()
}

func wantsJSON(c *gin.Context) bool {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		return true
	}
	accept := c.GetHeader("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}
