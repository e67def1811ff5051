package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reachdesk/internal/infrastructure/crm"
)

func newSessionTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequireSession())
	handler := func(c *gin.Context) {
		session, ok := crm.SessionFromContext(c.Request.Context())
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"session_id": session.SessionID, "csrf": session.CSRFToken})
	}
	router.GET("/tickets", handler)
	router.GET("/api/console/tickets", handler)
	return router
}

func TestRequireSession_ForwardsCookiesIntoContext(t *testing.T) {
	router := newSessionTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/tickets", nil)
	req.AddCookie(&http.Cookie{Name: "sessionid", Value: "s3ss10n"})
	req.AddCookie(&http.Cookie{Name: "csrftoken", Value: "t0k3n"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "s3ss10n")
	assert.Contains(t, w.Body.String(), "t0k3n")
}

func TestRequireSession_RedirectsPagesToLogin(t *testing.T) {
	router := newSessionTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/tickets?page=2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?next=%2Ftickets%3Fpage%3D2", w.Header().Get("Location"))
}

func TestRequireSession_JSONGetsUnauthorized(t *testing.T) {
	router := newSessionTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/console/tickets", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
}
