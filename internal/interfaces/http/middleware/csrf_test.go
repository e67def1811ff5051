package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCSRFTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CSRF())
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	router.GET("/api/console/tickets", ok)
	router.POST("/api/console/tickets/1/status", ok)
	router.POST("/login", ok)
	return router
}

func csrfRequest(method, target, cookie, header string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "csrftoken", Value: cookie})
	}
	if header != "" {
		req.Header.Set("X-CSRFToken", header)
	}
	return req
}

func TestCSRF_MatchingPairPasses(t *testing.T) {
	router := newCSRFTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, csrfRequest(http.MethodPost, "/api/console/tickets/1/status", "abc", "abc"))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCSRF_MismatchRejected(t *testing.T) {
	router := newCSRFTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, csrfRequest(http.MethodPost, "/api/console/tickets/1/status", "abc", "xyz"))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCSRF_MissingHeaderRejected(t *testing.T) {
	router := newCSRFTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, csrfRequest(http.MethodPost, "/api/console/tickets/1/status", "abc", ""))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCSRF_SafeMethodSkipped(t *testing.T) {
	router := newCSRFTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, csrfRequest(http.MethodGet, "/api/console/tickets", "", ""))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCSRF_LoginExempt(t *testing.T) {
	router := newCSRFTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, csrfRequest(http.MethodPost, "/login", "", ""))

	assert.Equal(t, http.StatusOK, w.Code)
}
