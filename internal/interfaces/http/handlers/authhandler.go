package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"reachdesk/internal/application/auth"
	"reachdesk/internal/shared/constants"
	"reachdesk/internal/shared/logger"
	"reachdesk/internal/shared/utils"
)

// Cookie lifetimes mirror the backend's own session settings.
const (
	sessionCookieMaxAge = 14 * 24 * 60 * 60
	csrfCookieMaxAge    = 365 * 24 * 60 * 60
)

// AuthHandler relays login and logout to the CRM backend and manages the
// pass-through cookies on the console's own domain. The csrftoken cookie is
// left readable by scripts so the page can send it back as a header.
type AuthHandler struct {
	service      *auth.Service
	cookieSecure bool
	logger       logger.Interface
}

func NewAuthHandler(service *auth.Service, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		service:      service,
		cookieSecure: cookieSecure,
		logger:       logger.NewLogger(),
	}
}

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
	Next     string `json:"-" form:"next"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.loginFailure(c, req.Next, http.StatusBadRequest, "username and password are required")
		return
	}

	session, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.loginFailure(c, req.Next, http.StatusUnauthorized, "invalid username or password")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.SessionCookie, session.SessionID, sessionCookieMaxAge, "/", "", h.cookieSecure, true)
	c.SetCookie(constants.CSRFTokenCookie, session.CSRFToken, csrfCookieMaxAge, "/", "", h.cookieSecure, false)

	if wantsHTML(c) {
		c.Redirect(http.StatusFound, safeNextPath(req.Next))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged in", nil)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.service.Logout(c.Request.Context())

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.SessionCookie, "", -1, "/", "", h.cookieSecure, true)
	c.SetCookie(constants.CSRFTokenCookie, "", -1, "/", "", h.cookieSecure, false)

	if wantsHTML(c) {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

func (h *AuthHandler) CurrentUser(c *gin.Context) {
	user, err := h.service.CurrentUser(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", user)
}

func (h *AuthHandler) loginFailure(c *gin.Context, next string, status int, message string) {
	if wantsHTML(c) {
		c.HTML(status, "login.html", gin.H{
			"Error": message,
			"Next":  next,
		})
		return
	}
	utils.ErrorResponse(c, status, message)
}

func wantsHTML(c *gin.Context) bool {
	if strings.Contains(c.ContentType(), "application/json") {
		return false
	}
	return strings.Contains(c.GetHeader("Accept"), "text/html") ||
		c.ContentType() == "application/x-www-form-urlencoded" ||
		c.ContentType() == "multipart/form-data"
}

// safeNextPath only allows same-site relative redirect targets.
func safeNextPath(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/tickets"
	}
	return next
}
