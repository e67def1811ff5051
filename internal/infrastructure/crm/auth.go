package crm

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"reachdesk/internal/domain/account"
	"reachdesk/internal/shared/constants"
	"reachdesk/internal/shared/errors"
)

// Login authenticates against the backend's browser login form and returns
// the session credentials from the response cookies. The backend requires a
// CSRF token even on login, so an anonymous token is primed first.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	csrfToken, err := c.primeCSRFToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	form := url.Values{}
	form.Set("login", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/accounts/login/", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("login: create request: %w", err)
	}
	req.Header.Set(constants.HeaderContentType, "application/x-www-form-urlencoded")
	req.Header.Set(constants.CSRFTokenHeader, csrfToken)
	req.Header.Set("Referer", c.baseURL+"/accounts/login/")
	req.AddCookie(&http.Cookie{Name: constants.CSRFTokenCookie, Value: csrfToken})

	// Success is a redirect; the session cookie rides on the 302 itself.
	resp, err := c.noRedirectClient().Do(req)
	if err != nil {
		return nil, errors.NewUpstreamError(http.StatusBadGateway, "backend unreachable", err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewUpstreamError(http.StatusBadGateway, "read backend response", err.Error())
	}

	switch {
	case resp.StatusCode >= 300 && resp.StatusCode < 400:
		// Authenticated; fall through to cookie extraction.
	case resp.StatusCode == http.StatusOK:
		// The login form re-rendered, meaning the credentials were rejected.
		return nil, errors.NewUnauthorizedError("invalid credentials")
	default:
		return nil, upstreamError(resp.StatusCode, body)
	}

	session := Session{CSRFToken: csrfToken}
	for _, cookie := range resp.Cookies() {
		switch cookie.Name {
		case constants.SessionCookie:
			session.SessionID = cookie.Value
		case constants.CSRFTokenCookie:
			// Login rotates the token.
			session.CSRFToken = cookie.Value
		}
	}
	if session.SessionID == "" {
		return nil, errors.NewUpstreamError(http.StatusBadGateway, "backend login returned no session cookie")
	}
	return &session, nil
}

// Logout invalidates the session on the backend.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodPost, "/accounts/logout/", nil, nil, nil); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// CurrentUser returns the backend user behind the session cookie, or an
// unauthorized error when the session is missing or expired.
func (c *Client) CurrentUser(ctx context.Context) (*account.User, error) {
	var u account.User
	if err := c.doRequest(ctx, http.MethodGet, "/api/auth/user/", nil, nil, &u); err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	return &u, nil
}

// primeCSRFToken fetches the login page to obtain an anonymous CSRF cookie.
func (c *Client) primeCSRFToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/accounts/login/", nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.NewUpstreamError(http.StatusBadGateway, "backend unreachable", err.Error())
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.NewUpstreamError(resp.StatusCode, "fetch login page failed")
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == constants.CSRFTokenCookie {
			return cookie.Value, nil
		}
	}
	return "", errors.NewUpstreamError(http.StatusBadGateway, "backend set no csrf cookie")
}

// noRedirectClient copies the HTTP client but stops at the first redirect.
func (c *Client) noRedirectClient() *http.Client {
	client := *c.httpClient
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &client
}
