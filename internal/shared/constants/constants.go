package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Cookies issued by the CRM backend and passed through by the console.
	// The names are part of the backend contract and must not change.
	SessionCookie   = "sessionid"
	CSRFTokenCookie = "csrftoken"
	CSRFTokenHeader = "X-CSRFToken"

	// HTTP Headers
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"

	// Content Types
	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeySession   = "crm_session"
	ContextKeyRequestID = "request_id"
)
