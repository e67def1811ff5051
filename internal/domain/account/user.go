// Package account holds the console user's identity as reported by the CRM
// backend.
package account

// EmailAddress is one of the user's registered addresses.
type EmailAddress struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// SocialAccount is a linked OAuth identity.
type SocialAccount struct {
	Provider  string `json:"provider"`
	UID       string `json:"uid"`
	LastLogin string `json:"last_login"`
}

// User is the authenticated backend user behind the session cookie.
type User struct {
	ID             int             `json:"id"`
	Username       string          `json:"username"`
	Email          string          `json:"email"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	EmailAddresses []EmailAddress  `json:"email_addresses"`
	SocialAccounts []SocialAccount `json:"social_accounts"`
}

// DisplayName prefers the real name over the login.
func (u User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Username
	}
}
