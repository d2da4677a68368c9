// Package api holds the wire types exchanged with the hosted backend.
package api

// Credentials is the password-grant login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned by the hosted auth endpoints.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// ErrorResponse is the error body returned by the backend. The data API
// and the auth API use different field names; Text returns whichever is
// set.
type ErrorResponse struct {
	Message          string `json:"message"`
	Msg              string `json:"msg"`
	ErrorDescription string `json:"error_description"`
}

// Text returns the first non-empty error field.
func (e ErrorResponse) Text() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Msg != "":
		return e.Msg
	default:
		return e.ErrorDescription
	}
}
