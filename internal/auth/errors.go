package auth

import "blog-api/internal/apperror"

const (
	MessageInvalidCredentials = "Invalid email or password"
	MessageEmailInUse         = "Email already in use"
	MessageNotAuthenticated   = "Not authenticated"
	MessageUserNotFound       = "User not found"
	MessageInvalidToken       = "Invalid or expired token"
	MessageGoogleLoginFailed  = "Google login failed"
	MessageInvalidRefresh     = "Invalid refresh token"
)

var (
	ErrInvalidCredentials = apperror.Unauthenticated(MessageInvalidCredentials)
	ErrNotAuthenticated   = apperror.Unauthenticated(MessageNotAuthenticated)
	ErrInvalidToken       = apperror.Unauthenticated(MessageInvalidToken)
	ErrGoogleLoginFailed  = apperror.Unauthenticated(MessageGoogleLoginFailed)
	ErrInvalidRefresh     = apperror.Unauthenticated(MessageInvalidRefresh)
)
