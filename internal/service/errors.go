package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrUnauthorized       = errors.New("not authenticated")
	ErrRemoteUnavailable  = errors.New("remote service unavailable")

	ErrInvalidOAuthState = errors.New("Invalid state parameter. Please try again.")
	ErrMissingAuthCode   = errors.New("No authorization code received.")
	ErrOAuthUnsupported  = errors.New("GitHub OAuth requires a backend server to exchange the authorization code for an access token securely. For this demo, please use the password login with \"admin123\".")
)
