package service

import (
	"time"
)

// Account represents an authenticated user in the service layer.
type Account struct {
	ID       string
	Email    string
	FullName string
	Phone    string
}

// SignUpRequest carries the fields needed to create an account.
type SignUpRequest struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

// Session is an issued login session.
type Session struct {
	AccessToken string
	ExpiresAt   time.Time
}

// AuthResult is returned by sign-up and sign-in.
type AuthResult struct {
	User    Account
	Session Session
}
