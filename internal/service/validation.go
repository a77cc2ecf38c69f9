package service

import (
	"strings"

	"github.com/shopspring/decimal"
)

// maxAmount is the largest value the amount column (NUMERIC(14,2)) holds.
var maxAmount = decimal.RequireFromString("999999999999.99")

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateSignUp checks the fields a sign-up needs before it reaches the gateway.
func ValidateSignUp(req SignUpRequest) error {
	if blank(req.Email) || blank(req.Password) || blank(req.FullName) {
		return &ValidationError{Field: "email,password,fullName", Message: "Email, password, and full name are required"}
	}
	return nil
}

// ValidateSignIn checks the fields a sign-in needs before it reaches the gateway.
func ValidateSignIn(email, password string) error {
	if blank(email) || blank(password) {
		return &ValidationError{Field: "email,password", Message: "Email and password are required"}
	}
	return nil
}

// ValidateBusinessCreate checks a business registration.
func ValidateBusinessCreate(create BusinessCreate) error {
	if blank(create.Name) {
		return &ValidationError{Field: "name", Message: "Business name is required"}
	}
	if blank(create.Type) {
		return &ValidationError{Field: "type", Message: "Business type is required"}
	}
	return nil
}

// ValidateTransactionCreate checks a ledger entry.
func ValidateTransactionCreate(create TransactionCreate) error {
	if !create.Type.Valid() {
		return &ValidationError{Field: "type", Message: "type must be one of sale, expense, credit, repayment"}
	}
	if create.Amount.IsNegative() {
		return &ValidationError{Field: "amount", Message: "amount must not be negative"}
	}
	if !create.Amount.Equal(create.Amount.Round(2)) {
		return &ValidationError{Field: "amount", Message: "amount must have at most two decimal places"}
	}
	if create.Amount.GreaterThan(maxAmount) {
		return &ValidationError{Field: "amount", Message: "amount must not exceed " + maxAmount.StringFixed(2)}
	}
	if blank(create.Category) {
		return &ValidationError{Field: "category", Message: "category is required"}
	}
	if create.Status != "" && !create.Status.Valid() {
		return &ValidationError{Field: "status", Message: "status must be one of pending, completed, overdue, cancelled"}
	}
	return nil
}
