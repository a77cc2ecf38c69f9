package service

import (
	"time"
)

// Business represents a registered business in the service layer.
type Business struct {
	ID                 string
	UserID             string
	Name               string
	Type               string
	Description        string
	Location           string
	Phone              string
	Email              string
	RegistrationNumber string
	TaxID              string
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// BusinessCreate is the input for registering a business.
type BusinessCreate struct {
	UserID             string
	Name               string
	Type               string
	Description        string
	Location           string
	Phone              string
	Email              string
	RegistrationNumber string
	TaxID              string
}
