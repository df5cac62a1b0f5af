package models

import (
	"time"
)

// ===== STUDENT DTOs =====

// StudentInput is the write shape accepted by create and update.
type StudentInput struct {
	Name           string       `json:"name" validate:"required,max=50"`
	LastName       string       `json:"last_name" validate:"required,max=100"`
	EmailAddress   string       `json:"email_address" validate:"required,max=50,email"`
	DocumentType   string       `json:"document_type" validate:"required,max=20"`
	DocumentNumber string       `json:"document_number" validate:"required,max=20"`
	BirthDate      CalendarDate `json:"birth_date" validate:"required"`
	Sex            *bool        `json:"sex" validate:"required"`
	PhoneNumber    *string      `json:"phone_number"`
	Nationality    *string      `json:"nationality"`
	Photo          *string      `json:"photo"`
}

// StudentResult is the list/detail view returned by the API.
type StudentResult struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	LastName       string    `json:"last_name"`
	EmailAddress   string    `json:"email_address"`
	DocumentType   string    `json:"document_type"`
	DocumentNumber string    `json:"document_number"`
	BirthDate      time.Time `json:"birth_date"`
	Sex            bool      `json:"sex"`
	PhoneNumber    *string   `json:"phone_number"`
	Nationality    *string   `json:"nationality"`
	Photo          *string   `json:"photo"`
	CreateDate     string    `json:"create_date"` // dd/MM/yyyy
}

// StudentReport is one spreadsheet row of the export.
type StudentReport struct {
	Name           string
	LastName       string
	EmailAddress   string
	DocumentType   string
	DocumentNumber string
	BirthDate      time.Time
	SexDescription string
	PhoneNumber    *string
	CreateDate     time.Time
	Nationality    *string
}

// ===== ERROR RESPONSES =====

type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Error   string `json:"error,omitempty"`
}
