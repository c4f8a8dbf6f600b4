package entities

import (
	"time"

	"github.com/google/uuid"
)

// BorrowerProfile is the verified identity record that permits loan
// activity. One per user, immutable once created.
type BorrowerProfile struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	PhoneNumber string    `json:"phoneNumber"`
	IsVerified  bool      `json:"isVerified"`
	HasSigned   bool      `json:"hasSigned"`
	CreatedAt   time.Time `json:"createdAt"`
}

// VerifyPhoneInput represents input for requesting a verification code.
type VerifyPhoneInput struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// ActivateBorrowerInput combines the profile fields with the user name
// update performed in the same transaction.
type ActivateBorrowerInput struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Code        string `json:"code" binding:"required,len=5"`
	HasSigned   bool   `json:"hasSigned"`
	FirstName   string `json:"firstName" binding:"required,max=50"`
	LastName    string `json:"lastName" binding:"required,max=50"`
}

// ActivateBorrowerResponse reports the outcome of an activation.
// Created distinguishes a fresh activation from the no-op repeat case.
type ActivateBorrowerResponse struct {
	Profile  *BorrowerProfile `json:"profile"`
	Message  string           `json:"message"`
	Redirect string           `json:"redirect,omitempty"`
	Created  bool             `json:"-"`
}
