package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanStatus represents the loan lifecycle state.
type LoanStatus string

const (
	LoanStatusPending   LoanStatus = "pending"
	LoanStatusApproved  LoanStatus = "approved"
	LoanStatusProcessed LoanStatus = "processed"
	LoanStatusRejected  LoanStatus = "rejected"
	LoanStatusCancelled LoanStatus = "cancelled"
	LoanStatusRepaid    LoanStatus = "repaid"
)

// Loan amount and duration bounds. Amount bounds are inclusive.
var (
	MinLoanAmount = decimal.NewFromInt(10000)
	MaxLoanAmount = decimal.NewFromInt(100000)
)

// MaxLoanDurationDays caps the loan duration.
const MaxLoanDurationDays = 10000

// DefaultCurrency is used when a loan request omits the currency.
const DefaultCurrency = "GBP"

// Loan is a loan request made by a borrower for one of their
// businesses. Only pending loans can be cancelled by the borrower;
// the remaining states are driven by back-office review outside this
// service.
type Loan struct {
	ID           uuid.UUID       `json:"id"`
	BorrowerID   uuid.UUID       `json:"borrowerId"`
	BusinessID   uuid.UUID       `json:"businessId"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Reason       string          `json:"reason"`
	DurationDays int             `json:"durationDays"`
	InterestRate decimal.Decimal `json:"interestRate"`
	Status       LoanStatus      `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	ModifiedAt   time.Time       `json:"modifiedAt"`
}

// CreateLoanInput represents input for requesting a loan. The interest
// rate is submitted back by the client and must match the calculator
// output exactly.
type CreateLoanInput struct {
	BusinessID   string          `json:"businessId" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Currency     string          `json:"currency"`
	Reason       string          `json:"reason" binding:"required,max=256"`
	DurationDays int             `json:"durationDays" binding:"required"`
	InterestRate decimal.Decimal `json:"interestRate"`
}
