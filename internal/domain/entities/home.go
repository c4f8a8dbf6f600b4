package entities

// HomeSummary is the dashboard view: the caller's borrower profile (nil
// until activated), their businesses with loan counts, and their loans.
type HomeSummary struct {
	Borrower   *BorrowerProfile `json:"borrower"`
	Businesses []*Business      `json:"businesses"`
	Loans      []*Loan          `json:"loans"`
}
