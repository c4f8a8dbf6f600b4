package repositories

import "context"

// UnitOfWork executes a function within one transaction scope. The
// borrower activation flow relies on it: the user name update and the
// profile insert must commit or roll back together.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
