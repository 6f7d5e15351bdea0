package usecases

import (
	"context"
)

// TransactionManager runs a function inside a database transaction.
// Repositories invoked through the callback's context join the transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
