package shared

import "context"

// TransactionManager runs a function inside a single database transaction.
// The tx handle is opaque at the domain level; repositories rebind to it via
// their WithTx method. Returning an error from fn rolls the whole unit back.
type TransactionManager interface {
	Do(ctx context.Context, fn func(tx any) error) error
}
