package transactor

import "context"

// Transactor runs a function within a database transaction carried through
// the context.
type Transactor interface {
	WithinTransaction(ctx context.Context, txFunc func(ctx context.Context) error) error
}
