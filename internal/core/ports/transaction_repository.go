package ports

import (
	"context"

	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/core/domain/model/transaction"
)

// TransactionRepository defines the persistence contract for bill payment and
// money transfer aggregates.
type TransactionRepository interface {
	// Add persists a new transaction aggregate to storage.
	Add(ctx context.Context, aggregate *transaction.Transaction) error

	// Update persists changes to an existing transaction aggregate.
	Update(ctx context.Context, aggregate *transaction.Transaction) error

	// Get retrieves a transaction aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*transaction.Transaction, error)
}
