package ports

import (
	"context"

	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/core/domain/model/serviceorder"
)

// ServiceOrderRepository defines the persistence contract for ad-hoc service
// order aggregates.
type ServiceOrderRepository interface {
	// Add persists a new service order aggregate to storage.
	Add(ctx context.Context, aggregate *serviceorder.ServiceOrder) error

	// Update persists changes to an existing service order aggregate.
	Update(ctx context.Context, aggregate *serviceorder.ServiceOrder) error

	// Get retrieves a service order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*serviceorder.ServiceOrder, error)
}
