// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"studiodesk/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TransactionRepoFactory provides access to the transaction repository within a transaction.
	TransactionRepoFactory interface {
		TransactionRepository() ports.TransactionRepository
	}

	// ServiceOrderRepoFactory provides access to the service order repository within a transaction.
	ServiceOrderRepoFactory interface {
		ServiceOrderRepository() ports.ServiceOrderRepository
	}

	// OrderUoW manages transactions for photo order operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// TransactionUoW manages transactions for bill payment and money transfer operations.
	TransactionUoW interface {
		TxManager
		TransactionRepoFactory
	}

	// TransactionUoWFactory creates new transaction unit of work instances.
	TransactionUoWFactory interface {
		Create() TransactionUoW
	}

	// ServiceOrderUoW manages transactions for service order operations.
	ServiceOrderUoW interface {
		TxManager
		ServiceOrderRepoFactory
	}

	// ServiceOrderUoWFactory creates new service order unit of work instances.
	ServiceOrderUoWFactory interface {
		Create() ServiceOrderUoW
	}
)
