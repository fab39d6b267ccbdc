package queries

import (
	"errors"
	"time"

	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/core/domain/model/transaction"
	"studiodesk/internal/pkg/errs"
	"studiodesk/internal/pkg/guard"
)

var (
	ErrGetTransactionsQueryIsNotConstructed = errors.New(
		"GetTransactionsQuery must be created via NewGetTransactionsQuery constructor",
	)
)

// GetTransactionsQuery retrieves bill payments and money transfers for
// the transactions dashboard. Kind and status filters are optional:
// KindUnknown and StatusUnknown match every transaction.
type GetTransactionsQuery struct {
	kind     transaction.Kind
	status   transaction.Status
	dateFrom *time.Time
	dateTo   *time.Time

	guard guard.ConstructorGuard
}

// NewGetTransactionsQuery creates a transactions query with the given
// filters. Pass transaction.KindUnknown or transaction.StatusUnknown to
// leave the corresponding filter open.
func NewGetTransactionsQuery(
	kind transaction.Kind,
	status transaction.Status,
	dateFrom *time.Time,
	dateTo *time.Time,
) (GetTransactionsQuery, error) {
	if kind != transaction.KindUnknown {
		if err := kind.Validate(); err != nil {
			return GetTransactionsQuery{}, err
		}
	}
	if status != transaction.StatusUnknown {
		if err := status.Validate(); err != nil {
			return GetTransactionsQuery{}, err
		}
	}
	if dateFrom != nil && dateTo != nil && dateFrom.After(*dateTo) {
		return GetTransactionsQuery{}, errs.NewValueIsInvalidError("dateFrom must not be after dateTo")
	}

	return GetTransactionsQuery{
		kind:     kind,
		status:   status,
		dateFrom: dateFrom,
		dateTo:   dateTo,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTransactionsQuery) Validate() error {
	return q.guard.Validate(ErrGetTransactionsQueryIsNotConstructed)
}

// Kind returns the kind filter, KindUnknown when open.
func (q GetTransactionsQuery) Kind() transaction.Kind { return q.kind }

// Status returns the status filter, StatusUnknown when open.
func (q GetTransactionsQuery) Status() transaction.Status { return q.status }

// DateFrom returns the inclusive lower bound of the createdAt range, if any.
func (q GetTransactionsQuery) DateFrom() *time.Time { return q.dateFrom }

// DateTo returns the inclusive upper bound of the createdAt range, if any.
func (q GetTransactionsQuery) DateTo() *time.Time { return q.dateTo }

// GetTransactionsQueryResponse is a read-model row for the transactions
// dashboard. Destination describes where the money went: the operator and
// bill for bill payments, the transfer target for money transfers.
type GetTransactionsQueryResponse struct {
	ID             kernel.UUID
	Kind           string
	CustomerID     string
	CustomerName   string
	CustomerMobile string
	Destination    string
	Amount         float64
	AmountPaid     float64
	Commission     float64
	PaymentMode    string
	Description    string
	UploadID       string
	Status         string
	CreatedAt      time.Time
}
