package queries

import (
	"errors"
	"time"

	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/core/domain/model/serviceorder"
	"studiodesk/internal/pkg/errs"
	"studiodesk/internal/pkg/guard"
)

var (
	ErrGetServiceOrdersQueryIsNotConstructed = errors.New(
		"GetServiceOrdersQuery must be created via NewGetServiceOrdersQuery constructor",
	)
)

// GetServiceOrdersQuery retrieves custom service orders for the counter
// dashboard. Status and date-range filters are optional; StatusUnknown
// leaves the status filter open.
type GetServiceOrdersQuery struct {
	status   serviceorder.Status
	dateFrom *time.Time
	dateTo   *time.Time

	guard guard.ConstructorGuard
}

// NewGetServiceOrdersQuery creates a service order listing query.
// Returns ErrValueIsInvalid when dateFrom is after dateTo or when a
// non-open status filter is not a defined status.
func NewGetServiceOrdersQuery(
	status serviceorder.Status,
	dateFrom *time.Time,
	dateTo *time.Time,
) (GetServiceOrdersQuery, error) {
	if status != serviceorder.StatusUnknown {
		if err := status.Validate(); err != nil {
			return GetServiceOrdersQuery{}, err
		}
	}
	if dateFrom != nil && dateTo != nil && dateFrom.After(*dateTo) {
		return GetServiceOrdersQuery{}, errs.NewValueIsInvalidError("dateFrom must not be after dateTo")
	}

	return GetServiceOrdersQuery{
		status:   status,
		dateFrom: dateFrom,
		dateTo:   dateTo,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetServiceOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetServiceOrdersQueryIsNotConstructed)
}

// Status returns the status filter, StatusUnknown when the filter is open.
func (q GetServiceOrdersQuery) Status() serviceorder.Status { return q.status }

// DateFrom returns the inclusive lower bound of the createdAt range, if any.
func (q GetServiceOrdersQuery) DateFrom() *time.Time { return q.dateFrom }

// DateTo returns the inclusive upper bound of the createdAt range, if any.
func (q GetServiceOrdersQuery) DateTo() *time.Time { return q.dateTo }

// GetServiceOrdersQueryResponse is a read-model row for the service order
// dashboard.
type GetServiceOrdersQueryResponse struct {
	ID             kernel.UUID
	CustomerID     string
	CustomerName   string
	CustomerMobile string
	ServiceName    string
	Amount         float64
	Description    string
	PaymentMode    string
	TotalAmount    float64
	DiscountAmount float64
	AmountPaid     float64
	DueAmount      float64
	UploadIDs      []string
	Status         string
	CreatedAt      time.Time
}
