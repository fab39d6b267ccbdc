package queries

import (
	"errors"
	"time"

	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/pkg/errs"
	"studiodesk/internal/pkg/guard"
)

var (
	ErrGetPhotoOrdersQueryIsNotConstructed = errors.New(
		"GetPhotoOrdersQuery must be created via NewGetPhotoOrdersQuery constructor",
	)
)

// GetPhotoOrdersQuery retrieves photo orders for the counter dashboard.
// Supports date-range, free-text search and fulfillment-class filters.
//
// The Instant and Regular flags are tri-state: a nil flag means "not
// specified". When neither flag is specified every order matches; when
// both are specified as false nothing matches.
//
// Example:
//
//	instant := true
//	query, err := NewGetPhotoOrdersQuery(nil, nil, "Asha", &instant, nil)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get photo orders: %w", err)
//	}
//
//	fmt.Printf("Found %d matching orders\n", len(orders))
type GetPhotoOrdersQuery struct {
	dateFrom *time.Time
	dateTo   *time.Time
	search   string
	instant  *bool
	regular  *bool

	guard guard.ConstructorGuard
}

// NewGetPhotoOrdersQuery creates a dashboard query with the given filters.
// All filters are optional; a nil date bound leaves that side of the
// range open. Returns ErrValueIsInvalid when dateFrom is after dateTo.
func NewGetPhotoOrdersQuery(
	dateFrom *time.Time,
	dateTo *time.Time,
	search string,
	instant *bool,
	regular *bool,
) (GetPhotoOrdersQuery, error) {
	if dateFrom != nil && dateTo != nil && dateFrom.After(*dateTo) {
		return GetPhotoOrdersQuery{}, errs.NewValueIsInvalidError("dateFrom must not be after dateTo")
	}

	return GetPhotoOrdersQuery{
		dateFrom: dateFrom,
		dateTo:   dateTo,
		search:   search,
		instant:  instant,
		regular:  regular,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPhotoOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPhotoOrdersQueryIsNotConstructed)
}

// DateFrom returns the inclusive lower bound of the createdAt range, if any.
func (q GetPhotoOrdersQuery) DateFrom() *time.Time { return q.dateFrom }

// DateTo returns the inclusive upper bound of the createdAt range, if any.
func (q GetPhotoOrdersQuery) DateTo() *time.Time { return q.dateTo }

// Search returns the free-text search term.
func (q GetPhotoOrdersQuery) Search() string { return q.search }

// Instant returns the instant-class filter flag, nil when not specified.
func (q GetPhotoOrdersQuery) Instant() *bool { return q.instant }

// Regular returns the regular-class filter flag, nil when not specified.
func (q GetPhotoOrdersQuery) Regular() *bool { return q.regular }

// GetPhotoOrdersQueryResponse is a read-model row for the order dashboard.
type GetPhotoOrdersQueryResponse struct {
	ID             kernel.UUID
	CustomerID     string
	CustomerName   string
	CustomerMobile string
	Description    string
	PaymentMode    string
	TotalAmount    float64
	DiscountAmount float64
	AmountPaid     float64
	DueAmount      float64
	UploadID       string
	IsInstant      bool
	Status         string
	CreatedAt      time.Time
}
