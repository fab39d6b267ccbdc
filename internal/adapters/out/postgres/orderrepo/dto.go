// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items and the status history are stored as JSONB documents; the scalar
// columns the dashboard filters on (status, is_instant, created_at, customer
// identity) are kept relational and indexed.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID     string    `gorm:"index"`
	CustomerName   string
	CustomerMobile string
	Items          string `gorm:"type:jsonb"`
	Description    string
	PaymentMode    string
	TotalAmount    float64
	DiscountAmount float64
	AmountPaid     float64
	UploadID       string
	IsInstant      bool      `gorm:"index"`
	Status         string    `gorm:"index"`
	StatusHistory  string    `gorm:"type:jsonb"`
	CreatedAt      time.Time `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// lineItemDocument is the JSONB shape of one order line item.
type lineItemDocument struct {
	ItemType  string   `json:"type"`
	Addons    []string `json:"addons,omitempty"`
	Quantity  int      `json:"quantity"`
	IsInstant bool     `json:"isInstant"`
	UnitPrice float64  `json:"unitPrice"`
	GroupID   int      `json:"groupId"`
}

// statusChangeDocument is the JSONB shape of one status history entry.
type statusChangeDocument struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := make([]lineItemDocument, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, lineItemDocument{
			ItemType:  item.ItemType(),
			Addons:    item.Addons(),
			Quantity:  item.Quantity(),
			IsInstant: item.IsInstant(),
			UnitPrice: item.UnitPrice(),
			GroupID:   item.GroupID(),
		})
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}

	history := make([]statusChangeDocument, 0, len(aggregate.StatusHistory()))
	for _, change := range aggregate.StatusHistory() {
		history = append(history, statusChangeDocument{
			Status: change.Status.String(),
			At:     change.At,
		})
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return OrderDTO{}, err
	}

	payment := aggregate.Payment()
	customer := aggregate.Customer()

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		CustomerID:     customer.ID(),
		CustomerName:   customer.Name(),
		CustomerMobile: customer.Mobile(),
		Items:          string(itemsJSON),
		Description:    aggregate.Description(),
		PaymentMode:    payment.Mode(),
		TotalAmount:    payment.TotalAmount(),
		DiscountAmount: payment.DiscountAmount(),
		AmountPaid:     payment.AmountPaid(),
		UploadID:       aggregate.UploadID(),
		IsInstant:      aggregate.IsInstant(),
		Status:         aggregate.Status().String(),
		StatusHistory:  string(historyJSON),
		CreatedAt:      aggregate.CreatedAt(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate via RestoreOrder so every component
// is re-validated on load.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.CustomerID, dto.CustomerName, dto.CustomerMobile)
	if err != nil {
		return nil, err
	}

	var itemDocs []lineItemDocument
	if err = json.Unmarshal([]byte(dto.Items), &itemDocs); err != nil {
		return nil, err
	}
	items := make([]order.LineItem, 0, len(itemDocs))
	for _, doc := range itemDocs {
		item, itemErr := order.NewLineItem(doc.ItemType, doc.Addons, doc.Quantity,
			doc.IsInstant, doc.UnitPrice, doc.GroupID)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	payment, err := order.NewPayment(dto.PaymentMode, dto.TotalAmount, dto.DiscountAmount, dto.AmountPaid)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var historyDocs []statusChangeDocument
	if err = json.Unmarshal([]byte(dto.StatusHistory), &historyDocs); err != nil {
		return nil, err
	}
	history := make([]order.StatusChange, 0, len(historyDocs))
	for _, doc := range historyDocs {
		entryStatus, statusErr := order.StatusFromString(doc.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		history = append(history, order.StatusChange{Status: entryStatus, At: doc.At})
	}

	return order.RestoreOrder(id, customer, items, dto.Description, payment,
		dto.UploadID, status, dto.CreatedAt, history)
}
