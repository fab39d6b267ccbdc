// Package serviceorderrepo persists custom service order aggregates.
package serviceorderrepo

import (
	"encoding/json"
	"time"

	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/core/domain/model/order"
	"studiodesk/internal/core/domain/model/serviceorder"

	"github.com/google/uuid"
)

// ServiceOrderDTO represents the database structure for persisting service orders.
type ServiceOrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID     string    `gorm:"index"`
	CustomerName   string
	CustomerMobile string
	ServiceName    string
	Amount         float64
	Description    string
	PaymentMode    string
	TotalAmount    float64
	DiscountAmount float64
	AmountPaid     float64
	UploadIDs      string    `gorm:"type:jsonb"`
	Status         string    `gorm:"index"`
	CreatedAt      time.Time `gorm:"index"`
}

// TableName specifies the database table name for service order entities.
func (ServiceOrderDTO) TableName() string {
	return "service_orders"
}

func fromDomain(aggregate *serviceorder.ServiceOrder) (ServiceOrderDTO, error) {
	uploadIDs := aggregate.UploadIDs()
	if uploadIDs == nil {
		uploadIDs = []string{}
	}
	uploadsJSON, err := json.Marshal(uploadIDs)
	if err != nil {
		return ServiceOrderDTO{}, err
	}

	customer := aggregate.Customer()
	payment := aggregate.Payment()

	return ServiceOrderDTO{
		ID:             aggregate.ID().Bytes(),
		CustomerID:     customer.ID(),
		CustomerName:   customer.Name(),
		CustomerMobile: customer.Mobile(),
		ServiceName:    aggregate.ServiceName(),
		Amount:         aggregate.Amount(),
		Description:    aggregate.Description(),
		PaymentMode:    payment.Mode(),
		TotalAmount:    payment.TotalAmount(),
		DiscountAmount: payment.DiscountAmount(),
		AmountPaid:     payment.AmountPaid(),
		UploadIDs:      string(uploadsJSON),
		Status:         aggregate.Status().String(),
		CreatedAt:      aggregate.CreatedAt(),
	}, nil
}

func toDomain(dto ServiceOrderDTO) (*serviceorder.ServiceOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.CustomerID, dto.CustomerName, dto.CustomerMobile)
	if err != nil {
		return nil, err
	}

	payment, err := order.NewPayment(dto.PaymentMode, dto.TotalAmount, dto.DiscountAmount, dto.AmountPaid)
	if err != nil {
		return nil, err
	}

	status, err := serviceorder.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var uploadIDs []string
	if err = json.Unmarshal([]byte(dto.UploadIDs), &uploadIDs); err != nil {
		return nil, err
	}

	return serviceorder.RestoreServiceOrder(id, customer, dto.ServiceName, dto.Amount,
		dto.Description, payment, uploadIDs, status, dto.CreatedAt)
}
