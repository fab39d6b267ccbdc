package transactionrepo

import (
	"context"
	"errors"
	"time"

	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/core/domain/model/transaction"
	"studiodesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransactionRepository implements TransactionRepository using GORM.
type GormTransactionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTransactionRepository creates a new GORM transaction repository.
func NewGormTransactionRepository(db *gorm.DB, tracker aggregateTracker) *GormTransactionRepository {
	return &GormTransactionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new transaction to the database.
func (r *GormTransactionRepository) Add(ctx context.Context, aggregate *transaction.Transaction) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing transaction to the database.
func (r *GormTransactionRepository) Update(ctx context.Context, aggregate *transaction.Transaction) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(&TransactionDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a transaction by ID.
func (r *GormTransactionRepository) Get(ctx context.Context, id kernel.UUID) (*transaction.Transaction, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransactionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transaction", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DetachAgedReceipts clears the receipt upload reference from settled bill
// payments created before the cutoff and returns the detached upload ids.
// Used by the file cleanup job; pending and failed bills keep their receipts.
func (r *GormTransactionRepository) DetachAgedReceipts(ctx context.Context, cutoff time.Time) ([]string, error) {
	// RETURNING on an UPDATE yields post-update values, so the cleared
	// upload ids are captured in a CTE before the update touches them.
	rows, err := r.db.WithContext(ctx).Raw(`
		WITH aged AS (
			SELECT id, upload_id
			FROM transactions
			WHERE kind = ?
			  AND upload_id <> ''
			  AND status IN (?, ?, ?)
			  AND created_at < ?
			FOR UPDATE
		)
		UPDATE transactions t
		SET upload_id = ''
		FROM aged
		WHERE t.id = aged.id
		RETURNING aged.upload_id`,
		transaction.KindBillPayment.String(),
		transaction.StatusDone.String(),
		transaction.StatusRefunded.String(),
		transaction.StatusDiscarded.String(),
		cutoff,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var uploadIDs []string
	for rows.Next() {
		var uploadID string
		if err = rows.Scan(&uploadID); err != nil {
			return nil, err
		}
		uploadIDs = append(uploadIDs, uploadID)
	}
	return uploadIDs, rows.Err()
}
