// Package cleanupqueuerepo persists the upload deletion queue consumed by the
// scheduled file cleanup job.
package cleanupqueuerepo

import (
	"context"
	"time"

	"studiodesk/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CleanupEntryDTO represents one soft-deleted upload awaiting hard deletion.
type CleanupEntryDTO struct {
	UploadID      string    `gorm:"primaryKey"`
	SoftDeletedAt time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "upload_cleanup_queue".
func (CleanupEntryDTO) TableName() string {
	return "upload_cleanup_queue"
}

// GormCleanupQueueRepository implements CleanupQueueRepository using GORM.
type GormCleanupQueueRepository struct {
	db *gorm.DB
}

// NewGormCleanupQueueRepository creates a new GORM cleanup queue repository.
func NewGormCleanupQueueRepository(db *gorm.DB) *GormCleanupQueueRepository {
	return &GormCleanupQueueRepository{db: db}
}

// Enqueue records an upload as soft-deleted at the given time. Enqueueing the
// same upload twice keeps the earliest timestamp.
func (r *GormCleanupQueueRepository) Enqueue(ctx context.Context, uploadID string, at time.Time) error {
	dto := CleanupEntryDTO{UploadID: uploadID, SoftDeletedAt: at}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}

// ListSoftDeletedBefore retrieves entries soft-deleted before the cutoff,
// oldest first.
func (r *GormCleanupQueueRepository) ListSoftDeletedBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]ports.CleanupEntry, error) {
	var dtos []CleanupEntryDTO
	if err := r.db.WithContext(ctx).
		Where("soft_deleted_at < ?", cutoff).
		Order("soft_deleted_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]ports.CleanupEntry, 0, len(dtos))
	for _, dto := range dtos {
		entries = append(entries, ports.CleanupEntry{
			UploadID:      dto.UploadID,
			SoftDeletedAt: dto.SoftDeletedAt,
		})
	}

	return entries, nil
}

// Remove drops an entry from the queue after its file was hard-deleted.
func (r *GormCleanupQueueRepository) Remove(ctx context.Context, uploadID string) error {
	return r.db.WithContext(ctx).
		Delete(&CleanupEntryDTO{}, "upload_id = ?", uploadID).Error
}
