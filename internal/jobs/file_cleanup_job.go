package jobs

import (
	"context"
	"log/slog"
	"time"

	"studiodesk/internal/core/ports"

	"github.com/robfig/cron/v3"
)

const (
	// DefaultReceiptAge is how long settled bill payments keep their receipt
	// before it is detached and queued for deletion.
	DefaultReceiptAge = 30 * 24 * time.Hour

	// DefaultRetention is how long a queued upload waits before the file is
	// removed from the store permanently.
	DefaultRetention = 7 * 24 * time.Hour

	// DefaultCleanupSchedule runs the cleanup once a day at 03:00.
	DefaultCleanupSchedule = "0 3 * * *"
)

// receiptDetacher clears aged receipt references and reports the detached
// upload ids. Implemented by the postgres transaction repository.
type receiptDetacher interface {
	DetachAgedReceipts(ctx context.Context, cutoff time.Time) ([]string, error)
}

// FileCleanupJob removes receipt uploads in two stages: settled bill payments
// past the receipt age have their upload detached and queued, and queued
// entries past the retention window are deleted from the file store. The two
// stages make an accidental settlement recoverable until retention runs out.
type FileCleanupJob struct {
	receipts   receiptDetacher
	queue      ports.CleanupQueueRepository
	files      ports.FileStore
	schedule   string
	receiptAge time.Duration
	retention  time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewFileCleanupJob creates the cleanup job. Non-positive durations and an
// empty schedule fall back to the defaults.
func NewFileCleanupJob(
	receipts receiptDetacher,
	queue ports.CleanupQueueRepository,
	files ports.FileStore,
	schedule string,
	receiptAge time.Duration,
	retention time.Duration,
	logger *slog.Logger,
) *FileCleanupJob {
	if schedule == "" {
		schedule = DefaultCleanupSchedule
	}
	if receiptAge <= 0 {
		receiptAge = DefaultReceiptAge
	}
	if retention <= 0 {
		retention = DefaultRetention
	}

	return &FileCleanupJob{
		receipts:   receipts,
		queue:      queue,
		files:      files,
		schedule:   schedule,
		receiptAge: receiptAge,
		retention:  retention,
		cron:       cron.New(),
		logger:     logger.With("component", "file_cleanup_job"),
	}
}

// Start schedules the cleanup job.
func (j *FileCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "File cleanup job started", "schedule", j.schedule)
	return nil
}

// Stop stops the cleanup job.
func (j *FileCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "File cleanup job stopped")
}

// Run executes one cleanup pass. Failures on individual uploads are logged
// and skipped; a skipped upload stays queued for the next pass.
func (j *FileCleanupJob) Run(ctx context.Context) {
	now := time.Now().UTC()

	j.detachAgedReceipts(ctx, now)
	j.deleteExpiredUploads(ctx, now)
}

func (j *FileCleanupJob) detachAgedReceipts(ctx context.Context, now time.Time) {
	uploadIDs, err := j.receipts.DetachAgedReceipts(ctx, now.Add(-j.receiptAge))
	if err != nil {
		j.logger.ErrorContext(ctx, "Detaching aged receipts failed", "error", err)
		return
	}

	for _, uploadID := range uploadIDs {
		if err = j.queue.Enqueue(ctx, uploadID, now); err != nil {
			j.logger.ErrorContext(ctx, "Queueing receipt for deletion failed",
				"uploadId", uploadID, "error", err)
		}
	}

	if len(uploadIDs) > 0 {
		j.logger.InfoContext(ctx, "Queued aged receipts for deletion", "count", len(uploadIDs))
	}
}

func (j *FileCleanupJob) deleteExpiredUploads(ctx context.Context, now time.Time) {
	entries, err := j.queue.ListSoftDeletedBefore(ctx, now.Add(-j.retention))
	if err != nil {
		j.logger.ErrorContext(ctx, "Listing expired uploads failed", "error", err)
		return
	}

	deleted := 0
	for _, entry := range entries {
		if err = j.files.Delete(ctx, entry.UploadID); err != nil {
			j.logger.ErrorContext(ctx, "Deleting upload failed",
				"uploadId", entry.UploadID, "error", err)
			continue
		}
		if err = j.queue.Remove(ctx, entry.UploadID); err != nil {
			j.logger.ErrorContext(ctx, "Removing queue entry failed",
				"uploadId", entry.UploadID, "error", err)
			continue
		}
		deleted++
	}

	if deleted > 0 {
		j.logger.InfoContext(ctx, "Deleted expired uploads", "count", deleted)
	}
}
