package ports

import (
	"context"
	"io"
	"time"
)

// FileStore defines the contract for the external blob store holding customer
// uploads (photos to print, bill receipts). Upload ids are opaque strings;
// the PDF-vs-image distinction is made by filename suffix only.
type FileStore interface {
	// Upload stores the file content and returns its opaque upload id.
	Upload(ctx context.Context, filename string, content io.Reader) (string, error)

	// ResolveURL returns a retrievable URL for a previously uploaded file.
	ResolveURL(ctx context.Context, uploadID string) (string, error)

	// Delete removes the file from the store permanently.
	Delete(ctx context.Context, uploadID string) error
}

// CleanupEntry is one row of the upload deletion queue: a soft-deleted upload
// waiting out its retention window before hard deletion.
type CleanupEntry struct {
	UploadID      string
	SoftDeletedAt time.Time
}

// CleanupQueueRepository defines the persistence contract for the upload
// deletion queue driven by the scheduled cleanup job.
type CleanupQueueRepository interface {
	// Enqueue records an upload as soft-deleted at the given time.
	// Enqueueing the same upload twice keeps the earliest timestamp.
	Enqueue(ctx context.Context, uploadID string, at time.Time) error

	// ListSoftDeletedBefore retrieves entries soft-deleted before the cutoff.
	ListSoftDeletedBefore(ctx context.Context, cutoff time.Time) ([]CleanupEntry, error)

	// Remove drops an entry from the queue after its file was hard-deleted.
	Remove(ctx context.Context, uploadID string) error
}
