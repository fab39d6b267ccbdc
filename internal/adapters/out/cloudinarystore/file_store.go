// Package cloudinarystore implements the FileStore port on Cloudinary.
// Uploads land in a single folder; the returned public id is the opaque
// upload id the rest of the system carries around.
package cloudinarystore

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"studiodesk/internal/pkg/errs"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryFileStore stores customer uploads (photos to print, bill
// receipts) in Cloudinary. PDFs upload as raw resources, everything else as
// images; the distinction is made by filename suffix only.
type CloudinaryFileStore struct {
	client *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryFileStore creates a file store rooted at the given folder.
func NewCloudinaryFileStore(client *cloudinary.Cloudinary, folder string) *CloudinaryFileStore {
	return &CloudinaryFileStore{
		client: client,
		folder: folder,
	}
}

// Upload stores the file content and returns its opaque upload id.
func (s *CloudinaryFileStore) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	if filename == "" {
		return "", errs.NewValueIsRequiredError("filename")
	}

	result, err := s.client.Upload.Upload(ctx, content, uploader.UploadParams{
		Folder:       s.folder,
		PublicID:     publicID(filename),
		ResourceType: resourceType(filename),
	})
	if err != nil {
		return "", fmt.Errorf("upload %q: %w", filename, err)
	}

	return result.PublicID, nil
}

// ResolveURL returns a retrievable URL for a previously uploaded file.
func (s *CloudinaryFileStore) ResolveURL(_ context.Context, uploadID string) (string, error) {
	if uploadID == "" {
		return "", errs.NewValueIsRequiredError("uploadID")
	}

	asset, err := s.client.Image(uploadID)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", uploadID, err)
	}

	url, err := asset.String()
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", uploadID, err)
	}

	return url, nil
}

// Delete removes the file from the store permanently.
func (s *CloudinaryFileStore) Delete(ctx context.Context, uploadID string) error {
	if uploadID == "" {
		return errs.NewValueIsRequiredError("uploadID")
	}

	_, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: uploadID,
	})
	if err != nil {
		return fmt.Errorf("delete %q: %w", uploadID, err)
	}

	return nil
}

// publicID derives a collision-resistant public id from the original
// filename, keeping the name readable in the Cloudinary console.
func publicID(filename string) string {
	base := filename
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)

	return fmt.Sprintf("%s_%d", base, time.Now().UnixNano())
}

// resourceType maps the filename suffix to a Cloudinary resource type.
// Only PDFs are special-cased; everything else is treated as an image.
func resourceType(filename string) string {
	if strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return "raw"
	}
	return "image"
}
