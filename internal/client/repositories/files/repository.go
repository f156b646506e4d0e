package files

import (
	"context"

	"github.com/dmitrijs2005/filekeeper/internal/client/models"
)

// Repository describes the upload journal.
type Repository interface {
	// Save inserts u or replaces the row with the same key.
	Save(ctx context.Context, u *models.PendingUpload) error

	// MarkUploaded flags the row as sent to object storage.
	MarkUploaded(ctx context.Context, key string) error

	// ListByModule returns rows of module with the given status, oldest first.
	ListByModule(ctx context.Context, module string, status models.UploadStatus) ([]*models.PendingUpload, error)

	// ListAll returns every row, oldest first.
	ListAll(ctx context.Context) ([]*models.PendingUpload, error)

	// Remove deletes rows by key. Missing keys are ignored.
	Remove(ctx context.Context, keys ...string) error
}
