package files

import (
	"context"

	"github.com/dmitrijs2005/filekeeper/internal/server/models"
)

// Repository stores file metadata rows of one table.
type Repository interface {
	// FindByFileIDs returns non-deleted rows keyed by file_id. With forUpdate
	// the rows stay locked until the surrounding transaction ends.
	FindByFileIDs(ctx context.Context, fileIDs []string, forUpdate bool) (map[string]*models.FileMetadata, error)
	ListByRef(ctx context.Context, refType string, refID *int64) ([]*models.FileMetadata, error)
	GetByIDAndPath(ctx context.Context, id int64, filePath string) (*models.FileMetadata, error)
	GetForPreview(ctx context.Context, id int64, fileID, fileName string) (*models.FileMetadata, error)
	GetByFileIDAndPath(ctx context.Context, fileID, filePath string) (*models.FileMetadata, error)
	BulkInsert(ctx context.Context, rows []*models.FileMetadata) error
	BulkUpdate(ctx context.Context, rows []*models.FileMetadata, fields []string) error
	Delete(ctx context.Context, id int64) error
}
