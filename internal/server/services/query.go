package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/filekeeper/internal/common"
	"github.com/dmitrijs2005/filekeeper/internal/server/models"
	"github.com/dmitrijs2005/filekeeper/internal/server/objectstore"
	"github.com/dmitrijs2005/filekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/filekeeper/internal/server/schema"
)

// Preview is an open object stream plus what a client needs to save it.
type Preview struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

type QueryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	gateway     objectstore.Gateway
}

func NewQueryService(db *sql.DB, m repomanager.RepositoryManager, gateway objectstore.Gateway) *QueryService {
	return &QueryService{db: db, repomanager: m, gateway: gateway}
}

// ListByRef returns the live files of a reference ordered by id. A nil refID
// selects the files of refType that carry no ref_id.
func (s *QueryService) ListByRef(ctx context.Context, refType string, refID *int64) ([]*models.FileMetadata, error) {
	if strings.TrimSpace(refType) == "" {
		return nil, fmt.Errorf("%w: ref_type is required", common.ErrValidation)
	}
	return s.repomanager.Files(s.db, schema.FileStorageTable).ListByRef(ctx, refType, refID)
}

// Preview opens the object of a row matching id, file_id and file_name. The
// caller must close Body.
func (s *QueryService) Preview(ctx context.Context, id int64, fileID, fileName string) (*Preview, error) {
	if id <= 0 || fileID == "" || fileName == "" {
		return nil, fmt.Errorf("%w: id, file_id and file_name are required", common.ErrValidation)
	}

	row, err := s.repomanager.Files(s.db, schema.FileStorageTable).GetForPreview(ctx, id, fileID, fileName)
	if err != nil {
		return nil, err
	}

	body, err := s.gateway.Open(ctx, row.FilePath)
	if err != nil {
		return nil, err
	}

	return &Preview{
		Name:        models.BaseName(row.FileName),
		ContentType: row.FileType,
		Size:        row.FileSize,
		Body:        body,
	}, nil
}
