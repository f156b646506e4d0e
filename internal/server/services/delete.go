package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/filekeeper/internal/common"
	"github.com/dmitrijs2005/filekeeper/internal/logging"
	"github.com/dmitrijs2005/filekeeper/internal/server/metrics"
	"github.com/dmitrijs2005/filekeeper/internal/server/objectstore"
	"github.com/dmitrijs2005/filekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/filekeeper/internal/server/schema"
)

type DeleteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	gateway     objectstore.Gateway
	metrics     *metrics.Metrics
	logger      logging.Logger
}

func NewDeleteService(db *sql.DB, m repomanager.RepositoryManager, gateway objectstore.Gateway,
	mt *metrics.Metrics, logger logging.Logger) *DeleteService {
	return &DeleteService{
		db:          db,
		repomanager: m,
		gateway:     gateway,
		metrics:     mt,
		logger:      logger.With("component", "delete"),
	}
}

// Delete removes the object first and the metadata row second. When the
// object cannot be removed the row is kept and a *common.ObjectDeleteError is
// returned, so metadata never points at a missing object.
func (s *DeleteService) Delete(ctx context.Context, id int64, filePath, actor string) error {
	if id <= 0 || filePath == "" {
		s.metrics.Deletes.WithLabelValues("invalid").Inc()
		return fmt.Errorf("%w: id and file_path are required", common.ErrValidation)
	}

	repo := s.repomanager.Files(s.db, schema.FileStorageTable)

	row, err := repo.GetByIDAndPath(ctx, id, filePath)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.metrics.Deletes.WithLabelValues("not_found").Inc()
		} else {
			s.metrics.Deletes.WithLabelValues("failed").Inc()
		}
		return err
	}

	ok, err := s.gateway.Delete(ctx, row.FilePath)
	if err != nil || !ok {
		s.metrics.Deletes.WithLabelValues("object_error").Inc()
		s.logger.Error(ctx, "object delete failed, metadata kept", "id", row.ID, "key", row.FilePath, "error", err)
		return &common.ObjectDeleteError{Key: row.FilePath, Err: err}
	}

	if err := repo.Delete(ctx, row.ID); err != nil && !errors.Is(err, common.ErrNotFound) {
		s.metrics.Deletes.WithLabelValues("failed").Inc()
		s.logger.Error(ctx, "object deleted but metadata row remains", "id", row.ID, "key", row.FilePath, "error", err)
		return fmt.Errorf("delete metadata %d: %w", row.ID, err)
	}

	s.metrics.Deletes.WithLabelValues("ok").Inc()
	s.logger.Info(ctx, "file deleted", "id", row.ID, "key", row.FilePath, "actor", actor)
	return nil
}
