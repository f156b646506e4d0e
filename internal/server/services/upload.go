package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/filekeeper/internal/common"
	"github.com/dmitrijs2005/filekeeper/internal/logging"
	"github.com/dmitrijs2005/filekeeper/internal/server/config"
	"github.com/dmitrijs2005/filekeeper/internal/server/metrics"
	"github.com/dmitrijs2005/filekeeper/internal/server/models"
	"github.com/dmitrijs2005/filekeeper/internal/server/objectstore"
	"github.com/dmitrijs2005/filekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/filekeeper/internal/server/schema"
)

// UploadRequest asks for presigned PUT targets.
type UploadRequest struct {
	Module   string
	Classify string
	Files    []models.UploadFile
}

// CommitRequest records uploaded objects against a domain reference.
type CommitRequest struct {
	Files   []models.FileDescriptor
	RefType string
	RefID   *int64
	Module  string
	// Relocate moves every object from TEMPS/<module>/ to UPLOADED/<module>/
	// once metadata is committed.
	Relocate bool
	// Schema defaults to the file storage schema.
	Schema string
}

type UploadService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	reconciler  *Reconciler
	gateway     objectstore.Gateway
	metrics     *metrics.Metrics
	logger      logging.Logger

	bucket     string
	presignTTL time.Duration

	now func() time.Time
}

func NewUploadService(db *sql.DB, m repomanager.RepositoryManager, reconciler *Reconciler,
	gateway objectstore.Gateway, cfg *config.Config, mt *metrics.Metrics, logger logging.Logger) *UploadService {
	return &UploadService{
		db:          db,
		repomanager: m,
		reconciler:  reconciler,
		gateway:     gateway,
		metrics:     mt,
		logger:      logger.With("component", "upload"),
		bucket:      cfg.S3Bucket,
		presignTTL:  cfg.PresignTTL,
		now:         time.Now,
	}
}

// RequestUpload returns one presigned PUT target per file under
// <classify>/<module>/<uuid><ext>.
func (s *UploadService) RequestUpload(ctx context.Context, req UploadRequest) ([]models.UploadTarget, error) {
	if len(req.Files) == 0 {
		return nil, fmt.Errorf("%w: no files", common.ErrValidation)
	}

	module, err := normalizeModule(req.Module)
	if err != nil {
		return nil, err
	}

	classification, err := models.ParseClassification(req.Classify)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrValidation, err)
	}

	for i, f := range req.Files {
		if strings.TrimSpace(f.OriginalFileName) == "" {
			return nil, fmt.Errorf("%w: file %d: original file name is required", common.ErrValidation, i)
		}
		if f.FileSize < 0 {
			return nil, fmt.Errorf("%w: file %d: negative size", common.ErrValidation, i)
		}
	}

	expires := s.now().UTC().Add(s.presignTTL)
	targets := make([]models.UploadTarget, 0, len(req.Files))

	for _, f := range req.Files {
		name := uuid.NewString() + strings.ToLower(path.Ext(f.OriginalFileName))
		key := classification.Key(module, name)

		url, err := s.gateway.PresignURL(ctx, key, objectstore.OpPut, s.presignTTL)
		if err != nil {
			return nil, err
		}

		targets = append(targets, models.UploadTarget{
			OriginalFileName: f.OriginalFileName,
			FileName:         name,
			Key:              key,
			URL:              url,
			ContentType:      f.ContentType,
			FileSize:         f.FileSize,
			ExpiresAt:        expires,
		})
	}

	return targets, nil
}

// Commit writes metadata for uploaded objects and, when asked, relocates them
// to the committed classification.
//
// Metadata is written first in one transaction. If that fails nothing is
// moved. If relocation then fails the committed rows are returned together
// with a *common.PartialCommitError naming the keys still under TEMPS.
func (s *UploadService) Commit(ctx context.Context, req CommitRequest, actor string) ([]*models.FileMetadata, error) {
	module, rests, err := s.validateCommit(req)
	if err != nil {
		s.metrics.Commits.WithLabelValues("failed").Inc()
		return nil, err
	}

	records := make([]models.Record, len(req.Files))
	for i, f := range req.Files {
		key := f.Key
		if req.Relocate {
			key = models.Uploaded.Key(module, rests[i])
		}
		records[i] = commitRecord(f, key)
	}

	schemaName := req.Schema
	if schemaName == "" {
		schemaName = schema.FileStorageName
	}

	rows, err := s.reconciler.Upsert(ctx, schemaName, records, RefStamp{RefType: req.RefType, RefID: req.RefID}, actor)
	if err != nil {
		s.metrics.Commits.WithLabelValues("failed").Inc()
		return nil, err
	}

	if !req.Relocate {
		s.metrics.Commits.WithLabelValues("ok").Inc()
		return rows, nil
	}

	err = s.gateway.CopyAndDeleteBatch(ctx, s.bucket, models.Temps.Prefix(module), models.Uploaded.Prefix(module), rests)
	if err != nil {
		pending := rests
		var be *objectstore.BatchError
		if errors.As(err, &be) {
			pending = be.Keys()
		}

		keys := make([]string, len(pending))
		for i, rest := range pending {
			keys[i] = models.Temps.Key(module, rest)
		}

		s.metrics.Commits.WithLabelValues("partial").Inc()
		s.metrics.PendingRelocations.Add(float64(len(keys)))
		s.logger.Warn(ctx, "metadata committed, relocation pending",
			"ref_type", req.RefType, "ref_id", req.RefID, "keys", keys, "error", err)

		return rows, &common.PartialCommitError{Keys: keys, RefType: req.RefType, RefID: req.RefID, Err: err}
	}

	s.metrics.Commits.WithLabelValues("ok").Inc()
	s.logger.Info(ctx, "upload committed", "ref_type", req.RefType, "files", len(rows), "actor", actor)
	return rows, nil
}

func (s *UploadService) validateCommit(req CommitRequest) (string, []string, error) {
	if len(req.Files) == 0 {
		return "", nil, fmt.Errorf("%w: no files", common.ErrValidation)
	}
	module, err := normalizeModule(req.Module)
	if err != nil {
		return "", nil, err
	}

	rests := make([]string, len(req.Files))
	keys := make(map[string]int, len(req.Files))

	for i, f := range req.Files {
		if f.Key == "" {
			return "", nil, fmt.Errorf("%w: file %d: key is required", common.ErrValidation, i)
		}
		if f.FileSize < 0 {
			return "", nil, fmt.Errorf("%w: file %d: negative size", common.ErrValidation, i)
		}
		if j, dup := keys[f.Key]; dup {
			return "", nil, fmt.Errorf("%w: key %s appears in files %d and %d", common.ErrValidation, f.Key, j, i)
		}
		keys[f.Key] = i

		if req.Relocate {
			_, rest, err := models.RelocationTarget(f.Key, module)
			if err != nil {
				return "", nil, fmt.Errorf("%w: file %d: %w", common.ErrValidation, i, err)
			}
			rests[i] = rest
		}
	}

	return module, rests, nil
}

func commitRecord(f models.FileDescriptor, key string) models.Record {
	fileName := f.FileName
	if fileName == "" {
		fileName = models.BaseName(key)
	}
	original := f.OriginalFileName
	if original == "" {
		original = models.BaseName(f.Key)
	}

	rec := maps.Clone(f.Attributes)
	if rec == nil {
		rec = models.Record{}
	}
	rec[schema.FieldOriginalFileName] = original
	rec[schema.FieldFileName] = fileName
	rec[schema.FieldFilePath] = key
	rec[schema.FieldFileSize] = f.FileSize
	rec[schema.FieldFileType] = f.ContentType
	if f.FileID != "" {
		rec[schema.FieldFileID] = f.FileID
	}
	if f.Description != nil {
		rec[schema.FieldDescription] = *f.Description
	}
	return rec
}

// DownloadURL returns a presigned GET for a committed file. The pair must
// match a live row so callers cannot sign arbitrary keys.
func (s *UploadService) DownloadURL(ctx context.Context, fileID, key string) (string, time.Time, error) {
	if fileID == "" || key == "" {
		return "", time.Time{}, fmt.Errorf("%w: file_id and key are required", common.ErrValidation)
	}

	repo := s.repomanager.Files(s.db, schema.FileStorageTable)
	row, err := repo.GetByFileIDAndPath(ctx, fileID, key)
	if err != nil {
		return "", time.Time{}, err
	}

	url, err := s.gateway.PresignURL(ctx, row.FilePath, objectstore.OpGet, s.presignTTL)
	if err != nil {
		return "", time.Time{}, err
	}
	return url, s.now().UTC().Add(s.presignTTL), nil
}

// DiscardUpload removes an object that was uploaded but never committed.
func (s *UploadService) DiscardUpload(ctx context.Context, key string) error {
	if !strings.HasPrefix(key, string(models.Temps)+"/") || strings.Contains(key, "..") {
		return fmt.Errorf("%w: only %s keys can be discarded", common.ErrValidation, models.Temps)
	}

	ok, err := s.gateway.Delete(ctx, key)
	if err != nil || !ok {
		return &common.ObjectDeleteError{Key: key, Err: err}
	}
	s.logger.Debug(ctx, "upload discarded", "key", key)
	return nil
}

func normalizeModule(module string) (string, error) {
	module = strings.TrimSpace(module)
	if module == "" {
		return common.DefaultModule, nil
	}
	if strings.ContainsAny(module, "/\\") || module == "." || module == ".." {
		return "", fmt.Errorf("%w: invalid module %q", common.ErrValidation, module)
	}
	return module, nil
}
