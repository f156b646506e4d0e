package services

import (
	"context"
	"database/sql"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/filekeeper/internal/common"
	"github.com/dmitrijs2005/filekeeper/internal/dbx"
	"github.com/dmitrijs2005/filekeeper/internal/logging"
	"github.com/dmitrijs2005/filekeeper/internal/server/metrics"
	"github.com/dmitrijs2005/filekeeper/internal/server/models"
	"github.com/dmitrijs2005/filekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/filekeeper/internal/server/schema"
)

// RefStamp is written onto every record of a batch. Empty RefType and nil
// RefID leave the records untouched.
type RefStamp struct {
	RefType string
	RefID   *int64
}

// Reconciler upserts batches of loosely typed records keyed by file_id.
type Reconciler struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	schemas     *schema.Registry
	metrics     *metrics.Metrics
	logger      logging.Logger

	now   func() time.Time
	newID func() string
}

func NewReconciler(db *sql.DB, m repomanager.RepositoryManager, schemas *schema.Registry,
	mt *metrics.Metrics, logger logging.Logger) *Reconciler {
	return &Reconciler{
		db:          db,
		repomanager: m,
		schemas:     schemas,
		metrics:     mt,
		logger:      logger.With("component", "reconciler"),
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// Upsert validates every record against the named schema and then, inside a
// single transaction, updates the rows whose file_id already exists and
// inserts the rest. Rows are returned in input order with ids assigned.
//
// Nothing is written when any record fails validation. A failure inside the
// transaction rolls back the whole batch and matches common.ErrTransaction.
func (r *Reconciler) Upsert(ctx context.Context, schemaName string, records []models.Record,
	ref RefStamp, actor string) ([]*models.FileMetadata, error) {

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty batch", common.ErrValidation)
	}

	s, err := r.schemas.Lookup(schemaName)
	if err != nil {
		return nil, err
	}

	var violations []common.FieldViolation
	for i, rec := range records {
		violations = append(violations, s.Validate(i, rec)...)
	}
	if len(violations) > 0 {
		return nil, &common.SchemaError{Schema: s.Name(), Violations: violations}
	}

	batch := make([]models.Record, len(records))
	seen := make(map[string]int, len(records))

	for i, rec := range records {
		b := maps.Clone(rec)
		if b == nil {
			b = models.Record{}
		}
		if ref.RefType != "" {
			b[schema.FieldRefType] = ref.RefType
		}
		if ref.RefID != nil {
			b[schema.FieldRefID] = *ref.RefID
		}

		if id, _ := b[schema.FieldFileID].(string); id != "" {
			if j, dup := seen[id]; dup {
				return nil, fmt.Errorf("%w: file_id %s appears in records %d and %d", common.ErrValidation, id, j, i)
			}
			seen[id] = i
		}
		batch[i] = b
	}

	out := make([]*models.FileMetadata, len(batch))
	var inserted, updated int

	err = dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := r.repomanager.Files(tx, s.Table())

		existing, err := repo.FindByFileIDs(ctx, slices.Sorted(maps.Keys(seen)), true)
		if err != nil {
			return err
		}

		var inserts, updates []*models.FileMetadata
		fields := map[string]struct{}{}
		now := r.now().UTC()

		for i, rec := range batch {
			id, _ := rec[schema.FieldFileID].(string)

			if cur, ok := existing[id]; ok && id != "" {
				row := cur.Clone()
				if err := s.Apply(row, rec); err != nil {
					return err
				}
				for k := range rec {
					if s.Writable(k) {
						fields[k] = struct{}{}
					}
				}
				updates = append(updates, row)
				out[i] = row
				continue
			}

			row := &models.FileMetadata{CreateDate: now, CreateUID: actor}
			if err := s.Apply(row, rec); err != nil {
				return err
			}
			if row.FileID == "" {
				row.FileID = r.newID()
			}
			inserts = append(inserts, row)
			out[i] = row
		}

		if err := repo.BulkUpdate(ctx, updates, slices.Sorted(maps.Keys(fields))); err != nil {
			return err
		}
		if err := repo.BulkInsert(ctx, inserts); err != nil {
			return err
		}

		inserted, updated = len(inserts), len(updates)
		return nil
	})
	if err != nil {
		r.logger.Error(ctx, "upsert rolled back", "schema", s.Name(), "records", len(records), "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrTransaction, err)
	}

	r.metrics.ReconciledRecords.WithLabelValues("insert").Add(float64(inserted))
	r.metrics.ReconciledRecords.WithLabelValues("update").Add(float64(updated))
	r.logger.Debug(ctx, "upsert committed", "schema", s.Name(), "inserted", inserted, "updated", updated, "actor", actor)

	return out, nil
}
