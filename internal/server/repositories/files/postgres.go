// Package files provides the PostgreSQL-backed repository for file metadata.
package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/filekeeper/internal/common"
	"github.com/dmitrijs2005/filekeeper/internal/dbx"
	"github.com/dmitrijs2005/filekeeper/internal/server/models"
)

const fileColumns = `id, file_id, ref_type, ref_id, original_file_name, file_name, file_path, file_size, file_type, description, deleted, create_date, create_uid`

const insertColumns = `file_id, ref_type, ref_id, original_file_name, file_name, file_path, file_size, file_type, description, deleted, create_date, create_uid`

const insertColumnCount = 12

// PostgreSQL caps a statement at 65535 bind parameters.
const maxBindParams = 65535

var insertChunkRows = maxBindParams / insertColumnCount

// PostgresRepository implements file storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db    dbx.DBTX
	table string
}

// NewPostgresRepository constructs a repository bound to the given DBTX and
// table. The table name comes from a registered schema, never from input.
func NewPostgresRepository(db dbx.DBTX, table string) *PostgresRepository {
	return &PostgresRepository{db: db, table: table}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFile(s scanner) (*models.FileMetadata, error) {
	var (
		f     models.FileMetadata
		refID sql.NullInt64
		desc  sql.NullString
	)
	if err := s.Scan(&f.ID, &f.FileID, &f.RefType, &refID, &f.OriginalFileName, &f.FileName,
		&f.FilePath, &f.FileSize, &f.FileType, &desc, &f.Deleted, &f.CreateDate, &f.CreateUID); err != nil {
		return nil, err
	}
	if refID.Valid {
		v := refID.Int64
		f.RefID = &v
	}
	if desc.Valid {
		v := desc.String
		f.Description = &v
	}
	return &f, nil
}

func (r *PostgresRepository) queryFiles(ctx context.Context, query string, args ...any) ([]*models.FileMetadata, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select files: %w", err)
	}
	defer rows.Close()

	var result []*models.FileMetadata
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, args ...any) (*models.FileMetadata, error) {
	f, err := scanFile(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select file: %w", err)
	}
	return f, nil
}

// FindByFileIDs returns the non-deleted rows whose file_id is in fileIDs.
func (r *PostgresRepository) FindByFileIDs(ctx context.Context, fileIDs []string, forUpdate bool) (map[string]*models.FileMetadata, error) {
	result := make(map[string]*models.FileMetadata, len(fileIDs))
	if len(fileIDs) == 0 {
		return result, nil
	}

	placeholders := make([]string, len(fileIDs))
	args := make([]any, len(fileIDs))
	for i, id := range fileIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE file_id IN (%s) AND deleted = false ORDER BY id`,
		fileColumns, r.table, strings.Join(placeholders, ", "))
	if forUpdate {
		query += ` FOR UPDATE`
	}

	rows, err := r.queryFiles(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	for _, f := range rows {
		result[f.FileID] = f
	}
	return result, nil
}

// ListByRef returns non-deleted rows of refType and refID. A nil refID
// selects the rows that carry no ref_id.
func (r *PostgresRepository) ListByRef(ctx context.Context, refType string, refID *int64) ([]*models.FileMetadata, error) {
	if refID == nil {
		query := fmt.Sprintf(`SELECT %s FROM %s WHERE ref_type = $1 AND ref_id IS NULL AND deleted = false ORDER BY id`, fileColumns, r.table)
		return r.queryFiles(ctx, query, refType)
	}
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE ref_type = $1 AND ref_id = $2 AND deleted = false ORDER BY id`, fileColumns, r.table)
	return r.queryFiles(ctx, query, refType, *refID)
}

// GetByIDAndPath returns the row with the given id and file_path, deleted or not.
func (r *PostgresRepository) GetByIDAndPath(ctx context.Context, id int64, filePath string) (*models.FileMetadata, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 AND file_path = $2`, fileColumns, r.table)
	return r.getOne(ctx, query, id, filePath)
}

// GetForPreview returns a non-deleted row matching id, file_id and file_name.
func (r *PostgresRepository) GetForPreview(ctx context.Context, id int64, fileID, fileName string) (*models.FileMetadata, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 AND file_id = $2 AND file_name = $3 AND deleted = false`, fileColumns, r.table)
	return r.getOne(ctx, query, id, fileID, fileName)
}

// GetByFileIDAndPath returns a non-deleted row matching file_id and file_path.
func (r *PostgresRepository) GetByFileIDAndPath(ctx context.Context, fileID, filePath string) (*models.FileMetadata, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE file_id = $1 AND file_path = $2 AND deleted = false`, fileColumns, r.table)
	return r.getOne(ctx, query, fileID, filePath)
}

// BulkInsert writes all rows and assigns their ids. Rows are sent in chunks
// that stay under the bind parameter limit; callers wrap it in a transaction.
// file_id must be unique within rows.
func (r *PostgresRepository) BulkInsert(ctx context.Context, rows []*models.FileMetadata) error {
	for start := 0; start < len(rows); start += insertChunkRows {
		end := min(start+insertChunkRows, len(rows))
		if err := r.insertChunk(ctx, rows[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) insertChunk(ctx context.Context, rows []*models.FileMetadata) error {
	values := make([]string, 0, len(rows))
	args := make([]any, 0, len(rows)*insertColumnCount)
	byFileID := make(map[string]*models.FileMetadata, len(rows))

	for i, f := range rows {
		ph := make([]string, insertColumnCount)
		for j := range ph {
			ph[j] = fmt.Sprintf("$%d", i*insertColumnCount+j+1)
		}
		values = append(values, "("+strings.Join(ph, ", ")+")")
		args = append(args, f.FileID, f.RefType, nullInt(f.RefID), f.OriginalFileName, f.FileName,
			f.FilePath, f.FileSize, f.FileType, nullString(f.Description), f.Deleted, f.CreateDate, f.CreateUID)
		byFileID[f.FileID] = f
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES %s RETURNING id, file_id`,
		r.table, insertColumns, strings.Join(values, ", "))

	res, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("bulk insert error: %w", err)
	}
	defer res.Close()

	n := 0
	for res.Next() {
		var (
			id     int64
			fileID string
		)
		if err := res.Scan(&id, &fileID); err != nil {
			return fmt.Errorf("bulk insert scan error: %w", err)
		}
		if f, ok := byFileID[fileID]; ok {
			f.ID = id
		}
		n++
	}
	if err := res.Err(); err != nil {
		return fmt.Errorf("bulk insert error: %w", err)
	}
	if n != len(rows) {
		return fmt.Errorf("unexpected rows inserted: %d of %d", n, len(rows))
	}
	return nil
}

// BulkUpdate writes the named fields of every row, keyed by id. Each row must
// exist.
func (r *PostgresRepository) BulkUpdate(ctx context.Context, rows []*models.FileMetadata, fields []string) error {
	if len(rows) == 0 || len(fields) == 0 {
		return nil
	}

	sets := make([]string, len(fields))
	for i, name := range fields {
		if _, ok := updatable[name]; !ok {
			return fmt.Errorf("field %q cannot be updated", name)
		}
		sets[i] = fmt.Sprintf("%s = $%d", name, i+1)
	}
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d`, r.table, strings.Join(sets, ", "), len(fields)+1)

	for _, f := range rows {
		args := make([]any, 0, len(fields)+1)
		for _, name := range fields {
			args = append(args, updatable[name](f))
		}
		args = append(args, f.ID)

		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("bulk update error: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected error: %w", err)
		}
		if n != 1 {
			return fmt.Errorf("unexpected rows affected for id %d: %d", f.ID, n)
		}
	}
	return nil
}

// Delete removes the row permanently.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

var updatable = map[string]func(*models.FileMetadata) any{
	"file_id":            func(f *models.FileMetadata) any { return f.FileID },
	"ref_type":           func(f *models.FileMetadata) any { return f.RefType },
	"ref_id":             func(f *models.FileMetadata) any { return nullInt(f.RefID) },
	"original_file_name": func(f *models.FileMetadata) any { return f.OriginalFileName },
	"file_name":          func(f *models.FileMetadata) any { return f.FileName },
	"file_path":          func(f *models.FileMetadata) any { return f.FilePath },
	"file_size":          func(f *models.FileMetadata) any { return f.FileSize },
	"file_type":          func(f *models.FileMetadata) any { return f.FileType },
	"description":        func(f *models.FileMetadata) any { return nullString(f.Description) },
	"deleted":            func(f *models.FileMetadata) any { return f.Deleted },
}

func nullInt(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}
