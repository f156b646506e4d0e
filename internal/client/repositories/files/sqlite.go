package files

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/filekeeper/internal/client/models"
	"github.com/dmitrijs2005/filekeeper/internal/common"
	"github.com/dmitrijs2005/filekeeper/internal/dbx"
)

const uploadColumns = `key, file_id, module, original_file_name, file_name, local_path, file_size, content_type, status, created_at`

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Save inserts u or refreshes the row with the same key. A stored file_id is
// never replaced.
func (r *SQLiteRepository) Save(ctx context.Context, u *models.PendingUpload) error {

	query := `INSERT INTO pending_uploads (` + uploadColumns + `)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET module = excluded.module,
				original_file_name = excluded.original_file_name,
				file_name = excluded.file_name,
				local_path = excluded.local_path,
				file_size = excluded.file_size,
				content_type = excluded.content_type,
				status = excluded.status
	`
	_, err := r.db.ExecContext(ctx, query, u.Key, u.FileID, u.Module, u.OriginalFileName, u.FileName, u.LocalPath,
		u.FileSize, u.ContentType, string(u.Status), u.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to save upload: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) MarkUploaded(ctx context.Context, key string) error {

	query := `UPDATE pending_uploads SET status = ? WHERE key = ?`
	result, err := r.db.ExecContext(ctx, query, string(models.UploadSent), key)
	if err != nil {
		return fmt.Errorf("failed to mark upload: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected != 1 {
		return common.ErrNotFound
	}

	return nil
}

func (r *SQLiteRepository) list(ctx context.Context, query string, args ...any) ([]*models.PendingUpload, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error selecting uploads: %w", err)
	}
	defer rows.Close()

	var result []*models.PendingUpload

	for rows.Next() {
		var (
			u      = &models.PendingUpload{}
			status string
		)
		err := rows.Scan(&u.Key, &u.FileID, &u.Module, &u.OriginalFileName, &u.FileName, &u.LocalPath,
			&u.FileSize, &u.ContentType, &status, &u.CreatedAt)
		if err != nil {
			return nil, err
		}
		u.Status = models.UploadStatus(status)
		result = append(result, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *SQLiteRepository) ListByModule(ctx context.Context, module string, status models.UploadStatus) ([]*models.PendingUpload, error) {
	query := `SELECT ` + uploadColumns + ` FROM pending_uploads WHERE module = ? AND status = ? ORDER BY created_at, key`
	return r.list(ctx, query, module, string(status))
}

func (r *SQLiteRepository) ListAll(ctx context.Context) ([]*models.PendingUpload, error) {
	query := `SELECT ` + uploadColumns + ` FROM pending_uploads ORDER BY created_at, key`
	return r.list(ctx, query)
}

func (r *SQLiteRepository) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(keys)), ", ")
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}

	query := `DELETE FROM pending_uploads WHERE key IN (` + placeholders + `)`
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to remove uploads: %w", err)
	}
	return nil
}
