package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/filekeeper/internal/common"
	"github.com/dmitrijs2005/filekeeper/internal/dbx"
	"github.com/dmitrijs2005/filekeeper/internal/logging"
	"github.com/dmitrijs2005/filekeeper/internal/server/config"
	"github.com/dmitrijs2005/filekeeper/internal/server/metrics"
	"github.com/dmitrijs2005/filekeeper/internal/server/models"
	"github.com/dmitrijs2005/filekeeper/internal/server/objectstore"
	"github.com/dmitrijs2005/filekeeper/internal/server/repositories/files"
	"github.com/dmitrijs2005/filekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/filekeeper/internal/server/schema"
)

// -------- test fakes --------

// memFiles is an in-memory files.Repository. Writes land immediately; tests
// that need rollback check the sqlmock expectations instead.
type memFiles struct {
	files.Repository

	mu     sync.Mutex
	rows   map[int64]*models.FileMetadata
	nextID int64

	findErr   error
	insertErr error
	updateErr error
	deleteErr error

	forUpdate    []bool
	updateFields [][]string
	writes       int
}

func newMemFiles() *memFiles {
	return &memFiles{rows: map[int64]*models.FileMetadata{}}
}

func (m *memFiles) put(f *models.FileMetadata) *models.FileMetadata {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	c := f.Clone()
	c.ID = m.nextID
	m.rows[c.ID] = c
	return c.Clone()
}

func (m *memFiles) live() []*models.FileMetadata {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.FileMetadata
	for _, r := range m.rows {
		if !r.Deleted {
			out = append(out, r.Clone())
		}
	}
	slices.SortFunc(out, func(a, b *models.FileMetadata) int { return int(a.ID - b.ID) })
	return out
}

func (m *memFiles) FindByFileIDs(ctx context.Context, fileIDs []string, forUpdate bool) (map[string]*models.FileMetadata, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forUpdate = append(m.forUpdate, forUpdate)
	if m.findErr != nil {
		return nil, m.findErr
	}
	out := map[string]*models.FileMetadata{}
	for _, r := range m.rows {
		if !r.Deleted && slices.Contains(fileIDs, r.FileID) {
			out[r.FileID] = r.Clone()
		}
	}
	return out, nil
}

func (m *memFiles) ListByRef(ctx context.Context, refType string, refID *int64) ([]*models.FileMetadata, error) {
	var out []*models.FileMetadata
	for _, r := range m.live() {
		if r.RefType != refType {
			continue
		}
		if refID == nil {
			if r.RefID != nil {
				continue
			}
		} else if r.RefID == nil || *r.RefID != *refID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *memFiles) first(match func(*models.FileMetadata) bool) (*models.FileMetadata, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if match(r) {
			return r.Clone(), nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memFiles) GetByIDAndPath(ctx context.Context, id int64, filePath string) (*models.FileMetadata, error) {
	return m.first(func(r *models.FileMetadata) bool { return r.ID == id && r.FilePath == filePath })
}

func (m *memFiles) GetForPreview(ctx context.Context, id int64, fileID, fileName string) (*models.FileMetadata, error) {
	return m.first(func(r *models.FileMetadata) bool {
		return !r.Deleted && r.ID == id && r.FileID == fileID && r.FileName == fileName
	})
}

func (m *memFiles) GetByFileIDAndPath(ctx context.Context, fileID, filePath string) (*models.FileMetadata, error) {
	return m.first(func(r *models.FileMetadata) bool {
		return !r.Deleted && r.FileID == fileID && r.FilePath == filePath
	})
}

func (m *memFiles) BulkInsert(ctx context.Context, rows []*models.FileMetadata) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	for _, r := range rows {
		r.ID = m.put(r).ID
	}
	m.mu.Lock()
	m.writes += len(rows)
	m.mu.Unlock()
	return nil
}

func (m *memFiles) BulkUpdate(ctx context.Context, rows []*models.FileMetadata, fields []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateFields = append(m.updateFields, fields)
	if m.updateErr != nil {
		return m.updateErr
	}
	for _, r := range rows {
		if _, ok := m.rows[r.ID]; !ok {
			return fmt.Errorf("unexpected rows affected for id %d: 0", r.ID)
		}
		m.rows[r.ID] = r.Clone()
	}
	m.writes += len(rows)
	return nil
}

func (m *memFiles) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.rows[id]; !ok {
		return common.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type fakeRepoManager struct {
	repomanager.RepositoryManager
	f *memFiles

	tables []string
	inTx   []bool
}

func (m *fakeRepoManager) Files(db dbx.DBTX, table string) files.Repository {
	_, tx := db.(*sql.Tx)
	m.tables = append(m.tables, table)
	m.inTx = append(m.inTx, tx)
	return m.f
}

type batchCall struct {
	bucket, src, dst string
	keys             []string
}

// memGateway is an in-memory bucket.
type memGateway struct {
	objectstore.Gateway

	mu      sync.Mutex
	objects map[string]string

	moveFail    map[string]error // by module-relative key
	moveErr     error
	deleteErr   error
	deleteFalse bool
	presignErr  error
	openErr     error

	batches []batchCall
	deletes []string
}

func newMemGateway(keys ...string) *memGateway {
	g := &memGateway{objects: map[string]string{}, moveFail: map[string]error{}}
	for _, k := range keys {
		g.objects[k] = "content of " + k
	}
	return g
}

func (g *memGateway) has(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.objects[key]
	return ok
}

func (g *memGateway) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.openErr != nil {
		return nil, g.openErr
	}
	v, ok := g.objects[key]
	if !ok {
		return nil, common.ErrNotFound
	}
	return io.NopCloser(strings.NewReader(v)), nil
}

func (g *memGateway) Delete(ctx context.Context, key string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.deletes = append(g.deletes, key)
	if g.deleteErr != nil {
		return false, g.deleteErr
	}
	if g.deleteFalse {
		return false, nil
	}
	delete(g.objects, key)
	return true, nil
}

func (g *memGateway) CopyAndDeleteBatch(ctx context.Context, bucket, srcPrefix, dstPrefix string, keys []string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.batches = append(g.batches, batchCall{bucket: bucket, src: srcPrefix, dst: dstPrefix, keys: slices.Clone(keys)})
	if g.moveErr != nil {
		return g.moveErr
	}

	var failed []objectstore.KeyError
	for _, k := range keys {
		if err, ok := g.moveFail[k]; ok {
			failed = append(failed, objectstore.KeyError{Key: k, Err: err})
			continue
		}
		src, dst := srcPrefix+k, dstPrefix+k
		if v, ok := g.objects[src]; ok {
			g.objects[dst] = v
			delete(g.objects, src)
			continue
		}
		if _, ok := g.objects[dst]; !ok {
			failed = append(failed, objectstore.KeyError{Key: k, Err: common.ErrNotFound})
		}
	}
	if len(failed) > 0 {
		return &objectstore.BatchError{Failed: failed}
	}
	return nil
}

func (g *memGateway) PresignURL(ctx context.Context, key string, op objectstore.Operation, ttl time.Duration) (string, error) {
	if g.presignErr != nil {
		return "", g.presignErr
	}
	return fmt.Sprintf("https://s3.local/files/%s?op=%s&ttl=%s", key, op, ttl), nil
}

// -------- helpers --------

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{
		S3Bucket:         "files",
		PresignTTL:       15 * time.Minute,
		OperationTimeout: 5 * time.Second,
	}
}

type harness struct {
	db         *sql.DB
	mock       sqlmock.Sqlmock
	repo       *memFiles
	manager    *fakeRepoManager
	gateway    *memGateway
	metrics    *metrics.Metrics
	reconciler *Reconciler
	upload     *UploadService
	deletes    *DeleteService
	query      *QueryService
}

func newHarness(t *testing.T, objects ...string) *harness {
	t.Helper()
	db, mock := newSQLMockDB(t)
	repo := newMemFiles()
	rm := &fakeRepoManager{f: repo}
	gw := newMemGateway(objects...)
	mt := metrics.NewUnregistered()
	log := logging.Discard()

	rec := NewReconciler(db, rm, schema.Default(), mt, log)
	rec.now = func() time.Time { return fixedNow }

	up := NewUploadService(db, rm, rec, gw, testConfig(), mt, log)
	up.now = func() time.Time { return fixedNow }

	return &harness{
		db:         db,
		mock:       mock,
		repo:       repo,
		manager:    rm,
		gateway:    gw,
		metrics:    mt,
		reconciler: rec,
		upload:     up,
		deletes:    NewDeleteService(db, rm, gw, mt, log),
		query:      NewQueryService(db, rm, gw),
	}
}

func (h *harness) expectTx() {
	h.mock.ExpectBegin()
	h.mock.ExpectCommit()
}

func (h *harness) expectRollback() {
	h.mock.ExpectBegin()
	h.mock.ExpectRollback()
}

func (h *harness) verify(t *testing.T) {
	t.Helper()
	if err := h.mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func ptr[T any](v T) *T { return &v }
