package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/filekeeper/internal/logging"
	"github.com/dmitrijs2005/filekeeper/internal/server/metrics"
	"github.com/dmitrijs2005/filekeeper/internal/server/models"
	"github.com/dmitrijs2005/filekeeper/internal/server/services"
)

// ---- test logger ----

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// ---- fakes ----

type fakeUploads struct {
	targets    []models.UploadTarget
	requestErr error
	gotRequest services.UploadRequest

	rows      []*models.FileMetadata
	commitErr error
	gotCommit services.CommitRequest
	gotActor  string
	deadline  bool

	url         string
	expires     time.Time
	downloadErr error

	discardErr error
	discarded  string
}

func (f *fakeUploads) RequestUpload(ctx context.Context, req services.UploadRequest) ([]models.UploadTarget, error) {
	f.gotRequest = req
	return f.targets, f.requestErr
}

func (f *fakeUploads) Commit(ctx context.Context, req services.CommitRequest, actor string) ([]*models.FileMetadata, error) {
	f.gotCommit = req
	f.gotActor = actor
	_, f.deadline = ctx.Deadline()
	return f.rows, f.commitErr
}

func (f *fakeUploads) DownloadURL(ctx context.Context, fileID, key string) (string, time.Time, error) {
	return f.url, f.expires, f.downloadErr
}

func (f *fakeUploads) DiscardUpload(ctx context.Context, key string) error {
	f.discarded = key
	return f.discardErr
}

type fakeDeletes struct {
	err   error
	id    int64
	path  string
	actor string
}

func (f *fakeDeletes) Delete(ctx context.Context, id int64, filePath, actor string) error {
	f.id, f.path, f.actor = id, filePath, actor
	return f.err
}

type fakeQueries struct {
	rows []*models.FileMetadata
	err  error

	refType string
	refID   *int64
}

func (f *fakeQueries) ListByRef(ctx context.Context, refType string, refID *int64) ([]*models.FileMetadata, error) {
	f.refType, f.refID = refType, refID
	return f.rows, f.err
}

type testDeps struct {
	uploads *fakeUploads
	deletes *fakeDeletes
	queries *fakeQueries
	metrics *metrics.Metrics
}

// helper to build server
func newTestServer(secret string) (*GRPCServer, *testDeps) {
	d := &testDeps{
		uploads: &fakeUploads{},
		deletes: &fakeDeletes{},
		queries: &fakeQueries{},
		metrics: metrics.NewUnregistered(),
	}
	s, _ := NewGRPCServer("127.0.0.1:0", nopLogger{}, d.metrics, d.uploads, d.deletes, d.queries, secret, time.Second)
	return s, d
}
