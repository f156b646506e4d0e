package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/filekeeper/internal/client/client"
	"github.com/dmitrijs2005/filekeeper/internal/client/models"
	"github.com/dmitrijs2005/filekeeper/internal/client/repositories/files"
	pb "github.com/dmitrijs2005/filekeeper/internal/proto"
)

// objectServer stands in for presigned S3 URLs.
type objectServer struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	failPut bool
}

func newObjectServer(t *testing.T) (*objectServer, *httptest.Server) {
	o := &objectServer{objects: map[string][]byte{}, types: map[string]string{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		o.mu.Lock()
		defer o.mu.Unlock()
		switch r.Method {
		case http.MethodPut:
			if o.failPut {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			b, _ := io.ReadAll(r.Body)
			o.objects[r.URL.Path] = b
			o.types[r.URL.Path] = r.Header.Get("Content-Type")
		case http.MethodGet:
			b, ok := o.objects[r.URL.Path]
			if !ok {
				http.NotFound(w, r)
				return
			}
			_, _ = w.Write(b)
		}
	}))
	t.Cleanup(srv.Close)
	return o, srv
}

type fakeClient struct {
	client.Client

	baseURL   string
	n         int
	gotUpload *pb.RequestUploadRequest
	gotCommit *pb.CommitUploadRequest
	commits   []*pb.CommitUploadRequest
	commitErr error
	// lostReply applies the commit and then fails the call, as when the
	// response is lost in transit.
	lostReply bool
	discarded []string
	deleted   []int64
}

func (f *fakeClient) RequestUpload(ctx context.Context, req *pb.RequestUploadRequest) ([]*pb.UploadTarget, error) {
	f.gotUpload = req
	out := make([]*pb.UploadTarget, 0, len(req.GetFiles()))
	for _, file := range req.GetFiles() {
		f.n++
		name := filepath.Base(file.GetOriginalFileName())
		key := "TEMPS/" + req.GetModule() + "/" + string(rune('a'+f.n-1)) + "-" + name
		out = append(out, &pb.UploadTarget{
			OriginalFileName: file.GetOriginalFileName(),
			FileName:         name,
			Key:              key,
			Url:              f.baseURL + "/" + key,
			ContentType:      file.GetContentType(),
			FileSize:         file.GetFileSize(),
		})
	}
	return out, nil
}

func (f *fakeClient) CommitUpload(ctx context.Context, req *pb.CommitUploadRequest) (*pb.CommitUploadResponse, error) {
	f.gotCommit = req
	f.commits = append(f.commits, req)
	if f.lostReply {
		f.lostReply = false
		return nil, client.ErrUnavailable
	}
	if f.commitErr != nil {
		return nil, f.commitErr
	}
	resp := &pb.CommitUploadResponse{Message: "committed"}
	for i, file := range req.GetFiles() {
		resp.Files = append(resp.Files, &pb.FileInfo{Id: int64(i + 1), FileId: file.GetFileId(), FilePath: file.GetKey()})
	}
	return resp, nil
}

func (f *fakeClient) DownloadURL(ctx context.Context, fileID, key string) (string, error) {
	return f.baseURL + "/" + key, nil
}

func (f *fakeClient) DiscardUpload(ctx context.Context, key string) error {
	f.discarded = append(f.discarded, key)
	return nil
}

func (f *fakeClient) Delete(ctx context.Context, id int64, filePath string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeClient) ListByRef(ctx context.Context, refType string, refID *int64) ([]*pb.FileInfo, error) {
	return []*pb.FileInfo{{Id: 1, RefType: refType}}, nil
}

func (f *fakeClient) Ping(ctx context.Context) error { return nil }

type fixture struct {
	svc     *fileService
	client  *fakeClient
	objects *objectServer
	journal files.Repository
	dir     string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	db, err := client.InitDatabase(ctx, filepath.Join(dir, "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	objects, srv := newObjectServer(t)
	fc := &fakeClient{baseURL: srv.URL}
	journal := files.NewSQLiteRepository(db)

	svc := NewFileService(fc, journal, srv.Client()).(*fileService)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }

	return &fixture{svc: svc, client: fc, objects: objects, journal: journal, dir: dir}
}

func (f *fixture) writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(f.dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestUploadThenCommit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	pdf := f.writeFile(t, "Invoice.PDF", "%PDF-1.4")
	txt := f.writeFile(t, "notes.txt", "hello")

	uploaded, err := f.svc.Upload(ctx, "billing", "", []string{pdf, txt})
	require.NoError(t, err)
	require.Len(t, uploaded, 2)

	assert.Equal(t, "Invoice.PDF", f.client.gotUpload.GetFiles()[0].GetOriginalFileName())
	assert.Equal(t, int64(8), f.client.gotUpload.GetFiles()[0].GetFileSize())
	assert.Equal(t, "application/pdf", f.client.gotUpload.GetFiles()[0].GetContentType())
	assert.Equal(t, "billing", uploaded[0].Module)
	assert.Equal(t, models.UploadSent, uploaded[0].Status)

	assert.Equal(t, []byte("%PDF-1.4"), f.objects.objects["/"+uploaded[0].Key])
	assert.Equal(t, []byte("hello"), f.objects.objects["/"+uploaded[1].Key])

	pending, err := f.svc.Pending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	refID := int64(42)
	resp, err := f.svc.Commit(ctx, CommitOptions{Module: "billing", RefType: "invoice", RefID: &refID, Relocate: true})
	require.NoError(t, err)
	assert.Len(t, resp.GetFiles(), 2)

	req := f.client.gotCommit
	assert.Equal(t, "invoice", req.GetRefType())
	assert.Equal(t, refID, req.GetRefId().GetValue())
	assert.True(t, req.GetRelocate())
	require.Len(t, req.GetFiles(), 2)
	assert.Equal(t, uploaded[0].Key, req.GetFiles()[0].GetKey())
	assert.Equal(t, "Invoice.PDF", req.GetFiles()[0].GetOriginalFileName())
	assert.Equal(t, uploaded[0].FileID, req.GetFiles()[0].GetFileId())
	assert.NotEqual(t, req.GetFiles()[0].GetFileId(), req.GetFiles()[1].GetFileId())

	pending, err = f.svc.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestCommit_RetryAfterLostReplyReusesFileIDs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ids := []string{"7d444840-9dc0-11d1-b245-5ffdce74fad2", "0b7e3c5e-5f0c-4d1b-9a47-2f1c8d6b2a11"}
	f.svc.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	_, err := f.svc.Upload(ctx, "billing", "", []string{f.writeFile(t, "a.pdf", "x"), f.writeFile(t, "b.pdf", "y")})
	require.NoError(t, err)

	f.client.lostReply = true
	_, err = f.svc.Commit(ctx, CommitOptions{Module: "billing", RefType: "invoice"})
	require.ErrorIs(t, err, client.ErrUnavailable)

	resp, err := f.svc.Commit(ctx, CommitOptions{Module: "billing", RefType: "invoice"})
	require.NoError(t, err)

	require.Len(t, f.client.commits, 2)
	fileIDs := func(req *pb.CommitUploadRequest) []string {
		var out []string
		for _, file := range req.GetFiles() {
			out = append(out, file.GetFileId())
		}
		return out
	}
	want := []string{"7d444840-9dc0-11d1-b245-5ffdce74fad2", "0b7e3c5e-5f0c-4d1b-9a47-2f1c8d6b2a11"}
	assert.Equal(t, want, fileIDs(f.client.commits[0]))
	assert.Equal(t, want, fileIDs(f.client.commits[1]))
	assert.Equal(t, want[0], resp.GetFiles()[0].GetFileId())

	pending, err := f.svc.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestCommit_WithoutRefID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Upload(ctx, "billing", "", []string{f.writeFile(t, "a.pdf", "x")})
	require.NoError(t, err)

	_, err = f.svc.Commit(ctx, CommitOptions{Module: "billing"})
	require.NoError(t, err)
	assert.Nil(t, f.client.gotCommit.GetRefId())
	assert.Empty(t, f.client.gotCommit.GetRefType())
}

func TestCommit_NothingToCommit(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Commit(context.Background(), CommitOptions{Module: "billing", RefType: "invoice"})
	assert.ErrorIs(t, err, ErrNothingToCommit)
	assert.Nil(t, f.client.gotCommit)
}

func TestCommit_ServerErrorKeepsJournal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Upload(ctx, "billing", "", []string{f.writeFile(t, "a.pdf", "x")})
	require.NoError(t, err)

	f.client.commitErr = client.ErrUnavailable
	_, err = f.svc.Commit(ctx, CommitOptions{Module: "billing", RefType: "invoice"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, client.ErrUnavailable))

	pending, err := f.svc.Pending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestUpload_TransferFailureLeavesRequestedRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.objects.failPut = true

	_, err := f.svc.Upload(ctx, "billing", "", []string{f.writeFile(t, "a.pdf", "x")})
	require.Error(t, err)

	pending, err := f.svc.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, models.UploadRequested, pending[0].Status)

	_, err = f.svc.Commit(ctx, CommitOptions{Module: "billing", RefType: "invoice"})
	assert.ErrorIs(t, err, ErrNothingToCommit)
}

func TestUpload_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Upload(ctx, "billing", "", nil)
	require.Error(t, err)

	_, err = f.svc.Upload(ctx, "billing", "", []string{filepath.Join(f.dir, "missing.pdf")})
	require.Error(t, err)

	_, err = f.svc.Upload(ctx, "billing", "", []string{f.dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestDiscard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	up, err := f.svc.Upload(ctx, "billing", "", []string{f.writeFile(t, "a.pdf", "x")})
	require.NoError(t, err)

	require.NoError(t, f.svc.Discard(ctx, up[0].Key))
	assert.Equal(t, []string{up[0].Key}, f.client.discarded)

	pending, err := f.svc.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestDownload(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.objects.objects["/UPLOADED/billing/a.pdf"] = []byte("content")

	dest := filepath.Join(f.dir, "out.pdf")
	n, err := f.svc.Download(ctx, "fid", "UPLOADED/billing/a.pdf", dest)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "content", string(b))

	_, err = f.svc.Download(ctx, "fid", "UPLOADED/billing/a.pdf", dest)
	require.Error(t, err, "existing destination is not overwritten")

	missing := filepath.Join(f.dir, "missing.pdf")
	_, err = f.svc.Download(ctx, "fid", "UPLOADED/billing/none.pdf", missing)
	require.Error(t, err)
	_, statErr := os.Stat(missing)
	assert.True(t, os.IsNotExist(statErr))
}

func TestListDeletePing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Ping(ctx))

	list, err := f.svc.List(ctx, "invoice", nil)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, f.svc.Delete(ctx, 5, "UPLOADED/billing/a.pdf"))
	assert.Equal(t, []int64{5}, f.client.deleted)
}

func TestModuleFromKey(t *testing.T) {
	assert.Equal(t, "billing", moduleFromKey("TEMPS/billing/x.pdf"))
	assert.Equal(t, "", moduleFromKey("x.pdf"))
}

func TestDownload_CreatesParentDirs(t *testing.T) {
	f := newFixture(t)
	f.objects.objects["/UPLOADED/billing/a.pdf"] = []byte("content")

	dest := filepath.Join(f.dir, "nested", "dir", "a.pdf")
	_, err := f.svc.Download(context.Background(), "fid", "UPLOADED/billing/a.pdf", dest)
	require.NoError(t, err)

	_, err = os.Stat(dest)
	require.NoError(t, err)
}
