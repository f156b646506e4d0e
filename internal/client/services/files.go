// Package services implements the CLI workflows on top of the backend client
// and the local upload journal.
package services

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/dmitrijs2005/filekeeper/internal/client/client"
	"github.com/dmitrijs2005/filekeeper/internal/client/models"
	"github.com/dmitrijs2005/filekeeper/internal/client/repositories/files"
	"github.com/dmitrijs2005/filekeeper/internal/client/utils"
	"github.com/dmitrijs2005/filekeeper/internal/filex"
	pb "github.com/dmitrijs2005/filekeeper/internal/proto"
)

var ErrNothingToCommit = errors.New("nothing to commit")

// CommitOptions selects the journal rows to commit and the reference to
// attach them to.
type CommitOptions struct {
	Module   string
	RefType  string
	RefID    *int64
	Relocate bool
}

type FileService interface {
	Ping(ctx context.Context) error
	Upload(ctx context.Context, module, classify string, paths []string) ([]*models.PendingUpload, error)
	Pending(ctx context.Context) ([]*models.PendingUpload, error)
	Commit(ctx context.Context, opts CommitOptions) (*pb.CommitUploadResponse, error)
	List(ctx context.Context, refType string, refID *int64) ([]*pb.FileInfo, error)
	Download(ctx context.Context, fileID, key, dest string) (int64, error)
	Delete(ctx context.Context, id int64, filePath string) error
	Discard(ctx context.Context, key string) error
}

type fileService struct {
	client  client.Client
	journal files.Repository
	http    *http.Client
	now     func() time.Time
	newID   func() string
}

func NewFileService(c client.Client, journal files.Repository, httpClient *http.Client) FileService {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &fileService{client: c, journal: journal, http: httpClient, now: time.Now, newID: uuid.NewString}
}

func (s *fileService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func contentType(path string) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); t != "" {
		return t
	}
	return "application/octet-stream"
}

// moduleFromKey returns the module segment of <classify>/<module>/<name>.
func moduleFromKey(key string) string {
	parts := strings.SplitN(key, "/", 3)
	if len(parts) < 3 {
		return ""
	}
	return parts[1]
}

// Upload asks for presigned targets, records each one in the journal and
// sends the bytes. A file that fails to transfer stays in the journal as
// requested so it can be retried or discarded. Every row gets its own
// file_id up front.
func (s *fileService) Upload(ctx context.Context, module, classify string, paths []string) ([]*models.PendingUpload, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files given")
	}

	req := &pb.RequestUploadRequest{Module: module, Classify: classify}
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%s is a directory", p)
		}
		req.Files = append(req.Files, &pb.UploadFile{
			OriginalFileName: filepath.Base(p),
			FileSize:         info.Size(),
			ContentType:      contentType(p),
		})
	}

	targets, err := s.client.RequestUpload(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("request upload: %w", err)
	}
	if len(targets) != len(paths) {
		return nil, fmt.Errorf("server returned %d targets for %d files", len(targets), len(paths))
	}

	result := make([]*models.PendingUpload, 0, len(targets))
	for i, t := range targets {
		u := &models.PendingUpload{
			Key:              t.GetKey(),
			FileID:           s.newID(),
			Module:           moduleFromKey(t.GetKey()),
			OriginalFileName: t.GetOriginalFileName(),
			FileName:         t.GetFileName(),
			LocalPath:        paths[i],
			FileSize:         t.GetFileSize(),
			ContentType:      t.GetContentType(),
			Status:           models.UploadRequested,
			CreatedAt:        s.now(),
		}
		if err := s.journal.Save(ctx, u); err != nil {
			return result, err
		}

		if err := s.send(ctx, t, paths[i]); err != nil {
			return result, fmt.Errorf("upload %s: %w", paths[i], err)
		}

		if err := s.journal.MarkUploaded(ctx, u.Key); err != nil {
			return result, err
		}
		u.Status = models.UploadSent
		result = append(result, u)
	}

	return result, nil
}

func (s *fileService) send(ctx context.Context, t *pb.UploadTarget, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return utils.UploadToPresignedURL(ctx, s.http, t.GetUrl(), t.GetContentType(), f, t.GetFileSize())
}

func (s *fileService) Pending(ctx context.Context) ([]*models.PendingUpload, error) {
	return s.journal.ListAll(ctx)
}

// Commit sends every uploaded journal row of the module in one batch. Rows
// are dropped from the journal once the server accepts the metadata, even if
// relocation is still pending on the server side. Rows keep their journal
// file_id across attempts, so resending after a lost response is safe.
func (s *fileService) Commit(ctx context.Context, opts CommitOptions) (*pb.CommitUploadResponse, error) {
	rows, err := s.journal.ListByModule(ctx, opts.Module, models.UploadSent)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w for module %q", ErrNothingToCommit, opts.Module)
	}

	req := &pb.CommitUploadRequest{
		RefType:  opts.RefType,
		Module:   opts.Module,
		Relocate: opts.Relocate,
		Files:    make([]*pb.CommitFile, 0, len(rows)),
	}
	if opts.RefID != nil {
		req.RefId = wrapperspb.Int64(*opts.RefID)
	}
	keys := make([]string, 0, len(rows))
	for _, r := range rows {
		req.Files = append(req.Files, &pb.CommitFile{
			FileId:           r.FileID,
			OriginalFileName: r.OriginalFileName,
			FileName:         r.FileName,
			Key:              r.Key,
			FileSize:         r.FileSize,
			ContentType:      r.ContentType,
		})
		keys = append(keys, r.Key)
	}

	resp, err := s.client.CommitUpload(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	if err := s.journal.Remove(ctx, keys...); err != nil {
		return resp, fmt.Errorf("committed but journal cleanup failed: %w", err)
	}
	return resp, nil
}

func (s *fileService) List(ctx context.Context, refType string, refID *int64) ([]*pb.FileInfo, error) {
	return s.client.ListByRef(ctx, refType, refID)
}

// Download fetches the object into dest, which must not exist yet. Missing
// parent directories are created.
func (s *fileService) Download(ctx context.Context, fileID, key, dest string) (int64, error) {
	url, err := s.client.DownloadURL(ctx, fileID, key)
	if err != nil {
		return 0, err
	}

	if err := filex.EnsureParentDir(dest); err != nil {
		return 0, err
	}

	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return 0, err
	}

	n, err := utils.DownloadFromURL(ctx, s.http, url, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dest)
		return 0, err
	}
	return n, nil
}

func (s *fileService) Delete(ctx context.Context, id int64, filePath string) error {
	return s.client.Delete(ctx, id, filePath)
}

// Discard removes a TEMPS object on the server and forgets it locally.
func (s *fileService) Discard(ctx context.Context, key string) error {
	if err := s.client.DiscardUpload(ctx, key); err != nil {
		return err
	}
	return s.journal.Remove(ctx, key)
}
