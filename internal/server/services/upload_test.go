package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/filekeeper/internal/common"
	"github.com/dmitrijs2005/filekeeper/internal/server/models"
)

func invoiceCommit(relocate bool, files ...models.FileDescriptor) CommitRequest {
	return CommitRequest{
		Files:    files,
		RefType:  "invoice",
		RefID:    ptr(int64(42)),
		Module:   "billing",
		Relocate: relocate,
	}
}

func TestCommit_InvoiceScenario(t *testing.T) {
	h := newHarness(t, "TEMPS/billing/a.pdf", "TEMPS/billing/b.pdf")
	h.expectTx()

	rows, err := h.upload.Commit(context.Background(), invoiceCommit(true,
		models.FileDescriptor{OriginalFileName: "A.pdf", Key: "TEMPS/billing/a.pdf", FileSize: 10, ContentType: "application/pdf"},
		models.FileDescriptor{OriginalFileName: "B.pdf", Key: "TEMPS/billing/b.pdf", FileSize: 20, ContentType: "application/pdf"},
	), "alice")
	require.NoError(t, err)
	h.verify(t)

	require.Len(t, rows, 2)
	assert.Equal(t, "UPLOADED/billing/a.pdf", rows[0].FilePath)
	assert.Equal(t, "UPLOADED/billing/b.pdf", rows[1].FilePath)
	assert.Equal(t, "a.pdf", rows[0].FileName)
	assert.Equal(t, "A.pdf", rows[0].OriginalFileName)
	assert.Equal(t, int64(20), rows[1].FileSize)
	assert.NotEmpty(t, rows[0].FileID)
	assert.NotEqual(t, rows[0].FileID, rows[1].FileID)

	require.Len(t, h.gateway.batches, 1)
	assert.Equal(t, batchCall{
		bucket: "files",
		src:    "TEMPS/billing/",
		dst:    "UPLOADED/billing/",
		keys:   []string{"a.pdf", "b.pdf"},
	}, h.gateway.batches[0])

	assert.True(t, h.gateway.has("UPLOADED/billing/a.pdf"))
	assert.False(t, h.gateway.has("TEMPS/billing/a.pdf"))

	listed, err := h.query.ListByRef(context.Background(), "invoice", ptr(int64(42)))
	require.NoError(t, err)
	assert.Len(t, listed, 2)
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.Commits.WithLabelValues("ok")))
}

func TestCommit_IdempotentWithFileID(t *testing.T) {
	h := newHarness(t, "TEMPS/billing/a.pdf")
	h.expectTx()
	h.expectTx()

	req := invoiceCommit(true, models.FileDescriptor{FileID: fileA, Key: "TEMPS/billing/a.pdf", FileSize: 10})

	first, err := h.upload.Commit(context.Background(), req, "alice")
	require.NoError(t, err)
	second, err := h.upload.Commit(context.Background(), req, "alice")
	require.NoError(t, err)
	h.verify(t)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)

	live := h.repo.live()
	require.Len(t, live, 1)
	assert.Equal(t, fileA, live[0].FileID)
	assert.Equal(t, "UPLOADED/billing/a.pdf", live[0].FilePath)
	assert.True(t, h.gateway.has("UPLOADED/billing/a.pdf"))
}

func TestCommit_WithoutFileIDCreatesNewRows(t *testing.T) {
	h := newHarness(t)
	h.expectTx()
	h.expectTx()

	req := invoiceCommit(false, models.FileDescriptor{Key: "UPLOADED/billing/a.pdf", FileSize: 10})

	first, err := h.upload.Commit(context.Background(), req, "alice")
	require.NoError(t, err)
	second, err := h.upload.Commit(context.Background(), req, "alice")
	require.NoError(t, err)
	h.verify(t)

	assert.NotEqual(t, first[0].FileID, second[0].FileID)
	assert.Len(t, h.repo.live(), 2)
	assert.Empty(t, h.gateway.batches)
}

func TestCommit_WithoutRef(t *testing.T) {
	h := newHarness(t, "TEMPS/generic/a.png")
	h.expectTx()

	rows, err := h.upload.Commit(context.Background(), CommitRequest{
		Relocate: true,
		Files:    []models.FileDescriptor{{OriginalFileName: "A.png", Key: "TEMPS/generic/a.png", FileSize: 3}},
	}, "alice")
	require.NoError(t, err)
	h.verify(t)

	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].RefType)
	assert.Nil(t, rows[0].RefID)
	assert.Equal(t, "UPLOADED/generic/a.png", rows[0].FilePath)
	assert.True(t, h.gateway.has("UPLOADED/generic/a.png"))

	assert.Len(t, h.repo.live(), 1)
}

func TestCommit_PartialRelocation(t *testing.T) {
	h := newHarness(t, "TEMPS/billing/a.pdf", "TEMPS/billing/b.pdf", "TEMPS/billing/c.pdf")
	h.gateway.moveFail["b.pdf"] = errors.New("throttled")
	h.expectTx()

	rows, err := h.upload.Commit(context.Background(), invoiceCommit(true,
		models.FileDescriptor{Key: "TEMPS/billing/a.pdf"},
		models.FileDescriptor{Key: "TEMPS/billing/b.pdf"},
		models.FileDescriptor{Key: "TEMPS/billing/c.pdf"},
	), "alice")
	h.verify(t)

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrPartialCommit)
	assert.ErrorIs(t, err, common.ErrObjectRelocation)

	var pe *common.PartialCommitError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, []string{"TEMPS/billing/b.pdf"}, pe.Keys)
	assert.Equal(t, "invoice", pe.RefType)
	require.NotNil(t, pe.RefID)
	assert.Equal(t, int64(42), *pe.RefID)

	require.Len(t, rows, 3)
	listed, lerr := h.query.ListByRef(context.Background(), "invoice", ptr(int64(42)))
	require.NoError(t, lerr)
	assert.Len(t, listed, 3)

	assert.True(t, h.gateway.has("TEMPS/billing/b.pdf"))
	assert.True(t, h.gateway.has("UPLOADED/billing/a.pdf"))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.Commits.WithLabelValues("partial")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.PendingRelocations))
}

func TestCommit_RelocationTransportError(t *testing.T) {
	h := newHarness(t, "TEMPS/billing/a.pdf", "TEMPS/billing/b.pdf")
	h.gateway.moveErr = errors.New("connection reset")
	h.expectTx()

	rows, err := h.upload.Commit(context.Background(), invoiceCommit(true,
		models.FileDescriptor{Key: "TEMPS/billing/a.pdf"},
		models.FileDescriptor{Key: "TEMPS/billing/b.pdf"},
	), "alice")

	var pe *common.PartialCommitError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, []string{"TEMPS/billing/a.pdf", "TEMPS/billing/b.pdf"}, pe.Keys)
	assert.Len(t, rows, 2)
}

func TestCommit_MetadataFailureSkipsRelocation(t *testing.T) {
	h := newHarness(t, "TEMPS/billing/a.pdf")
	h.repo.insertErr = errors.New("disk full")
	h.expectRollback()

	rows, err := h.upload.Commit(context.Background(), invoiceCommit(true,
		models.FileDescriptor{Key: "TEMPS/billing/a.pdf"}), "alice")
	h.verify(t)

	assert.ErrorIs(t, err, common.ErrTransaction)
	assert.Nil(t, rows)
	assert.Empty(t, h.gateway.batches)
	assert.True(t, h.gateway.has("TEMPS/billing/a.pdf"))
}

func TestCommit_SchemaFailureWritesNothing(t *testing.T) {
	h := newHarness(t, "TEMPS/billing/a.pdf")

	_, err := h.upload.Commit(context.Background(), invoiceCommit(true,
		models.FileDescriptor{FileID: "not-a-uuid", Key: "TEMPS/billing/a.pdf"}), "alice")
	assert.ErrorIs(t, err, common.ErrSchema)
	assert.Empty(t, h.repo.live())
	assert.Empty(t, h.gateway.batches)
	h.verify(t)
}

func TestCommit_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  CommitRequest
	}{
		{name: "no files", req: invoiceCommit(true)},
		{name: "empty key", req: invoiceCommit(false, models.FileDescriptor{})},
		{name: "negative size", req: invoiceCommit(false, models.FileDescriptor{Key: "k", FileSize: -1})},
		{name: "duplicate key", req: invoiceCommit(false, models.FileDescriptor{Key: "k"}, models.FileDescriptor{Key: "k"})},
		{name: "outside module", req: invoiceCommit(true, models.FileDescriptor{Key: "TEMPS/hr/a.pdf"})},
		{name: "already uploaded", req: invoiceCommit(true, models.FileDescriptor{Key: "UPLOADED/billing/a.pdf"})},
		{name: "bad module", req: CommitRequest{RefType: "invoice", Module: "../x", Files: []models.FileDescriptor{{Key: "k"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			_, err := h.upload.Commit(context.Background(), tt.req, "alice")
			assert.ErrorIs(t, err, common.ErrValidation)
			assert.Empty(t, h.gateway.batches)
			h.verify(t)
		})
	}
}

func TestCommit_DefaultModuleAndDescriptor(t *testing.T) {
	h := newHarness(t, "TEMPS/generic/x.png")
	h.expectTx()

	rows, err := h.upload.Commit(context.Background(), CommitRequest{
		RefType:  "user",
		Relocate: true,
		Files: []models.FileDescriptor{{
			Key:         "TEMPS/generic/x.png",
			FileName:    "avatar.png",
			Description: ptr("profile picture"),
			ContentType: "image/png",
		}},
	}, "alice")
	require.NoError(t, err)

	assert.Equal(t, "UPLOADED/generic/x.png", rows[0].FilePath)
	assert.Equal(t, "avatar.png", rows[0].FileName)
	assert.Equal(t, "x.png", rows[0].OriginalFileName)
	assert.Equal(t, "image/png", rows[0].FileType)
	require.NotNil(t, rows[0].Description)
	assert.Equal(t, "profile picture", *rows[0].Description)
	assert.Nil(t, rows[0].RefID)
}

func TestRequestUpload(t *testing.T) {
	h := newHarness(t)

	targets, err := h.upload.RequestUpload(context.Background(), UploadRequest{
		Module: "billing",
		Files: []models.UploadFile{
			{OriginalFileName: "Scan.PDF", FileSize: 10, ContentType: "application/pdf"},
			{OriginalFileName: "notes", FileSize: 0},
		},
	})
	require.NoError(t, err)
	require.Len(t, targets, 2)

	assert.True(t, strings.HasPrefix(targets[0].Key, "TEMPS/billing/"))
	assert.True(t, strings.HasSuffix(targets[0].Key, ".pdf"))
	assert.Equal(t, models.BaseName(targets[0].Key), targets[0].FileName)
	assert.Equal(t, "Scan.PDF", targets[0].OriginalFileName)
	assert.Contains(t, targets[0].URL, targets[0].Key)
	assert.Contains(t, targets[0].URL, "op=PUT")
	assert.Equal(t, fixedNow.Add(15*time.Minute), targets[0].ExpiresAt)
	assert.NotEqual(t, targets[0].Key, targets[1].Key)

	targets, err = h.upload.RequestUpload(context.Background(), UploadRequest{
		Classify: "uploaded",
		Files:    []models.UploadFile{{OriginalFileName: "a.txt"}},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(targets[0].Key, "UPLOADED/generic/"))
}

func TestRequestUpload_Errors(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	for name, req := range map[string]UploadRequest{
		"no files":      {},
		"no name":       {Files: []models.UploadFile{{FileSize: 1}}},
		"negative size": {Files: []models.UploadFile{{OriginalFileName: "a", FileSize: -1}}},
		"bad classify":  {Classify: "ARCHIVE", Files: []models.UploadFile{{OriginalFileName: "a"}}},
		"bad module":    {Module: "a/b", Files: []models.UploadFile{{OriginalFileName: "a"}}},
	} {
		_, err := h.upload.RequestUpload(ctx, req)
		assert.ErrorIs(t, err, common.ErrValidation, name)
	}

	h.gateway.presignErr = errors.New("no credentials")
	_, err := h.upload.RequestUpload(ctx, UploadRequest{Files: []models.UploadFile{{OriginalFileName: "a"}}})
	assert.ErrorIs(t, err, h.gateway.presignErr)
}

func TestDownloadURL(t *testing.T) {
	h := newHarness(t)
	row := h.repo.put(&models.FileMetadata{FileID: fileA, FilePath: "UPLOADED/billing/a.pdf"})
	h.repo.put(&models.FileMetadata{FileID: fileB, FilePath: "UPLOADED/billing/b.pdf", Deleted: true})
	ctx := context.Background()

	url, expires, err := h.upload.DownloadURL(ctx, row.FileID, row.FilePath)
	require.NoError(t, err)
	assert.Contains(t, url, "UPLOADED/billing/a.pdf")
	assert.Contains(t, url, "op=GET")
	assert.Equal(t, fixedNow.Add(15*time.Minute), expires)

	_, _, err = h.upload.DownloadURL(ctx, fileA, "UPLOADED/billing/other.pdf")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, _, err = h.upload.DownloadURL(ctx, fileB, "UPLOADED/billing/b.pdf")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, _, err = h.upload.DownloadURL(ctx, "", "k")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestDiscardUpload(t *testing.T) {
	h := newHarness(t, "TEMPS/generic/a.pdf", "UPLOADED/generic/b.pdf")
	ctx := context.Background()

	require.NoError(t, h.upload.DiscardUpload(ctx, "TEMPS/generic/a.pdf"))
	assert.False(t, h.gateway.has("TEMPS/generic/a.pdf"))

	err := h.upload.DiscardUpload(ctx, "UPLOADED/generic/b.pdf")
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.True(t, h.gateway.has("UPLOADED/generic/b.pdf"))

	err = h.upload.DiscardUpload(ctx, "TEMPS/../UPLOADED/generic/b.pdf")
	assert.ErrorIs(t, err, common.ErrValidation)

	h.gateway.deleteFalse = true
	err = h.upload.DiscardUpload(ctx, "TEMPS/generic/c.pdf")
	assert.ErrorIs(t, err, common.ErrObjectDelete)
}
