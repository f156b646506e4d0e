package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/filekeeper/internal/common"
	"github.com/dmitrijs2005/filekeeper/internal/server/models"
)

func TestListByRef(t *testing.T) {
	h := newHarness(t)
	a := h.repo.put(&models.FileMetadata{FileID: fileA, RefType: "invoice", RefID: ptr(int64(1)), FilePath: "UPLOADED/billing/a.pdf"})
	h.repo.put(&models.FileMetadata{FileID: fileB, RefType: "invoice", RefID: ptr(int64(1)), FilePath: "UPLOADED/billing/b.pdf", Deleted: true})
	c := h.repo.put(&models.FileMetadata{FileID: "c", RefType: "invoice", RefID: ptr(int64(2)), FilePath: "UPLOADED/billing/c.pdf"})
	h.repo.put(&models.FileMetadata{FileID: "d", RefType: "user", RefID: ptr(int64(1)), FilePath: "UPLOADED/generic/d.png"})
	e := h.repo.put(&models.FileMetadata{FileID: "e", RefType: "invoice", FilePath: "UPLOADED/billing/e.pdf"})
	ctx := context.Background()

	rows, err := h.query.ListByRef(ctx, "invoice", ptr(int64(1)))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, a.ID, rows[0].ID)

	rows, err = h.query.ListByRef(ctx, "invoice", ptr(int64(2)))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, c.ID, rows[0].ID)

	// no ref_id selects only unattached rows, not every row of the type
	rows, err = h.query.ListByRef(ctx, "invoice", nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, e.ID, rows[0].ID)

	rows, err = h.query.ListByRef(ctx, "contract", nil)
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = h.query.ListByRef(ctx, " ", nil)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestPreview(t *testing.T) {
	h := newHarness(t, "UPLOADED/billing/a.pdf")
	row := h.repo.put(&models.FileMetadata{
		FileID: fileA, FileName: "scans/march/a.pdf", FilePath: "UPLOADED/billing/a.pdf",
		FileType: "application/pdf", FileSize: 22,
	})
	ctx := context.Background()

	p, err := h.query.Preview(ctx, row.ID, fileA, "scans/march/a.pdf")
	require.NoError(t, err)
	defer p.Body.Close()

	assert.Equal(t, "a.pdf", p.Name)
	assert.Equal(t, "application/pdf", p.ContentType)
	assert.Equal(t, int64(22), p.Size)
	b, err := io.ReadAll(p.Body)
	require.NoError(t, err)
	assert.Equal(t, "content of UPLOADED/billing/a.pdf", string(b))

	_, err = h.query.Preview(ctx, row.ID, fileB, "scans/march/a.pdf")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = h.query.Preview(ctx, row.ID, fileA, "")
	assert.ErrorIs(t, err, common.ErrValidation)

	h.gateway.openErr = errors.New("timeout")
	_, err = h.query.Preview(ctx, row.ID, fileA, "scans/march/a.pdf")
	assert.ErrorIs(t, err, h.gateway.openErr)
}
