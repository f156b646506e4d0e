package httpapi

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/dmitrijs2005/filekeeper/internal/common"
)

// preview streams GET /api/v1/files/preview?id=&file_id=&file_name= as an
// attachment named after the last segment of file_name.
func (h *handler) preview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	id, ok := parseID(q.Get("id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	p, err := h.previewer.Preview(ctx, id, q.Get("file_id"), q.Get("file_name"))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, common.ErrNotFound):
			writeError(w, http.StatusNotFound, "file not found")
		default:
			h.logger.Error(ctx, "preview failed", "id", id, "error", err)
			writeError(w, http.StatusBadGateway, "file is not available")
		}
		return
	}
	defer p.Body.Close()

	contentType := p.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": p.Name}))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, p.Body); err != nil {
		h.logger.Warn(ctx, "preview stream interrupted", "id", id, "error", err)
	}
}
