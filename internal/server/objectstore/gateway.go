// Package objectstore talks to the S3-compatible bucket that holds file
// contents. Metadata never lives here; see the files repository for that.
package objectstore

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// Operation selects what a presigned URL allows.
type Operation string

const (
	OpPut    Operation = "PUT"
	OpGet    Operation = "GET"
	OpDelete Operation = "DELETE"
)

// Gateway is the object store as seen by the workflows.
type Gateway interface {
	// Open streams an object. A missing key yields common.ErrNotFound.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes an object. It reports false with an error when the
	// object could not be removed; a key that is already gone counts as
	// deleted.
	Delete(ctx context.Context, key string) (bool, error)
	// CopyAndDeleteBatch moves srcPrefix+k to dstPrefix+k for every k in keys.
	// Keys already moved by an earlier call are treated as moved. On failure
	// it returns a *BatchError naming the keys that were not fully moved.
	CopyAndDeleteBatch(ctx context.Context, bucket, srcPrefix, dstPrefix string, keys []string) error
	// PresignURL returns a time-limited URL for op on key.
	PresignURL(ctx context.Context, key string, op Operation, ttl time.Duration) (string, error)
}

// KeyError is one key that could not be moved.
type KeyError struct {
	Key string
	Err error
}

// BatchError reports the keys of a batch move that failed. Keys are in the
// form passed to CopyAndDeleteBatch, without prefixes.
type BatchError struct {
	Failed []KeyError
}

func (e *BatchError) Error() string {
	parts := make([]string, 0, len(e.Failed))
	for _, f := range e.Failed {
		parts = append(parts, fmt.Sprintf("%s: %v", f.Key, f.Err))
	}
	return fmt.Sprintf("batch move failed for %d key(s): %s", len(e.Failed), strings.Join(parts, "; "))
}

// Keys returns the failed keys in batch order.
func (e *BatchError) Keys() []string {
	out := make([]string, len(e.Failed))
	for i, f := range e.Failed {
		out[i] = f.Key
	}
	return out
}
