// Package models defines server-side data models persisted in the database.
package models

import "time"

// Record is a loosely typed batch item handed to the reconciliation engine.
// Keys are schema field names.
type Record map[string]any

// FileMetadata describes one stored file. The content itself lives in object
// storage under FilePath.
type FileMetadata struct {
	// ID is the repository-assigned primary key.
	ID int64
	// FileID is the externally visible UUID and the upsert idempotency key.
	FileID string

	// RefType and RefID group files by owning domain entity.
	RefType string
	RefID   *int64

	OriginalFileName string
	// FileName is the display name or the last key segment.
	FileName string
	// FilePath is the full object-store key.
	FilePath string
	FileSize int64
	FileType string

	Description *string
	Deleted     bool

	CreateDate time.Time
	CreateUID  string
}

// Clone returns a deep copy so callers can mutate a row without touching the
// original.
func (f *FileMetadata) Clone() *FileMetadata {
	c := *f
	if f.RefID != nil {
		v := *f.RefID
		c.RefID = &v
	}
	if f.Description != nil {
		v := *f.Description
		c.Description = &v
	}
	return &c
}

// FileDescriptor is what a client reports after a successful direct upload.
type FileDescriptor struct {
	// FileID is optional; supplying it makes commit retries idempotent.
	FileID           string
	OriginalFileName string
	// FileName defaults to the last segment of the committed key.
	FileName    string
	Key         string
	FileSize    int64
	ContentType string
	Description *string
	// Attributes carries extra schema fields. The typed fields above win
	// when both name the same column.
	Attributes Record
}

// UploadFile is one file a client intends to upload.
type UploadFile struct {
	OriginalFileName string
	FileSize         int64
	ContentType      string
}

// UploadTarget instructs the client where to PUT one file.
type UploadTarget struct {
	OriginalFileName string
	FileName         string
	Key              string
	URL              string
	ContentType      string
	FileSize         int64
	ExpiresAt        time.Time
}
