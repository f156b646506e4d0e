// Package models defines the client-side records of the upload journal.
package models

import "time"

type UploadStatus string

const (
	// UploadRequested means a presigned target was issued but the bytes have
	// not been sent yet.
	UploadRequested UploadStatus = "requested"
	// UploadSent means the object is in TEMPS and waits for a commit.
	UploadSent UploadStatus = "uploaded"
)

// PendingUpload is one journal row: a local file bound to a TEMPS key.
//
// FileID is generated once when the row is created and sent with every commit
// attempt, so a retry after a lost response updates the row it already wrote.
type PendingUpload struct {
	Key              string
	FileID           string
	Module           string
	OriginalFileName string
	FileName         string
	LocalPath        string
	FileSize         int64
	ContentType      string
	Status           UploadStatus
	CreatedAt        time.Time
}
