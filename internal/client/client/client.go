package client

import (
	"context"

	pb "github.com/dmitrijs2005/filekeeper/internal/proto"
)

// Client is what the CLI services need from the backend.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	RequestUpload(ctx context.Context, req *pb.RequestUploadRequest) ([]*pb.UploadTarget, error)
	CommitUpload(ctx context.Context, req *pb.CommitUploadRequest) (*pb.CommitUploadResponse, error)
	ListByRef(ctx context.Context, refType string, refID *int64) ([]*pb.FileInfo, error)
	Delete(ctx context.Context, id int64, filePath string) error
	DownloadURL(ctx context.Context, fileID, key string) (string, error)
	DiscardUpload(ctx context.Context, key string) error
}
