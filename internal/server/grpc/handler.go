package grpc

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrijs2005/filekeeper/internal/common"
	pb "github.com/dmitrijs2005/filekeeper/internal/proto"
	"github.com/dmitrijs2005/filekeeper/internal/server/models"
	"github.com/dmitrijs2005/filekeeper/internal/server/services"
)

func (s *GRPCServer) RequestUpload(ctx context.Context, req *pb.RequestUploadRequest) (*pb.RequestUploadResponse, error) {

	files := make([]models.UploadFile, len(req.GetFiles()))
	for i, f := range req.GetFiles() {
		files[i] = models.UploadFile{OriginalFileName: f.GetOriginalFileName(), FileSize: f.GetFileSize(), ContentType: f.GetContentType()}
	}

	targets, err := s.uploads.RequestUpload(ctx, services.UploadRequest{Module: req.GetModule(), Classify: req.GetClassify(), Files: files})
	if err != nil {
		return nil, s.toStatus(ctx, "request upload", err)
	}

	resp := &pb.RequestUploadResponse{Targets: make([]*pb.UploadTarget, len(targets))}
	for i, t := range targets {
		resp.Targets[i] = &pb.UploadTarget{
			OriginalFileName: t.OriginalFileName,
			FileName:         t.FileName,
			Key:              t.Key,
			Url:              t.URL,
			ContentType:      t.ContentType,
			FileSize:         t.FileSize,
			ExpiresAt:        timestamppb.New(t.ExpiresAt),
		}
	}
	return resp, nil
}

func (s *GRPCServer) ListByRef(ctx context.Context, req *pb.ListByRefRequest) (*pb.ListByRefResponse, error) {

	rows, err := s.queries.ListByRef(ctx, req.GetRefType(), fromInt64Value(req.GetRefId()))
	if err != nil {
		return nil, s.toStatus(ctx, "list by ref", err)
	}

	return &pb.ListByRefResponse{Files: toFileInfos(rows)}, nil
}

func (s *GRPCServer) CommitUpload(ctx context.Context, req *pb.CommitUploadRequest) (*pb.CommitUploadResponse, error) {

	files := make([]models.FileDescriptor, len(req.GetFiles()))
	for i, f := range req.GetFiles() {
		files[i] = models.FileDescriptor{
			FileID:           f.GetFileId(),
			OriginalFileName: f.GetOriginalFileName(),
			FileName:         f.GetFileName(),
			Key:              f.GetKey(),
			FileSize:         f.GetFileSize(),
			ContentType:      f.GetContentType(),
			Description:      fromStringValue(f.GetDescription()),
			Attributes:       fromStruct(f.GetAttributes()),
		}
	}

	rows, err := s.uploads.Commit(ctx, services.CommitRequest{
		Files:    files,
		RefType:  req.GetRefType(),
		RefID:    fromInt64Value(req.GetRefId()),
		Module:   req.GetModule(),
		Relocate: req.GetRelocate(),
		Schema:   req.GetSchema(),
	}, actorFromContext(ctx))

	var partial *common.PartialCommitError
	if errors.As(err, &partial) {
		return &pb.CommitUploadResponse{
			Files:             toFileInfos(rows),
			PendingRelocation: partial.Keys,
			Message:           fmt.Sprintf("files committed, %d object(s) pending relocation", len(partial.Keys)),
		}, nil
	}
	if err != nil {
		return nil, s.toStatus(ctx, "commit upload", err)
	}

	return &pb.CommitUploadResponse{Files: toFileInfos(rows), Message: "files committed"}, nil
}

func (s *GRPCServer) Delete(ctx context.Context, req *pb.DeleteRequest) (*pb.DeleteResponse, error) {

	if err := s.deletes.Delete(ctx, req.GetId(), req.GetFilePath(), actorFromContext(ctx)); err != nil {
		return nil, s.toStatus(ctx, "delete", err)
	}

	return &pb.DeleteResponse{}, nil
}

func (s *GRPCServer) DownloadURL(ctx context.Context, req *pb.DownloadURLRequest) (*pb.DownloadURLResponse, error) {

	url, expires, err := s.uploads.DownloadURL(ctx, req.GetFileId(), req.GetKey())
	if err != nil {
		return nil, s.toStatus(ctx, "download url", err)
	}

	return &pb.DownloadURLResponse{Url: url, ExpiresAt: timestamppb.New(expires)}, nil
}

func (s *GRPCServer) DiscardUpload(ctx context.Context, req *pb.DiscardUploadRequest) (*pb.DiscardUploadResponse, error) {

	if err := s.uploads.DiscardUpload(ctx, req.GetKey()); err != nil {
		return nil, s.toStatus(ctx, "discard upload", err)
	}

	return &pb.DiscardUploadResponse{}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

// toStatus maps service errors onto gRPC codes. Internal failures are logged
// and reported without detail.
func (s *GRPCServer) toStatus(ctx context.Context, op string, err error) error {
	var code codes.Code

	switch {
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrSchema):
		code = codes.InvalidArgument
	case errors.Is(err, common.ErrSchemaResolution), errors.Is(err, common.ErrNotFound):
		code = codes.NotFound
	case errors.Is(err, common.ErrObjectDelete), errors.Is(err, common.ErrObjectRelocation):
		code = codes.Unavailable
	case errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	case errors.Is(err, common.ErrTransaction):
		code = codes.Aborted
	default:
		s.logger.Error(ctx, op+" failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}

	s.logger.Warn(ctx, op+" rejected", "code", code.String(), "error", err)
	return status.Error(code, err.Error())
}
