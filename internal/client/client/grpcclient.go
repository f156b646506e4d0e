package client

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/dmitrijs2005/filekeeper/internal/common"
	pb "github.com/dmitrijs2005/filekeeper/internal/proto"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.FileStorageClient
	accessToken string
}

var _ Client = (*GRPCClient)(nil)

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewFileKeeperClient(endpointURL, accessToken string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, accessToken: accessToken}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewFileStorageClient(conn)
	return nil
}

// SetAccessToken replaces the token sent with subsequent calls.
func (s *GRPCClient) SetAccessToken(token string) {
	s.accessToken = token
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) RequestUpload(ctx context.Context, req *pb.RequestUploadRequest) ([]*pb.UploadTarget, error) {
	resp, err := s.client.RequestUpload(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetTargets(), nil
}

// CommitUpload returns the response for partial commits too; callers check
// PendingRelocation.
func (s *GRPCClient) CommitUpload(ctx context.Context, req *pb.CommitUploadRequest) (*pb.CommitUploadResponse, error) {
	resp, err := s.client.CommitUpload(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ListByRef(ctx context.Context, refType string, refID *int64) ([]*pb.FileInfo, error) {
	req := &pb.ListByRefRequest{RefType: refType}
	if refID != nil {
		req.RefId = wrapperspb.Int64(*refID)
	}
	resp, err := s.client.ListByRef(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetFiles(), nil
}

func (s *GRPCClient) Delete(ctx context.Context, id int64, filePath string) error {
	if _, err := s.client.Delete(ctx, &pb.DeleteRequest{Id: id, FilePath: filePath}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) DownloadURL(ctx context.Context, fileID, key string) (string, error) {
	resp, err := s.client.DownloadURL(ctx, &pb.DownloadURLRequest{FileId: fileID, Key: key})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetUrl(), nil
}

func (s *GRPCClient) DiscardUpload(ctx context.Context, key string) error {
	if _, err := s.client.DiscardUpload(ctx, &pb.DiscardUploadRequest{Key: key}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
