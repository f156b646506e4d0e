// Package grpc exposes the file storage workflows as the
// filekeeper.FileStorage gRPC service.
package grpc

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/filekeeper/internal/logging"
	pb "github.com/dmitrijs2005/filekeeper/internal/proto"
	"github.com/dmitrijs2005/filekeeper/internal/server/metrics"
	"github.com/dmitrijs2005/filekeeper/internal/server/models"
	"github.com/dmitrijs2005/filekeeper/internal/server/services"
)

// Uploader is the upload side of the service layer.
type Uploader interface {
	RequestUpload(ctx context.Context, req services.UploadRequest) ([]models.UploadTarget, error)
	Commit(ctx context.Context, req services.CommitRequest, actor string) ([]*models.FileMetadata, error)
	DownloadURL(ctx context.Context, fileID, key string) (string, time.Time, error)
	DiscardUpload(ctx context.Context, key string) error
}

type Deleter interface {
	Delete(ctx context.Context, id int64, filePath, actor string) error
}

type Querier interface {
	ListByRef(ctx context.Context, refType string, refID *int64) ([]*models.FileMetadata, error)
}

type GRPCServer struct {
	pb.UnimplementedFileStorageServer

	address   string
	uploads   Uploader
	deletes   Deleter
	queries   Querier
	logger    logging.Logger
	metrics   *metrics.Metrics
	jwtSecret []byte
	timeout   time.Duration
}

var _ pb.FileStorageServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, m *metrics.Metrics, up Uploader, del Deleter, q Querier,
	secretKey string, timeout time.Duration) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		metrics:   m,
		uploads:   up,
		deletes:   del,
		queries:   q,
		jwtSecret: []byte(secretKey),
		timeout:   timeout,
	}, nil
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.metricsInterceptor,
		s.timeoutInterceptor,
		s.accessTokenInterceptor,
	))
	pb.RegisterFileStorageServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
