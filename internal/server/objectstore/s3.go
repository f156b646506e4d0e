package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrijs2005/filekeeper/internal/common"
	"github.com/dmitrijs2005/filekeeper/internal/server/metrics"
)

// S3 accepts at most this many keys per DeleteObjects call.
const deleteBatchSize = 1000

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

type s3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	CopyObject(ctx context.Context, in *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	DeleteObjects(ctx context.Context, in *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
}

type presignAPI interface {
	PresignPutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
	PresignDeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Options configures the S3 client.
type Options struct {
	Bucket       string
	Region       string
	AccessKey    string // MINIO_ROOT_USER
	SecretKey    string // MINIO_ROOT_PASSWORD
	BaseEndpoint string
	// UsePathStyle is required by MinIO and most self-hosted stores.
	UsePathStyle bool
}

// S3Gateway implements Gateway on top of aws-sdk-go-v2.
type S3Gateway struct {
	client  s3API
	presign presignAPI
	bucket  string
	metrics *metrics.Metrics
}

// NewS3Gateway builds an S3 client from static credentials.
func NewS3Gateway(ctx context.Context, opts Options, m *metrics.Metrics) (*S3Gateway, error) {
	if opts.Bucket == "" {
		return nil, errors.New("object store bucket is not configured")
	}

	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
		}
		o.UsePathStyle = opts.UsePathStyle
	})

	return newGateway(client, s3.NewPresignClient(client), opts.Bucket, m), nil
}

func newGateway(client s3API, presign presignAPI, bucket string, m *metrics.Metrics) *S3Gateway {
	if m == nil {
		m = metrics.NewUnregistered()
	}
	return &S3Gateway{client: client, presign: presign, bucket: bucket, metrics: m}
}

// Bucket is the default bucket of the gateway.
func (g *S3Gateway) Bucket() string { return g.bucket }

func (g *S3Gateway) observe(op string, start time.Time, err error) {
	status := "ok"
	switch {
	case err == nil:
	case isNotFound(err), errors.Is(err, common.ErrNotFound):
		status = "not_found"
	default:
		status = "error"
	}
	g.metrics.ObjectStoreRequests.WithLabelValues(op, status).Inc()
	g.metrics.ObjectStoreDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (g *S3Gateway) Open(ctx context.Context, key string) (rc io.ReadCloser, err error) {
	start := time.Now()
	defer func() { g.observe("get", start, err) }()

	out, err := g.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: object %s", common.ErrNotFound, key)
		}
		return nil, fmt.Errorf("get object %s: %w", key, err)
	}
	return out.Body, nil
}

func (g *S3Gateway) Delete(ctx context.Context, key string) (ok bool, err error) {
	start := time.Now()
	defer func() { g.observe("delete", start, err) }()

	_, err = g.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return true, nil
		}
		return false, fmt.Errorf("delete object %s: %w", key, err)
	}
	return true, nil
}

func (g *S3Gateway) CopyAndDeleteBatch(ctx context.Context, bucket, srcPrefix, dstPrefix string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	if bucket == "" {
		bucket = g.bucket
	}

	var failed []KeyError
	copied := make([]string, 0, len(keys))

	for _, k := range keys {
		if err := ctx.Err(); err != nil {
			failed = append(failed, KeyError{Key: k, Err: err})
			continue
		}
		if err := g.copy(ctx, bucket, srcPrefix+k, dstPrefix+k); err != nil {
			failed = append(failed, KeyError{Key: k, Err: err})
			continue
		}
		copied = append(copied, k)
	}

	failed = append(failed, g.deleteSources(ctx, bucket, srcPrefix, copied)...)

	if len(failed) > 0 {
		return &BatchError{Failed: failed}
	}
	return nil
}

func (g *S3Gateway) copy(ctx context.Context, bucket, src, dst string) (err error) {
	start := time.Now()
	defer func() { g.observe("copy", start, err) }()

	_, err = g.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(bucket),
		CopySource: aws.String(copySource(bucket, src)),
		Key:        aws.String(dst),
	})
	if err == nil {
		return nil
	}
	if !isNotFound(err) {
		return fmt.Errorf("copy %s: %w", src, err)
	}

	// Source gone: an earlier attempt may have finished the move.
	if _, herr := g.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(dst),
	}); herr == nil {
		return nil
	}
	return fmt.Errorf("copy %s: %w", src, err)
}

func (g *S3Gateway) deleteSources(ctx context.Context, bucket, srcPrefix string, keys []string) []KeyError {
	var failed []KeyError

	for start := 0; start < len(keys); start += deleteBatchSize {
		end := min(start+deleteBatchSize, len(keys))
		chunk := keys[start:end]

		objects := make([]types.ObjectIdentifier, len(chunk))
		for i, k := range chunk {
			objects[i] = types.ObjectIdentifier{Key: aws.String(srcPrefix + k)}
		}

		t := time.Now()
		out, err := g.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(bucket),
			Delete: &types.Delete{Objects: objects, Quiet: aws.Bool(true)},
		})
		g.observe("delete_batch", t, err)
		if err != nil {
			for _, k := range chunk {
				failed = append(failed, KeyError{Key: k, Err: fmt.Errorf("delete source: %w", err)})
			}
			continue
		}

		for _, e := range out.Errors {
			if aws.ToString(e.Code) == "NoSuchKey" {
				continue
			}
			failed = append(failed, KeyError{
				Key: strings.TrimPrefix(aws.ToString(e.Key), srcPrefix),
				Err: fmt.Errorf("delete source: %s: %s", aws.ToString(e.Code), aws.ToString(e.Message)),
			})
		}
	}
	return failed
}

func (g *S3Gateway) PresignURL(ctx context.Context, key string, op Operation, ttl time.Duration) (string, error) {
	var (
		req *v4.PresignedHTTPRequest
		err error
	)

	bucket := aws.String(g.bucket)
	expires := s3.WithPresignExpires(ttl)

	switch op {
	case OpPut:
		req, err = g.presign.PresignPutObject(ctx, &s3.PutObjectInput{Bucket: bucket, Key: aws.String(key)}, expires)
	case OpGet:
		req, err = g.presign.PresignGetObject(ctx, &s3.GetObjectInput{Bucket: bucket, Key: aws.String(key)}, expires)
	case OpDelete:
		req, err = g.presign.PresignDeleteObject(ctx, &s3.DeleteObjectInput{Bucket: bucket, Key: aws.String(key)}, expires)
	default:
		return "", fmt.Errorf("%w: unsupported presign operation %q", common.ErrValidation, op)
	}
	if err != nil {
		return "", fmt.Errorf("presign %s %s: %w", op, key, err)
	}
	return req.URL, nil
}

func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}

// copySource escapes every path segment of bucket/key as CopyObject expects.
func copySource(bucket, key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return bucket + "/" + strings.Join(segments, "/")
}
