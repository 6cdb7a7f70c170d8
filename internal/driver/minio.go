package driver

import (
	"context"
	"fmt"
	"io"

	"github.com/agenthands/classmem/internal/config"
	"github.com/agenthands/classmem/internal/core/model"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectSource reads the dataset document from a MinIO or S3 bucket.
type ObjectSource struct {
	Bucket string
	Object string

	open func(ctx context.Context) (io.ReadCloser, error)
}

func NewObjectSource(cfg config.MinioConfig) (*ObjectSource, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	bucket, object := cfg.Bucket, cfg.Object
	return &ObjectSource{
		Bucket: bucket,
		Object: object,
		open: func(ctx context.Context) (io.ReadCloser, error) {
			obj, err := mc.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
			if err != nil {
				return nil, err
			}
			return obj, nil
		},
	}, nil
}

func (s *ObjectSource) Name() string { return fmt.Sprintf("minio:%s/%s", s.Bucket, s.Object) }

func (s *ObjectSource) FetchDataset(ctx context.Context) (*model.Dataset, error) {
	rc, err := s.open(ctx)
	if err != nil {
		return nil, fmt.Errorf("get object %s/%s: %w", s.Bucket, s.Object, err)
	}
	defer rc.Close()

	// minio reports missing objects on first read
	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read object %s/%s: %w", s.Bucket, s.Object, err)
	}
	return Decode(raw, FormatFromPath(s.Object))
}
