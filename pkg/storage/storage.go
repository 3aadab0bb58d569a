package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/mateusfigmelo/msc-backend/pkg/config"
)

// Uploader stores a binary asset under a logical directory and returns the
// stable URL used as the record's imageUrl.
type Uploader interface {
	Upload(ctx context.Context, directory, filename string, reader io.Reader, size int64, contentType string) (string, error)
}

// MinioUploader stores assets in a MinIO (S3-compatible) bucket.
type MinioUploader struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinioUploader connects to the object store and ensures the bucket exists.
func NewMinioUploader(ctx context.Context, cfg *config.StorageConfig) (*MinioUploader, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to object storage: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
	}

	return &MinioUploader{client: client, bucket: cfg.Bucket, publicURL: cfg.PublicURL}, nil
}

// Upload writes the object under directory with a random name prefix so
// repeated uploads of the same filename never collide.
func (u *MinioUploader) Upload(ctx context.Context, directory, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	objectName := path.Join(directory, uuid.New().String()+"-"+filename)
	_, err := u.client.PutObject(ctx, u.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", objectName, err)
	}
	return fmt.Sprintf("%s/%s/%s", u.publicURL, u.bucket, objectName), nil
}
