package storage

import (
	"context"
	"errors"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/cardock/cardock-api/config"
)

// ErrConflict is returned when an upload targets a path that already
// holds an object.
var ErrConflict = errors.New("storage: object already exists")

// BlobStore exists primarily for mocking, this allows us to test the
// handlers without a running object store.
type BlobStore interface {
	Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) error
	SignedURL(ctx context.Context, path string, expiry time.Duration) (string, error)
	Delete(ctx context.Context, path string) error
}

type minioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore connects to the object store configured in conf and
// ensures the target bucket exists.
func NewMinioStore(ctx context.Context, conf *config.Config) (BlobStore, error) {
	client, err := minio.New(conf.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.MinioAccessKey, conf.MinioSecretKey, ""),
		Secure: conf.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, conf.MinioBucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, conf.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
		zap.S().Infow("created storage bucket", "bucket", conf.MinioBucket)
	}

	return &minioStore{client: client, bucket: conf.MinioBucket}, nil
}

// Upload writes the object at path. Paths are write-once, uploading to
// an occupied path fails with ErrConflict instead of overwriting.
func (s *minioStore) Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.StatObject(ctx, s.bucket, path, minio.StatObjectOptions{})
	if err == nil {
		return ErrConflict
	}
	if minio.ToErrorResponse(err).Code != "NoSuchKey" {
		return err
	}

	_, err = s.client.PutObject(ctx, s.bucket, path, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// SignedURL returns a presigned download link for the object at path.
func (s *minioStore) SignedURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, path, expiry, url.Values{})
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// Delete removes the object at path. Deleting a missing object is not
// an error.
func (s *minioStore) Delete(ctx context.Context, path string) error {
	return s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{})
}
