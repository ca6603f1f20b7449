package store

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"cloud-gallery/internal/logging"
)

// MinIOConfig holds connection settings for the MinIO backend.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	URLTTL    time.Duration
}

// MinIO is a Store backed by a MinIO/S3 bucket.
type MinIO struct {
	core   *minio.Core
	bucket string
	urlTTL time.Duration
}

// NewMinIO connects to the configured endpoint and ensures the bucket
// exists.
func NewMinIO(ctx context.Context, cfg MinIOConfig) (*MinIO, error) {
	core, err := minio.NewCore(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	s := &MinIO{core: core, bucket: cfg.Bucket, urlTTL: cfg.URLTTL}
	if err := s.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}

	logging.Info("Object store ready: %s/%s (ssl: %v)", cfg.Endpoint, cfg.Bucket, cfg.UseSSL)
	return s, nil
}

func (s *MinIO) ensureBucket(ctx context.Context) error {
	exists, err := s.core.Client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := s.core.Client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		logging.Info("Created bucket %s", s.bucket)
	}
	return nil
}

// Put writes data under path with the given content type and metadata.
func (s *MinIO) Put(ctx context.Context, path string, data []byte, contentType string, metadata map[string]string) error {
	_, err := s.core.Client.PutObject(ctx, s.bucket, path, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType:  contentType,
			UserMetadata: metadata,
		})
	return transferErr("put", path, err)
}

// ResolveURL returns a presigned GET URL valid for the configured TTL.
func (s *MinIO) ResolveURL(ctx context.Context, path string) (string, error) {
	u, err := s.core.Client.PresignedGetObject(ctx, s.bucket, path, s.urlTTL, nil)
	if err != nil {
		return "", transferErr("resolve-url", path, err)
	}
	return u.String(), nil
}

// List returns one page of object paths under prefix, forwarding the S3
// ListObjectsV2 continuation token as the opaque cursor.
func (s *MinIO) List(ctx context.Context, prefix string, pageSize int, cursor string) (Page, error) {
	res, err := s.core.ListObjectsV2(s.bucket, prefix, "", cursor, "", pageSize)
	if err != nil {
		return Page{}, transferErr("list", prefix, err)
	}

	page := Page{Paths: make([]string, 0, len(res.Contents))}
	for _, obj := range res.Contents {
		page.Paths = append(page.Paths, obj.Key)
	}
	if res.IsTruncated {
		page.NextCursor = res.NextContinuationToken
	}
	return page, nil
}

// Remove deletes the object at path.
func (s *MinIO) Remove(ctx context.Context, path string) error {
	err := s.core.Client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{})
	return transferErr("remove", path, err)
}
