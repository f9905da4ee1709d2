package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"docqa/internal/config"
)

const bucketCheckTimeout = 10 * time.Second

// objectAPI is the subset of *minio.Client the archive uses.
type objectAPI interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
	MakeBucket(ctx context.Context, bucket string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucket, key string, r io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucket, key string, opts minio.RemoveObjectOptions) error
	PresignedGetObject(ctx context.Context, bucket, key string, expiry time.Duration, params url.Values) (*url.URL, error)
}

// minioArchive stores originals in a single bucket of an S3-compatible server.
type minioArchive struct {
	api    objectAPI
	bucket string
}

func validateMinIO(cfg config.MinIOConfig) error {
	switch {
	case cfg.Endpoint == "":
		return errors.New("minio endpoint is required")
	case cfg.AccessKey == "" || cfg.SecretKey == "":
		return errors.New("minio credentials are required")
	case cfg.Bucket == "":
		return errors.New("minio bucket is required")
	}
	return nil
}

// NewMinIO connects to the configured server and makes sure the bucket exists.
func NewMinIO(ctx context.Context, cfg config.MinIOConfig) (Storage, error) {
	if err := validateMinIO(cfg); err != nil {
		return nil, err
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	a := &minioArchive{api: cli, bucket: cfg.Bucket}
	if err := a.ensureBucket(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *minioArchive) ensureBucket(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, bucketCheckTimeout)
	defer cancel()

	ok, err := a.api.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %q: %w", a.bucket, err)
	}
	if ok {
		return nil
	}
	if err := a.api.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %q: %w", a.bucket, err)
	}
	return nil
}

// Put streams r into the bucket; opt.Size may be -1 for unknown lengths.
func (a *minioArchive) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	key = strings.TrimPrefix(key, "/")
	up, err := a.api.PutObject(ctx, a.bucket, key, r, opt.Size, minio.PutObjectOptions{
		ContentType:  opt.ContentType,
		UserMetadata: opt.Metadata,
	})
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("put %s: %w", key, err)
	}
	return ObjectInfo{
		Key:         up.Key,
		Size:        up.Size,
		ETag:        up.ETag,
		ContentType: opt.ContentType,
	}, nil
}

func (a *minioArchive) Delete(ctx context.Context, key string) error {
	if err := a.api.RemoveObject(ctx, a.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// PresignGet signs a GET for key that asks the browser to save the object
// under its base name.
func (a *minioArchive) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	params := url.Values{}
	if i := strings.LastIndex(key, "/"); i < len(key)-1 {
		params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", key[i+1:]))
	}
	u, err := a.api.PresignedGetObject(ctx, a.bucket, key, expiry, params)
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return u.String(), nil
}
