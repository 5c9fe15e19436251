package export

import (
	"context"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/complykit/trustreport/pkg/errors"
	"github.com/complykit/trustreport/pkg/logging"
)

// Uploader copies exported report files into an object storage bucket.
type Uploader struct {
	client *minio.Client
	bucket string
}

// NewUploader connects to the S3-compatible endpoint with static credentials.
func NewUploader(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*Uploader, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, errors.NewConfigError("storage", "invalid object storage endpoint", err)
	}
	return &Uploader{client: client, bucket: bucket}, nil
}

// Upload stores the file at path under its base name and returns the object key.
func (u *Uploader) Upload(ctx context.Context, path string) (string, error) {
	key := filepath.Base(path)

	contentType := "text/csv"
	if filepath.Ext(path) == ".html" {
		contentType = "text/html"
	}

	info, err := u.client.FPutObject(ctx, u.bucket, key, path, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.WrapIO("write", u.bucket+"/"+key, err)
	}

	logging.Ctx(ctx).Info().
		Str("bucket", u.bucket).
		Str("key", key).
		Int64("size", info.Size).
		Msg("Uploaded report file")
	return key, nil
}
