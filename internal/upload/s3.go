package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Uploader stores assets in an S3 bucket under a key prefix.
type S3Uploader struct {
	client  *s3.Client
	bucket  string
	prefix  string
	baseURL string
	logger  *slog.Logger
}

// NewS3Uploader builds an uploader against an existing S3 client.
// baseURL is the public URL prefix assets are served from; when empty
// the standard virtual-hosted bucket URL is used.
func NewS3Uploader(client *s3.Client, bucket, region, prefix, baseURL string, logger *slog.Logger) *S3Uploader {
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}
	return &S3Uploader{
		client:  client,
		bucket:  bucket,
		prefix:  prefix,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger.With("component", "upload"),
	}
}

// NewS3UploaderFromEnv loads the default AWS configuration (environment,
// shared config, instance role) and builds an uploader for bucket.
func NewS3UploaderFromEnv(ctx context.Context, bucket, region, prefix, baseURL string, logger *slog.Logger) (*S3Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewS3Uploader(s3.NewFromConfig(cfg), bucket, region, prefix, baseURL, logger), nil
}

// Put uploads the asset and returns its public URL.
func (u *S3Uploader) Put(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	if !validType(contentType) {
		return "", ErrUnsupportedType
	}

	data, err := readLimited(r)
	if err != nil {
		return "", err
	}

	key := assetKey(u.prefix, filename, contentType)
	u.logger.Debug("s3 put", "bucket", u.bucket, "key", key, "size", len(data))

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"original-filename": filename,
		},
	})
	if err != nil {
		return "", fmt.Errorf("s3 put %s: %w", key, err)
	}

	return u.baseURL + "/" + key, nil
}

// Delete removes a previously uploaded asset by its public URL.
// URLs outside this uploader's base are ignored.
func (u *S3Uploader) Delete(ctx context.Context, url string) error {
	key, ok := strings.CutPrefix(url, u.baseURL+"/")
	if !ok {
		return nil
	}
	u.logger.Debug("s3 delete", "bucket", u.bucket, "key", key)

	_, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s: %w", key, err)
	}
	return nil
}
