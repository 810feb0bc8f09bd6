// Package storage provides the blob store behind document, drawing, proposal and
// receipt uploads. Object keys are namespaced per bucket kind and organization:
// <kind>/<organization_id>/<file_id>_<file_name>.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	appconfig "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/platform/config"
)

// ObjectStore is the interface the document service depends on; *S3Store is the
// production implementation and tests substitute a mock.
type ObjectStore interface {
	Upload(ctx context.Context, key string, contentType string, body []byte) error
	PresignedGetURL(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// S3Store handles object storage operations against a single S3 bucket.
type S3Store struct {
	client *s3.Client
	bucket string
}

// NewS3Store initializes the S3 client from application config.
func NewS3Store(ctx context.Context, cfg *appconfig.Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Store{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.S3Bucket,
	}, nil
}

var _ ObjectStore = (*S3Store)(nil)

// ObjectKey builds the canonical, organization-namespaced key for a stored file.
func ObjectKey(kind domain.DocumentKind, organizationID, fileID, fileName string) string {
	return fmt.Sprintf("%s/%s/%s_%s", kind, organizationID, fileID, filepath.Base(fileName))
}

// Upload stores body under key.
func (s *S3Store) Upload(ctx context.Context, key string, contentType string, body []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}
	return nil
}

// PresignedGetURL generates a presigned URL for downloading a private object.
// The URL expires after 1 hour.
func (s *S3Store) PresignedGetURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}

	presignClient := s3.NewPresignClient(s.client)
	request, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return request.URL, nil
}

// Delete removes an object; deleting an empty key is a no-op.
func (s *S3Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}
	return nil
}
