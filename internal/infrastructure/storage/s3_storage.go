// Package storage provides attachment storage implementations.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	planningapp "github.com/estate/backend/internal/application/planning"
	infraconfig "github.com/estate/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Ensure S3AttachmentStorage implements AttachmentStorage
var _ planningapp.AttachmentStorage = (*S3AttachmentStorage)(nil)

// S3AttachmentStorage stores attachments in an S3 bucket using AWS SDK v2.
// It is compatible with any S3-compatible storage (AWS S3, MinIO, etc.)
type S3AttachmentStorage struct {
	client *s3.Client
	bucket string
	logger *zap.Logger
}

// S3AttachmentStorageOption is a functional option for configuring S3AttachmentStorage
type S3AttachmentStorageOption func(*S3AttachmentStorage)

// WithLogger sets a custom logger for S3AttachmentStorage
func WithLogger(logger *zap.Logger) S3AttachmentStorageOption {
	return func(s *S3AttachmentStorage) {
		s.logger = logger
	}
}

// NewS3AttachmentStorage creates a new S3AttachmentStorage from configuration
func NewS3AttachmentStorage(cfg infraconfig.StorageConfig, opts ...S3AttachmentStorageOption) (*S3AttachmentStorage, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	if cfg.AccessKey == "" {
		return nil, errors.New("storage access key is required")
	}
	if cfg.SecretKey == "" {
		return nil, errors.New("storage secret key is required")
	}

	region := cfg.Region
	if region == "" {
		region = "ap-south-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			// Custom endpoints (MinIO) need path-style addressing
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	storage := &S3AttachmentStorage{
		client: client,
		bucket: cfg.Bucket,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(storage)
	}

	return storage, nil
}

// Store uploads the blob and returns an s3:// reference to it
func (s *S3AttachmentStorage) Store(ctx context.Context, name string, data []byte) (string, error) {
	if name == "" {
		return "", errors.New("attachment name is required")
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload attachment: %w", err)
	}

	s.logger.Debug("attachment stored",
		zap.String("bucket", s.bucket),
		zap.String("key", name),
		zap.Int("bytes", len(data)),
	)
	return fmt.Sprintf("s3://%s/%s", s.bucket, name), nil
}

// Delete removes a previously stored blob by its reference
func (s *S3AttachmentStorage) Delete(ctx context.Context, ref string) error {
	key, err := s.keyFromRef(ref)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}

	return nil
}

func (s *S3AttachmentStorage) keyFromRef(ref string) (string, error) {
	prefix := "s3://" + s.bucket + "/"
	if !strings.HasPrefix(ref, prefix) {
		return "", fmt.Errorf("reference %q does not belong to bucket %q", ref, s.bucket)
	}
	key := strings.TrimPrefix(ref, prefix)
	if key == "" {
		return "", errors.New("reference carries no object key")
	}
	return key, nil
}

// GetBucket returns the bucket name
func (s *S3AttachmentStorage) GetBucket() string {
	return s.bucket
}
