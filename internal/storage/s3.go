package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ArtifactStore handles persisted acquisition artifacts (CSV exports).
type ArtifactStore interface {
	UploadArtifact(ctx context.Context, key string, data []byte, contentType string) error
	GenerateDownloadURL(ctx context.Context, key string) (string, error)
	DownloadArtifact(ctx context.Context, key string) ([]byte, error)
	DeleteArtifact(ctx context.Context, key string) error
}

type s3Store struct {
	client    *s3.Client
	bucket    string
	urlExpiry time.Duration
	endpoint  string // For MinIO compatibility
}

// S3Config holds configuration for the artifact store
type S3Config struct {
	Bucket    string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

// NewS3Store creates a new S3-backed artifact store
func NewS3Store(cfg S3Config) (ArtifactStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is required")
	}

	var awsCfg aws.Config
	var err error

	var client *s3.Client

	if cfg.Endpoint != "" {
		// MinIO configuration
		opts := []func(*awsconfig.LoadOptions) error{
			awsconfig.WithRegion("us-east-1"), // MinIO doesn't care about region
		}
		if cfg.AccessKey != "" {
			opts = append(opts, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
		}
		awsCfg, err = awsconfig.LoadDefaultConfig(context.Background(), opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		endpoint := cfg.Endpoint
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "http://" + endpoint
		}

		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = &endpoint
			o.UsePathStyle = true // MinIO requires path-style URLs
		})
	} else {
		// AWS S3 configuration
		awsCfg, err = awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(cfg.Region),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		client = s3.NewFromConfig(awsCfg)
	}

	return &s3Store{
		client:    client,
		bucket:    cfg.Bucket,
		urlExpiry: 24 * time.Hour,
		endpoint:  cfg.Endpoint,
	}, nil
}

// UploadArtifact stores an artifact under the given key
func (s *s3Store) UploadArtifact(ctx context.Context, key string, data []byte, contentType string) error {
	if err := s.validateContentType(contentType); err != nil {
		return err
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload artifact: %w", err)
	}

	return nil
}

// GenerateDownloadURL generates a pre-signed URL for downloading artifacts
func (s *s3Store) GenerateDownloadURL(ctx context.Context, key string) (string, error) {
	presignClient := s3.NewPresignClient(s.client)

	request, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = s.urlExpiry
	})

	if err != nil {
		return "", fmt.Errorf("failed to generate download URL: %w", err)
	}

	return request.URL, nil
}

// DownloadArtifact downloads an artifact from S3/MinIO
func (s *s3Store) DownloadArtifact(ctx context.Context, key string) ([]byte, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to download artifact: %w", err)
	}

	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact body: %w", err)
	}

	return data, nil
}

// DeleteArtifact deletes an artifact from S3/MinIO
func (s *s3Store) DeleteArtifact(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		return fmt.Errorf("failed to delete artifact: %w", err)
	}

	return nil
}

// validateContentType validates that the content type is supported
func (s *s3Store) validateContentType(contentType string) error {
	validTypes := map[string]bool{
		"text/csv":         true,
		"application/json": true,
	}

	if !validTypes[contentType] {
		return fmt.Errorf("invalid content type: %s. Supported types: text/csv, application/json", contentType)
	}

	return nil
}
