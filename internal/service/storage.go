package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/foodiesapp/backend/config"
)

// StorageService uploads meal images to S3. Uploads are the only
// direction this service exercises; a single failed attempt aborts the
// caller's save with no retry.
type StorageService struct {
	s3Config *config.S3Config
}

// NewStorageService creates a new StorageService instance
func NewStorageService(s3Config *config.S3Config) *StorageService {
	return &StorageService{s3Config: s3Config}
}

// Upload writes the payload to the configured bucket under key
func (s *StorageService) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}

	log.Printf("[StorageService] Uploaded image %s to bucket %s", key, s.s3Config.BucketName)
	return nil
}

// PublicURL composes the publicly reachable URL for an object key
func (s *StorageService) PublicURL(key string) string {
	return strings.TrimSuffix(s.s3Config.PublicBaseURL, "/") + "/" + key
}
