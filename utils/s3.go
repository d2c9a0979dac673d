package utils

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ImageStore keeps uploaded meal photos and hands back a public URL.
type ImageStore interface {
	Upload(ctx context.Context, keyPrefix string, data []byte) (string, error)
}

// S3PutAPI is the slice of the S3 client the store needs.
type S3PutAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3ImageStore struct {
	client    S3PutAPI
	bucket    string
	publicURL string
}

func NewS3ImageStore(client S3PutAPI, bucket, publicURL string) *S3ImageStore {
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.amazonaws.com", bucket)
	}
	return &S3ImageStore{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// NewS3ImageStoreFromEnv builds a client from the default credential chain.
func NewS3ImageStoreFromEnv(ctx context.Context, region, bucket, publicURL string) (*S3ImageStore, error) {
	cfg, err := LoadAWSConfig(ctx, region)
	if err != nil {
		return nil, err
	}
	return NewS3ImageStore(s3.NewFromConfig(cfg), bucket, publicURL), nil
}

func (s *S3ImageStore) Upload(ctx context.Context, keyPrefix string, data []byte) (string, error) {
	contentType := DetectImageMIME(data)
	key := fmt.Sprintf("meal-images/%s-%d%s",
		keyPrefix,
		time.Now().UnixNano(),
		ImageExtension(contentType),
	)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.publicURL, key), nil
}
