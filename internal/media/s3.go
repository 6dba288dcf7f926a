package media

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/berberhaus/barbershop-api/internal/config"
)

// Uploader stores a processed image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

type S3Uploader struct {
	client  *s3.Client
	bucket  string
	region  string
	baseURL string
}

func NewS3Uploader(cfg *config.Config) *S3Uploader {
	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	})

	return &S3Uploader{
		client:  client,
		bucket:  cfg.S3Bucket,
		region:  cfg.S3Region,
		baseURL: cfg.S3BaseURL,
	}
}

func (u *S3Uploader) Upload(
	ctx context.Context,
	key string,
	body []byte,
	contentType string,
) (string, error) {

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	if u.baseURL != "" {
		return fmt.Sprintf("%s/%s", u.baseURL, key), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}
