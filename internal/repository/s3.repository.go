package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// NewS3Client builds an S3 client from the default credential chain.
// region should be the AWS region (e.g., "us-east-1").
func NewS3Client(ctx context.Context, region string) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

// S3DatasetSource downloads the snapshot CSV object into memory.
type S3DatasetSource struct {
	Client *s3.Client
	Bucket string
	Key    string
}

func (s S3DatasetSource) Fetch(ctx context.Context) ([]byte, error) {
	buf := manager.NewWriteAtBuffer([]byte{})
	downloader := manager.NewDownloader(s.Client)
	_, err := downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download dataset from s3://%s/%s: %w", s.Bucket, s.Key, err)
	}
	return buf.Bytes(), nil
}
