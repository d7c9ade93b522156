package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"doctorkays/internal/config"
)

const reportPrefix = "consultation-reports"

// FileStore persists uploaded report files. *ReportStore is the S3-backed
// implementation; tests substitute an in-memory one.
type FileStore interface {
	SaveReport(ctx context.Context, filename, contentType string, data []byte) (key, downloadURL string, err error)
}

// ReportStore keeps consultation report files in an S3 bucket and hands out
// presigned download links so the stored URL works without bucket-wide
// public access.
type ReportStore struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	linkTTL time.Duration
}

func NewReportStore(cfg config.StorageConfig) (*ReportStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey, cfg.SecretKey, "",
		)))
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return &ReportStore{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		linkTTL: 7 * 24 * time.Hour,
	}, nil
}

func reportKey(filename string) string {
	return path.Join(reportPrefix, uuid.NewString()+path.Ext(filename))
}

func (s *ReportStore) SaveReport(ctx context.Context, filename, contentType string, data []byte) (string, string, error) {
	key := reportKey(filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
		ContentDisposition: aws.String(
			fmt.Sprintf("attachment; filename=%q", filename),
		),
	})
	if err != nil {
		return "", "", fmt.Errorf("upload report: %w", err)
	}

	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.linkTTL))
	if err != nil {
		return "", "", fmt.Errorf("presign report: %w", err)
	}
	return key, req.URL, nil
}
