package storage

import (
	"context"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mmrivera/portfolio-backend/config"
	"github.com/mmrivera/portfolio-backend/errs"
)

// S3Store implements FileStore against an S3-compatible endpoint (AWS or
// MinIO). Download URLs are presigned GETs.
type S3Store struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	urlExpiry time.Duration
}

func NewS3Store(ctx context.Context, cfg *config.Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
			// MinIO and most S3 clones want path-style addressing.
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.S3Bucket,
		urlExpiry: cfg.S3URLExpiry,
	}, nil
}

// Upload stores the object and returns its download URL. Progress is reported
// as the request body is consumed, ending at 100 once the last byte is read.
func (s *S3Store) Upload(ctx context.Context, key string, r io.Reader, size int64, onProgress ProgressFunc) (string, error) {
	body := newProgressReader(r, size, onProgress)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", errs.NewUploadError(key, err)
	}

	return s.DownloadURL(ctx, key)
}

// DownloadURL presigns a GET for the stored object.
func (s *S3Store) DownloadURL(ctx context.Context, key string) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.urlExpiry))
	if err != nil {
		return "", errs.NewUploadError(key, err)
	}
	return req.URL, nil
}
