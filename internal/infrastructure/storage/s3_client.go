package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/h2non/filetype"

	"github.com/marcos-nsantos/image-variants/internal/domain"
	"github.com/marcos-nsantos/image-variants/internal/infrastructure/config"
)

// S3Storage stores uploads as objects keyed by dir/name.
type S3Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewS3Storage(cfg config.S3Config) (*S3Storage, error) {
	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			)
		},
	}

	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.UsePathStyle
		})
	}

	return &S3Storage{
		client:    s3.New(s3.Options{}, opts...),
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

// Move uploads the local file at srcPath and removes it once the object
// exists.
func (s *S3Storage) Move(ctx context.Context, srcPath, dir, name string) error {
	f, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("%w: opening %s: %v", domain.ErrStorage, srcPath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: stat %s: %v", domain.ErrStorage, srcPath, err)
	}

	contentType := "application/octet-stream"
	if kind, err := filetype.MatchFile(srcPath); err == nil && kind != filetype.Unknown {
		contentType = kind.MIME.Value
	}

	if err := s.Save(ctx, dir, name, f, contentType, info.Size()); err != nil {
		return err
	}

	if err := os.Remove(srcPath); err != nil {
		return fmt.Errorf("%w: removing %s: %v", domain.ErrStorage, srcPath, err)
	}
	return nil
}

func (s *S3Storage) Save(ctx context.Context, dir, name string, reader io.Reader, contentType string, size int64) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(objectKey(dir, name)),
		Body:          reader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return fmt.Errorf("%w: uploading to s3: %v", domain.ErrStorage, err)
	}
	return nil
}

func (s *S3Storage) URL(dir, name string) string {
	key := objectKey(dir, name)
	if s.publicURL != "" {
		return fmt.Sprintf("%s/%s", s.publicURL, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}

func objectKey(dir, name string) string {
	return strings.TrimPrefix(path.Join(dir, name), "/")
}
