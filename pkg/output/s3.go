package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/disintegration/imaging"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// UploadTimeout bounds a single object upload
const UploadTimeout = 30 * time.Second

// S3Config holds the connection settings for an S3-compatible store
type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string // Default bucket for s3:///key destinations
	AccessKey string
	SecretKey string
}

// Enabled reports whether enough settings are present to create a client
func (c S3Config) Enabled() bool {
	return c.AccessKey != "" && c.SecretKey != "" && c.Region != ""
}

// S3Uploader uploads encoded frames to an S3-compatible store
type S3Uploader struct {
	client s3iface.S3API
	bucket string
	logger core.Logger
}

// NewS3Uploader creates an uploader with static credentials and path-style addressing
func NewS3Uploader(cfg S3Config, logger core.Logger) (*S3Uploader, error) {
	if !cfg.Enabled() {
		return nil, errors.New("S3 access key, secret key and region are required")
	}

	awsConfig := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return NewS3UploaderWithClient(s3.New(sess), cfg.Bucket, logger), nil
}

// NewS3UploaderWithClient wraps an existing S3 client
func NewS3UploaderWithClient(client s3iface.S3API, bucket string, logger core.Logger) *S3Uploader {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &S3Uploader{client: client, bucket: bucket, logger: logger}
}

// Upload encodes the image in the format implied by the key's extension and
// stores it. An empty bucket selects the configured default.
func (u *S3Uploader) Upload(ctx context.Context, img image.Image, bucket, key string, opts Options) error {
	if bucket == "" {
		bucket = u.bucket
	}
	if bucket == "" {
		return fmt.Errorf("no bucket given for %s", key)
	}

	format, err := imaging.FormatFromFilename(key)
	if err != nil {
		return fmt.Errorf("unsupported output key %s: %w", key, err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img, format, opts); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	size := int64(buf.Len())
	_, err = u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType(format)),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	u.logger.Printf("Uploaded s3://%s/%s (%d bytes)\n", bucket, key, size)
	return nil
}
