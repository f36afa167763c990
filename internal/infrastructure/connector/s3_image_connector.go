package connector

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/MGTheTrain/car-catalog/internal/domain/images"
	"github.com/MGTheTrain/car-catalog/internal/pkg/config"
	"github.com/MGTheTrain/car-catalog/internal/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3API is the subset of the S3 client used by the connector
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

type s3ImageConnector struct {
	client s3API
	bucket string
	prefix string
	logger logger.Logger
}

// NewS3ImageConnector creates an ImageStore backed by an S3 bucket. Credentials come from
// the settings when set and from the default AWS chain otherwise. A custom endpoint
// (MinIO, LocalStack) switches the client to path-style addressing.
func NewS3ImageConnector(ctx context.Context, settings *config.StorageSettings, logger logger.Logger) (images.ImageStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(settings.Region),
	}
	if settings.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(settings.AccessKeyID, settings.SecretAccessKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if settings.Endpoint != "" {
			o.BaseEndpoint = aws.String(settings.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3ImageConnector(client, settings.Bucket, settings.Prefix, logger), nil
}

func newS3ImageConnector(client s3API, bucket, prefix string, logger logger.Logger) *s3ImageConnector {
	prefix = strings.Trim(prefix, "/")
	if prefix != "" {
		prefix += "/"
	}
	return &s3ImageConnector{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

func (c *s3ImageConnector) key(name string) string {
	return c.prefix + name
}

func (c *s3ImageConnector) Save(ctx context.Context, data []byte, ext string) (string, error) {
	name, err := newFileName(ext)
	if err != nil {
		return "", err
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(c.key(name)),
		Body:   bytes.NewReader(data),
	}
	if contentType := mime.TypeByExtension(path.Ext(name)); contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := c.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload image %s: %w", name, err)
	}

	c.logger.Debug("Uploaded image object", "bucket", c.bucket, "key", c.key(name), "size", len(data))
	return name, nil
}

// Delete relies on S3 treating deletion of a missing key as success
func (c *s3ImageConnector) Delete(ctx context.Context, name string) error {
	if err := checkFileName(name); err != nil {
		return err
	}

	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(c.key(name)),
	})
	if err != nil {
		return fmt.Errorf("failed to delete image %s: %w", name, err)
	}

	c.logger.Debug("Deleted image object", "bucket", c.bucket, "key", c.key(name))
	return nil
}

func (c *s3ImageConnector) List(ctx context.Context) ([]images.StoredFile, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(c.bucket),
	}
	if c.prefix != "" {
		input.Prefix = aws.String(c.prefix)
	}

	var files []images.StoredFile
	paginator := s3.NewListObjectsV2Paginator(c.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list images in bucket %s: %w", c.bucket, err)
		}

		for _, object := range page.Contents {
			name := strings.TrimPrefix(aws.ToString(object.Key), c.prefix)
			// objects in nested "directories" are not ours
			if name == "" || strings.Contains(name, "/") {
				continue
			}
			files = append(files, images.StoredFile{Name: name, ModTime: aws.ToTime(object.LastModified)})
		}
	}
	return files, nil
}
