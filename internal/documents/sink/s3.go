package sink

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/nvpwelfare/portal/internal/documents"
)

const pdfContentType = "application/pdf"

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) error {
		_, err := c.PutObject(ctx, in)
		return err
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// S3Config describes an S3-compatible bucket, e.g. MinIO.
type S3Config struct {
	Region    string
	Endpoint  string // empty for AWS
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	// LinkTTL is how long returned download links stay valid.
	LinkTTL time.Duration
}

// S3Sink uploads documents and returns presigned download links.
type S3Sink struct {
	cfg     S3Config
	client  *s3.Client
	presign *s3.PresignClient
	now     func() time.Time
}

func NewS3Sink(ctx context.Context, cfg S3Config) (*S3Sink, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 sink: bucket is required")
	}
	if cfg.LinkTTL <= 0 {
		cfg.LinkTTL = 15 * time.Minute
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}
	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Sink{cfg: cfg, client: client, presign: s3.NewPresignClient(client), now: time.Now}, nil
}

// objectKey spreads objects by day and keeps the original file name last so
// downloads are named sensibly.
func (s *S3Sink) objectKey(name string) string {
	d := s.now().UTC()
	return path.Join(s.cfg.Prefix, d.Format("2006/01/02"), uuid.NewString(), name)
}

func (s *S3Sink) Put(ctx context.Context, doc documents.Document) (string, error) {
	name, err := cleanName(doc.FileName)
	if err != nil {
		return "", err
	}
	key := s.objectKey(name)

	err = putObject(s.client, ctx, &s3.PutObjectInput{
		Bucket:             aws.String(s.cfg.Bucket),
		Key:                aws.String(key),
		Body:               bytes.NewReader(doc.Data),
		ContentType:        aws.String(pdfContentType),
		ContentDisposition: aws.String(`attachment; filename="` + name + `"`),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	req, err := presignGetObject(s.presign, ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.cfg.LinkTTL))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return req.URL, nil
}
