// Package storage publishes an exported site to S3-compatible object storage.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tuxprint/tds-website/internal/config"
	"github.com/tuxprint/tds-website/internal/logger"
)

var ErrDisabled = errors.New("storage service not enabled")

// objectPutter is the subset of the S3 client used for publishing.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Service uploads site files to a bucket
type Service struct {
	client objectPutter
	bucket string
	prefix string
	log    *slog.Logger
}

// UploadResult contains information about an uploaded object
type UploadResult struct {
	Key         string
	Bucket      string
	ETag        string
	Size        int64
	ContentType string
}

// PublishResult summarises a directory upload
type PublishResult struct {
	Bucket  string
	Objects []UploadResult
	Bytes   int64
}

// NewService creates a new storage service. A missing configuration yields a
// disabled service rather than an error.
func NewService(ctx context.Context, cfg config.StorageConfig, log *slog.Logger) (*Service, error) {
	log = log.With(logger.Scope("storage"))

	if !cfg.Enabled() {
		log.Warn("storage service disabled - no configuration provided")
		return &Service{bucket: cfg.Bucket, prefix: cfg.Prefix, log: log}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	// Path-style addressing keeps MinIO and other S3-compatible endpoints working
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	log.Info("storage service initialized",
		slog.String("endpoint", cfg.Endpoint),
		slog.String("bucket", cfg.Bucket),
	)

	return newService(client, cfg.Bucket, cfg.Prefix, log), nil
}

func newService(client objectPutter, bucket, prefix string, log *slog.Logger) *Service {
	return &Service{client: client, bucket: bucket, prefix: prefix, log: log}
}

// Enabled returns true if the storage service is properly configured
func (s *Service) Enabled() bool {
	return s.client != nil
}

// Upload uploads a single local file under key
func (s *Service) Upload(ctx context.Context, key, file string) (*UploadResult, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", file, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", file, err)
	}

	contentType := ContentType(file)
	result, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          f,
		ContentLength: aws.Int64(info.Size()),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String(CacheControl(key)),
	})
	if err != nil {
		s.log.Error("failed to upload object",
			slog.String("key", key),
			logger.Error(err),
		)
		return nil, fmt.Errorf("upload %s failed: %w", key, err)
	}

	etag := ""
	if result.ETag != nil {
		etag = strings.Trim(*result.ETag, "\"")
	}

	s.log.Debug("object uploaded",
		slog.String("key", key),
		slog.String("bucket", s.bucket),
		slog.Int64("size", info.Size()),
	)

	return &UploadResult{
		Key:         key,
		Bucket:      s.bucket,
		ETag:        etag,
		Size:        info.Size(),
		ContentType: contentType,
	}, nil
}

// PublishDir uploads every regular file below dir, keyed by its slash-separated
// path relative to dir and the configured prefix.
func (s *Service) PublishDir(ctx context.Context, dir string) (*PublishResult, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}

	result := &PublishResult{Bucket: s.bucket}
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		up, err := s.Upload(ctx, ObjectKey(s.prefix, filepath.ToSlash(rel)), p)
		if err != nil {
			return err
		}
		result.Objects = append(result.Objects, *up)
		result.Bytes += up.Size
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("publish %s: %w", dir, err)
	}

	s.log.Info("site published",
		slog.String("bucket", s.bucket),
		slog.String("prefix", s.prefix),
		slog.Int("objects", len(result.Objects)),
		slog.Int64("bytes", result.Bytes),
	)
	return result, nil
}

// ObjectKey joins prefix and a relative slash path into a bucket key.
func ObjectKey(prefix, rel string) string {
	prefix = strings.Trim(prefix, "/")
	rel = strings.TrimPrefix(rel, "/")
	if prefix == "" {
		return rel
	}
	return path.Join(prefix, rel)
}

var contentTypes = map[string]string{
	".html":        "text/html; charset=utf-8",
	".css":         "text/css; charset=utf-8",
	".js":          "text/javascript; charset=utf-8",
	".webmanifest": "application/manifest+json",
	".ico":         "image/x-icon",
	".png":         "image/png",
	".svg":         "image/svg+xml",
	".webm":        "video/webm",
	".mp4":         "video/mp4",
}

// ContentType picks the Content-Type for a file from its extension.
func ContentType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// CacheControl keeps the page itself fresh and lets browsers cache assets.
func CacheControl(key string) string {
	if strings.HasSuffix(key, ".html") {
		return "no-cache"
	}
	return "public, max-age=86400"
}
