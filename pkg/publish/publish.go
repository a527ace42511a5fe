// Package publish uploads a finished build directory to S3.
package publish

import (
	"context"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/gdgoc-ctf/site/internal/errors"
)

// Uploader is the subset of *s3.Client that publishing needs.
type Uploader interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Cache-Control values. Fingerprinted assets never change under the same
// name; the document and manifest do.
const (
	cacheImmutable  = "public, max-age=31536000, immutable"
	cacheRevalidate = "no-cache"
)

// Target names where a build is published.
type Target struct {
	Bucket string
	Prefix string
}

// Key returns the object key for a file relative to the build root.
func (t Target) Key(rel string) string {
	if t.Prefix == "" {
		return rel
	}
	return path.Join(t.Prefix, rel)
}

// Publisher uploads build directories.
type Publisher struct {
	client Uploader
	target Target
	logger *slog.Logger
}

// New returns a Publisher writing to target through client.
func New(client Uploader, target Target, logger *slog.Logger) (*Publisher, error) {
	if target.Bucket == "" {
		return nil, errors.New("E500")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		client: client,
		target: target,
		logger: logger.With(slog.String("bucket", target.Bucket)),
	}, nil
}

// NewS3Client loads the default AWS configuration, optionally pinned to
// region, and returns an S3 client.
func NewS3Client(ctx context.Context, region string) (*s3.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.New("E502").Wrap(err)
	}
	return s3.NewFromConfig(cfg), nil
}

// Dir uploads every regular file under root and returns the keys written,
// in lexical order of their paths.
func (p *Publisher) Dir(ctx context.Context, root string) ([]string, error) {
	var keys []string
	err := fs.WalkDir(os.DirFS(root), ".", func(rel string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		key, err := p.file(ctx, root, rel)
		if err != nil {
			return err
		}
		keys = append(keys, key)
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return keys, ctxErr
		}
		return keys, errors.New("E501").WithDetail(root).Wrap(err)
	}

	p.logger.Info("publish complete", slog.Int("objects", len(keys)))
	return keys, nil
}

func (p *Publisher) file(ctx context.Context, root, rel string) (string, error) {
	f, err := os.Open(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}

	key := p.target.Key(rel)
	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.target.Bucket),
		Key:           aws.String(key),
		Body:          f,
		ContentLength: aws.Int64(info.Size()),
		ContentType:   aws.String(ContentType(rel)),
		CacheControl:  aws.String(CacheControl(rel)),
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "upload failed", slog.String("key", key), slog.Any("error", err))
		return "", err
	}
	p.logger.Debug("uploaded", slog.String("key", key), slog.Int64("bytes", info.Size()))
	return key, nil
}

// ContentType guesses the MIME type of name from its extension.
func ContentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// CacheControl picks the Cache-Control header for a build file.
func CacheControl(rel string) string {
	switch path.Base(rel) {
	case "index.html", "manifest.json":
		return cacheRevalidate
	}
	return cacheImmutable
}
