package s3

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrymomot/staticserve/core/loader"
)

// Compile-time check that Loader implements the loader.Loader interface.
var _ loader.Loader = (*Loader)(nil)

// Client defines the S3 operations used by Loader.
type Client interface {
	HeadObject(ctx context.Context, params *s3aws.HeadObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3aws.GetObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error)
}

// Loader serves resources from an S3 bucket (or an S3-compatible service).
// Objects have no directory structure, so IsDir is always false and a
// request resolving to a "directory" simply misses.
type Loader struct {
	client Client
	bucket string
	prefix string
}

// Option configures the Loader beyond its Config.
type Option func(*options)

type options struct {
	client        Client
	configOptions []func(*awsconfig.LoadOptions) error
	clientOptions []func(*s3aws.Options)
}

// WithClient sets a custom pre-configured S3 client.
// Primarily used for testing with mocks.
func WithClient(client Client) Option {
	return func(o *options) {
		o.client = client
	}
}

// WithConfigOption adds a custom AWS config option.
func WithConfigOption(option func(*awsconfig.LoadOptions) error) Option {
	return func(o *options) {
		o.configOptions = append(o.configOptions, option)
	}
}

// WithClientOption adds a custom S3 client option.
func WithClientOption(option func(*s3aws.Options)) Option {
	return func(o *options) {
		o.clientOptions = append(o.clientOptions, option)
	}
}

// New creates an S3-backed loader for the configured bucket.
func New(ctx context.Context, cfg Config, opts ...Option) (*Loader, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3: bucket is required")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	client := o.client
	if client == nil {
		loadOpts := append([]func(*awsconfig.LoadOptions) error{
			awsconfig.WithRegion(cfg.Region),
		}, o.configOptions...)

		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
			))
		}

		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, fmt.Errorf("s3: load aws config: %w", err)
		}

		clientOpts := append([]func(*s3aws.Options){
			func(s3opts *s3aws.Options) {
				if cfg.Endpoint != "" {
					s3opts.BaseEndpoint = aws.String(cfg.Endpoint)
				}
				s3opts.UsePathStyle = cfg.ForcePathStyle
			},
		}, o.clientOptions...)

		client = s3aws.NewFromConfig(awsCfg, clientOpts...)
	}

	return &Loader{
		client: client,
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.KeyPrefix, "/"),
	}, nil
}

// Stat returns metadata for the named resource via HeadObject.
// A missing object yields Metadata{Exists: false} with a nil error.
func (l *Loader) Stat(ctx context.Context, name string) (loader.Metadata, error) {
	out, err := l.client.HeadObject(ctx, &s3aws.HeadObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(l.key(name)),
	})
	if err != nil {
		if isNotFound(err) {
			return loader.Metadata{}, nil
		}
		return loader.Metadata{}, classifyError(err, "stat")
	}

	return loader.Metadata{
		Exists:  true,
		Size:    aws.ToInt64(out.ContentLength),
		ModTime: aws.ToTime(out.LastModified),
	}, nil
}

// Open returns the object body via GetObject, or loader.ErrNotExist when
// the object is absent.
func (l *Loader) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	out, err := l.client.GetObject(ctx, &s3aws.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(l.key(name)),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, loader.ErrNotExist
		}
		return nil, classifyError(err, "open")
	}

	return out.Body, nil
}

func (l *Loader) key(name string) string {
	if l.prefix == "" {
		return name
	}
	return l.prefix + "/" + name
}
