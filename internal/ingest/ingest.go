// Package ingest supplies contract text to the analyzer from local files,
// stdin, or S3 objects. It is the document-ingestion seam; extraction and
// OCR happen upstream of it.
package ingest

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/clauseguard/clauseguard/pkg/logger"
)

// maxContractSize caps how much contract text is read from any source.
const maxContractSize = 32 << 20 // 32 MiB

// S3API is the subset of the S3 client the reader uses.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Reader loads contract text from a source reference.
type Reader struct {
	logger   logger.Logger
	s3Client S3API
	region   string
	stdin    io.Reader
}

// Option configures a Reader.
type Option func(*Reader)

// WithS3Client injects an S3 client. Used by tests and callers that manage
// their own AWS configuration.
func WithS3Client(client S3API) Option {
	return func(r *Reader) {
		r.s3Client = client
	}
}

// WithRegion sets the AWS region used when the reader builds its own client.
func WithRegion(region string) Option {
	return func(r *Reader) {
		r.region = region
	}
}

// WithStdin overrides the stdin source. Used by tests.
func WithStdin(stdin io.Reader) Option {
	return func(r *Reader) {
		r.stdin = stdin
	}
}

// NewReader creates a contract text reader.
func NewReader(log logger.Logger, opts ...Option) *Reader {
	r := &Reader{
		logger: log,
		stdin:  os.Stdin,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read loads contract text from a source reference: "-" for stdin,
// "s3://bucket/key" for an S3 object, anything else for a local file path.
func (r *Reader) Read(ctx context.Context, source string) (string, error) {
	switch {
	case source == "-":
		return r.readAll(r.stdin, "stdin")
	case strings.HasPrefix(source, "s3://"):
		return r.readS3(ctx, source)
	default:
		return r.readFile(source)
	}
}

func (r *Reader) readFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is caller-supplied input
	if err != nil {
		return "", fmt.Errorf("opening contract file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return r.readAll(f, path)
}

func (r *Reader) readS3(ctx context.Context, uri string) (string, error) {
	bucket, key, err := parseS3URI(uri)
	if err != nil {
		return "", err
	}

	client := r.s3Client
	if client == nil {
		cfg, loadErr := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(r.region))
		if loadErr != nil {
			return "", fmt.Errorf("loading AWS config: %w", loadErr)
		}
		client = s3.NewFromConfig(cfg)
	}

	r.logger.Debug("Fetching contract from S3", "bucket", bucket, "key", key)
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("fetching s3://%s/%s: %w", bucket, key, err)
	}
	defer func() { _ = out.Body.Close() }()

	return r.readAll(out.Body, uri)
}

func (r *Reader) readAll(src io.Reader, name string) (string, error) {
	data, err := io.ReadAll(io.LimitReader(src, maxContractSize+1))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	if len(data) > maxContractSize {
		return "", fmt.Errorf("contract %s exceeds %d byte limit", name, maxContractSize)
	}

	r.logger.Debug("Loaded contract text", "source", name, "bytes", len(data))
	return string(data), nil
}

// parseS3URI splits s3://bucket/key into its components.
func parseS3URI(uri string) (bucket, key string, err error) {
	trimmed := strings.TrimPrefix(uri, "s3://")
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid S3 URI %q, expected s3://bucket/key", uri)
	}
	return parts[0], parts[1], nil
}
