// Package storage keeps rendered images in S3 and downloads media for publishing.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MaxMediaBytes caps a single downloaded media file.
const MaxMediaBytes = 20 << 20

// ObjectAPI is the subset of the S3 client used by the store.
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Config holds the asset bucket settings.
type Config struct {
	Bucket        string
	Prefix        string
	PublicBaseURL string
}

// S3Store stores assets under a key prefix and fetches media by URL.
type S3Store struct {
	api        ObjectAPI
	httpClient *http.Client
	cfg        Config
}

// NewS3Client builds an S3 client from the default AWS credential chain.
// A non-empty endpoint selects an S3-compatible service with path-style addressing.
func NewS3Client(ctx context.Context, region, endpoint string) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// NewS3Store creates an S3Store. A nil httpClient gets a client with a 60 second timeout.
func NewS3Store(api ObjectAPI, httpClient *http.Client, cfg Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("asset bucket is required")
	}
	if cfg.PublicBaseURL == "" {
		return nil, errors.New("asset public base url is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	cfg.Prefix = strings.Trim(cfg.Prefix, "/")
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")
	return &S3Store{api: api, httpClient: httpClient, cfg: cfg}, nil
}

// Store uploads data and returns its public URL.
func (s *S3Store) Store(ctx context.Context, data []byte, name string) (string, error) {
	key := s.key(name)
	_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType(name)),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return s.cfg.PublicBaseURL + "/" + key, nil
}

// Fetch downloads the bytes behind url. URLs under the public base are read from the bucket.
func (s *S3Store) Fetch(ctx context.Context, url string) ([]byte, error) {
	if key, ok := s.ownKey(url); ok {
		return s.getObject(ctx, key)
	}
	return s.download(ctx, url)
}

func (s *S3Store) getObject(ctx context.Context, key string) ([]byte, error) {
	out, err := s.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get object %s: %w", key, err)
	}
	defer out.Body.Close()
	return readLimited(out.Body)
}

func (s *S3Store) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download %s: unexpected status %d", url, resp.StatusCode)
	}
	return readLimited(resp.Body)
}

func (s *S3Store) key(name string) string {
	if s.cfg.Prefix == "" {
		return name
	}
	return s.cfg.Prefix + "/" + name
}

func (s *S3Store) ownKey(url string) (string, bool) {
	prefix := s.cfg.PublicBaseURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	return key, key != ""
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxMediaBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read media: %w", err)
	}
	if len(data) > MaxMediaBytes {
		return nil, fmt.Errorf("media exceeds %d bytes", MaxMediaBytes)
	}
	return data, nil
}

func contentType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}
