package asset

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jawa-agence/core/internal/config"
	"github.com/jawa-agence/core/internal/pkg/apperr"
)

// Namespace selects the object-key prefix an asset class lives under.
// General images and blog covers are separate namespaces: they are
// governed and cleaned up independently.
type Namespace string

const (
	NamespaceUploads    Namespace = "uploads"
	NamespaceBlogCovers Namespace = "blog-covers"
)

// Store uploads binary assets and resolves their public URLs.
//
// Uploads assign a randomized key, never deduplicate, and never delete a
// replaced object: an asset whose record write fails afterwards stays in
// the bucket as an orphan.
type Store interface {
	Upload(ctx context.Context, ns Namespace, filename string, payload []byte, contentType string) (string, error)
	PublicURL(key string) string
}

// S3Store implements Store against an S3-compatible bucket.
type S3Store struct {
	client *s3.Client
	opts   config.S3Options
}

// NewS3Store builds a Store from config. Endpoint is optional: when unset
// the store talks to AWS directly, otherwise to the configured
// S3-compatible backend with path-style access.
func NewS3Store(opts config.S3Options) (*S3Store, error) {
	if opts.Bucket == "" || opts.Region == "" || opts.AccessKeyID == "" || opts.SecretAccessKey == "" {
		return nil, fmt.Errorf("incomplete s3 config: bucket/region/access_key_id/secret_access_key are required")
	}

	awsCfg := aws.Config{
		Region:      opts.Region,
		Credentials: credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
		if opts.PathStyleAccess {
			o.UsePathStyle = true
		}
	})

	return &S3Store{client: client, opts: opts}, nil
}

// Upload puts the payload under a randomized key in the namespace and
// returns the public URL. Failures come back as UploadError.
func (s *S3Store) Upload(ctx context.Context, ns Namespace, filename string, payload []byte, contentType string) (string, error) {
	key := s.objectKey(ns, filename)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.opts.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(payload),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(payload))),
	})
	if err != nil {
		return "", apperr.Upload(err)
	}
	return s.PublicURL(key), nil
}

// PublicURL is pure: for any successfully uploaded key it returns the
// stable public URL without a network round trip.
func (s *S3Store) PublicURL(key string) string {
	key = strings.TrimPrefix(key, "/")
	if s.opts.CustomDomain != "" {
		return strings.TrimRight(s.opts.CustomDomain, "/") + "/" + key
	}
	if s.opts.Endpoint != "" {
		return strings.TrimRight(s.opts.Endpoint, "/") + "/" + s.opts.Bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.opts.Bucket, s.opts.Region, key)
}

func (s *S3Store) objectKey(ns Namespace, filename string) string {
	prefix := s.opts.UploadPrefix
	if ns == NamespaceBlogCovers {
		prefix = s.opts.BlogCoverPrefix
	}
	return strings.TrimRight(prefix, "/") + "/" + randomName(filename)
}
