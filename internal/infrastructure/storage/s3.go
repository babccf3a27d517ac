// Package storage implements image storage on an S3-compatible bucket or on
// the local disk.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/sangkips/menu-api/internal/config"
	domainRepo "github.com/sangkips/menu-api/internal/domain/repository"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// objectAPI is the part of the S3 client the store uses
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store keeps images in a public-read bucket, addressed path-style.
type S3Store struct {
	client    objectAPI
	breaker   *gobreaker.CircuitBreaker
	bucket    string
	endpoint  string
	publicURL string
}

// NewS3Store creates an S3 store from the storage configuration.
func NewS3Store(cfg *config.StorageConfig, log *zap.Logger) (*S3Store, error) {
	s3cfg := cfg.S3
	if s3cfg.Endpoint == "" || s3cfg.Bucket == "" || s3cfg.AccessKey == "" || s3cfg.SecretKey == "" {
		return nil, fmt.Errorf("s3 storage requires endpoint, bucket and credentials")
	}

	endpoint := strings.TrimRight(s3cfg.Endpoint, "/")
	client := s3.New(s3.Options{
		Region:       s3cfg.Region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(s3cfg.AccessKey, s3cfg.SecretKey, ""),
		UsePathStyle: true,
	})

	publicURL := cfg.PublicURL
	if !strings.HasPrefix(publicURL, "http://") && !strings.HasPrefix(publicURL, "https://") {
		publicURL = ""
	}
	return newS3Store(client, s3cfg.Bucket, endpoint, publicURL, log), nil
}

func newS3Store(client objectAPI, bucket, endpoint, publicURL string, log *zap.Logger) *S3Store {
	if log == nil {
		log = zap.NewNop()
	}
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "s3-images",
		MaxRequests: 1,
		Interval:    30 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &S3Store{
		client:    client,
		breaker:   breaker,
		bucket:    bucket,
		endpoint:  strings.TrimRight(endpoint, "/"),
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Upload stores the object with a public-read ACL and returns its URL.
func (s *S3Store) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		return s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:        aws.String(s.bucket),
			Key:           aws.String(key),
			Body:          body,
			ContentLength: aws.Int64(size),
			ContentType:   aws.String(contentType),
			ACL:           s3types.ObjectCannedACLPublicRead,
		})
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload %s/%s: %w", s.bucket, key, err)
	}
	return s.FileURL(key), nil
}

// Delete removes the object behind url. URLs that do not belong to this
// bucket are ignored.
func (s *S3Store) Delete(ctx context.Context, url string) error {
	key, ok := s.ExtractKey(url)
	if !ok {
		return nil
	}
	_, err := s.breaker.Execute(func() (interface{}, error) {
		return s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s/%s: %w", s.bucket, key, err)
	}
	return nil
}

// FileURL returns the public URL of key. Uses the configured public URL if
// set, otherwise builds a path-style URL.
func (s *S3Store) FileURL(key string) string {
	if s.publicURL != "" {
		return s.publicURL + "/" + key
	}
	return s.endpoint + "/" + s.bucket + "/" + key
}

// ExtractKey returns the object key of a URL produced by FileURL.
func (s *S3Store) ExtractKey(rawURL string) (string, bool) {
	if s.publicURL != "" {
		if key, ok := strings.CutPrefix(rawURL, s.publicURL+"/"); ok && key != "" {
			return key, true
		}
	}
	if key, ok := strings.CutPrefix(rawURL, s.endpoint+"/"+s.bucket+"/"); ok && key != "" {
		return key, true
	}
	return "", false
}

var _ domainRepo.ImageStorage = (*S3Store)(nil)
