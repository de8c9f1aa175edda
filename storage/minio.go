package storage

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/photoapp/photoapp/config"
)

const awsEndpoint = "s3.amazonaws.com"

// Objects are served directly from the bucket, so anonymous download must be
// allowed on the asset prefixes.
const publicReadPolicyTemplate = `{
  "Version": "2012-10-17",
  "Statement": [
    {
      "Effect": "Allow",
      "Principal": {"AWS": ["*"]},
      "Action": ["s3:GetObject"],
      "Resource": ["arn:aws:s3:::%s/*"]
    }
  ]
}`

type minioStorage struct {
	client   *minio.Client
	bucket   string
	region   string
	endpoint string
	useSSL   bool
}

// NewMinioStorage connects to the configured S3-compatible endpoint, making
// sure the bucket exists and is publicly readable.
func NewMinioStorage(cfg *config.Config) (Provider, error) {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          256,
		MaxIdleConnsPerHost:   16,
		IdleConnTimeout:       time.Minute,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 10 * time.Second,
		DisableCompression:    true,
	}
	if cfg.S3UseSSL {
		transport.TLSClientConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	client, err := minio.New(cfg.S3Endpoint, &minio.Options{
		Creds:     resolveCredentials(cfg),
		Secure:    cfg.S3UseSSL,
		Region:    cfg.S3Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object store client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.S3Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket '%s' exists: %w", cfg.S3Bucket, err)
	}
	if !exists {
		err = client.MakeBucket(ctx, cfg.S3Bucket, minio.MakeBucketOptions{Region: cfg.S3Region})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket '%s': %w", cfg.S3Bucket, err)
		}
		policy := fmt.Sprintf(publicReadPolicyTemplate, cfg.S3Bucket)
		if err := client.SetBucketPolicy(ctx, cfg.S3Bucket, policy); err != nil {
			log.Printf("Warning: failed to set public-read policy on bucket '%s': %v", cfg.S3Bucket, err)
		}
		log.Printf("Successfully created bucket: %s", cfg.S3Bucket)
	}

	return &minioStorage{
		client:   client,
		bucket:   cfg.S3Bucket,
		region:   cfg.S3Region,
		endpoint: cfg.S3Endpoint,
		useSSL:   cfg.S3UseSSL,
	}, nil
}

// resolveCredentials prefers the AWS shared-credentials file when configured
// and falls back to static keys.
func resolveCredentials(cfg *config.Config) *credentials.Credentials {
	if cfg.S3CredentialsFile != "" {
		log.Printf("Using credentials file %s (profile %s)", cfg.S3CredentialsFile, cfg.S3CredentialsProfile)
		return credentials.NewFileAWSCredentials(cfg.S3CredentialsFile, cfg.S3CredentialsProfile)
	}
	return credentials.NewStaticV4(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, "")
}

func (s *minioStorage) SaveWithContext(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object '%s': %w", key, err)
	}
	return nil
}

func (s *minioStorage) GetWithContext(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object '%s': %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		errResponse := minio.ToErrorResponse(err)
		if errResponse.Code == "NoSuchKey" {
			return nil, fmt.Errorf("object not found: %s", key)
		}
		return nil, fmt.Errorf("failed to read object '%s': %w", key, err)
	}
	return data, nil
}

func (s *minioStorage) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		errResponse := minio.ToErrorResponse(err)
		if errResponse.Code == "NoSuchKey" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *minioStorage) Health(ctx context.Context) error {
	_, err := s.client.BucketExists(ctx, s.bucket)
	return err
}

// PublicURL builds the retrieval URL from bucket, region and key. The AWS
// endpoint uses virtual-hosted style, everything else path style.
func (s *minioStorage) PublicURL(key string) string {
	if s.endpoint == awsEndpoint {
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
	}
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, key)
}

func (s *minioStorage) Name() string {
	return "minio"
}
