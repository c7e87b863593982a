package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Store is the interface for snapshot storage backends.
type Store interface {
	// Put stores a rendered document under key and returns where it went.
	Put(ctx context.Context, key string, html []byte) (location string, err error)
}

// Key maps a canonical pathname to a storage key: "/" becomes
// "index.html" and "/a/b" becomes "a/b/index.html".
func Key(pathname string) string {
	p := strings.Trim(pathname, "/")
	if p == "" {
		return "index.html"
	}
	return p + "/index.html"
}

// DiskStore writes snapshots below a directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates a store rooted at dir.
func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{dir: dir}
}

// Put writes html to dir/key, creating parent directories.
func (s *DiskStore) Put(ctx context.Context, key string, html []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	full := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(full, html, 0644); err != nil {
		return "", err
	}
	return full, nil
}

// PutObjectAPI is the part of *s3.Client used by S3Store.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store uploads snapshots to an S3 bucket.
//
// Example usage:
//
//	client, err := snapshot.NewS3Client(ctx, "eu-west-1")
//	if err != nil {
//		return err
//	}
//	store := snapshot.NewS3Store(client, "my-site", "pages")
type S3Store struct {
	client PutObjectAPI
	bucket string
	prefix string
}

// NewS3Store creates a store that writes to bucket under prefix.
func NewS3Store(client PutObjectAPI, bucket, prefix string) *S3Store {
	return &S3Store{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// Put uploads html as bucket/prefix/key.
func (s *S3Store) Put(ctx context.Context, key string, html []byte) (string, error) {
	objectKey := path.Join(s.prefix, key)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(objectKey),
		Body:         bytes.NewReader(html),
		ContentType:  aws.String("text/html; charset=utf-8"),
		CacheControl: aws.String("no-cache"),
		Metadata: map[string]string{
			"snapshot-time": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload failed: %w", err)
	}
	return "s3://" + s.bucket + "/" + objectKey, nil
}

// NewS3Client creates an S3 client for region from the default AWS
// configuration chain: environment, shared config and credentials files,
// SSO and instance roles.
func NewS3Client(ctx context.Context, region string) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}
