package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// ObjectStorage uploads note files to a bucket and deletes them again.
// Upload returns a publicly resolvable URL for the stored object.
type ObjectStorage interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, objectPath string) error
}

// GCSStorage stores objects in a Google Cloud Storage bucket and makes each
// uploaded object public, mirroring the bucket the frontend reads from.
type GCSStorage struct {
	client  *storage.Client
	bucket  string
	timeout time.Duration
}

func NewGCSStorage(ctx context.Context, bucket, credentialsFile string, timeout time.Duration) (*GCSStorage, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &GCSStorage{
		client:  client,
		bucket:  bucket,
		timeout: timeout,
	}, nil
}

func (s *GCSStorage) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	obj := s.client.Bucket(s.bucket).Object(objectPath)
	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	// Public read, like the original bucket's make_public.
	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", err
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, objectPath), nil
}

func (s *GCSStorage) Delete(ctx context.Context, objectPath string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.client.Bucket(s.bucket).Object(objectPath).Delete(ctx)
}
