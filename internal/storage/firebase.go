package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// FirebaseStorage stores files in the project's Cloud Storage bucket
// and hands out V4 signed download URLs.
type FirebaseStorage struct {
	bucket    *gcs.BucketHandle
	urlExpiry time.Duration
}

func NewFirebaseStorage(ctx context.Context, credentialsFile, bucketName string, urlExpiry time.Duration) (*FirebaseStorage, error) {
	conf := &firebase.Config{StorageBucket: bucketName}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve default bucket: %w", err)
	}

	return &FirebaseStorage{bucket: bucket, urlExpiry: urlExpiry}, nil
}

func (s *FirebaseStorage) Save(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	w := s.bucket.Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload: %w", err)
	}

	url, err := s.bucket.SignedURL(key, &gcs.SignedURLOptions{
		Scheme:  gcs.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(s.urlExpiry),
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign download URL: %w", err)
	}
	return url, nil
}

func (s *FirebaseStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	r, err := s.bucket.Object(key).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open object: %w", err)
	}
	return r, nil
}

func (s *FirebaseStorage) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.bucket.Object(key).Attrs(ctx)
	if err == gcs.ErrObjectNotExist {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *FirebaseStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Object(key).Delete(ctx)
	if err != nil && err != gcs.ErrObjectNotExist {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}
