package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2/utils"
	"github.com/minio/minio-go/v7"
)

// ObjectStore keeps templates as objects in an S3 compatible bucket.
type ObjectStore struct {
	client Client
	bucket string
	region string
}

// NewObjectStore creates a store on top of an object storage client.
func NewObjectStore(client Client, bucket, region string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket, region: region}
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *ObjectStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}

func (s *ObjectStore) Save(ctx context.Context, name string, r io.Reader, size int64) error {
	clean, err := CleanName(name)
	if err != nil {
		return err
	}
	opts := minio.PutObjectOptions{ContentType: contentType(clean)}
	if _, err := s.client.PutObject(ctx, s.bucket, clean, r, size, opts); err != nil {
		return fmt.Errorf("failed to upload template %s: %w", clean, err)
	}
	return nil
}

func (s *ObjectStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	clean, err := CleanName(name)
	if err != nil {
		return nil, err
	}
	rc, err := s.client.GetObject(ctx, s.bucket, clean, minio.GetObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, clean)
		}
		return nil, fmt.Errorf("failed to get template %s: %w", clean, err)
	}
	return rc, nil
}

func (s *ObjectStore) List(ctx context.Context) ([]Object, error) {
	objects := make([]Object, 0)
	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{}) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list templates: %w", info.Err)
		}
		// Skip folder markers
		if strings.HasSuffix(info.Key, "/") {
			continue
		}
		objects = append(objects, Object{Name: info.Key, Size: info.Size, Modified: info.LastModified})
	}
	sort.Slice(objects, func(i, j int) bool { return objects[i].Name < objects[j].Name })
	return objects, nil
}

func contentType(name string) string {
	if ct := utils.GetMIME(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
