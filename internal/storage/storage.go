// Package storage provides object storage for portfolio images.
//
// Two implementations back the Storage interface:
// - LocalStorage: filesystem storage for development
// - R2Storage: Cloudflare R2 (S3-compatible) for production
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Storage defines the interface for object storage operations.
// All methods are context-aware for timeout and cancellation support.
type Storage interface {
	// Put stores data at the specified key. Returns ErrKeyExists if the
	// key is taken and opts.Overwrite is false, ErrTooLarge if the data
	// exceeds opts.MaxSize.
	Put(ctx context.Context, key string, data io.Reader, opts PutOptions) error

	// Get retrieves the data at the specified key. The caller must
	// close the returned reader. Returns ErrNotFound for missing keys.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)

	// Delete removes the object at the specified key. Idempotent.
	Delete(ctx context.Context, key string) error

	// URL returns a URL for accessing the object. With expires == 0 a
	// permanent public URL is returned where the provider supports it;
	// otherwise a presigned URL valid for the given duration.
	URL(ctx context.Context, key string, expires time.Duration) (string, error)

	// Exists reports whether an object exists at the specified key.
	Exists(ctx context.Context, key string) (bool, error)
}

// PutOptions configures how an object is stored.
type PutOptions struct {
	// ContentType is the MIME type. Auto-detected when empty.
	ContentType string

	// MaxSize caps the object size in bytes. Zero means no limit.
	MaxSize int64

	// Overwrite allows replacing an existing object at the same key.
	Overwrite bool

	// Public marks the object publicly readable (R2 ACL; informational
	// for local storage).
	Public bool
}

// ObjectInfo contains metadata about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
	ETag         string
}

// LocalConfig holds configuration for local filesystem storage.
type LocalConfig struct {
	// BasePath is the root directory where files are stored.
	BasePath string

	// BaseURL is the public URL prefix for accessing files,
	// e.g. "http://localhost:8080/files".
	BaseURL string
}

// R2Config holds configuration for Cloudflare R2 storage.
type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string

	// PublicURL is the bucket's public URL when served from a custom
	// domain. If empty, presigned URLs are used for all access.
	PublicURL string

	// Region is any valid region string; R2 accepts "auto".
	Region string
}

const (
	// ProviderLocal identifies the local filesystem storage provider.
	ProviderLocal = "local"

	// ProviderR2 identifies the Cloudflare R2 storage provider.
	ProviderR2 = "r2"
)

// ProjectImageKey generates a storage key for an uploaded project photo.
// Format: projects/{projectID}/images/{uuid}.{ext}
func ProjectImageKey(projectID int64, filename string) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("projects/%d/images/%s%s", projectID, uuid.New(), ext)
}

// ProjectThumbnailKey generates a storage key for a project thumbnail.
// Format: projects/{projectID}/thumbnails/{uuid}.jpg
//
// Thumbnails are always re-encoded as JPEG.
func ProjectThumbnailKey(projectID int64) string {
	return fmt.Sprintf("projects/%d/thumbnails/%s.jpg", projectID, uuid.New())
}
