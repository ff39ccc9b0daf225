package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/config"
)

// UploadResult describes a stored asset
type UploadResult struct {
	URL      string
	PublicID string
	Width    int
	Height   int
	Format   string
	Bytes    int
}

//go:generate mockgen -source=cloudinary.go -destination=../mocks/storage_mocks.go -package=mocks

// ObjectStorage is the narrow contract the services depend on: upload a
// binary asset into a folder, delete one by its public id. Deletion is
// best-effort for callers; they decide whether a failure is fatal.
type ObjectStorage interface {
	Upload(ctx context.Context, file io.Reader, folder string) (*UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}

// CloudinaryStorage implements ObjectStorage on top of Cloudinary
type CloudinaryStorage struct {
	client *cloudinary.Cloudinary
}

var _ ObjectStorage = (*CloudinaryStorage)(nil)

// NewCloudinaryStorage creates a Cloudinary-backed object storage client
func NewCloudinaryStorage(cfg *config.Config) (*CloudinaryStorage, error) {
	client, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &CloudinaryStorage{client: client}, nil
}

// Upload stores an image in the given folder and returns its stable URL
// and public id
func (s *CloudinaryStorage) Upload(ctx context.Context, file io.Reader, folder string) (*UploadResult, error) {
	resp, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "image",
	})
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}
	if resp.SecureURL == "" {
		return nil, fmt.Errorf("upload image: empty response")
	}
	return &UploadResult{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
		Width:    resp.Width,
		Height:   resp.Height,
		Format:   resp.Format,
		Bytes:    resp.Bytes,
	}, nil
}

// Delete removes an asset by public id
func (s *CloudinaryStorage) Delete(ctx context.Context, publicID string) error {
	_, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("destroy asset %s: %w", publicID, err)
	}
	return nil
}

// PublicIDFromURL recovers the public id of an asset from its delivery URL:
// the path segments after the "upload" marker, minus the version segment
// that follows it and the file extension. Returns false when the URL does
// not carry the marker or has no segments past the version.
//
//	.../image/upload/v1712345678/projects/42/gallery/cup.webp
//	                             -> projects/42/gallery/cup
func PublicIDFromURL(url string) (string, bool) {
	parts := strings.Split(url, "/")
	uploadIdx := -1
	for i, part := range parts {
		if part == "upload" {
			uploadIdx = i
			break
		}
	}
	if uploadIdx == -1 || uploadIdx+2 >= len(parts) {
		return "", false
	}

	withExt := strings.Join(parts[uploadIdx+2:], "/")
	if dot := strings.LastIndex(withExt, "."); dot > 0 {
		withExt = withExt[:dot]
	}
	if withExt == "" {
		return "", false
	}
	return withExt, true
}
