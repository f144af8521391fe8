package upload

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// ErrTooLarge is returned when a file exceeds the size limit.
var ErrTooLarge = errors.New("upload: file too large")

// ErrUnsupportedType is returned for content types outside the allow list.
var ErrUnsupportedType = errors.New("upload: unsupported content type")

// MaxAssetSize caps uploaded images and attachments.
const MaxAssetSize = 10 << 20 // 10 MiB

// allowedTypes are the content types accepted for site assets.
var allowedTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"image/svg+xml":   ".svg",
	"application/pdf": ".pdf",
}

// Uploader stores site assets (project images, post covers, avatars)
// and returns a public URL for each stored object.
type Uploader interface {
	Put(ctx context.Context, filename, contentType string, r io.Reader) (url string, err error)
	Delete(ctx context.Context, url string) error
}

// assetKey builds a collision-free object key preserving the extension
// implied by the content type (falling back to the original filename's).
func assetKey(prefix, filename, contentType string) string {
	ext, ok := allowedTypes[contentType]
	if !ok {
		ext = strings.ToLower(path.Ext(filename))
	}
	return path.Join(prefix, uuid.New().String()+ext)
}

// validType reports whether contentType is accepted for upload.
func validType(contentType string) bool {
	_, ok := allowedTypes[contentType]
	return ok
}

// readLimited buffers at most MaxAssetSize bytes from r, returning
// ErrTooLarge when the input exceeds the cap.
func readLimited(r io.Reader) ([]byte, error) {
	limited := io.LimitReader(r, MaxAssetSize+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, err
	}
	if len(data) > MaxAssetSize {
		return nil, ErrTooLarge
	}
	return data, nil
}
