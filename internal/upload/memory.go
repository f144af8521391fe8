package upload

import (
	"context"
	"io"
	"strings"
	"sync"
)

// MemoryUploader keeps assets in memory. It backs local development
// runs without S3 credentials and the handler tests.
type MemoryUploader struct {
	mu      sync.Mutex
	objects map[string][]byte
	baseURL string
}

// NewMemoryUploader returns an empty in-memory uploader.
func NewMemoryUploader(baseURL string) *MemoryUploader {
	if baseURL == "" {
		baseURL = "/static/uploads"
	}
	return &MemoryUploader{
		objects: make(map[string][]byte),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (u *MemoryUploader) Put(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	if !validType(contentType) {
		return "", ErrUnsupportedType
	}
	data, err := readLimited(r)
	if err != nil {
		return "", err
	}

	key := assetKey("", filename, contentType)
	u.mu.Lock()
	u.objects[key] = data
	u.mu.Unlock()

	return u.baseURL + "/" + key, nil
}

func (u *MemoryUploader) Delete(ctx context.Context, url string) error {
	key, ok := strings.CutPrefix(url, u.baseURL+"/")
	if !ok {
		return nil
	}
	u.mu.Lock()
	delete(u.objects, key)
	u.mu.Unlock()
	return nil
}

// Get returns a stored object's bytes, for tests.
func (u *MemoryUploader) Get(url string) ([]byte, bool) {
	key, ok := strings.CutPrefix(url, u.baseURL+"/")
	if !ok {
		return nil, false
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	data, ok := u.objects[key]
	return data, ok
}

// Len reports how many objects are stored.
func (u *MemoryUploader) Len() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.objects)
}
