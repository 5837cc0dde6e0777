// file: internals/helpers/storage/storage.go
package storage

import (
	"context"
	"errors"
	"os"
	"strings"
)

// ErrNotFound dikembalikan Get saat objek tidak ada di storage.
var ErrNotFound = errors.New("storage: object not found")

// ObjectStorage abstraksi tempat simpan artefak (background template,
// thumbnail, PDF sertifikat). Put wajib all-or-nothing: tidak boleh ada
// objek setengah jadi di key final kalau gagal.
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

// NewFromEnv memilih driver berdasarkan STORAGE_DRIVER:
// - "oss"   → Alibaba OSS (butuh ALI_OSS_* env)
// - "local" → disk lokal (default, untuk dev)
func NewFromEnv() (ObjectStorage, error) {
	driver := strings.ToLower(strings.TrimSpace(os.Getenv("STORAGE_DRIVER")))
	switch driver {
	case "oss":
		return NewOSSStorageFromEnv()
	case "", "local":
		root := strings.TrimSpace(os.Getenv("STORAGE_LOCAL_DIR"))
		if root == "" {
			root = "storage"
		}
		base := strings.TrimSpace(os.Getenv("STORAGE_LOCAL_PUBLIC_BASE"))
		return NewLocalStorage(root, base)
	default:
		return nil, errors.New("storage: unknown STORAGE_DRIVER " + driver)
	}
}
