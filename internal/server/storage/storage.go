// Package storage provides the object store used for uploaded photos.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// ObjectStore is the contract the upload flows depend on. Upload returns the
// public URL of the stored object; Delete is used both for explicit removal
// and as compensation when the database write after an upload fails.
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
	KeyFromURL(url string) (string, bool)
}

// MakeStorageKey returns a date-prefixed random object key for a new photo.
func MakeStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("photos/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}
