package object

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"logo-backend/internal/shared/util"
)

// ErrNotFound is returned by Open when no object exists under the key.
var ErrNotFound = errors.New("object not found")

// ObjectStore defines the contract for saving and retrieving rendered artifacts.
type ObjectStore interface {
	SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	Delete(ctx context.Context, storageKey string) error
}

// PNGKey is the storage key of one rasterized variant. Keys are grouped
// under the hashed user so a set can be removed by prefix.
func PNGKey(userID, logoID string, variant, size int) string {
	return path.Join(LogoPrefix(userID, logoID), fmt.Sprintf("variant-%d_%d.png", variant, size))
}

// LogoPrefix is the directory holding every artifact of one logo set.
func LogoPrefix(userID, logoID string) string {
	return path.Join("logos", util.HashUserKey(userID), logoID)
}
