package util

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// HashUserKey returns a filesystem-safe identifier for a user ID.
func HashUserKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// HashParts hashes the parts, each prefixed with its length, so ("ab","c")
// and ("a","bc") never collide whatever bytes the parts contain.
func HashParts(parts ...string) string {
	h := sha256.New()
	var n [8]byte
	for _, p := range parts {
		binary.BigEndian.PutUint64(n[:], uint64(len(p)))
		h.Write(n[:])
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ShortHash is the first n hex characters of HashParts.
func ShortHash(n int, parts ...string) string {
	full := HashParts(parts...)
	if n <= 0 || n >= len(full) {
		return full
	}
	return full[:n]
}
