// Package hashing provides the content-hash adapters behind
// domain.ContentHasher.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/stash/internal/core/domain"
)

var (
	_ domain.ContentHasher = (*SHA256)(nil)
	_ domain.ContentHasher = (*XX64)(nil)
)

// SHA256 is the default identity hasher. Package IDs must be collision
// resistant across machines and years, so a cryptographic digest is used.
type SHA256 struct{}

// NewSHA256 creates a new SHA256 hasher.
func NewSHA256() *SHA256 {
	return &SHA256{}
}

// Sum returns the hex-encoded SHA-256 digest of data.
func (*SHA256) Sum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// XX64 is a fast non-cryptographic hasher used for change detection of local
// files. Never use it to derive a package ID.
type XX64 struct{}

// NewXX64 creates a new XX64 hasher.
func NewXX64() *XX64 {
	return &XX64{}
}

// Sum returns the hex-encoded XXH64 digest of data.
func (*XX64) Sum(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
