package domain

// ContentHasher reduces a byte buffer to a fixed-width content hash.
// Implementations must be pure: the same input always yields the same hash.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=../ports/mocks/mock_hasher.go -package=mocks
type ContentHasher interface {
	// Sum returns the hex-encoded hash of data.
	Sum(data []byte) string
}
