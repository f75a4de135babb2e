package hashing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stash/internal/adapters/hashing"
)

func TestSHA256_Sum(t *testing.T) {
	h := hashing.NewSHA256()
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		h.Sum(nil))
	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		h.Sum([]byte("hello")))
}

func TestSHA256_SumIsStable(t *testing.T) {
	h := hashing.NewSHA256()
	assert.Equal(t, h.Sum([]byte("os=Linux")), h.Sum([]byte("os=Linux")))
	assert.NotEqual(t, h.Sum([]byte("os=Linux")), h.Sum([]byte("os=Macos")))
}

func TestXX64_Sum(t *testing.T) {
	h := hashing.NewXX64()
	assert.Equal(t, "ef46db3751d8e999", h.Sum(nil))
	assert.Equal(t, "26c7827d889f6da3", h.Sum([]byte("hello")))
	assert.Len(t, h.Sum([]byte("anything")), 16)
}
