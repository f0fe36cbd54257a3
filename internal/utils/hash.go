package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader carries the hex HMAC-SHA256 of a request or response body.
const HashHeader = "HashSHA256"

// Hasher computes keyed HMAC-SHA256 digests. Hash instances are pooled, so
// a single Hasher may be shared between goroutines.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with hashKey.
func NewHasher(hashKey string) *Hasher {
	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Sum returns the raw HMAC-SHA256 digest of data.
func (h *Hasher) Sum(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// SumHex returns the hex-encoded digest of data, as sent in [HashHeader].
func (h *Hasher) SumHex(data []byte) string {
	return hex.EncodeToString(h.Sum(data))
}

// Verify reports whether hexSum is the digest of data. The comparison is
// constant-time.
func (h *Hasher) Verify(data []byte, hexSum string) bool {
	want, err := hex.DecodeString(hexSum)
	if err != nil {
		return false
	}

	return hmac.Equal(h.Sum(data), want)
}

// HashString computes a one-off hex HMAC-SHA256 of data with hashKey.
func HashString(data string, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
