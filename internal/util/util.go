// Package util holds small shared helpers with no domain knowledge.
package util

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"
)

// AlphanumericAlphabet is the character set used for salts and token nonces.
const AlphanumericAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomString draws length characters from alphabet using a
// cryptographically secure random source.
func RandomString(alphabet string, length int) (string, error) {
	if alphabet == "" || length < 0 {
		return "", errors.New("alphabet must be non-empty and length non-negative")
	}

	max := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random source")
		}
		out[i] = alphabet[n.Int64()]
	}

	return string(out), nil
}
