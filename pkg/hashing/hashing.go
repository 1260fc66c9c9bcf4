// Package hashing computes named-algorithm digests over byte slices.
package hashing

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"errors"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// newHash maps an algorithm name to a fresh hash.Hash. Names are the
// conventional lowercase spellings.
func newHash(algorithm string) (hash.Hash, error) {
	switch algorithm {
	case "md5":
		return md5.New(), nil
	case "sha1":
		return sha1.New(), nil
	case "sha256":
		return sha256.New(), nil
	case "sha512":
		return sha512.New(), nil
	case "sha3-256":
		return sha3.New256(), nil
	case "blake2b-256":
		h, err := blake2b.New256(nil)
		if err != nil {
			return nil, err
		}
		return h, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// Compute returns the fixed-width digest of data under algorithm.
func Compute(algorithm string, data []byte) ([]byte, error) {
	h, err := newHash(algorithm)
	if err != nil {
		return nil, err
	}
	h.Write(data)
	return h.Sum(nil), nil
}

// Verify recomputes the digest and compares it to want in constant
// time. A length mismatch is simply false.
func Verify(algorithm string, data, want []byte) (bool, error) {
	got, err := Compute(algorithm, data)
	if err != nil {
		return false, err
	}
	if len(got) != len(want) {
		return false, nil
	}
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
