// Package hashing fingerprints values so runs over the same inputs can be
// recognised and compared.
package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"math"

	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hash.
// Both Sha256 and Xxh3 are HashFuncs.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hash of the given Hashable
// as a hex-encoded string.
func Sha256(hashable Hashable) (string, error) {
	h := sha256.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Xxh3 returns the 64-bit XXH3 hash of the given Hashable as 16 hex digits.
// It is much faster than Sha256 and fine for fingerprints that do not need
// to resist tampering.
func Xxh3(hashable Hashable) (string, error) {
	h := xxh3.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return fmt.Sprintf("%016x", h.Sum64()), nil
}

type HashableString string

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))

	return err
}

// HashableFloats hashes the IEEE 754 bits of each value, preceded by the
// length so that adjacent sequences cannot run together.
type HashableFloats []float64

func (f HashableFloats) UpdateHash(h hash.Hash) error {
	buf := make([]byte, 8) //nolint:mnd

	binary.LittleEndian.PutUint64(buf, uint64(len(f)))

	if _, err := h.Write(buf); err != nil {
		return err
	}

	for _, v := range f {
		binary.LittleEndian.PutUint64(buf, math.Float64bits(v))

		if _, err := h.Write(buf); err != nil {
			return err
		}
	}

	return nil
}

// Multi hashes each part in order.
type Multi []Hashable

func (m Multi) UpdateHash(h hash.Hash) error {
	for _, part := range m {
		if err := part.UpdateHash(h); err != nil {
			return err
		}
	}

	return nil
}
