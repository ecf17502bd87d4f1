package Go_ADT

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// HashFunc hashes a key. It must be deterministic and depend only on the bytes of key, len(key) is the key length.
type HashFunc func(key []byte) uint64

// XXHash is a HashFunc backed by xxhash64.
func XXHash(key []byte) uint64 {
	return xxhash.Sum64(key)
}

// Murmur3 is a HashFunc backed by the 64 bit half of murmur3 x64_128.
func Murmur3(key []byte) uint64 {
	return murmur3.Sum64(key)
}

// Hasher is a seeded hasher, create it using MakeHasher(). Two Hashers made from the same seed produce the same hashes, so Hasher.HashBytes is a valid HashFunc only for the life of the process.
type Hasher struct {
	seed maphash.Seed
}

// MakeHasher returns a Hasher with a random seed.
func MakeHasher() Hasher {
	return Hasher{maphash.MakeSeed()}
}

// HashBytes hashes the given byte slice.
func (u Hasher) HashBytes(b []byte) uint64 {
	return maphash.Bytes(u.seed, b)
}

// HashString hashes s as if it were []byte(s).
func (u Hasher) HashString(s string) uint64 {
	return maphash.String(u.seed, s)
}
