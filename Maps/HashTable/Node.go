package HashTable

import "bytes"

// entry of a chain, it owns its key.
type entry[V any] struct {
	key []byte
	v   V
	nx  *entry[V]
}

func makeEntry[V any](key []byte, v V, nx *entry[V]) *entry[V] {
	return &entry[V]{bytes.Clone(key), v, nx}
}

func (u *entry[V]) matches(key []byte) bool {
	return bytes.Equal(u.key, key)
}

// search the chain starting at *link for key. Returns the link pointing at the match, or at the nil end of the chain.
func search[V any](link **entry[V], key []byte) **entry[V] {
	for ; *link != nil; link = &(*link).nx {
		if (*link).matches(key) {
			break
		}
	}
	return link
}
