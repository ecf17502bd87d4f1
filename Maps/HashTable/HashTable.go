package HashTable

import (
	"reflect"

	"github.com/cockroachdb/errors"
	Go_ADT "github.com/g-m-twostay/go-adt"
	"github.com/g-m-twostay/go-adt/internal"
)

// HashTable maps byte string keys to values with separate chaining.
// The number of buckets is the smallest prime no less than the requested count and never changes,
// so chains get long when the table holds many more entries than buckets.
//
// Values must be non-nil. The table copies keys on insert and never touches the values beyond holding them.
type HashTable[V any] struct {
	buckets []*entry[V]
	sz      uint
	hash    Go_ADT.HashFunc
}

// New table with at least buckets chains, hash maps keys to chains.
func New[V any](buckets uint, hash Go_ADT.HashFunc) (*HashTable[V], error) {
	if buckets == 0 || hash == nil {
		return nil, errors.Wrapf(Go_ADT.ErrInvalidArgument, "hash table: %d buckets, hash function set: %v", buckets, hash != nil)
	}
	n, ok := nextPrime(buckets)
	if !ok {
		return nil, errors.Wrapf(Go_ADT.ErrAllocationFailure, "hash table: no prime bucket count from %d", buckets)
	}
	b, err := internal.Make[*entry[V]](n)
	if err != nil {
		return nil, errors.Wrap(err, "hash table: new")
	}
	return &HashTable[V]{buckets: b, hash: hash}, nil
}

func (u *HashTable[V]) bucket(key []byte) **entry[V] {
	return &u.buckets[u.hash(key)%uint64(len(u.buckets))]
}

func (u *HashTable[V]) checkKey(op string, key []byte) error {
	if u.buckets == nil {
		return internal.Released("hash table")
	}
	if len(key) == 0 {
		return errors.Wrapf(Go_ADT.ErrInvalidArgument, "hash table: %s with empty key", op)
	}
	return nil
}

// Insert v under a copy of key at the head of its chain. Fails with Go_ADT.ErrKeyExists if key is present.
func (u *HashTable[V]) Insert(key []byte, v V) (V, error) {
	if err := u.checkKey("insert", key); err != nil {
		return *new(V), err
	}
	if isNil(v) {
		return *new(V), errors.Wrap(Go_ADT.ErrInvalidArgument, "hash table: insert nil value")
	}
	head := u.bucket(key)
	if *search(head, key) != nil {
		return *new(V), errors.Wrapf(Go_ADT.ErrKeyExists, "hash table: insert %q", key)
	}
	*head = makeEntry(key, v, *head)
	u.sz++
	return v, nil
}

func (u *HashTable[V]) Lookup(key []byte) (v V, ok bool, err error) {
	if err = u.checkKey("lookup", key); err != nil {
		return
	}
	if e := *search(u.bucket(key), key); e != nil {
		return e.v, true, nil
	}
	return
}

// Delete unlinks the entry under key wherever it is in its chain.
func (u *HashTable[V]) Delete(key []byte) (v V, ok bool, err error) {
	if err = u.checkKey("delete", key); err != nil {
		return
	}
	if link := search(u.bucket(key), key); *link != nil {
		e := *link
		*link = e.nx
		u.sz--
		return e.v, true, nil
	}
	return
}

// Size is the number of entries.
func (u *HashTable[V]) Size() uint {
	return u.sz
}

// Buckets is the number of chains, a prime.
func (u *HashTable[V]) Buckets() uint {
	return uint(len(u.buckets))
}

// Release drops every chain and key copy. The values are not touched, and the table must not be used afterwards.
func (u *HashTable[V]) Release() {
	clear(u.buckets)
	u.buckets, u.sz = nil, 0
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
