package Maps

// Map from byte string keys to caller owned values.
// The map keeps its own copy of every key but only references the values, removing an entry leaves the
// value's lifetime to the caller.
type Map[V any] interface {
	//Insert v under key. Returns v on success.
	Insert(key []byte, v V) (V, error)
	//Lookup the value under key. The bool reports whether key is present.
	Lookup(key []byte) (V, bool, error)
	//Delete the entry under key and return its value. The bool reports whether key was present.
	Delete(key []byte) (V, bool, error)
	//Size is the number of entries.
	Size() uint
}
