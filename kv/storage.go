package kv

type Pair struct {
	Key, Value string
}

// Storage is an associative structure for (string, string) pairs with unique
// keys. It acts as a map but uses linear search over an ordered pair slice
// instead, which proves to be more efficient on the relatively low amount of
// entries a single request produces (headers, query arguments, body fields).
//
// Keys are compared exactly. Setting an existing key replaces its value in
// place, so on duplicate keys the last write wins while the original insertion
// order is kept.
type Storage struct {
	pairs    []Pair
	keysBuff []string
}

func New() *Storage {
	return new(Storage)
}

// NewPrealloc returns an instance of Storage with pre-allocated underlying
// storage.
func NewPrealloc(n int) *Storage {
	return &Storage{
		pairs: make([]Pair, 0, n),
	}
}

// NewFromMap returns a new instance with already inserted values from given
// map. Note: as maps are unordered, the resulting underlying structure will
// also contain unordered pairs.
func NewFromMap(m map[string]string) *Storage {
	kv := NewPrealloc(len(m))

	for key, value := range m {
		kv.Set(key, value)
	}

	return kv
}

// Set inserts the pair, overwriting the value of an already present key.
func (s *Storage) Set(key, value string) *Storage {
	for i, pair := range s.pairs {
		if pair.Key == key {
			s.pairs[i].Value = value
			return s
		}
	}

	s.pairs = append(s.pairs, Pair{
		Key:   key,
		Value: value,
	})
	return s
}

// Value returns the value corresponding to the key. Otherwise, empty string is
// returned.
func (s *Storage) Value(key string) string {
	return s.ValueOr(key, "")
}

// ValueOr returns either the value corresponding to the key or the custom
// value, defined via the second parameter.
func (s *Storage) ValueOr(key, or string) string {
	value, found := s.Get(key)
	if !found {
		return or
	}

	return value
}

// Get returns a value and a bool, indicating whether the key exists. If it
// doesn't, the value will be an empty string.
func (s *Storage) Get(key string) (value string, found bool) {
	for _, pair := range s.pairs {
		if pair.Key == key {
			return pair.Value, true
		}
	}

	return "", false
}

// Has indicates whether there's an entry of the key.
func (s *Storage) Has(key string) bool {
	_, found := s.Get(key)
	return found
}

// Keys returns all the presented keys in insertion order.
//
// WARNING: calling it twice will override values, returned by the first call.
// Consider copying the returned slice for safe use.
func (s *Storage) Keys() []string {
	s.keysBuff = s.keysBuff[:0]

	for _, pair := range s.pairs {
		s.keysBuff = append(s.keysBuff, pair.Key)
	}

	return s.keysBuff
}

// Pairs reveals the underlying pair slice in insertion order. Mutating it
// mutates the storage.
func (s *Storage) Pairs() []Pair {
	return s.pairs
}

func (s *Storage) Len() int {
	return len(s.pairs)
}

// Clone creates a deep copy, which may be stored somewhere safely at cost of
// an allocation.
func (s *Storage) Clone() *Storage {
	if len(s.pairs) == 0 {
		return New()
	}

	pairs := make([]Pair, len(s.pairs))
	copy(pairs, s.pairs)

	return &Storage{pairs: pairs}
}

// Clear all the entries. The allocated space is kept for reuse.
func (s *Storage) Clear() {
	s.pairs = s.pairs[:0]
}
