package hash

// Set backed by a map, not safe for concurrent use.
type Set[T comparable] struct {
	m map[T]struct{}
}

func NewSet[T comparable](keys ...T) Set[T] {
	s := Set[T]{m: make(map[T]struct{}, len(keys))}
	for _, k := range keys {
		s.m[k] = struct{}{}
	}
	return s
}

func (s Set[T]) Has(k T) bool {
	_, ok := s.m[k]
	return ok
}

// Add k, returns false if k is already present.
func (s Set[T]) Add(k T) bool {
	if s.Has(k) {
		return false
	}
	s.m[k] = struct{}{}
	return true
}

func (s Set[T]) Len() int {
	return len(s.m)
}

// Keys in no particular order.
func (s Set[T]) CopyKeys() []T {
	keys := make([]T, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	return keys
}
