package geom

import "math"

// CellSize is the edge length of a bucket in the canonical sets. It must stay
// well above the absolute tolerance for every coordinate in play, so that any
// two coincident values land in the same or adjacent cells.
const CellSize = 1e-5

type cell [3]int64

func cellOf(values ...float64) cell {
	var k cell
	for i, v := range values {
		k[i] = int64(math.Floor(v / CellSize))
	}
	return k
}

// bucketSet is the shared machinery behind the canonical sets: a coarse grid
// keyed by rounded coordinates. Lookups probe the item's own cell and all of
// its neighbours, then confirm each candidate with the exact coincidence
// predicate. Items are kept in insertion order.
type bucketSet[T any] struct {
	dims  int
	cells map[cell][]int
	items []T

	// keys returns the cells to probe for an item. The first is the cell the
	// item is stored under. Additional keys are alternate representations (for
	// lines near the angle wrap) which are probed but never stored.
	keys  func(T) []cell
	equal func(a, b T) bool
}

func newBucketSet[T any](dims int, keys func(T) []cell, equal func(a, b T) bool) bucketSet[T] {
	return bucketSet[T]{
		dims:  dims,
		cells: make(map[cell][]int),
		keys:  keys,
		equal: equal,
	}
}

// index finds the insertion index of an item coincident with item.
func (s *bucketSet[T]) index(item T) (int, bool) {
	if len(s.items) == 0 {
		return -1, false
	}
	for _, key := range s.keys(item) {
		if i, ok := s.probe(key, item); ok {
			return i, true
		}
	}
	return -1, false
}

func (s *bucketSet[T]) probe(center cell, item T) (int, bool) {
	var reach int64
	if s.dims == 3 {
		reach = 1
	}
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := -reach; dz <= reach; dz++ {
				k := cell{center[0] + dx, center[1] + dy, center[2] + dz}
				for _, i := range s.cells[k] {
					if s.equal(s.items[i], item) {
						return i, true
					}
				}
			}
		}
	}
	return -1, false
}

func (s *bucketSet[T]) add(item T) (int, bool) {
	if i, ok := s.index(item); ok {
		return i, false
	}
	i := len(s.items)
	s.items = append(s.items, item)
	key := s.keys(item)[0]
	s.cells[key] = append(s.cells[key], i)
	return i, true
}

func (s *bucketSet[T]) snapshot() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
