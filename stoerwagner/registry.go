// SPDX-License-Identifier: MIT

package stoerwagner

// registry is an append-only arena of super-vertices. The id of a super-vertex
// is its index; entries are never mutated or reused after they are appended.
type registry[T comparable] struct {
	sets [][]T
}

// intern registers every original vertex as a singleton and returns the
// vertex → id mapping used to seed the working graph.
func (r *registry[T]) intern(vs []T) map[T]int {
	ids := make(map[T]int, len(vs))
	for _, v := range vs {
		ids[v] = r.add([]T{v})
	}

	return ids
}

// add appends set and returns its fresh id.
func (r *registry[T]) add(set []T) int {
	r.sets = append(r.sets, set)

	return len(r.sets) - 1
}

// merge registers the union of a and b under a fresh id.
func (r *registry[T]) merge(a, b int) int {
	union := make([]T, 0, len(r.sets[a])+len(r.sets[b]))
	union = append(union, r.sets[a]...)
	union = append(union, r.sets[b]...)

	return r.add(union)
}

// members returns the original vertices represented by id.
func (r *registry[T]) members(id int) []T {
	return r.sets[id]
}
