package page

import "sort"

// Direction is a one-step move in the ordered collection.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// SortByOrder returns a copy of sections stably sorted by Order ascending.
// The canonical sequence of a page is exactly this sort.
func SortByOrder(sections []Section) []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Reindex reassigns every Order field to the section's position in the
// order-sorted sequence, restoring the dense 0..N-1 invariant.
func Reindex(sections []Section) []Section {
	out := SortByOrder(sections)
	for i := range out {
		out[i].Order = i
	}
	return out
}

// Append adds a fresh default section at the end of the collection.
func Append(sections []Section) ([]Section, Section) {
	s := NewSection(len(sections))
	return append(SortByOrder(sections), s), s
}

// Remove deletes the section with the given id and reindexes the rest,
// preserving their relative order. Unknown ids are a no-op.
func Remove(sections []Section, id string) []Section {
	kept := make([]Section, 0, len(sections))
	for _, s := range sections {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	return Reindex(kept)
}

// Move swaps the section's Order with its neighbor in the given
// direction. Moving the first section up or the last down is a no-op.
// The exchange is exact, so density is preserved without a reindex.
func Move(sections []Section, id string, dir Direction) []Section {
	out := SortByOrder(sections)
	idx := -1
	for i, s := range out {
		if s.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return out
	}
	target := idx - 1
	if dir == Down {
		target = idx + 1
	}
	if target < 0 || target >= len(out) {
		return out
	}
	out[idx].Order, out[target].Order = out[target].Order, out[idx].Order
	out[idx], out[target] = out[target], out[idx]
	return out
}

// Reorder removes the section at position from in the order-sorted
// sequence and reinserts it at position to, then reindexes. This is the
// drop result of a drag; out-of-range positions are a no-op (a drop
// outside any valid target).
func Reorder(sections []Section, from, to int) []Section {
	out := SortByOrder(sections)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) {
		return out
	}
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]Section{moved}, out[to:]...)...)
	return Reindex(out)
}

// FindByID returns the section with the given id.
func FindByID(sections []Section, id string) (Section, bool) {
	for _, s := range sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Replace swaps in the updated section by id, leaving order untouched.
func Replace(sections []Section, updated Section) []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	for i, s := range out {
		if s.ID == updated.ID {
			updated.Order = s.Order
			out[i] = updated
			break
		}
	}
	return out
}
