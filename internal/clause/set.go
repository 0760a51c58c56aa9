package clause

import "reflect"

// Set is the typed clause storage for one relation: an ordered entry
// list per multi-valued kind and an optional value per single-valued
// kind. Entry order is load-bearing; it determines emission order in
// the assembled query.
//
// A Set is never shared between relations. Mutation happens only
// through a Builder seeded from a structural copy, so callers holding
// older relations never observe later changes.
type Set struct {
	multi  map[Kind][]any
	single map[Kind]any
}

// NewSet returns an empty clause set.
func NewSet() *Set {
	return &Set{
		multi:  make(map[Kind][]any),
		single: make(map[Kind]any),
	}
}

// Multi returns the entry list for a multi-valued kind, empty if the
// kind was never set. Callers must not mutate the returned slice.
// Panics with *KindMismatchError for a single-valued kind.
func (s *Set) Multi(k Kind) []any {
	mustMulti(k)
	return s.multi[k]
}

// SetMulti replaces the entry list for a multi-valued kind wholesale.
// An empty list removes the kind.
func (s *Set) SetMulti(k Kind, entries []any) {
	mustMulti(k)
	if len(entries) == 0 {
		delete(s.multi, k)
		return
	}
	s.multi[k] = entries
}

// Append adds entries to the end of a multi-valued kind's list.
func (s *Set) Append(k Kind, entries ...any) {
	mustMulti(k)
	s.multi[k] = append(s.multi[k], entries...)
}

// Single returns the value of a single-valued kind, nil if unset.
// Panics with *KindMismatchError for a multi-valued kind.
func (s *Set) Single(k Kind) any {
	mustSingle(k)
	return s.single[k]
}

// HasSingle reports whether a single-valued kind currently holds a value.
func (s *Set) HasSingle(k Kind) bool {
	mustSingle(k)
	_, ok := s.single[k]
	return ok
}

// SetSingle stores the value of a single-valued kind. Last write wins.
func (s *Set) SetSingle(k Kind, value any) {
	mustSingle(k)
	s.single[k] = value
}

// ClearSingle removes a single-valued kind's value.
func (s *Set) ClearSingle(k Kind) {
	mustSingle(k)
	delete(s.single, k)
}

// Clone returns a structural copy: fresh maps and fresh entry slices.
// Entry values themselves are treated as opaque immutable data and
// shared, which is safe because nothing in this package or its callers
// mutates an entry after it is stored.
func (s *Set) Clone() *Set {
	out := NewSet()
	for k, entries := range s.multi {
		out.multi[k] = append([]any(nil), entries...)
	}
	for k, v := range s.single {
		out.single[k] = v
	}
	return out
}

// Equal reports structural value equality of two sets: same kinds
// present, same entry sequences, same single values.
func (s *Set) Equal(other *Set) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.multi) != len(other.multi) || len(s.single) != len(other.single) {
		return false
	}
	for k, entries := range s.multi {
		if !reflect.DeepEqual(entries, other.multi[k]) {
			return false
		}
	}
	for k, v := range s.single {
		ov, ok := other.single[k]
		if !ok || !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	return true
}

// Empty reports whether no kind holds any value.
func (s *Set) Empty() bool {
	return len(s.multi) == 0 && len(s.single) == 0
}

// Conditions returns the where- or having-kind entries as typed
// conditions, skipping entries of other types.
func (s *Set) Conditions(k Kind) []Condition {
	var out []Condition
	for _, e := range s.Multi(k) {
		if c, ok := e.(Condition); ok {
			out = append(out, c)
		}
	}
	return out
}

// Orderings returns the order-kind entries as typed orderings.
func (s *Set) Orderings() []Ordering {
	var out []Ordering
	for _, e := range s.Multi(KindOrder) {
		if o, ok := e.(Ordering); ok {
			out = append(out, o)
		}
	}
	return out
}

// Joins returns the joins-kind entries as typed joins.
func (s *Set) Joins() []Join {
	var out []Join
	for _, e := range s.Multi(KindJoins) {
		if j, ok := e.(Join); ok {
			out = append(out, j)
		}
	}
	return out
}

// Strings returns a multi-valued kind's entries as strings, skipping
// entries of other types. Used for select, group, and includes kinds.
func (s *Set) Strings(k Kind) []string {
	var out []string
	for _, e := range s.Multi(k) {
		if str, ok := e.(string); ok {
			out = append(out, str)
		}
	}
	return out
}
