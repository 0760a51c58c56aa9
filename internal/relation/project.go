package relation

import "github.com/relquery/relq/internal/clause"

// Only returns a new relation retaining just the named clause kinds.
// Kinds the relation never set are simply absent in the result. Entity,
// runner, extensions, and the default-scoped flag carry over; note that
// extensions live under the extending kind, so projecting it away drops
// them like any other clause.
func (r *Relation) Only(kinds ...clause.Kind) *Relation {
	keep := make(map[clause.Kind]bool, len(kinds))
	for _, k := range kinds {
		keep[k] = true
	}
	return r.project(keep, true)
}

// Except is the dual of Only: it returns a new relation dropping the
// named clause kinds and retaining everything else.
func (r *Relation) Except(kinds ...clause.Kind) *Relation {
	drop := make(map[clause.Kind]bool, len(kinds))
	for _, k := range kinds {
		drop[k] = true
	}
	return r.project(drop, false)
}

// project rebuilds the clause set from scratch, copying each kind whose
// membership in marked matches want. Entry order within multi kinds is
// preserved.
func (r *Relation) project(marked map[clause.Kind]bool, want bool) *Relation {
	out := clause.NewSet()
	for _, k := range clause.MultiKinds() {
		if marked[k] != want {
			continue
		}
		if entries := r.clauses.Multi(k); len(entries) > 0 {
			out.SetMulti(k, append([]any(nil), entries...))
		}
	}
	for _, k := range clause.SingleKinds() {
		if marked[k] != want {
			continue
		}
		if r.clauses.HasSingle(k) {
			out.SetSingle(k, r.clauses.Single(k))
		}
	}
	return r.withSet(out)
}
