package relation

import (
	"reflect"
	"sort"

	"github.com/relquery/relq/internal/clause"
)

// MergeResult is the tagged outcome of Merge. Exactly one field is
// populated: Relation for the clause-merge arms, Rows for the
// sequence-intersection arm.
type MergeResult struct {
	Relation *Relation
	Rows     []Row
}

// Merge combines the relation with another value, dispatching on its
// shape:
//
//   - nil merges to the relation itself, unchanged
//   - another relation merges clause sets via the merge rules
//   - a string-keyed map is translated into where conditions and merged
//   - a slice or array materializes the relation and intersects its
//     rows with the sequence, preserving the relation's row order; the
//     result is rows, not a relation
//
// Any other argument fails with *UnsupportedMergeArgumentError.
func (r *Relation) Merge(other any) (MergeResult, error) {
	switch o := other.(type) {
	case nil:
		return MergeResult{Relation: r}, nil
	case *Relation:
		merged, err := r.MergeRelation(o)
		if err != nil {
			return MergeResult{}, err
		}
		return MergeResult{Relation: merged}, nil
	case map[string]any:
		merged, err := r.MergeHash(o)
		if err != nil {
			return MergeResult{}, err
		}
		return MergeResult{Relation: merged}, nil
	}

	rv := reflect.ValueOf(other)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		seq := make([]any, rv.Len())
		for i := range seq {
			seq[i] = rv.Index(i).Interface()
		}
		rows, err := r.Intersect(seq)
		if err != nil {
			return MergeResult{}, err
		}
		return MergeResult{Rows: rows}, nil
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			m := make(map[string]any, rv.Len())
			for _, key := range rv.MapKeys() {
				m[key.String()] = rv.MapIndex(key).Interface()
			}
			merged, err := r.MergeHash(m)
			if err != nil {
				return MergeResult{}, err
			}
			return MergeResult{Relation: merged}, nil
		}
	}
	return MergeResult{}, &UnsupportedMergeArgumentError{Value: other}
}

// multiRule combines one multi-valued kind's entry lists during a
// merge. The default is pure concatenation, base first; kinds with
// clause-specific override semantics register their own rule.
type multiRule func(base, incoming []any) []any

var multiRules = map[clause.Kind]multiRule{
	clause.KindWhere:     mergeConditions,
	clause.KindExtending: mergeExtensions,
}

// MergeRelation merges another relation's clause set into this one:
// multi-valued kinds concatenate (base entries first) subject to the
// per-kind rules, single-valued kinds take the incoming value when set
// and keep the base value otherwise, and the default-scoped flag
// survives only when both sides still carry it. A nil incoming relation
// merges to the receiver unchanged.
func (r *Relation) MergeRelation(incoming *Relation) (*Relation, error) {
	if incoming == nil {
		return r, nil
	}
	if !r.entity.Compatible(incoming.entity) {
		return nil, &IncompatibleTargetError{Base: r.entity.Table, Incoming: incoming.entity.Table}
	}

	out := clause.NewSet()
	for _, k := range clause.MultiKinds() {
		rule := multiRules[k]
		if rule == nil {
			rule = concatEntries
		}
		out.SetMulti(k, rule(r.clauses.Multi(k), incoming.clauses.Multi(k)))
	}
	for _, k := range clause.SingleKinds() {
		switch {
		case incoming.clauses.HasSingle(k):
			out.SetSingle(k, incoming.clauses.Single(k))
		case r.clauses.HasSingle(k):
			out.SetSingle(k, r.clauses.Single(k))
		}
	}

	merged := &Relation{
		entity:        r.entity,
		clauses:       out,
		defaultScoped: r.defaultScoped && incoming.defaultScoped,
		runner:        r.runner,
	}
	if merged.runner == nil {
		merged.runner = incoming.runner
	}
	return merged, nil
}

// MergeHash translates a plain attribute map into where conditions and
// merges them in as a synthetic incoming relation. A slice value
// becomes an IN condition, anything else an equality. Every key is
// validated against the entity before any clause is built, so a bad
// key leaves the relation untouched. Keys are applied in sorted order
// to keep merges deterministic.
func (r *Relation) MergeHash(attrs map[string]any) (*Relation, error) {
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !r.entity.HasAttribute(key) {
			return nil, &UnknownAttributeError{Entity: r.entity.Name, Attribute: key}
		}
	}

	incoming := &Relation{
		entity:        r.entity,
		clauses:       clause.NewSet(),
		defaultScoped: r.defaultScoped,
	}
	for _, key := range keys {
		value := attrs[key]
		rv := reflect.ValueOf(value)
		if value != nil && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
			values := make([]any, rv.Len())
			for i := range values {
				values[i] = rv.Index(i).Interface()
			}
			incoming.clauses.Append(clause.KindWhere, clause.In(key, values...))
		} else {
			incoming.clauses.Append(clause.KindWhere, clause.Eq(key, value))
		}
	}
	return r.MergeRelation(incoming)
}

// Intersect materializes the relation and keeps the rows present in
// seq, in the relation's materialized order. A sequence element matches
// a row when it equals the row's primary-key value or the whole row.
func (r *Relation) Intersect(seq []any) ([]Row, error) {
	rows, err := r.Records()
	if err != nil {
		return nil, err
	}

	pk := r.entity.PrimaryKey
	var out []Row
	for _, row := range rows {
		for _, elem := range seq {
			if equalValue(elem, row[pk]) || equalValue(elem, row) {
				out = append(out, row)
				break
			}
		}
	}
	return out, nil
}

func concatEntries(base, incoming []any) []any {
	if len(base) == 0 && len(incoming) == 0 {
		return nil
	}
	out := make([]any, 0, len(base)+len(incoming))
	out = append(out, base...)
	return append(out, incoming...)
}

// mergeConditions is the where-kind rule: an incoming condition that
// pins a column replaces base conditions on that column, then the
// remainder concatenates in base-then-incoming order. Raw fragments
// pass through untouched on both sides.
func mergeConditions(base, incoming []any) []any {
	overridden := make(map[string]bool)
	for _, e := range incoming {
		if c, ok := e.(clause.Condition); ok && c.Overridable() {
			overridden[c.Column] = true
		}
	}

	var out []any
	for _, e := range base {
		if c, ok := e.(clause.Condition); ok && c.Overridable() && overridden[c.Column] {
			continue
		}
		out = append(out, e)
	}
	return append(out, incoming...)
}

// mergeExtensions is the extending-kind rule: the ordered union of both
// sides, base first, de-duplicated by extension name. Incoming
// extensions still win method-name collisions because lookup scans
// from the end of the list.
func mergeExtensions(base, incoming []any) []any {
	seen := make(map[string]bool)
	var out []any
	for _, e := range concatEntries(base, incoming) {
		if ext, ok := e.(Extension); ok {
			if seen[ext.Name()] {
				continue
			}
			seen[ext.Name()] = true
		}
		out = append(out, e)
	}
	return out
}

// equalValue compares two values for intersection and scope matching,
// normalizing numeric types so an int sequence element matches an
// int64 scanned from the store.
func equalValue(a, b any) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	return aok && bok && af == bf
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
