// Package relation implements the lazy, composable query value and its
// merge algebra.
//
// A Relation wraps one clause set plus the entity it targets. It is
// immutable per revision: every builder call, merge, and projection
// returns a new Relation and never touches the receiver, so two call
// sites holding what looks like the same relation can never alias each
// other's changes.
package relation

import (
	"github.com/relquery/relq/internal/clause"
	"github.com/relquery/relq/internal/schema"
)

// Row is one materialized result row, keyed by column name.
type Row map[string]any

// Runner executes an assembled clause set against a backing store and
// returns rows in store order. The execution engine implements it; the
// relation core only calls it for the sequence-intersection merge path
// and for Records.
type Runner interface {
	Run(entity *schema.Entity, clauses *clause.Set) ([]Row, error)
}

// Relation is an unexecuted query against one entity.
type Relation struct {
	entity        *schema.Entity
	clauses       *clause.Set
	defaultScoped bool
	runner        Runner
}

// Option configures a new relation.
type Option func(*Relation)

// WithRunner attaches an execution engine.
func WithRunner(r Runner) Option {
	return func(rel *Relation) { rel.runner = r }
}

// New spawns a relation over an entity. The entity's default scope, if
// any, is applied as where conditions and marks the relation as
// default-scoped.
func New(entity *schema.Entity, opts ...Option) *Relation {
	r := &Relation{
		entity:  entity,
		clauses: clause.NewSet(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if len(entity.Default) > 0 {
		for _, c := range scopeConditions(entity.Default) {
			r.clauses.Append(clause.KindWhere, c)
		}
		r.defaultScoped = true
	}
	return r
}

// Entity returns the target entity descriptor.
func (r *Relation) Entity() *schema.Entity {
	return r.entity
}

// Clauses returns the relation's clause set. Callers must treat it as
// read-only; mutation goes through CloneWith or the fluent setters.
func (r *Relation) Clauses() *clause.Set {
	return r.clauses
}

// DefaultScoped reports whether the implicit base scope is still in
// effect.
func (r *Relation) DefaultScoped() bool {
	return r.defaultScoped
}

// CloneWith returns a new relation whose clause set was mutated by fn
// through a builder seeded from a structural copy. The receiver is
// untouched regardless of how fn exits; on error nothing is returned.
func (r *Relation) CloneWith(fn func(*clause.Builder) error) (*Relation, error) {
	b := clause.NewBuilder(r.clauses)
	if err := fn(b); err != nil {
		return nil, err
	}
	return r.withSet(b.Set()), nil
}

// with is CloneWith for the infallible fluent setters.
func (r *Relation) with(fn func(*clause.Builder)) *Relation {
	b := clause.NewBuilder(r.clauses)
	fn(b)
	return r.withSet(b.Set())
}

// withSet wraps a clause set in a new relation carrying the receiver's
// entity, scope flag, and runner.
func (r *Relation) withSet(s *clause.Set) *Relation {
	return &Relation{
		entity:        r.entity,
		clauses:       s,
		defaultScoped: r.defaultScoped,
		runner:        r.runner,
	}
}

// Where appends conditions.
func (r *Relation) Where(conds ...clause.Condition) *Relation {
	return r.with(func(b *clause.Builder) { b.Where(conds...) })
}

// WhereEq appends a column = value condition.
func (r *Relation) WhereEq(column string, value any) *Relation {
	return r.Where(clause.Eq(column, value))
}

// WhereIn appends a column IN (values...) condition.
func (r *Relation) WhereIn(column string, values ...any) *Relation {
	return r.Where(clause.In(column, values...))
}

// Not appends a column != value condition.
func (r *Relation) Not(column string, value any) *Relation {
	return r.Where(clause.NotEq(column, value))
}

// Having appends having conditions.
func (r *Relation) Having(conds ...clause.Condition) *Relation {
	return r.with(func(b *clause.Builder) { b.Having(conds...) })
}

// Order appends an ascending ordering.
func (r *Relation) Order(column string) *Relation {
	return r.with(func(b *clause.Builder) { b.Order(clause.Ordering{Column: column}) })
}

// OrderDesc appends a descending ordering.
func (r *Relation) OrderDesc(column string) *Relation {
	return r.with(func(b *clause.Builder) { b.Order(clause.Ordering{Column: column, Descending: true}) })
}

// Select appends selection columns.
func (r *Relation) Select(columns ...string) *Relation {
	return r.with(func(b *clause.Builder) { b.Select(columns...) })
}

// Group appends grouping columns.
func (r *Relation) Group(columns ...string) *Relation {
	return r.with(func(b *clause.Builder) { b.Group(columns...) })
}

// Joins appends join entries.
func (r *Relation) Joins(joins ...clause.Join) *Relation {
	return r.with(func(b *clause.Builder) { b.Join(joins...) })
}

// Includes appends association names to eager-load.
func (r *Relation) Includes(names ...string) *Relation {
	return r.with(func(b *clause.Builder) { b.Includes(names...) })
}

// Limit sets the row limit.
func (r *Relation) Limit(n int) *Relation {
	return r.with(func(b *clause.Builder) { b.Limit(n) })
}

// Offset sets the row offset.
func (r *Relation) Offset(n int) *Relation {
	return r.with(func(b *clause.Builder) { b.Offset(n) })
}

// Lock requests a row lock on execution.
func (r *Relation) Lock() *Relation {
	return r.with(func(b *clause.Builder) { b.Lock() })
}

// Distinct sets the distinct flag.
func (r *Relation) Distinct() *Relation {
	return r.with(func(b *clause.Builder) { b.Distinct() })
}

// From overrides the source table.
func (r *Relation) From(table string) *Relation {
	return r.with(func(b *clause.Builder) { b.From(table) })
}

// Unscoped removes the entity's default scope conditions and clears the
// default-scoped flag. Explicitly added clauses are preserved.
func (r *Relation) Unscoped() *Relation {
	defaults := scopeConditions(r.entity.Default)
	out := r.with(func(b *clause.Builder) {
		var kept []any
		for _, e := range b.Set().Multi(clause.KindWhere) {
			if c, ok := e.(clause.Condition); ok && conditionIn(c, defaults) {
				continue
			}
			kept = append(kept, e)
		}
		b.Set().SetMulti(clause.KindWhere, kept)
	})
	out.defaultScoped = false
	return out
}

// Records materializes the relation through its runner.
func (r *Relation) Records() ([]Row, error) {
	if r.runner == nil {
		return nil, ErrNoRunner
	}
	return r.runner.Run(r.entity, r.clauses)
}

// scopeConditions translates schema scope definitions into where
// conditions. A multi-valued definition becomes an IN condition.
func scopeConditions(defs []schema.ScopeCondition) []clause.Condition {
	conds := make([]clause.Condition, 0, len(defs))
	for _, d := range defs {
		if len(d.Values) > 0 {
			conds = append(conds, clause.In(d.Column, d.Values...))
		} else {
			conds = append(conds, clause.Eq(d.Column, d.Value))
		}
	}
	return conds
}

func conditionIn(c clause.Condition, set []clause.Condition) bool {
	for _, other := range set {
		if equalValue(c, other) {
			return true
		}
	}
	return false
}
