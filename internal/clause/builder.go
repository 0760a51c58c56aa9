package clause

// Builder applies incremental changes to a private copy of a clause
// set. NewBuilder snapshots the source set up front, so the source is
// untouched no matter how the caller's mutation exits.
type Builder struct {
	set *Set
}

// NewBuilder returns a builder over a structural copy of src.
// A nil src starts from an empty set.
func NewBuilder(src *Set) *Builder {
	if src == nil {
		return &Builder{set: NewSet()}
	}
	return &Builder{set: src.Clone()}
}

// Set exposes the builder's working copy for direct mutation.
func (b *Builder) Set() *Set {
	return b.set
}

// Where appends conditions to the where kind.
func (b *Builder) Where(conds ...Condition) *Builder {
	for _, c := range conds {
		b.set.Append(KindWhere, c)
	}
	return b
}

// Having appends conditions to the having kind.
func (b *Builder) Having(conds ...Condition) *Builder {
	for _, c := range conds {
		b.set.Append(KindHaving, c)
	}
	return b
}

// Order appends orderings.
func (b *Builder) Order(orders ...Ordering) *Builder {
	for _, o := range orders {
		b.set.Append(KindOrder, o)
	}
	return b
}

// Join appends join entries.
func (b *Builder) Join(joins ...Join) *Builder {
	for _, j := range joins {
		b.set.Append(KindJoins, j)
	}
	return b
}

// Select appends selection columns.
func (b *Builder) Select(columns ...string) *Builder {
	for _, c := range columns {
		b.set.Append(KindSelect, c)
	}
	return b
}

// Group appends grouping columns.
func (b *Builder) Group(columns ...string) *Builder {
	for _, c := range columns {
		b.set.Append(KindGroup, c)
	}
	return b
}

// Includes appends association names to eager-load.
func (b *Builder) Includes(names ...string) *Builder {
	for _, n := range names {
		b.set.Append(KindIncludes, n)
	}
	return b
}

// Limit sets the limit kind.
func (b *Builder) Limit(n int) *Builder {
	b.set.SetSingle(KindLimit, n)
	return b
}

// Offset sets the offset kind.
func (b *Builder) Offset(n int) *Builder {
	b.set.SetSingle(KindOffset, n)
	return b
}

// Lock sets the lock kind.
func (b *Builder) Lock() *Builder {
	b.set.SetSingle(KindLock, true)
	return b
}

// Distinct sets the distinct flag.
func (b *Builder) Distinct() *Builder {
	b.set.SetSingle(KindDistinct, true)
	return b
}

// From overrides the source table.
func (b *Builder) From(table string) *Builder {
	b.set.SetSingle(KindFrom, table)
	return b
}
