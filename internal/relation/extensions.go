package relation

import (
	"sort"

	"github.com/relquery/relq/internal/clause"
	"github.com/relquery/relq/internal/schema"
)

// Extension is an opaque capability mixed into a relation at build
// time. The core stores and unions ordered extension lists; resolving
// what an extension can do is the caller's business.
type Extension interface {
	Name() string
}

// NamedScope is the extension contributed by applying one of an
// entity's named scopes. It records the scope's name and the
// conditions it added.
type NamedScope struct {
	ScopeName  string
	Conditions []clause.Condition
}

func (s NamedScope) Name() string { return s.ScopeName }

// Extending appends extensions to the relation's ordered extension
// list.
func (r *Relation) Extending(exts ...Extension) *Relation {
	return r.with(func(b *clause.Builder) {
		for _, ext := range exts {
			b.Set().Append(clause.KindExtending, ext)
		}
	})
}

// Extensions returns the relation's ordered extension list.
func (r *Relation) Extensions() []Extension {
	var out []Extension
	for _, e := range r.clauses.Multi(clause.KindExtending) {
		if ext, ok := e.(Extension); ok {
			out = append(out, ext)
		}
	}
	return out
}

// ExtensionFor resolves an extension by name. The list is scanned from
// the end so that later-applied extensions shadow earlier ones.
func (r *Relation) ExtensionFor(name string) (Extension, bool) {
	exts := r.Extensions()
	for i := len(exts) - 1; i >= 0; i-- {
		if exts[i].Name() == name {
			return exts[i], true
		}
	}
	return nil, false
}

// Scope applies one of the entity's named scopes: its conditions join
// the where kind and the scope itself is recorded as an extension.
func (r *Relation) Scope(name string) (*Relation, error) {
	defs, ok := r.entity.Scopes[name]
	if !ok {
		return nil, &UnknownScopeError{Entity: r.entity.Name, Scope: name}
	}
	conds := scopeConditions(defs)
	return r.Where(conds...).Extending(NamedScope{ScopeName: name, Conditions: conds}), nil
}

// ScopeNames lists an entity's named scopes in sorted order. Placed
// here rather than on schema.Entity so the CLI has one import for
// scope handling.
func ScopeNames(e *schema.Entity) []string {
	names := make([]string, 0, len(e.Scopes))
	for name := range e.Scopes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
