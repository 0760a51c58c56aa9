// Package schema loads and validates entity metadata.
package schema

import (
	"fmt"

	"github.com/gosimple/slug"
)

// AttrType is the declared type of an entity attribute.
type AttrType string

const (
	AttrString AttrType = "string"
	AttrNumber AttrType = "number"
	AttrBool   AttrType = "bool"
	AttrDate   AttrType = "date"
)

// Attribute describes one queryable column of an entity.
type Attribute struct {
	Name string   `yaml:"name"`
	Type AttrType `yaml:"type,omitempty"`
}

// ScopeCondition is one column = value (or column IN values) restriction
// contributed by a named or default scope.
type ScopeCondition struct {
	Column string `yaml:"column"`
	Value  any    `yaml:"value,omitempty"`
	Values []any  `yaml:"values,omitempty"`
}

// Entity describes one queryable target: its table, primary key,
// attribute set, and scope definitions.
type Entity struct {
	Name       string                      `yaml:"-"`
	Table      string                      `yaml:"table,omitempty"`
	PrimaryKey string                      `yaml:"primary_key,omitempty"`
	Attributes []Attribute                 `yaml:"attributes"`
	Default    []ScopeCondition            `yaml:"default_scope,omitempty"`
	Scopes     map[string][]ScopeCondition `yaml:"scopes,omitempty"`
}

// HasAttribute reports whether name is a declared attribute or the
// primary key.
func (e *Entity) HasAttribute(name string) bool {
	if name == e.PrimaryKey {
		return true
	}
	for _, a := range e.Attributes {
		if a.Name == name {
			return true
		}
	}
	return false
}

// AttributeNames returns the primary key followed by the declared
// attributes, in declaration order.
func (e *Entity) AttributeNames() []string {
	names := []string{e.PrimaryKey}
	for _, a := range e.Attributes {
		if a.Name != e.PrimaryKey {
			names = append(names, a.Name)
		}
	}
	return names
}

// Compatible reports whether two entities point at the same underlying
// store. Relations over incompatible entities cannot be merged.
func (e *Entity) Compatible(other *Entity) bool {
	return other != nil && e.Table == other.Table
}

// Schema is the set of entities loaded from schema.yaml.
type Schema struct {
	Entities map[string]*Entity `yaml:"entities"`
}

// Provider resolves entity names to descriptors. Schema implements it;
// tests substitute fixtures.
type Provider interface {
	Entity(name string) (*Entity, error)
}

// Entity resolves a named entity, failing with *UnknownEntityError for
// unrecognized names.
func (s *Schema) Entity(name string) (*Entity, error) {
	if e, ok := s.Entities[name]; ok {
		return e, nil
	}
	return nil, &UnknownEntityError{Name: name}
}

// Names returns all entity names. Order is unspecified.
func (s *Schema) Names() []string {
	names := make([]string, 0, len(s.Entities))
	for name := range s.Entities {
		names = append(names, name)
	}
	return names
}

// UnknownEntityError reports a lookup of an entity the schema does not
// define.
type UnknownEntityError struct {
	Name string
}

func (e *UnknownEntityError) Error() string {
	return fmt.Sprintf("unknown entity %q", e.Name)
}

// normalize fills derived fields and checks internal consistency.
func (s *Schema) normalize() error {
	for name, entity := range s.Entities {
		if entity == nil {
			entity = &Entity{}
			s.Entities[name] = entity
		}
		entity.Name = name
		if entity.Table == "" {
			entity.Table = slug.Make(name)
		}
		if entity.PrimaryKey == "" {
			entity.PrimaryKey = "id"
		}

		seen := make(map[string]bool)
		for _, a := range entity.Attributes {
			if a.Name == "" {
				return fmt.Errorf("entity %q has an attribute with no name", name)
			}
			if seen[a.Name] {
				return fmt.Errorf("entity %q declares attribute %q twice", name, a.Name)
			}
			seen[a.Name] = true
		}

		for _, c := range entity.Default {
			if !entity.HasAttribute(c.Column) {
				return fmt.Errorf("entity %q default scope references unknown column %q", name, c.Column)
			}
		}
		for scopeName, conds := range entity.Scopes {
			for _, c := range conds {
				if !entity.HasAttribute(c.Column) {
					return fmt.Errorf("entity %q scope %q references unknown column %q", name, scopeName, c.Column)
				}
			}
		}
	}
	return nil
}
