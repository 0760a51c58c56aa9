package relation

import (
	"errors"
	"fmt"
)

// ErrNoRunner is returned when an operation needs to materialize rows
// but no execution engine was attached at spawn time.
var ErrNoRunner = errors.New("relation has no execution engine attached")

// UnsupportedMergeArgumentError reports a Merge argument that is not
// nil, a relation, a string-keyed map, or a sequence.
type UnsupportedMergeArgumentError struct {
	Value any
}

func (e *UnsupportedMergeArgumentError) Error() string {
	return fmt.Sprintf("cannot merge value of type %T", e.Value)
}

// IncompatibleTargetError reports a merge across entities backed by
// unrelated tables.
type IncompatibleTargetError struct {
	Base     string
	Incoming string
}

func (e *IncompatibleTargetError) Error() string {
	return fmt.Sprintf("cannot merge relations over unrelated targets %q and %q", e.Base, e.Incoming)
}

// UnknownScopeError reports a request for a named scope the entity does
// not declare.
type UnknownScopeError struct {
	Entity string
	Scope  string
}

func (e *UnknownScopeError) Error() string {
	return fmt.Sprintf("entity %q has no scope %q", e.Entity, e.Scope)
}

// UnknownAttributeError reports a hash-merge key that is not a declared
// attribute of the target entity.
type UnknownAttributeError struct {
	Entity    string
	Attribute string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("unknown attribute %q on entity %q", e.Attribute, e.Entity)
}
