package clause

import (
	"errors"
	"testing"
)

func TestSetMultiOrder(t *testing.T) {
	s := NewSet()
	s.Append(KindWhere, Eq("status", "open"))
	s.Append(KindWhere, Eq("priority", 1), NotEq("assignee", "kim"))

	entries := s.Multi(KindWhere)
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	first, ok := entries[0].(Condition)
	if !ok || first.Column != "status" {
		t.Errorf("first entry = %v, want status condition", entries[0])
	}
	last, ok := entries[2].(Condition)
	if !ok || last.Op != OpNotEq {
		t.Errorf("last entry = %v, want != condition", entries[2])
	}
}

func TestSetMultiUnsetIsEmpty(t *testing.T) {
	s := NewSet()
	if entries := s.Multi(KindOrder); len(entries) != 0 {
		t.Errorf("unset multi kind = %v, want empty", entries)
	}
}

func TestSetSingleLastWriteWins(t *testing.T) {
	s := NewSet()
	if s.HasSingle(KindLimit) {
		t.Error("HasSingle true before any write")
	}
	s.SetSingle(KindLimit, 10)
	s.SetSingle(KindLimit, 25)
	if got := s.Single(KindLimit); got != 25 {
		t.Errorf("Single(limit) = %v, want 25", got)
	}
	if !s.HasSingle(KindLimit) {
		t.Error("HasSingle false after write")
	}
	s.ClearSingle(KindLimit)
	if s.HasSingle(KindLimit) {
		t.Error("HasSingle true after clear")
	}
	if got := s.Single(KindLimit); got != nil {
		t.Errorf("Single(limit) after clear = %v, want nil", got)
	}
}

func TestSetWrongArityPanics(t *testing.T) {
	assertMismatch := func(name string, fn func()) {
		t.Helper()
		defer func() {
			r := recover()
			if r == nil {
				t.Errorf("%s: no panic for wrong-arity access", name)
				return
			}
			err, ok := r.(error)
			var mismatch *KindMismatchError
			if !ok || !errors.As(err, &mismatch) {
				t.Errorf("%s: panic value %v, want *KindMismatchError", name, r)
			}
		}()
		fn()
	}

	s := NewSet()
	assertMismatch("Multi(limit)", func() { s.Multi(KindLimit) })
	assertMismatch("Single(where)", func() { s.Single(KindWhere) })
	assertMismatch("SetSingle(order)", func() { s.SetSingle(KindOrder, 1) })
	assertMismatch("Append(distinct)", func() { s.Append(KindDistinct, true) })
	assertMismatch("HasSingle(joins)", func() { s.HasSingle(KindJoins) })
}

func TestSetCloneIsolation(t *testing.T) {
	s := NewSet()
	s.Append(KindWhere, Eq("status", "open"))
	s.SetSingle(KindLimit, 10)

	c := s.Clone()
	c.Append(KindWhere, Eq("priority", 1))
	c.SetSingle(KindLimit, 99)
	c.SetSingle(KindOffset, 5)

	if len(s.Multi(KindWhere)) != 1 {
		t.Errorf("source where entries = %d after clone mutation, want 1", len(s.Multi(KindWhere)))
	}
	if got := s.Single(KindLimit); got != 10 {
		t.Errorf("source limit = %v after clone mutation, want 10", got)
	}
	if s.HasSingle(KindOffset) {
		t.Error("source gained offset from clone mutation")
	}
}

func TestSetEqual(t *testing.T) {
	build := func() *Set {
		s := NewSet()
		s.Append(KindWhere, Eq("status", "open"), In("priority", 1, 2))
		s.Append(KindOrder, Ordering{Column: "priority", Descending: true})
		s.SetSingle(KindLimit, 10)
		return s
	}

	a, b := build(), build()
	if !a.Equal(b) {
		t.Error("identically built sets are not Equal")
	}

	b.SetSingle(KindLimit, 11)
	if a.Equal(b) {
		t.Error("sets with different limit are Equal")
	}

	c := build()
	c.SetMulti(KindWhere, []any{In("priority", 1, 2), Eq("status", "open")})
	if a.Equal(c) {
		t.Error("sets with reordered where entries are Equal; order must matter")
	}
}

func TestSetEmpty(t *testing.T) {
	s := NewSet()
	if !s.Empty() {
		t.Error("fresh set not Empty")
	}
	s.SetSingle(KindDistinct, true)
	if s.Empty() {
		t.Error("set with distinct flag is Empty")
	}
}

func TestTypedAccessorsSkipForeignEntries(t *testing.T) {
	s := NewSet()
	s.Append(KindWhere, Eq("status", "open"), "stray string")
	if conds := s.Conditions(KindWhere); len(conds) != 1 {
		t.Errorf("Conditions = %d entries, want 1 (foreign entry skipped)", len(conds))
	}
	s.Append(KindSelect, "id", 42, "status")
	if cols := s.Strings(KindSelect); len(cols) != 2 {
		t.Errorf("Strings = %v, want two columns", cols)
	}
}
