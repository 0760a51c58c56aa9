package relation

import (
	"errors"
	"testing"

	"github.com/relquery/relq/internal/clause"
)

type fakeExt struct {
	name string
	rev  int
}

func (f fakeExt) Name() string { return f.name }

func TestExtendingAndLookup(t *testing.T) {
	r := New(testEntity()).
		Extending(fakeExt{name: "audit"}).
		Extending(fakeExt{name: "paging"})

	exts := r.Extensions()
	if len(exts) != 2 || exts[0].Name() != "audit" || exts[1].Name() != "paging" {
		t.Errorf("extensions = %v, want [audit paging] in application order", exts)
	}

	got, ok := r.ExtensionFor("audit")
	if !ok || got.Name() != "audit" {
		t.Error("ExtensionFor missed a registered extension")
	}
	if _, ok := r.ExtensionFor("missing"); ok {
		t.Error("ExtensionFor found an unregistered extension")
	}
}

func TestExtensionLookupLatestWins(t *testing.T) {
	first := fakeExt{name: "paging", rev: 1}
	second := fakeExt{name: "paging", rev: 2}
	r := New(testEntity()).Extending(first).Extending(second)

	got, ok := r.ExtensionFor("paging")
	if !ok {
		t.Fatal("ExtensionFor missed the extension")
	}
	if got != second {
		t.Error("ExtensionFor returned the earlier extension, want the later")
	}
}

func TestMergeExtensionsUnion(t *testing.T) {
	base := New(testEntity()).Extending(fakeExt{name: "audit"}, fakeExt{name: "paging"})
	incoming := New(testEntity()).Extending(fakeExt{name: "paging"}, fakeExt{name: "export"})

	merged, err := base.MergeRelation(incoming)
	if err != nil {
		t.Fatalf("MergeRelation failed: %v", err)
	}
	exts := merged.Extensions()
	if len(exts) != 3 {
		t.Fatalf("extensions = %v, want de-duplicated union of 3", exts)
	}
	want := []string{"audit", "paging", "export"}
	for i, name := range want {
		if exts[i].Name() != name {
			t.Errorf("exts[%d] = %q, want %q", i, exts[i].Name(), name)
		}
	}
}

func TestScope(t *testing.T) {
	r, err := New(testEntity()).Scope("urgent")
	if err != nil {
		t.Fatalf("Scope failed: %v", err)
	}
	conds := r.Clauses().Conditions(clause.KindWhere)
	if len(conds) != 1 || conds[0].Column != "priority" {
		t.Errorf("conditions = %v, want the scope's priority filter", conds)
	}
	ext, ok := r.ExtensionFor("urgent")
	if !ok {
		t.Fatal("applied scope not recorded as an extension")
	}
	ns, ok := ext.(NamedScope)
	if !ok || len(ns.Conditions) != 1 {
		t.Errorf("extension = %#v, want NamedScope carrying the conditions", ext)
	}
}

func TestScopeUnknown(t *testing.T) {
	_, err := New(testEntity()).Scope("archived")
	var unknown *UnknownScopeError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want *UnknownScopeError", err)
	}
	if unknown.Entity != "ticket" || unknown.Scope != "archived" {
		t.Errorf("error fields = %q/%q, want ticket/archived", unknown.Entity, unknown.Scope)
	}
}

func TestScopeNames(t *testing.T) {
	names := ScopeNames(testEntity())
	if len(names) != 2 || names[0] != "open" || names[1] != "urgent" {
		t.Errorf("ScopeNames = %v, want sorted [open urgent]", names)
	}
}
