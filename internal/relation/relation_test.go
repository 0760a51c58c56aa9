package relation

import (
	"errors"
	"testing"

	"github.com/relquery/relq/internal/clause"
	"github.com/relquery/relq/internal/schema"
)

func testEntity() *schema.Entity {
	return &schema.Entity{
		Name:       "ticket",
		Table:      "tickets",
		PrimaryKey: "id",
		Attributes: []schema.Attribute{
			{Name: "status"},
			{Name: "priority"},
			{Name: "assignee"},
		},
		Scopes: map[string][]schema.ScopeCondition{
			"open":   {{Column: "status", Value: "open"}},
			"urgent": {{Column: "priority", Value: 1}},
		},
	}
}

func scopedEntity() *schema.Entity {
	e := testEntity()
	e.Default = []schema.ScopeCondition{
		{Column: "status", Values: []any{"open", "triaged"}},
	}
	return e
}

func TestNewAppliesDefaultScope(t *testing.T) {
	r := New(scopedEntity())
	if !r.DefaultScoped() {
		t.Error("relation over default-scoped entity not marked default-scoped")
	}
	conds := r.Clauses().Conditions(clause.KindWhere)
	if len(conds) != 1 || conds[0].Op != clause.OpIn || conds[0].Column != "status" {
		t.Errorf("default scope conditions = %v, want one status IN condition", conds)
	}

	bare := New(testEntity())
	if bare.DefaultScoped() {
		t.Error("relation over unscoped entity marked default-scoped")
	}
	if !bare.Clauses().Empty() {
		t.Error("relation over unscoped entity has clause state")
	}
}

func TestSettersReturnNewRelation(t *testing.T) {
	base := New(testEntity())
	snapshot := base.Clauses().Clone()

	derived := base.
		WhereEq("status", "open").
		Order("priority").
		Limit(10).
		Distinct()

	if !base.Clauses().Equal(snapshot) {
		t.Error("fluent chain mutated the base relation")
	}
	if derived == base {
		t.Error("setter returned the receiver")
	}
	cs := derived.Clauses()
	if len(cs.Conditions(clause.KindWhere)) != 1 {
		t.Error("where condition missing on derived relation")
	}
	if cs.Single(clause.KindLimit) != 10 {
		t.Errorf("limit = %v, want 10", cs.Single(clause.KindLimit))
	}
}

func TestCloneWithErrorDiscardsEverything(t *testing.T) {
	base := New(testEntity()).WhereEq("status", "open")
	snapshot := base.Clauses().Clone()

	boom := errors.New("boom")
	out, err := base.CloneWith(func(b *clause.Builder) error {
		b.Where(clause.Eq("priority", 1)).Limit(3)
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("CloneWith error = %v, want boom", err)
	}
	if out != nil {
		t.Error("CloneWith returned a relation alongside an error")
	}
	if !base.Clauses().Equal(snapshot) {
		t.Error("failed CloneWith mutated the source relation")
	}
}

func TestCloneWithSuccess(t *testing.T) {
	base := New(testEntity())
	out, err := base.CloneWith(func(b *clause.Builder) error {
		b.Where(clause.Eq("assignee", "kim")).Offset(20)
		return nil
	})
	if err != nil {
		t.Fatalf("CloneWith failed: %v", err)
	}
	if out.Clauses().Single(clause.KindOffset) != 20 {
		t.Error("mutator changes missing from result")
	}
	if !base.Clauses().Empty() {
		t.Error("CloneWith mutated the source relation")
	}
}

func TestUnscoped(t *testing.T) {
	r := New(scopedEntity()).WhereEq("assignee", "kim")
	u := r.Unscoped()

	if u.DefaultScoped() {
		t.Error("Unscoped relation still marked default-scoped")
	}
	conds := u.Clauses().Conditions(clause.KindWhere)
	if len(conds) != 1 || conds[0].Column != "assignee" {
		t.Errorf("Unscoped conditions = %v, want only the explicit assignee filter", conds)
	}

	// The original keeps its scope.
	if !r.DefaultScoped() {
		t.Error("Unscoped mutated its receiver")
	}
	if len(r.Clauses().Conditions(clause.KindWhere)) != 2 {
		t.Error("receiver lost conditions after Unscoped")
	}
}

func TestRecordsWithoutRunner(t *testing.T) {
	_, err := New(testEntity()).Records()
	if !errors.Is(err, ErrNoRunner) {
		t.Errorf("Records without runner = %v, want ErrNoRunner", err)
	}
}
