package cli

import (
	"reflect"
	"testing"

	"github.com/relquery/relq/internal/clause"
	"github.com/relquery/relq/internal/relation"
	"github.com/relquery/relq/internal/testutil"
)

func TestParseCondition(t *testing.T) {
	cases := []struct {
		spec string
		want clause.Condition
	}{
		{"status=open", clause.Eq("status", "open")},
		{"status!=closed", clause.NotEq("status", "closed")},
		{"priority>2", clause.Compare("priority", clause.OpGt, 2)},
		{"priority>=2", clause.Compare("priority", clause.OpGte, 2)},
		{"priority<3", clause.Compare("priority", clause.OpLt, 3)},
		{"priority<=3", clause.Compare("priority", clause.OpLte, 3)},
		{"status=open,triaged", clause.In("status", "open", "triaged")},
		{"priority=1,2", clause.In("priority", 1, 2)},
		{" status = open ", clause.Eq("status", "open")},
	}
	for _, tc := range cases {
		got, err := parseCondition(tc.spec)
		if err != nil {
			t.Errorf("parseCondition(%q) failed: %v", tc.spec, err)
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("parseCondition(%q) = %#v, want %#v", tc.spec, got, tc.want)
		}
	}
}

func TestParseConditionErrors(t *testing.T) {
	for _, spec := range []string{"", "status", "=open", "status="} {
		if _, err := parseCondition(spec); err == nil {
			t.Errorf("parseCondition(%q) did not fail", spec)
		}
	}
}

func TestParseValue(t *testing.T) {
	cases := []struct {
		raw  string
		want any
	}{
		{"3", 3},
		{"-2", -2},
		{"1.5", 1.5},
		{"true", true},
		{"false", false},
		{"open", "open"},
		{"3x", "3x"},
	}
	for _, tc := range cases {
		if got := parseValue(tc.raw); got != tc.want {
			t.Errorf("parseValue(%q) = %v (%T), want %v (%T)", tc.raw, got, got, tc.want, tc.want)
		}
	}
}

func TestRelationFlagsApply(t *testing.T) {
	f := relationFlags{
		wheres:   []string{"status=open", "priority>=2"},
		orders:   []string{"priority:desc", "id"},
		selects:  []string{"id", "status"},
		limit:    5,
		distinct: true,
		unscoped: true,
	}
	r, err := f.apply(relation.New(testutil.TicketEntity(t)))
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	cs := r.Clauses()
	conds := cs.Conditions(clause.KindWhere)
	if len(conds) != 2 {
		t.Fatalf("conditions = %v, want the two flag filters (default scope dropped)", conds)
	}
	orders := cs.Orderings()
	if len(orders) != 2 || !orders[0].Descending || orders[1].Descending {
		t.Errorf("orderings = %v, want priority desc then id asc", orders)
	}
	if got := cs.Strings(clause.KindSelect); len(got) != 2 {
		t.Errorf("select columns = %v", got)
	}
	if cs.Single(clause.KindLimit) != 5 {
		t.Errorf("limit = %v, want 5", cs.Single(clause.KindLimit))
	}
	if !cs.HasSingle(clause.KindDistinct) {
		t.Error("distinct flag not applied")
	}
	if r.DefaultScoped() {
		t.Error("unscoped flag left the default scope in place")
	}
}

func TestRelationFlagsApplyScope(t *testing.T) {
	f := relationFlags{scopes: []string{"urgent"}}
	r, err := f.apply(relation.New(testutil.TicketEntity(t)).Unscoped())
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	conds := r.Clauses().Conditions(clause.KindWhere)
	if len(conds) != 1 || conds[0].Column != "priority" {
		t.Errorf("conditions = %v, want the urgent scope filter", conds)
	}
	if _, ok := r.ExtensionFor("urgent"); !ok {
		t.Error("scope not recorded as an extension")
	}
}

func TestRelationFlagsApplyNot(t *testing.T) {
	f := relationFlags{nots: []string{"assignee=kim"}}
	r, err := f.apply(relation.New(testutil.TicketEntity(t)).Unscoped())
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	conds := r.Clauses().Conditions(clause.KindWhere)
	if len(conds) != 1 || conds[0].Op != clause.OpNotEq || conds[0].Value != "kim" {
		t.Errorf("conditions = %v, want assignee != kim", conds)
	}

	bad := relationFlags{nots: []string{"priority>2"}}
	if _, err := bad.apply(relation.New(testutil.TicketEntity(t))); err == nil {
		t.Error("non-equality --not filter did not fail")
	}
}

func TestRelationFlagsApplyBadOrder(t *testing.T) {
	f := relationFlags{orders: []string{"priority:sideways"}}
	if _, err := f.apply(relation.New(testutil.TicketEntity(t))); err == nil {
		t.Error("invalid order direction did not fail")
	}
}

func TestRelationFlagsApplyUnknownScope(t *testing.T) {
	f := relationFlags{scopes: []string{"archived"}}
	if _, err := f.apply(relation.New(testutil.TicketEntity(t))); err == nil {
		t.Error("unknown scope did not fail")
	}
}
