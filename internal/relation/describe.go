package relation

import (
	"fmt"
	"strings"

	"github.com/relquery/relq/internal/clause"
)

// Describe renders the relation's clause state as one line per set
// kind, in vocabulary order. Used by the CLI's merge command and by
// test failure output.
func (r *Relation) Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "entity: %s (table %s)\n", r.entity.Name, r.entity.Table)
	for _, k := range clause.MultiKinds() {
		entries := r.clauses.Multi(k)
		if len(entries) == 0 {
			continue
		}
		parts := make([]string, len(entries))
		for i, e := range entries {
			parts[i] = describeEntry(e)
		}
		fmt.Fprintf(&sb, "%s: %s\n", k, strings.Join(parts, ", "))
	}
	for _, k := range clause.SingleKinds() {
		if r.clauses.HasSingle(k) {
			fmt.Fprintf(&sb, "%s: %v\n", k, r.clauses.Single(k))
		}
	}
	if r.defaultScoped {
		sb.WriteString("default scope: applied\n")
	}
	return sb.String()
}

func describeEntry(e any) string {
	switch v := e.(type) {
	case clause.Condition:
		if v.Op == clause.OpRaw {
			return fmt.Sprintf("(%s)", v.SQL)
		}
		if v.Op == clause.OpIn || v.Op == clause.OpNotIn {
			return fmt.Sprintf("%s %s %v", v.Column, v.Op, v.Values)
		}
		return fmt.Sprintf("%s %s %v", v.Column, v.Op, v.Value)
	case clause.Ordering:
		if v.Descending {
			return v.Column + " desc"
		}
		return v.Column
	case clause.Join:
		if v.SQL != "" {
			return v.SQL
		}
		return fmt.Sprintf("%s ON %s", v.Table, v.On)
	case Extension:
		return v.Name()
	default:
		return fmt.Sprintf("%v", v)
	}
}
