package exec

import (
	"fmt"
	"strings"

	"github.com/relquery/relq/internal/clause"
	"github.com/relquery/relq/internal/schema"
	"github.com/relquery/relq/internal/sqlutil"
)

// BuildSQL assembles a SELECT statement from an entity and its
// accumulated clause state. Multi-valued kinds emit in entry order;
// includes entries are carried on the relation for callers and emit
// nothing here.
func BuildSQL(entity *schema.Entity, cs *clause.Set) (string, []any, error) {
	var sb strings.Builder
	var args []any

	sb.WriteString("SELECT ")
	if distinct, _ := cs.Single(clause.KindDistinct).(bool); distinct {
		sb.WriteString("DISTINCT ")
	}
	columns := cs.Strings(clause.KindSelect)
	if len(columns) == 0 {
		columns = entity.AttributeNames()
	}
	sb.WriteString(strings.Join(columns, ", "))

	table := entity.Table
	if from, ok := cs.Single(clause.KindFrom).(string); ok && from != "" {
		table = from
	}
	sb.WriteString(" FROM ")
	sb.WriteString(table)

	for _, j := range cs.Joins() {
		if j.SQL != "" {
			sb.WriteString(" ")
			sb.WriteString(j.SQL)
			continue
		}
		fmt.Fprintf(&sb, " JOIN %s ON %s", j.Table, j.On)
	}

	if err := writeConditions(&sb, &args, " WHERE ", cs.Conditions(clause.KindWhere)); err != nil {
		return "", nil, err
	}

	if groups := cs.Strings(clause.KindGroup); len(groups) > 0 {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(strings.Join(groups, ", "))
	}

	if err := writeConditions(&sb, &args, " HAVING ", cs.Conditions(clause.KindHaving)); err != nil {
		return "", nil, err
	}

	if orders := cs.Orderings(); len(orders) > 0 {
		parts := make([]string, len(orders))
		for i, o := range orders {
			parts[i] = o.Column
			if o.Descending {
				parts[i] += " DESC"
			}
		}
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(parts, ", "))
	}

	if limit, ok := cs.Single(clause.KindLimit).(int); ok {
		sb.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	if offset, ok := cs.Single(clause.KindOffset).(int); ok {
		sb.WriteString(" OFFSET ?")
		args = append(args, offset)
	}
	if locked, _ := cs.Single(clause.KindLock).(bool); locked {
		sb.WriteString(" FOR UPDATE")
	}

	return sb.String(), args, nil
}

func writeConditions(sb *strings.Builder, args *[]any, keyword string, conds []clause.Condition) error {
	if len(conds) == 0 {
		return nil
	}
	parts := make([]string, len(conds))
	for i, c := range conds {
		frag, condArgs, err := conditionSQL(c)
		if err != nil {
			return err
		}
		parts[i] = frag
		*args = append(*args, condArgs...)
	}
	sb.WriteString(keyword)
	sb.WriteString(strings.Join(parts, " AND "))
	return nil
}

func conditionSQL(c clause.Condition) (string, []any, error) {
	switch c.Op {
	case clause.OpRaw:
		return "(" + c.SQL + ")", c.Args, nil
	case clause.OpIn, clause.OpNotIn:
		placeholders, args := sqlutil.InClauseArgs(c.Values)
		op := "IN"
		if c.Op == clause.OpNotIn {
			op = "NOT IN"
		}
		return fmt.Sprintf("%s %s (%s)", c.Column, op, placeholders), args, nil
	case clause.OpEq, clause.OpNotEq, clause.OpLt, clause.OpGt, clause.OpLte, clause.OpGte:
		return fmt.Sprintf("%s %s ?", c.Column, c.Op), []any{c.Value}, nil
	default:
		return "", nil, fmt.Errorf("unsupported condition operator: %v", c.Op)
	}
}
