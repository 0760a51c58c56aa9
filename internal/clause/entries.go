package clause

// CondOp is the comparison operator of a where or having condition.
type CondOp int

const (
	OpEq CondOp = iota
	OpNotEq
	OpIn
	OpNotIn
	OpLt
	OpGt
	OpLte
	OpGte
	OpRaw // raw SQL fragment with positional args
)

func (op CondOp) String() string {
	switch op {
	case OpNotEq:
		return "!="
	case OpIn:
		return "IN"
	case OpNotIn:
		return "NOT IN"
	case OpLt:
		return "<"
	case OpGt:
		return ">"
	case OpLte:
		return "<="
	case OpGte:
		return ">="
	case OpRaw:
		return "RAW"
	default:
		return "="
	}
}

// Condition is one where- or having-kind entry.
//
// Column-based conditions carry Column, Op, and either Value (scalar
// operators) or Values (IN / NOT IN). Raw conditions carry SQL and Args
// instead; they are emitted verbatim and never participate in the
// column-override merge rule.
type Condition struct {
	Column string
	Op     CondOp
	Value  any
	Values []any

	SQL  string
	Args []any
}

// Eq builds a column = value condition.
func Eq(column string, value any) Condition {
	return Condition{Column: column, Op: OpEq, Value: value}
}

// NotEq builds a column != value condition.
func NotEq(column string, value any) Condition {
	return Condition{Column: column, Op: OpNotEq, Value: value}
}

// In builds a column IN (values...) condition.
func In(column string, values ...any) Condition {
	return Condition{Column: column, Op: OpIn, Values: values}
}

// Compare builds a condition with an explicit comparison operator.
func Compare(column string, op CondOp, value any) Condition {
	return Condition{Column: column, Op: op, Value: value}
}

// Raw builds a verbatim SQL condition with positional args.
func Raw(sql string, args ...any) Condition {
	return Condition{Op: OpRaw, SQL: sql, Args: args}
}

// Overridable reports whether the condition pins a single column such
// that a later merge may replace it. Raw fragments and range operators
// never override or get overridden.
func (c Condition) Overridable() bool {
	if c.Column == "" {
		return false
	}
	switch c.Op {
	case OpEq, OpNotEq, OpIn, OpNotIn:
		return true
	default:
		return false
	}
}

// Ordering is one order-kind entry.
type Ordering struct {
	Column     string
	Descending bool
}

// Join is one joins-kind entry: either a raw SQL fragment or a
// table + ON condition pair assembled by the engine.
type Join struct {
	Table string
	On    string
	SQL   string
}
