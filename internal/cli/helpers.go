package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/relquery/relq/internal/clause"
	"github.com/relquery/relq/internal/exec"
	"github.com/relquery/relq/internal/relation"
	"github.com/relquery/relq/internal/schema"
)

// loadSchema loads the configured schema file.
func loadSchema() (*schema.Schema, error) {
	return schema.Load(getConfig().Schema)
}

// schemaError maps a schema load failure to its error code: a missing
// file is distinct from one that fails to parse or validate.
func schemaError(err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return handleError(ErrSchemaNotFound, err, "Run 'relq init' to create a starter schema")
	}
	return handleError(ErrSchemaInvalid, err, "")
}

// relationError maps a relation-building failure (flag parsing, scope
// application) to its error code.
func relationError(err error) error {
	var unknownScope *relation.UnknownScopeError
	if errors.As(err, &unknownScope) {
		return handleError(ErrScopeNotFound, err, "Run 'relq schema' to list scopes")
	}
	return handleError(ErrInvalidInput, err, "")
}

// openEngine opens the configured database and wraps it in an engine.
// Caller is responsible for calling the returned close func.
func openEngine() (*exec.Engine, func(), error) {
	dsn := getConfig().Database
	if dsn == "" {
		return nil, nil, fmt.Errorf("no database configured (set database in relq.toml, RELQ_DATABASE_URL, or --db)")
	}
	db, dialect, err := exec.Open(dsn)
	if err != nil {
		return nil, nil, err
	}
	engine := exec.New(db, exec.WithDialect(dialect), exec.WithLogger(logger))
	return engine, func() { _ = db.Close() }, nil
}

// relationFlags are the clause-building flags shared by the query and
// merge commands.
type relationFlags struct {
	wheres   []string
	nots     []string
	orders   []string
	selects  []string
	groups   []string
	scopes   []string
	limit    int
	offset   int
	distinct bool
	unscoped bool
}

func (f *relationFlags) register(set *pflag.FlagSet) {
	set.StringArrayVarP(&f.wheres, "where", "w", nil, "Filter: col=v, col!=v, col>v, col=v1,v2 (IN)")
	set.StringArrayVar(&f.nots, "not", nil, "Negated filter: col=value")
	set.StringArrayVarP(&f.orders, "order", "o", nil, "Ordering: col or col:desc")
	set.StringArrayVar(&f.selects, "select", nil, "Columns to select")
	set.StringArrayVar(&f.groups, "group", nil, "Columns to group by")
	set.StringArrayVar(&f.scopes, "scope", nil, "Named scope from the schema")
	set.IntVar(&f.limit, "limit", 0, "Row limit")
	set.IntVar(&f.offset, "offset", 0, "Row offset")
	set.BoolVar(&f.distinct, "distinct", false, "Select distinct rows")
	set.BoolVar(&f.unscoped, "unscoped", false, "Drop the entity's default scope")
}

// apply builds up a relation from the flag values.
func (f *relationFlags) apply(r *relation.Relation) (*relation.Relation, error) {
	if f.unscoped {
		r = r.Unscoped()
	}
	for _, name := range f.scopes {
		scoped, err := r.Scope(name)
		if err != nil {
			return nil, err
		}
		r = scoped
	}
	for _, spec := range f.wheres {
		cond, err := parseCondition(spec)
		if err != nil {
			return nil, err
		}
		r = r.Where(cond)
	}
	for _, spec := range f.nots {
		cond, err := parseCondition(spec)
		if err != nil {
			return nil, err
		}
		if cond.Op != clause.OpEq || cond.Column == "" {
			return nil, fmt.Errorf("invalid --not filter %q (want col=value)", spec)
		}
		r = r.Not(cond.Column, cond.Value)
	}
	for _, spec := range f.orders {
		column, dir, _ := strings.Cut(spec, ":")
		switch dir {
		case "desc":
			r = r.OrderDesc(column)
		case "", "asc":
			r = r.Order(column)
		default:
			return nil, fmt.Errorf("invalid order direction %q (want asc or desc)", dir)
		}
	}
	if len(f.selects) > 0 {
		r = r.Select(f.selects...)
	}
	if len(f.groups) > 0 {
		r = r.Group(f.groups...)
	}
	if f.limit > 0 {
		r = r.Limit(f.limit)
	}
	if f.offset > 0 {
		r = r.Offset(f.offset)
	}
	if f.distinct {
		r = r.Distinct()
	}
	return r, nil
}

// condOps maps flag operators to condition operators, longest first so
// that "!=" is tried before "=".
var condOps = []struct {
	token string
	op    clause.CondOp
}{
	{"!=", clause.OpNotEq},
	{">=", clause.OpGte},
	{"<=", clause.OpLte},
	{"=", clause.OpEq},
	{">", clause.OpGt},
	{"<", clause.OpLt},
}

// parseCondition parses one --where spec. A comma-separated value on an
// equality comparison becomes an IN condition.
func parseCondition(spec string) (clause.Condition, error) {
	for _, c := range condOps {
		idx := strings.Index(spec, c.token)
		if idx <= 0 {
			continue
		}
		column := strings.TrimSpace(spec[:idx])
		raw := strings.TrimSpace(spec[idx+len(c.token):])
		if raw == "" {
			return clause.Condition{}, fmt.Errorf("missing value in filter %q", spec)
		}
		if c.op == clause.OpEq && strings.Contains(raw, ",") {
			parts := strings.Split(raw, ",")
			values := make([]any, len(parts))
			for i, p := range parts {
				values[i] = parseValue(strings.TrimSpace(p))
			}
			return clause.In(column, values...), nil
		}
		return clause.Compare(column, c.op, parseValue(raw)), nil
	}
	return clause.Condition{}, fmt.Errorf("invalid filter %q (want col=value)", spec)
}

// parseValue coerces a flag value: integers and floats become numbers,
// true/false become bools, everything else stays a string.
func parseValue(raw string) any {
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if fv, err := strconv.ParseFloat(raw, 64); err == nil {
		return fv
	}
	if raw == "true" {
		return true
	}
	if raw == "false" {
		return false
	}
	return raw
}
