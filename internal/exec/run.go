package exec

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/relquery/relq/internal/clause"
	"github.com/relquery/relq/internal/relation"
	"github.com/relquery/relq/internal/schema"
	"github.com/relquery/relq/internal/sqlutil"
)

// Run assembles and executes the clause set, returning rows in store
// order. It satisfies relation.Runner.
func (e *Engine) Run(entity *schema.Entity, cs *clause.Set) ([]relation.Row, error) {
	sqlStr, args, err := BuildSQL(entity, cs)
	if err != nil {
		return nil, err
	}
	sqlStr = e.rebind(sqlStr)

	queryID := uuid.NewString()
	start := time.Now()
	e.log.Debug().
		Str("query_id", queryID).
		Str("sql", sqlStr).
		Int("args", len(args)).
		Msg("executing query")

	rows, err := e.db.Query(sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w (SQL: %s)", err, sqlStr)
	}

	columns, err := rows.Columns()
	if err != nil {
		rows.Close()
		return nil, err
	}

	out, err := sqlutil.ScanRows(rows, func(rows *sql.Rows) (relation.Row, error) {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(relation.Row, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		return row, nil
	})
	if err != nil {
		return nil, err
	}

	e.log.Debug().
		Str("query_id", queryID).
		Int("rows", len(out)).
		Dur("elapsed", time.Since(start)).
		Msg("query complete")
	return out, nil
}
