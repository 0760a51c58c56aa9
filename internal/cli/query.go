package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/relquery/relq/internal/clause"
	"github.com/relquery/relq/internal/exec"
	"github.com/relquery/relq/internal/relation"
	"github.com/relquery/relq/internal/schema"
	"github.com/relquery/relq/internal/ui"
)

var (
	queryFlags  relationFlags
	queryOnly   []string
	queryExcept []string
	querySQL    bool
)

var queryCmd = &cobra.Command{
	Use:   "query <entity>",
	Short: "Build and run a query against an entity",
	Long: `Build a relation over an entity from flags and execute it.

Filters compose left to right; --scope applies a named scope from the
schema, --unscoped drops the entity's default scope, and --only/--except
project the accumulated clause state down to a subset of clause kinds
before execution.

Examples:
  relq query ticket -w status=open -o priority --limit 10
  relq query ticket --scope urgent -w "assignee=kim"
  relq query ticket -w priority=1,2 --only where,order
  relq query ticket -w status=closed --unscoped --sql`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		s, err := loadSchema()
		if err != nil {
			return schemaError(err)
		}
		entity, err := s.Entity(args[0])
		if err != nil {
			var unknown *schema.UnknownEntityError
			if errors.As(err, &unknown) {
				return handleErrorMsg(ErrEntityNotFound,
					fmt.Sprintf("unknown entity %q", args[0]),
					"Run 'relq schema' to list entities")
			}
			return handleError(ErrInternal, err, "")
		}

		rel, err := buildQueryRelation(entity)
		if err != nil {
			return relationError(err)
		}

		if querySQL {
			return printSQL(rel)
		}

		engine, closeDB, err := openEngine()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer closeDB()

		rows, err := engine.Run(rel.Entity(), rel.Clauses())
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		return printRows(rel, rows, start)
	},
}

// buildQueryRelation spawns the relation and applies all query flags,
// projections last.
func buildQueryRelation(entity *schema.Entity) (*relation.Relation, error) {
	rel, err := queryFlags.apply(relation.New(entity))
	if err != nil {
		return nil, err
	}
	if len(queryOnly) > 0 {
		rel = rel.Only(clause.ParseKinds(queryOnly)...)
	}
	if len(queryExcept) > 0 {
		rel = rel.Except(clause.ParseKinds(queryExcept)...)
	}
	return rel, nil
}

func printSQL(rel *relation.Relation) error {
	sqlStr, sqlArgs, err := exec.BuildSQL(rel.Entity(), rel.Clauses())
	if err != nil {
		return handleError(ErrInternal, err, "")
	}
	if isJSONOutput() {
		outputSuccess(map[string]any{"sql": sqlStr, "args": sqlArgs}, nil)
		return nil
	}
	fmt.Println(sqlStr)
	if len(sqlArgs) > 0 {
		fmt.Println(ui.Hint(fmt.Sprintf("args: %v", sqlArgs)))
	}
	return nil
}

func printRows(rel *relation.Relation, rows []relation.Row, start time.Time) error {
	if isJSONOutput() {
		outputSuccess(rows, &Meta{
			Count:       len(rows),
			QueryTimeMs: time.Since(start).Milliseconds(),
		})
		return nil
	}

	columns := rel.Clauses().Strings(clause.KindSelect)
	if len(columns) == 0 {
		columns = rel.Entity().AttributeNames()
	}

	table := ui.NewTable(len(columns))
	table.SetHeader(columns...)
	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = ui.FormatValue(row[col])
		}
		table.AddRow(cells...)
	}
	fmt.Print(table.String())
	fmt.Println(ui.Count(len(rows), "row", "rows"))
	return nil
}

func init() {
	queryFlags.register(queryCmd.Flags())
	queryCmd.Flags().StringSliceVar(&queryOnly, "only", nil, "Keep only these clause kinds (unknown names ignored)")
	queryCmd.Flags().StringSliceVar(&queryExcept, "except", nil, "Drop these clause kinds (unknown names ignored)")
	queryCmd.Flags().BoolVar(&querySQL, "sql", false, "Print the assembled SQL instead of executing")
	rootCmd.AddCommand(queryCmd)
}
