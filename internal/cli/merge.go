package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relquery/relq/internal/relation"
	"github.com/relquery/relq/internal/ui"
)

var (
	mergeFlags     relationFlags
	mergeWithWhere []string
	mergeWithOrder []string
	mergeWithLimit int
	mergeAttrs     []string
)

var mergeCmd = &cobra.Command{
	Use:   "merge <entity>",
	Short: "Show how two clause sets merge",
	Long: `Build a base relation from the usual query flags and an incoming
relation from the --with-* flags, merge them, and print all three clause
sets. --attrs additionally hash-merges plain attribute=value pairs.

Merging concatenates list-valued clauses (base entries first), while an
incoming filter that pins a column replaces the base filter on that
column. Limit and the other slot-valued clauses take the incoming value
when set.

Examples:
  relq merge ticket -w status=open --with-where status=closed
  relq merge ticket -o created_at --with-order priority:desc --with-limit 5
  relq merge ticket --attrs assignee=kim --attrs priority=1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSchema()
		if err != nil {
			return schemaError(err)
		}
		entity, err := s.Entity(args[0])
		if err != nil {
			return handleErrorMsg(ErrEntityNotFound,
				fmt.Sprintf("unknown entity %q", args[0]),
				"Run 'relq schema' to list entities")
		}

		base, err := mergeFlags.apply(relation.New(entity))
		if err != nil {
			return relationError(err)
		}

		incomingFlags := relationFlags{
			wheres: mergeWithWhere,
			orders: mergeWithOrder,
			limit:  mergeWithLimit,
		}
		incoming, err := incomingFlags.apply(relation.New(entity))
		if err != nil {
			return relationError(err)
		}

		merged, err := base.MergeRelation(incoming)
		if err != nil {
			return mergeError(err)
		}

		for _, spec := range mergeAttrs {
			cond, err := parseCondition(spec)
			if err != nil {
				return handleError(ErrInvalidInput, err, "")
			}
			attrs := map[string]any{cond.Column: cond.Value}
			if len(cond.Values) > 0 {
				attrs[cond.Column] = cond.Values
			}
			merged, err = merged.MergeHash(attrs)
			if err != nil {
				return mergeError(err)
			}
		}

		if isJSONOutput() {
			outputSuccess(map[string]string{
				"base":     base.Describe(),
				"incoming": incoming.Describe(),
				"merged":   merged.Describe(),
			}, nil)
			return nil
		}

		fmt.Println(ui.Header("base"))
		fmt.Print(base.Describe())
		fmt.Println(ui.Header("incoming"))
		fmt.Print(incoming.Describe())
		fmt.Println(ui.Header("merged"))
		fmt.Print(merged.Describe())
		return nil
	},
}

func mergeError(err error) error {
	var unknownAttr *relation.UnknownAttributeError
	if errors.As(err, &unknownAttr) {
		return handleError(ErrUnknownAttribute, err, "Run 'relq schema' to list attributes")
	}
	var incompatible *relation.IncompatibleTargetError
	if errors.As(err, &incompatible) {
		return handleError(ErrIncompatibleMerge, err, "")
	}
	return handleError(ErrInternal, err, "")
}

func init() {
	mergeFlags.register(mergeCmd.Flags())
	mergeCmd.Flags().StringArrayVar(&mergeWithWhere, "with-where", nil, "Incoming filter (same syntax as --where)")
	mergeCmd.Flags().StringArrayVar(&mergeWithOrder, "with-order", nil, "Incoming ordering (same syntax as --order)")
	mergeCmd.Flags().IntVar(&mergeWithLimit, "with-limit", 0, "Incoming row limit")
	mergeCmd.Flags().StringArrayVar(&mergeAttrs, "attrs", nil, "Attribute pair to hash-merge: col=value")
	rootCmd.AddCommand(mergeCmd)
}
