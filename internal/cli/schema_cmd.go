package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/relquery/relq/internal/relation"
	"github.com/relquery/relq/internal/ui"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "List entities, attributes, and scopes",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSchema()
		if err != nil {
			return schemaError(err)
		}

		names := s.Names()
		sort.Strings(names)

		if isJSONOutput() {
			outputSuccess(s.Entities, &Meta{Count: len(names)})
			return nil
		}

		for _, name := range names {
			entity := s.Entities[name]
			fmt.Printf("%s %s\n", ui.EntityName(name), ui.Hint("table "+entity.Table))

			table := ui.NewTable(2)
			table.AddRow(entity.PrimaryKey, "primary key")
			for _, attr := range entity.Attributes {
				attrType := string(attr.Type)
				if attrType == "" {
					attrType = "string"
				}
				table.AddRow(attr.Name, attrType)
			}
			for _, line := range strings.Split(strings.TrimRight(table.String(), "\n"), "\n") {
				fmt.Println("  " + line)
			}

			if len(entity.Default) > 0 {
				fmt.Println("  " + ui.Hint("default scope applied at spawn"))
			}
			if scopes := relation.ScopeNames(entity); len(scopes) > 0 {
				fmt.Println("  " + ui.Hint("scopes: "+strings.Join(scopes, ", ")))
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
