package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/relquery/relq/internal/config"
	"github.com/relquery/relq/internal/schema"
	"github.com/relquery/relq/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter relq.toml and schema.yaml",
	Long: `Write a starter schema.yaml in the working directory and, unless one
already exists, a relq.toml config pointing at a local sqlite file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := schema.CreateDefault("schema.yaml"); err != nil {
			return handleError(ErrFileExists, err, "")
		}

		if _, err := os.Stat("relq.toml"); os.IsNotExist(err) {
			cfg := &config.Config{
				Database: "relq.db",
				Schema:   "schema.yaml",
			}
			if err := cfg.Save("relq.toml"); err != nil {
				return handleError(ErrFileWriteError, err, "")
			}
		}

		if isJSONOutput() {
			outputSuccess(map[string]string{"schema": "schema.yaml", "config": "relq.toml"}, nil)
			return nil
		}
		fmt.Println(ui.Success("created schema.yaml"))
		fmt.Println(ui.Success("created relq.toml"))
		fmt.Println(ui.Hint("Edit schema.yaml, then try: relq query ticket --sql"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
