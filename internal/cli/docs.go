package cli

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	builtindocs "github.com/relquery/relq/docs"
	"github.com/relquery/relq/internal/ui"
)

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Read the bundled guide",
	Long: `Render a bundled documentation topic in the terminal, or list the
available topics when run without arguments.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topics, err := listDocTopics()
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		if len(args) == 0 {
			if isJSONOutput() {
				outputSuccess(topics, &Meta{Count: len(topics)})
				return nil
			}
			fmt.Println(ui.Header("Topics"))
			for _, topic := range topics {
				fmt.Println("  " + topic)
			}
			fmt.Println(ui.Hint("\nrelq docs <topic>"))
			return nil
		}

		topic := strings.TrimSuffix(args[0], ".md")
		content, err := fs.ReadFile(builtindocs.FS, path.Join("guide", topic+".md"))
		if err != nil {
			return handleErrorMsg(ErrInvalidInput,
				fmt.Sprintf("unknown topic %q", topic),
				"Run 'relq docs' to list topics")
		}

		display := ui.NewDisplayContext()
		if !display.IsTTY || isJSONOutput() {
			fmt.Print(string(content))
			return nil
		}
		rendered, err := ui.RenderMarkdown(string(content), display.TermWidth)
		if err != nil {
			return handleError(ErrInternal, err, "")
		}
		fmt.Print(rendered)
		return nil
	},
}

func listDocTopics() ([]string, error) {
	entries, err := fs.ReadDir(builtindocs.FS, "guide")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".md") {
			topics = append(topics, strings.TrimSuffix(entry.Name(), ".md"))
		}
	}
	sort.Strings(topics)
	return topics, nil
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
