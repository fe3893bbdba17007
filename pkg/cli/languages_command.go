package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/f5/otel-weaver-sub000/pkg/console"
	"github.com/f5/otel-weaver-sub000/pkg/constants"
)

// NewLanguagesCommand builds the `weaver languages` command: it lists the
// subdirectories of a templates directory, one per supported target
// language, following the original's read-dir-and-filter-to-directories
// behavior.
func NewLanguagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List the supported client SDK generator languages",
		RunE: func(cmd *cobra.Command, args []string) error {
			templatesDir, _ := cmd.Flags().GetString("templates")
			entries, err := os.ReadDir(templatesDir)
			if err != nil {
				return fmt.Errorf("reading templates directory %q: %w", templatesDir, err)
			}
			fmt.Fprintln(os.Stdout, console.FormatInfoMessage("List of supported languages:"))
			for _, entry := range entries {
				if entry.IsDir() {
					fmt.Fprintf(os.Stdout, "  - %s\n", entry.Name())
				}
			}
			return nil
		},
	}
	cmd.Flags().String("templates", constants.DefaultTemplatesDir, "Template root directory")
	return cmd
}
