package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/f5/otel-weaver-sub000/pkg/fetcher"
	"github.com/f5/otel-weaver-sub000/pkg/resolver"
)

// NewSearchCommand builds the `weaver search` command. It resolves the
// schema and would then launch an interactive TUI search index over the
// catalog; the TUI itself is an external collaborator (spec Non-goals).
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Resolve a schema and open an interactive search index over it",
		RunE: func(cmd *cobra.Command, args []string) error {
			schemaPath, _ := cmd.Flags().GetString("schema")
			if schemaPath == "" {
				return fmt.Errorf("--schema is required")
			}

			cacheRoot, err := fetcher.DefaultCacheRoot()
			if err != nil {
				return err
			}
			f, err := fetcher.New(cacheRoot)
			if err != nil {
				return err
			}
			if _, err := resolver.ResolveSchemaFile(f, schemaPath, ""); err != nil {
				return err
			}
			return ErrNotImplemented
		},
	}
	cmd.Flags().StringP("schema", "s", "", "Path to the telemetry schema file to resolve (required)")
	return cmd
}
