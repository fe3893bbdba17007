package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/f5/otel-weaver-sub000/pkg/fetcher"
	"github.com/f5/otel-weaver-sub000/pkg/resolver"
)

// NewGenClientSDKCommand builds the `weaver gen-client-sdk` command. It
// resolves the schema, then hands off to the code generator — which is
// out of scope for this module (spec Non-goals) — so it always returns
// ErrNotImplemented once resolution itself succeeds.
func NewGenClientSDKCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-client-sdk",
		Short: "Resolve a schema and generate a client SDK for a target language",
		Long: `Resolves the given schema and hands the result to a per-language code
generator. The generator itself is an external collaborator this module
does not implement; this command only exercises the resolution seam it
would consume.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			schemaPath, _ := cmd.Flags().GetString("schema")
			if schemaPath == "" {
				return fmt.Errorf("--schema is required")
			}
			language, _ := cmd.Flags().GetString("language")
			if language == "" {
				return fmt.Errorf("--language is required")
			}
			outputDir, _ := cmd.Flags().GetString("output")
			if outputDir == "" {
				return fmt.Errorf("--output is required")
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
	cmd.Flags().StringP("language", "l", "", "Target client SDK language (required)")
	cmd.Flags().StringP("output", "o", "", "Output directory for generated code (required)")
	return cmd
}
