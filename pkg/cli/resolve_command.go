package cli

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/f5/otel-weaver-sub000/pkg/console"
	"github.com/f5/otel-weaver-sub000/pkg/fetcher"
	"github.com/f5/otel-weaver-sub000/pkg/logger"
	"github.com/f5/otel-weaver-sub000/pkg/resolver"
)

var resolveLog = logger.New("cli:resolve")

// NewResolveCommand builds the `weaver resolve` command: load, resolve,
// and dump a telemetry schema. Output is YAML unless --output names a
// ".json" file, in which case the already-built tree is remarshaled.
func NewResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a telemetry schema and print the resolved form",
		Long: `Resolve loads a telemetry schema file, follows its parent_schema_url
chain, imports and merges its semantic-convention registries, applies the
version engine's rename tables, and resolves every signal's attributes and
metrics into a single self-contained document.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			schemaPath, _ := cmd.Flags().GetString("schema")
			if schemaPath == "" {
				return fmt.Errorf("--schema is required")
			}
			outputPath, _ := cmd.Flags().GetString("output")
			pin, _ := cmd.Flags().GetString("version")

			cacheRoot, err := fetcher.DefaultCacheRoot()
			if err != nil {
				return err
			}
			f, err := fetcher.New(cacheRoot)
			if err != nil {
				return err
			}

			resolveLog.Printf("resolving schema %s (pin=%q)", schemaPath, pin)
			resolved, err := resolver.ResolveSchemaFile(f, schemaPath, pin)
			if err != nil {
				return err
			}

			return writeResolved(resolved, outputPath)
		},
	}
	cmd.Flags().StringP("schema", "s", "", "Path to the telemetry schema file to resolve (required)")
	cmd.Flags().StringP("output", "o", "", "Write the resolved schema here instead of stdout (.json for JSON output, otherwise YAML)")
	cmd.Flags().String("version", "", "Resolve against a specific SemVer version instead of the latest")
	return cmd
}

func writeResolved(resolved interface{}, outputPath string) error {
	data, err := marshalResolved(resolved, outputPath)
	if err != nil {
		return err
	}
	if outputPath == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, console.FormatSuccessMessage(fmt.Sprintf("resolved schema written to %s", outputPath)))
	return nil
}

func marshalResolved(resolved interface{}, outputPath string) ([]byte, error) {
	if isJSONPath(outputPath) {
		return marshalJSON(resolved)
	}
	return yaml.Marshal(resolved)
}

func isJSONPath(path string) bool {
	return len(path) >= 5 && path[len(path)-5:] == ".json"
}
