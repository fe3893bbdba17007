package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/f5/otel-weaver-sub000/pkg/cli"
	"github.com/f5/otel-weaver-sub000/pkg/console"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "weaver",
	Short:   "Telemetry schema resolver and client SDK generator",
	Version: version,
	Long: `weaver resolves layered telemetry schema documents against semantic-
convention registries, producing a single self-contained resolved schema.

Common Tasks:
  weaver resolve --schema my-schema.yaml          # Resolve and print a schema
  weaver resolve --schema my-schema.yaml -o out.yaml
  weaver gen-client-sdk --schema s.yaml -l go -o . # Resolve (no generator built in)
  weaver languages                                 # List generator languages

For detailed help on any command, use:
  weaver [command] --help`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: "pipeline", Title: "Pipeline Commands:"})
	rootCmd.AddGroup(&cobra.Group{ID: "introspection", Title: "Introspection Commands:"})

	var verbose bool
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (enables all debug loggers)")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			_ = os.Setenv("DEBUG", "*")
		}
	}

	rootCmd.SetOut(os.Stderr)
	rootCmd.SetVersionTemplate(fmt.Sprintf("%s\n", console.FormatInfoMessage("weaver version {{.Version}}")))

	resolveCmd := cli.NewResolveCommand()
	genCmd := cli.NewGenClientSDKCommand()
	searchCmd := cli.NewSearchCommand()
	languagesCmd := cli.NewLanguagesCommand()

	resolveCmd.GroupID = "pipeline"
	genCmd.GroupID = "pipeline"
	searchCmd.GroupID = "pipeline"
	languagesCmd.GroupID = "introspection"

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(languagesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
		os.Exit(1)
	}
}
