package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/schemakit/gqlusage/pkg/action/analyze"
	"github.com/schemakit/gqlusage/pkg/parser"
)

func init() {
	var analyzeCmd = NewAnalyzeCommand()
	rootCmd.AddCommand(analyzeCmd)
}

func NewAnalyzeCommand() *cobra.Command {
	var options = parser.NewOptions()

	// analyzeCmd represents the gqlusage analyze command
	var analyzeCmd = &cobra.Command{
		Use:   "analyze",
		Short: "analyze schema modules",
		Long:  "Scan a directory of GraphQL schema files, group them into modules, and report every referenced type",
		Run: func(c *cobra.Command, args []string) {
			reportPath, err := analyze.Run(options)
			if err != nil {
				slog.With("error", err).Error("analysis failed")
				os.Exit(1)
			}
			slog.With("report", reportPath).Info("analysis complete")
		},
	}
	analyzeCmd.PersistentFlags().StringVarP(&options.InDir, "input-directory", "i", ".", "directory to scan for schema files")
	analyzeCmd.PersistentFlags().StringVarP(&options.OutDir, "output-directory", "o", "schema", "directory to write the report and registry")
	analyzeCmd.PersistentFlags().StringVarP(&options.OutFile, "output-file", "f", "usage_gen.go", "generated Go registry filename")
	analyzeCmd.PersistentFlags().StringVarP(&options.OutPackage, "package", "p", "", "package name for the generated registry (default: output directory name)")
	analyzeCmd.PersistentFlags().StringVarP(&options.ReportFile, "report-file", "r", "usage.yaml", "usage report filename")
	analyzeCmd.PersistentFlags().StringSliceVarP(&options.Extensions, "extensions", "e", []string{}, "schema file extensions to scan (default .graphql, .graphqls, .gql)")

	return analyzeCmd
}
