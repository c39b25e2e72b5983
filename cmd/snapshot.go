package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/schemakit/gqlusage/pkg/action/snapshot"
	"github.com/schemakit/gqlusage/pkg/parser"
)

func init() {
	rootCmd.AddCommand(NewSnapshotCommand())
}

func NewSnapshotCommand() *cobra.Command {
	var (
		options      = parser.NewOptions()
		manifestPath string
		name         string
		version      string
	)

	var snapshotCmd = &cobra.Command{
		Use:   "snapshot",
		Short: "record a usage snapshot",
		Long:  "Run an analysis and record the resulting report in the snapshot manifest",
		Run: func(c *cobra.Command, args []string) {
			reportPath, err := snapshot.Generate(options, manifestPath, name, version)
			if err != nil {
				slog.With("error", err).Error("snapshot failed")
				os.Exit(1)
			}
			slog.With("report", reportPath, "version", version).Info("snapshot recorded")
		},
	}
	snapshotCmd.PersistentFlags().StringVarP(&options.InDir, "input-directory", "i", ".", "directory to scan for schema files")
	snapshotCmd.PersistentFlags().StringVarP(&options.OutDir, "output-directory", "o", "schema", "directory to write the report and registry")
	snapshotCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", "schema/manifest.yaml", "snapshot manifest path")
	snapshotCmd.PersistentFlags().StringVarP(&name, "name", "n", "schema", "snapshot name")
	snapshotCmd.PersistentFlags().StringVarP(&version, "snapshot-version", "V", "", "snapshot version")

	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "list recorded snapshots",
		Run: func(c *cobra.Command, args []string) {
			m, err := snapshot.List(manifestPath)
			if err != nil {
				slog.With("error", err).Error("list failed")
				os.Exit(1)
			}
			for _, s := range m.Snapshots {
				fmt.Printf("%s\t%s\t%s\t%d types\n", s.Name, s.Version, s.File, s.TypeCount)
			}
		},
	}

	var diffCmd = &cobra.Command{
		Use:   "diff",
		Short: "diff the current snapshot against the previous one",
		Run: func(c *cobra.Command, args []string) {
			d, err := snapshot.DiffCurrentWithPrevious(manifestPath)
			if err != nil {
				slog.With("error", err).Error("diff failed")
				os.Exit(1)
			}
			fmt.Print(d)
		},
	}

	snapshotCmd.AddCommand(listCmd, diffCmd)

	return snapshotCmd
}
