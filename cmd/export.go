package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/cursor-chat-viewer/internal"
	"github.com/iksnae/cursor-chat-viewer/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
	exportDays   int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export chat history to a file",
	Long: `Export recent workspaces, their prompts and full conversations to a
single file in markdown, JSON or YAML format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := internal.ResolveStoragePaths(storagePath)

		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		workspaces := internal.ListWorkspaces(paths.WorkspaceStorage, exportDays)
		if len(workspaces) == 0 {
			return fmt.Errorf("no workspaces with chat history found")
		}

		archive := export.BuildArchive(workspaces, paths.GlobalStorageDBPath())

		output := exportOutput
		if output == "" {
			output = "cursor-chat-history." + exporter.Extension()
		}

		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()

		if err := exporter.Export(archive, f); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		fmt.Printf("Exported %d workspace(s) to %s\n", len(archive.Workspaces), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "md", "Export format: md, json, yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (defaults to cursor-chat-history.<ext>)")
	exportCmd.Flags().IntVar(&exportDays, "days", internal.DefaultListDays, "Export workspaces modified in the last N days")
}
