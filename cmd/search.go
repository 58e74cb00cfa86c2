package cmd

import (
	"fmt"

	"github.com/iksnae/cursor-chat-viewer/internal"
	"github.com/spf13/cobra"
)

var searchDays int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search prompt text across all workspaces",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := internal.ResolveStoragePaths(storagePath)
		workspaces := internal.ListWorkspaces(paths.WorkspaceStorage, searchDays)

		results := internal.SearchPrompts(workspaces, args[0])
		if len(results) == 0 {
			fmt.Printf("No prompts matching %q.\n", args[0])
			return nil
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("Search results for %q", args[0])))
		for _, result := range results {
			where := result.Folder
			if where == "" {
				where = result.Workspace
			}
			text := result.Prompt.Text
			if len(text) > 200 {
				text = text[:200] + "..."
			}
			fmt.Printf("\n%s\n", workspaceStyle.Render(where))
			fmt.Printf("  %s: %s\n", result.Prompt.CommandTypeLabel(), text)
		}
		fmt.Printf("\nFound %d matching prompt(s).\n", len(results))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVar(&searchDays, "days", internal.DefaultListDays, "Search workspaces modified in the last N days")
}
