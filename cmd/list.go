package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/cursor-chat-viewer/internal"
	"github.com/spf13/cobra"
)

var (
	listDays  int
	listToday bool
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	workspaceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Italic(true)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List workspaces with recent chat activity",
	Long:  `List every workspace with recent prompts or conversations, most recently modified first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := internal.ResolveStoragePaths(storagePath)

		days := listDays
		if listToday {
			days = 1
		}

		workspaces := internal.ListWorkspaces(paths.WorkspaceStorage, days)
		if len(workspaces) == 0 {
			fmt.Println("No workspaces with chat history found.")
			return nil
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("Cursor chat history (last %d day(s))", days)))
		fmt.Println()

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for i, ws := range workspaces {
			name := ws.Folder
			if name == "" {
				name = ws.ID
			}
			if len(name) > 50 {
				name = "..." + name[len(name)-47:]
			}

			fmt.Fprintf(w, "[%d]\t%s\t%s\n", i+1, titleStyle.Render(name), idStyle.Render(ws.ID))
			fmt.Fprintf(w, "\t%s\t%s\n",
				dateStyle.Render("modified "+ws.Modified.Format("2006-01-02 15:04")),
				countStyle.Render(fmt.Sprintf("%d prompt(s), %d conversation(s)", ws.PromptCount, len(ws.Composers))))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVar(&listDays, "days", 7, "Show workspaces modified in the last N days")
	listCmd.Flags().BoolVar(&listToday, "today", false, "Show only today's activity")
}
