package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/iksnae/cursor-chat-viewer/internal"
	"github.com/iksnae/cursor-chat-viewer/internal/server"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	storagePath string
	port        int
	noOpen      bool
	version     string = "dev"
	commit      string = "unknown"
	date        string = "unknown"
)

// rootCmd starts the local server and opens the browser UI.
var rootCmd = &cobra.Command{
	Use:   "cursor-chat-viewer",
	Short: "Browse your Cursor IDE chat history in the browser",
	Long: `A local, read-only browser for Cursor IDE chat history.

Scans Cursor's workspace storage for conversations and prompts, groups them
by date, and serves a small web UI on localhost for reviewing and exporting
selected conversations as markdown. Nothing is ever written back to
Cursor's databases.

Quick Start:
  cursor-chat-viewer                 # Start the server and open the browser
  cursor-chat-viewer list            # Terminal summary of recent workspaces
  cursor-chat-viewer search "query"  # Search prompts from the terminal
  cursor-chat-viewer export -o f.md  # Export chat history to a file

For detailed usage, see: https://github.com/iksnae/cursor-chat-viewer`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := internal.ResolveStoragePaths(storagePath)
		resolvedPort := server.ResolvePort(port)
		srv := server.New(paths)

		if !noOpen {
			go func() {
				time.Sleep(500 * time.Millisecond)
				url := fmt.Sprintf("http://localhost:%d", resolvedPort)
				if err := openBrowser(url); err != nil {
					internal.LogWarn("Could not open browser: %v (visit %s yourself)", err, url)
				}
			}()
		}

		return srv.ListenAndServe(resolvedPort)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storagePath, "storage", "", "Custom storage location (path to the Cursor User directory)")
	rootCmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (defaults to $PORT or 3456)")
	rootCmd.Flags().BoolVar(&noOpen, "no-open", false, "Do not open the browser after starting")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
