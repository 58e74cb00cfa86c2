package cmd

import (
	"bytes"
	"testing"
)

func TestRootCommand_HelpAndVersion(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "help flag", args: []string{"--help"}},
		{name: "version flag", args: []string{"--version"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			var stdout, stderr bytes.Buffer
			rootCmd.SetOut(&stdout)
			rootCmd.SetErr(&stderr)

			if err := rootCmd.Execute(); err != nil {
				t.Errorf("rootCmd.Execute() error = %v", err)
			}
		})
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	want := map[string]bool{"list": false, "search": false, "export": false}
	for _, sub := range rootCmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCommand_Flags(t *testing.T) {
	if rootCmd.PersistentFlags().Lookup("storage") == nil {
		t.Error("missing persistent flag --storage")
	}
	if rootCmd.PersistentFlags().Lookup("verbose") == nil {
		t.Error("missing persistent flag --verbose")
	}
	if rootCmd.Flags().Lookup("port") == nil {
		t.Error("missing flag --port")
	}
	if rootCmd.Flags().Lookup("no-open") == nil {
		t.Error("missing flag --no-open")
	}
}
