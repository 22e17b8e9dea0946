// ABOUTME: Tests for root CLI command and global flags
// ABOUTME: Verifies command structure, subcommands, and flag handling

package commands

import (
	"testing"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	if cmd.Use != "rag" {
		t.Errorf("Use = %q, want %q", cmd.Use, "rag")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if cmd.Long == "" {
		t.Error("Long description should not be empty")
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()

	expected := []string{"ingest", "ask", "chat", "corpora", "version"}
	for _, name := range expected {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	cmd := NewRootCmd()

	formatFlag := cmd.PersistentFlags().Lookup("format")
	if formatFlag == nil {
		t.Fatal("--format flag not found")
	}
	if formatFlag.DefValue != "text" {
		t.Errorf("--format default = %q, want %q", formatFlag.DefValue, "text")
	}

	quietFlag := cmd.PersistentFlags().Lookup("quiet")
	if quietFlag == nil {
		t.Fatal("--quiet flag not found")
	}
	if quietFlag.DefValue != "false" {
		t.Errorf("--quiet default = %q, want %q", quietFlag.DefValue, "false")
	}
}
