// ABOUTME: Tests for ask command structure and flag validation
// ABOUTME: Verifies retrieval-path flags are explicit and mutually exclusive

package commands

import (
	"bytes"
	"testing"
)

func TestNewAskCmd(t *testing.T) {
	cmd := NewAskCmd()

	if cmd.Use != "ask <question>" {
		t.Errorf("Use = %q, want %q", cmd.Use, "ask <question>")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if cmd.Long == "" {
		t.Error("Long description should not be empty")
	}
}

func TestAskCmd_Flags(t *testing.T) {
	cmd := NewAskCmd()

	for _, name := range []string{"corpus", "pdf", "top-k"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("--%s flag not found", name)
		}
	}
}

func TestAskCmd_RequiresExactlyOneSource(t *testing.T) {
	// Neither --corpus nor --pdf
	askCorpus, askPDF = "", ""
	cmd := NewAskCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"question"})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() without source = nil error, want error")
	}

	// Both --corpus and --pdf
	cmd = NewAskCmd()
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"question", "--corpus", "tng", "--pdf", "doc.pdf"})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() with both sources = nil error, want error")
	}
}

func TestAskCmd_RequiresQuestion(t *testing.T) {
	cmd := NewAskCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() without question = nil error, want error")
	}
}
