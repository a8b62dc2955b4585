// ABOUTME: Tests for delete command structure and flags
// ABOUTME: Verifies --all flag and argument validation

package commands

import (
	"testing"
)

func TestNewDeleteCmd(t *testing.T) {
	cmd := NewDeleteCmd()

	if cmd.Use != "delete [document-id]" {
		t.Errorf("Use = %q, want %q", cmd.Use, "delete [document-id]")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if cmd.Long == "" {
		t.Error("Long description should not be empty")
	}
}

func TestDeleteCmd_AllFlag(t *testing.T) {
	cmd := NewDeleteCmd()

	allFlag := cmd.Flags().Lookup("all")
	if allFlag == nil {
		t.Fatal("--all flag not found")
	}
	if allFlag.DefValue != "false" {
		t.Errorf("--all default = %q, want %q", allFlag.DefValue, "false")
	}
}

func TestDeleteCmd_ArgsValidation(t *testing.T) {
	cmd := NewDeleteCmd()

	if cmd.Args == nil {
		t.Fatal("Args validator should be set")
	}

	if err := cmd.Args(cmd, []string{"doc_123"}); err != nil {
		t.Errorf("One argument should be accepted: %v", err)
	}
	if err := cmd.Args(cmd, []string{"doc_1", "doc_2"}); err == nil {
		t.Error("Two arguments should be rejected")
	}
}
