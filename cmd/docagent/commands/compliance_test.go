// ABOUTME: Tests for compliance command structure and flags
// ABOUTME: Verifies contract file requirement and policy list flag

package commands

import (
	"testing"
)

func TestNewComplianceCmd(t *testing.T) {
	cmd := NewComplianceCmd()

	if cmd.Use != "compliance <question>" {
		t.Errorf("Use = %q, want %q", cmd.Use, "compliance <question>")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if cmd.Long == "" {
		t.Error("Long description should not be empty")
	}
}

func TestComplianceCmd_Flags(t *testing.T) {
	cmd := NewComplianceCmd()

	if cmd.Flags().Lookup("file") == nil {
		t.Error("--file flag not found")
	}
	if cmd.Flags().Lookup("with-policy") == nil {
		t.Error("--with-policy flag not found")
	}
	if cmd.Flags().Lookup("model") == nil {
		t.Error("--model flag not found")
	}
}

func TestComplianceCmd_FileRequired(t *testing.T) {
	cmd := NewComplianceCmd()
	cmd.SetArgs([]string{"Are the payment terms compliant?"})

	if err := cmd.Execute(); err == nil {
		t.Error("compliance without --file should fail")
	}
}

func TestComplianceCmd_ArgsValidation(t *testing.T) {
	cmd := NewComplianceCmd()

	if cmd.Args == nil {
		t.Fatal("Args validator should be set")
	}

	if err := cmd.Args(cmd, []string{}); err == nil {
		t.Error("No arguments should be rejected")
	}
	if err := cmd.Args(cmd, []string{"question"}); err != nil {
		t.Errorf("One argument should be accepted: %v", err)
	}
}

func TestComplianceCmd_Description(t *testing.T) {
	cmd := NewComplianceCmd()

	// Should mention verdicts and the policy corpus
	if !findSubstring(cmd.Long, "COMPLIANT") {
		t.Error("Long description should mention compliance verdicts")
	}
	if !findSubstring(cmd.Long, "policy") {
		t.Error("Long description should mention the policy corpus")
	}
}
