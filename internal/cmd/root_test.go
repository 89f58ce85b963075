package cmd

import (
	"testing"

	"github.com/pyhub-apps/gaejeong-cli/internal/i18n"
	"github.com/pyhub-apps/gaejeong-cli/internal/testutil"
)

func setupTestCmdTree(t *testing.T) {
	t.Helper()
	if err := i18n.Init(); err != nil {
		t.Fatalf("i18n.Init() error = %v", err)
	}
	initRootCmd()
	setupFlags()
	initVersionCmd()
	initConfigCmd()
	initAmendCmd()
	initSearchCmd()
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(amendCmd)
	rootCmd.AddCommand(searchCmd)
}

func TestRootCommandNoArgsShowsHelp(t *testing.T) {
	setupTestCmdTree(t)

	out, err := testutil.ExecuteCommand(t, rootCmd, []string{})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	testutil.AssertContains(t, out, "gaejeong")
}

func TestRootCommandVersionFlag(t *testing.T) {
	setupTestCmdTree(t)

	out, err := testutil.ExecuteCommand(t, rootCmd, []string{"--version"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	testutil.AssertContains(t, out, "version")
}

func TestRootCommandUnknownSubcommand(t *testing.T) {
	setupTestCmdTree(t)

	_, err := testutil.ExecuteCommand(t, rootCmd, []string{"does-not-exist"})
	testutil.AssertError(t, err, true)
}

func TestSetVersionInfo(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	if Version != "1.2.3" || GitCommit != "abc123" || BuildDate != "2026-01-01" {
		t.Errorf("SetVersionInfo did not update package vars: %s %s %s", Version, GitCommit, BuildDate)
	}
}
