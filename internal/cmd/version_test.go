package cmd

import (
	"testing"

	"github.com/pyhub-apps/gaejeong-cli/internal/i18n"
	"github.com/pyhub-apps/gaejeong-cli/internal/testutil"
)

func TestVersionCommandPrintsVersion(t *testing.T) {
	if err := i18n.Init(); err != nil {
		t.Fatalf("i18n.Init() error = %v", err)
	}
	initVersionCmd()

	Version, GitCommit, BuildDate = "1.0.0", "deadbeef", "2026-07-31"
	out, err := testutil.ExecuteCommand(t, versionCmd, []string{})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	testutil.AssertContains(t, out, "1.0.0")
	testutil.AssertContains(t, out, "deadbeef")
}

func TestUpdateVersionCommandRefreshesShort(t *testing.T) {
	if err := i18n.Init(); err != nil {
		t.Fatalf("i18n.Init() error = %v", err)
	}
	initVersionCmd()
	i18n.SetLanguage("en")
	updateVersionCommand()
	testutil.AssertEqual(t, versionCmd.Short, i18n.T("version.short"))
}
