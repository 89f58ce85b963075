package cmd

import (
	"path/filepath"
	"testing"

	"github.com/pyhub-apps/gaejeong-cli/internal/config"
	"github.com/pyhub-apps/gaejeong-cli/internal/i18n"
	"github.com/pyhub-apps/gaejeong-cli/internal/testutil"
)

func setupTestConfig(t *testing.T) {
	t.Helper()
	tempDir, cleanup := testutil.CreateTempDir(t, "gaejeong-cmd-config")
	t.Cleanup(cleanup)
	t.Cleanup(config.ResetConfig)

	config.SetTestConfigPath(tempDir)
	if err := config.Initialize(); err != nil {
		t.Fatalf("config.Initialize() error = %v", err)
	}
}

func TestIsValidConfigKey(t *testing.T) {
	cases := map[string]bool{
		"law.key":      true,
		"law.key.nlic": true,
		"elis.key":     false,
		"unknown":      false,
	}
	for key, want := range cases {
		if got := isValidConfigKey(key); got != want {
			t.Errorf("isValidConfigKey(%q) = %v, want %v", key, got, want)
		}
	}
}

func TestConfigSetAndGetLawKey(t *testing.T) {
	setupTestConfig(t)
	if err := i18n.Init(); err != nil {
		t.Fatalf("i18n.Init() error = %v", err)
	}
	initConfigCmd()

	out, err := testutil.ExecuteCommand(t, configSetCmd, []string{"law.key", "test-api-key-12345"})
	if err != nil {
		t.Fatalf("config set error = %v", err)
	}
	testutil.AssertContains(t, out, "저장")

	if !config.IsAPIKeySet() {
		t.Fatal("expected API key to be set after config set")
	}

	out, err = testutil.ExecuteCommand(t, configGetCmd, []string{"law.key"})
	if err != nil {
		t.Fatalf("config get error = %v", err)
	}
	testutil.AssertContains(t, out, "law.key")
}

func TestConfigSetRejectsInvalidKey(t *testing.T) {
	setupTestConfig(t)
	if err := i18n.Init(); err != nil {
		t.Fatalf("i18n.Init() error = %v", err)
	}
	initConfigCmd()

	_, err := testutil.ExecuteCommand(t, configSetCmd, []string{"elis.key", "value"})
	testutil.AssertError(t, err, true)
}

func TestConfigPathPrintsConfigFile(t *testing.T) {
	setupTestConfig(t)
	if err := i18n.Init(); err != nil {
		t.Fatalf("i18n.Init() error = %v", err)
	}
	initConfigCmd()

	out, err := testutil.ExecuteCommand(t, configPathCmd, []string{})
	if err != nil {
		t.Fatalf("config path error = %v", err)
	}
	testutil.AssertContains(t, out, filepath.Base(config.GetConfigPath()))
}
