package cmd

import (
	"errors"
	"testing"

	"github.com/pyhub-apps/gaejeong-cli/internal/config"
	"github.com/pyhub-apps/gaejeong-cli/internal/corpus"
	cliErrors "github.com/pyhub-apps/gaejeong-cli/internal/errors"
	"github.com/pyhub-apps/gaejeong-cli/internal/i18n"
	"github.com/pyhub-apps/gaejeong-cli/internal/testutil"
)

func TestRunAmendRejectsEmptyArgs(t *testing.T) {
	if err := i18n.Init(); err != nil {
		t.Fatalf("i18n.Init() error = %v", err)
	}
	initAmendCmd()

	_, err := testutil.ExecuteCommand(t, amendCmd, []string{"  ", "대체어"})
	if !errors.Is(err, cliErrors.ErrEmptyQuery) {
		t.Errorf("expected ErrEmptyQuery, got %v", err)
	}
}

func TestRunAmendRequiresAPIKey(t *testing.T) {
	tempDir, cleanup := testutil.CreateTempDir(t, "gaejeong-amend-cmd")
	t.Cleanup(cleanup)
	t.Cleanup(config.ResetConfig)
	config.SetTestConfigPath(tempDir)
	if err := config.Initialize(); err != nil {
		t.Fatalf("config.Initialize() error = %v", err)
	}

	if err := i18n.Init(); err != nil {
		t.Fatalf("i18n.Init() error = %v", err)
	}
	initAmendCmd()

	out, err := testutil.ExecuteCommand(t, amendCmd, []string{"지방법원", "지역법원"})
	if !errors.Is(err, cliErrors.ErrNoAPIKey) {
		t.Errorf("expected ErrNoAPIKey, got %v", err)
	}
	testutil.AssertContains(t, out, "API 설정이 필요합니다")
}

func TestWrapCorpusErrMapsAPIKeyError(t *testing.T) {
	var cliErr *cliErrors.CLIError
	err := wrapCorpusErr(&corpus.APIKeyError{Message: "bad key"})
	if !errors.As(err, &cliErr) {
		t.Fatalf("expected a *cliErrors.CLIError, got %v", err)
	}
	if cliErr.Code != cliErrors.ErrCodeInvalidAPIKey {
		t.Errorf("Code = %s, want %s", cliErr.Code, cliErrors.ErrCodeInvalidAPIKey)
	}
}

func TestWrapCorpusErrMapsRetryableError(t *testing.T) {
	var cliErr *cliErrors.CLIError
	err := wrapCorpusErr(&corpus.RetryableError{Err: errors.New("boom")})
	if !errors.As(err, &cliErr) {
		t.Fatalf("expected a *cliErrors.CLIError, got %v", err)
	}
	if cliErr.Code != cliErrors.ErrCodeNetwork {
		t.Errorf("Code = %s, want %s", cliErr.Code, cliErrors.ErrCodeNetwork)
	}
}

func TestWrapCorpusErrMapsHTTPError(t *testing.T) {
	var cliErr *cliErrors.CLIError
	err := wrapCorpusErr(&corpus.HTTPError{StatusCode: 404})
	if !errors.As(err, &cliErr) {
		t.Fatalf("expected a *cliErrors.CLIError, got %v", err)
	}
	if cliErr.Code != cliErrors.ErrCodeServerError {
		t.Errorf("Code = %s, want %s", cliErr.Code, cliErrors.ErrCodeServerError)
	}
}
