package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pyhub-apps/gaejeong-cli/internal/amend"
	"github.com/pyhub-apps/gaejeong-cli/internal/config"
	"github.com/pyhub-apps/gaejeong-cli/internal/corpus"
	cliErrors "github.com/pyhub-apps/gaejeong-cli/internal/errors"
	"github.com/pyhub-apps/gaejeong-cli/internal/i18n"
	"github.com/pyhub-apps/gaejeong-cli/internal/logger"
	"github.com/pyhub-apps/gaejeong-cli/internal/onboarding"
	"github.com/pyhub-apps/gaejeong-cli/internal/output"
)

var amendCmd *cobra.Command
var amendFormatFlag string

func initAmendCmd() {
	amendCmd = &cobra.Command{
		Use:   "amend <find> <replace>",
		Short: i18n.T("amend.short"),
		Long:  i18n.T("amend.long"),
		Args:  cobra.ExactArgs(2),
		RunE:  runAmend,
	}
	amendCmd.Flags().StringVarP(&amendFormatFlag, "format", "f", "table", "출력 형식 (table, json, html)")
	amendCmd.SilenceUsage = true
}

func updateAmendCommand() {
	if amendCmd != nil {
		amendCmd.Short = i18n.T("amend.short")
		amendCmd.Long = i18n.T("amend.long")
	}
}

func runAmend(cmd *cobra.Command, args []string) error {
	findWord := strings.TrimSpace(args[0])
	replaceWord := strings.TrimSpace(args[1])
	if findWord == "" || replaceWord == "" {
		return cliErrors.ErrEmptyQuery
	}

	if !config.IsAPIKeySet() {
		onboarding.NewGuideWithWriter(cmd.OutOrStdout(), true).ShowAPIKeySetup()
		return cliErrors.ErrNoAPIKey
	}

	client := corpus.NewClientFromConfig()
	ctx := cmd.Context()

	hits, err := client.Search(ctx, findWord)
	if err != nil {
		return wrapCorpusErr(err)
	}
	if len(hits) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), i18n.T("amend.no_targets"))
		return nil
	}

	msts := make([]string, len(hits))
	for i, h := range hits {
		msts[i] = h.MST
	}

	docs, fetchErrs := client.FetchAll(ctx, msts)
	for _, fetchErr := range fetchErrs {
		logger.Warn(i18n.T("amend.fetch_failed"), fetchErr)
	}

	laws := make([]amend.NamedLaw, 0, len(docs))
	for _, doc := range docs {
		laws = append(laws, amend.NamedLaw{Name: doc.Law.BasicInfo.LawName, Law: doc.Law})
	}

	results, skipped := amend.RunBatch(laws, findWord, replaceWord)

	out, err := output.NewFormatter(amendFormatFlag).FormatAmendResults(results, skipped)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// wrapCorpusErr maps an internal/corpus sentinel error to the CLIError the
// terminal boundary is supposed to show, per internal/errors' layering.
func wrapCorpusErr(err error) error {
	var keyErr *corpus.APIKeyError
	if errors.As(err, &keyErr) {
		return cliErrors.Wrap(err, cliErrors.ErrInvalidAPIKey)
	}
	var retryable *corpus.RetryableError
	if errors.As(err, &retryable) {
		return cliErrors.Wrap(err, cliErrors.ErrNoNetwork)
	}
	var httpErr *corpus.HTTPError
	if errors.As(err, &httpErr) {
		return cliErrors.Wrap(err, cliErrors.ErrAPIServerError)
	}
	return cliErrors.Wrap(err, cliErrors.ErrXMLParse)
}
