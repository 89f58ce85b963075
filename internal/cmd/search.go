package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pyhub-apps/gaejeong-cli/internal/config"
	"github.com/pyhub-apps/gaejeong-cli/internal/corpus"
	cliErrors "github.com/pyhub-apps/gaejeong-cli/internal/errors"
	"github.com/pyhub-apps/gaejeong-cli/internal/i18n"
	"github.com/pyhub-apps/gaejeong-cli/internal/logger"
	"github.com/pyhub-apps/gaejeong-cli/internal/onboarding"
	"github.com/pyhub-apps/gaejeong-cli/internal/output"
	"github.com/pyhub-apps/gaejeong-cli/internal/search"
)

var searchCmd *cobra.Command
var searchFormatFlag string

func initSearchCmd() {
	searchCmd = &cobra.Command{
		Use:   "search <query>",
		Short: i18n.T("search.short"),
		Long:  i18n.T("search.long"),
		Args:  cobra.ExactArgs(1),
		RunE:  runSearch,
	}
	searchCmd.Flags().StringVarP(&searchFormatFlag, "format", "f", "table", "출력 형식 (table, json, html)")
	searchCmd.SilenceUsage = true
}

func updateSearchCommand() {
	if searchCmd != nil {
		searchCmd.Short = i18n.T("search.short")
		searchCmd.Long = i18n.T("search.long")
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(args[0])
	if query == "" {
		return cliErrors.ErrEmptyQuery
	}

	if !config.IsAPIKeySet() {
		onboarding.NewGuideWithWriter(cmd.OutOrStdout(), true).ShowAPIKeySetup()
		return cliErrors.ErrNoAPIKey
	}

	client := corpus.NewClientFromConfig()
	ctx := cmd.Context()

	onboarding.NewGuideWithWriter(cmd.OutOrStdout(), true).ShowSearchProgress(query)

	hits, err := client.Search(ctx, query)
	if err != nil {
		return wrapCorpusErr(err)
	}
	if len(hits) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), i18n.T("search.no_results"))
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

	var results []search.LawResult
	for _, doc := range docs {
		snippets := search.Run(doc.Law, query)
		if len(snippets) == 0 {
			continue
		}
		results = append(results, search.LawResult{
			LawName:  doc.Law.BasicInfo.LawName,
			Snippets: snippets,
		})
	}

	out, err := output.NewFormatter(searchFormatFlag).FormatSearchResults(results)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
