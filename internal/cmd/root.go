// Package cmd wires the gaejeong CLI's cobra command tree: amend, search,
// config, and version, adapted from the teacher's internal/cmd layout.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pyhub-apps/gaejeong-cli/internal/config"
	"github.com/pyhub-apps/gaejeong-cli/internal/i18n"
	"github.com/pyhub-apps/gaejeong-cli/internal/logger"
)

var (
	// Version information; overwritten at build time via -ldflags.
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	langFlag string
)

var rootCmd *cobra.Command

func initRootCmd() {
	rootCmd = &cobra.Command{
		Use:   "gaejeong",
		Short: i18n.T("root.short"),
		Long:  i18n.T("root.long"),
		Example: `  # "지방법원"을 "지역법원"으로 바꾸는 개정문 초안 생성
  gaejeong amend "지방법원" "지역법원"

  # 법령 본문에서 낱말 검색
  gaejeong search "지방법원"

  # API 키 설정
  gaejeong config set law.key YOUR_API_KEY`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if langFlag != "" {
				i18n.SetLanguage(langFlag)
				updateCommandDescriptions()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
}

// Execute runs the CLI, initializing i18n, config, and the command tree.
func Execute() {
	if err := i18n.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize i18n: %v\n", err)
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

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupFlags() {
	cobra.OnInitialize(initConfigOnStartup)

	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "Language (ko, en)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, i18n.T("cli.verbose"))

	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit)
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)
}

func updateCommandDescriptions() {
	rootCmd.Short = i18n.T("root.short")
	rootCmd.Long = i18n.T("root.long")

	if flag := rootCmd.PersistentFlags().Lookup("verbose"); flag != nil {
		flag.Usage = i18n.T("cli.verbose")
	}

	updateVersionCommand()
	updateConfigCommand()
	updateAmendCommand()
	updateSearchCommand()
}

func initConfigOnStartup() {
	if rootCmd == nil {
		return
	}
	if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
		logger.SetVerbose(true)
	}

	if err := config.Initialize(); err != nil {
		logger.Warn("Failed to initialize config: %v", err)
	}
}

// SetVersionInfo sets the version information reported by `gaejeong version`.
func SetVersionInfo(version, commit, date string) {
	Version = version
	GitCommit = commit
	BuildDate = date
}
