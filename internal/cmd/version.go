package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pyhub-apps/gaejeong-cli/internal/i18n"
)

var versionCmd *cobra.Command

func initVersionCmd() {
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: i18n.T("version.short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "gaejeong %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
			return nil
		},
	}
	versionCmd.SilenceUsage = true
}

func updateVersionCommand() {
	if versionCmd != nil {
		versionCmd.Short = i18n.T("version.short")
	}
}
