package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pyhub-apps/gaejeong-cli/internal/config"
	"github.com/pyhub-apps/gaejeong-cli/internal/i18n"
	"github.com/pyhub-apps/gaejeong-cli/internal/onboarding"
)

var configCmd *cobra.Command
var configSetCmd *cobra.Command
var configGetCmd *cobra.Command
var configPathCmd *cobra.Command

func initConfigCmd() {
	configCmd = &cobra.Command{
		Use:   "config",
		Short: i18n.T("config.short"),
		Example: `  # API 키 설정
  gaejeong config set law.key YOUR_API_KEY

  # API 키 확인
  gaejeong config get law.key

  # 설정 파일 경로 확인
  gaejeong config path`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	configSetCmd = &cobra.Command{
		Use:   "set <key> <value>",
		Short: "설정값 저장",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.TrimSpace(args[0])
			value := strings.TrimSpace(args[1])

			if !isValidConfigKey(key) {
				return fmt.Errorf("잘못된 설정 키 형식: %s (허용: law.key)", key)
			}
			if value == "" {
				return fmt.Errorf("설정값이 비어있습니다")
			}

			if key == "law.key" {
				if err := config.SetAPIKey(value); err != nil {
					return fmt.Errorf("API 키 설정 실패: %w", err)
				}
				onboarding.NewGuide().ShowSuccess(i18n.T("config.set.success"))
				fmt.Fprintf(cmd.OutOrStdout(), "설정 파일: %s\n", config.GetConfigPath())
				return nil
			}

			config.Set(key, value)
			if err := config.Save(); err != nil {
				return fmt.Errorf("설정 저장 실패: %w", err)
			}
			onboarding.NewGuide().ShowSuccess(fmt.Sprintf("설정이 저장되었습니다: %s = %s", key, value))
			return nil
		},
	}

	configGetCmd = &cobra.Command{
		Use:   "get <key>",
		Short: "설정값 조회",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.TrimSpace(args[0])
			if !isValidConfigKey(key) {
				return fmt.Errorf("잘못된 설정 키 형식: %s (허용: law.key)", key)
			}

			if key == "law.key" {
				if !config.IsAPIKeySet() {
					onboarding.NewGuide().ShowAPIKeySetup()
					return nil
				}
				apiKey := config.GetAPIKey()
				if len(apiKey) > 10 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s...(%d자)\n", key, apiKey[:10], len(apiKey))
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", key, apiKey)
				}
				return nil
			}

			value := config.Get(key)
			switch v := value.(type) {
			case nil:
				fmt.Fprintf(cmd.OutOrStdout(), "❌ 설정값이 없습니다: %s\n", key)
			case string:
				if strings.TrimSpace(v) == "" {
					fmt.Fprintf(cmd.OutOrStdout(), "❌ 설정값이 없습니다: %s\n", key)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", key, v)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", key, v)
			}
			return nil
		},
	}

	configPathCmd = &cobra.Command{
		Use:  "path",
		Short: "설정 파일 경로 확인",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "설정 파일 경로: %s\n", config.GetConfigPath())
			return nil
		},
	}

	for _, c := range []*cobra.Command{configCmd, configSetCmd, configGetCmd, configPathCmd} {
		c.SilenceUsage = true
		c.SilenceErrors = true
	}

	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configPathCmd)
}

func updateConfigCommand() {
	if configCmd != nil {
		configCmd.Short = i18n.T("config.short")
	}
}

// isValidConfigKey reports whether key is one this CLI manages. Only
// law.key (and nested law.key.* keys) are supported today.
func isValidConfigKey(key string) bool {
	const validKey = "law.key"
	return key == validKey || strings.HasPrefix(key, validKey+".")
}
