package main

import (
	"github.com/ethanbaker/wishes/pkg/utils"
	"github.com/spf13/cobra"
)

// options shared by every subcommand
type options struct {
	credentialsPath string
	tokenPath       string
}

// newRootCmd builds the command tree. Path defaults come from the same environment as the service
func newRootCmd() *cobra.Command {
	cfg := utils.NewConfigFromEnv(utils.EnvFile())
	opts := &options{}

	root := &cobra.Command{
		Use:           "authorize",
		Short:         "Authorize the wishes service to write to Google Sheets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.credentialsPath, "credentials", cfg.GetWithDefault("GOOGLE_CREDENTIALS_PATH", "credentials.json"), "Path of the OAuth client credentials file")
	root.PersistentFlags().StringVar(&opts.tokenPath, "token", cfg.GetWithDefault("GOOGLE_TOKEN_PATH", "token.json"), "Path of the OAuth token file")

	root.AddCommand(newTokenCmd(opts))
	root.AddCommand(newCheckCmd(opts, cfg))

	return root
}
