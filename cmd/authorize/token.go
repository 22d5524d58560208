package main

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ethanbaker/wishes/internal/credentials"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// newTokenCmd runs the consent flow and stores the resulting token
func newTokenCmd(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Obtain an OAuth token through the browser consent flow",
		Long: `Prints the Google consent URL for the client in the credentials file, reads the
authorization code shown after consenting and stores the exchanged token in the token file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(opts.tokenPath); err == nil && !force {
				return fmt.Errorf("token file %s already exists, use --force to replace it", opts.tokenPath)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			config, err := credentials.LoadConfig(opts.credentialsPath, sheetsapi.SpreadsheetsScope)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Authorize this app by visiting this url:")
			fmt.Fprintln(out, config.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
			fmt.Fprint(out, "Enter the code from that page here: ")

			code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && code == "" {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}

			code = strings.TrimSpace(code)
			if code == "" {
				return errors.New("authorization code is empty")
			}

			token, err := config.Exchange(cmd.Context(), code)
			if err != nil {
				return fmt.Errorf("error retrieving access token: %w", err)
			}

			if token.RefreshToken == "" {
				fmt.Fprintln(out, "\nWarning: no refresh token was issued, the service will stop working once the access token expires")
			}

			if err := credentials.SaveToken(opts.tokenPath, token); err != nil {
				return err
			}

			fmt.Fprintln(out, "\nToken stored to", opts.tokenPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing token file")

	return cmd
}
