package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmcdole/embygo/internal/config"
	"github.com/mmcdole/embygo/pkg/emby/transport"
)

func loginCommand(a *app) *cobra.Command {
	var serverURL string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against a server and save the connection",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if serverURL == "" {
				serverURL, err = transport.PromptServerURL()
				if err != nil {
					return err
				}
			}

			username, password, err := transport.PromptCredentials()
			if err != nil {
				return err
			}

			result, err := transport.AuthenticateByName(context.Background(), serverURL, username, password, a.logger)
			if err != nil {
				return err
			}

			a.cfg.Server.URL = serverURL
			a.cfg.Server.APIKey = result.Token
			a.cfg.Server.UserID = result.UserID
			a.cfg.Server.Username = result.Username
			if err := config.Save(a.cfg); err != nil {
				return err
			}

			fmt.Println(accentStyle.Render("Logged in as " + result.Username))
			return nil
		},
	}

	cmd.Flags().StringVar(&serverURL, "url", "", "server URL (prompted when omitted)")
	return cmd
}
