package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func infoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info [id...]",
		Short: "Show server status, or resolve item ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 0 {
				status, err := a.server.SystemInfo(ctx)
				if err != nil {
					return err
				}
				fmt.Print(renderRecord(status))
				return nil
			}

			items, err := a.server.Info(ctx, args...)
			if err != nil {
				return err
			}
			fmt.Print(renderObjects(items))
			return nil
		},
	}
}

func refreshCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Invalidate and re-fetch every cached collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.server.Refresh(context.Background()); err != nil {
				return err
			}
			fmt.Println(accentStyle.Render("refreshed"))
			return nil
		},
	}
}
