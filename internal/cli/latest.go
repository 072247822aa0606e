package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmcdole/embygo/pkg/emby"
)

func latestCommand(a *app) *cobra.Command {
	var (
		userID     string
		itemTypes  string
		groupItems bool
	)

	cmd := &cobra.Command{
		Use:   "latest",
		Short: "List the latest media",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.server.Latest(context.Background(), &emby.LatestOptions{
				UserID:     userID,
				ItemTypes:  itemTypes,
				GroupItems: groupItems,
			})
			if err != nil {
				return err
			}
			fmt.Print(renderObjects(items))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "list as a specific user id")
	cmd.Flags().StringVar(&itemTypes, "types", "", "comma-separated type filter, e.g. Movie,Episode")
	cmd.Flags().BoolVar(&groupItems, "group", false, "group items into their containers")
	return cmd
}

func nextUpCommand(a *app) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "nextup",
		Short: "List next-up episodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.server.NextUp(context.Background(), userID)
			if err != nil {
				return err
			}
			fmt.Print(renderObjects(items))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "list as a specific user id")
	return cmd
}
