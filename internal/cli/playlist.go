package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmcdole/embygo/pkg/emby"
)

func playlistCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "playlist",
		Short: "Manage playlists",
	}
	cmd.AddCommand(playlistLsCommand(a), playlistCreateCommand(a))
	return cmd
}

func playlistLsCommand(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List playlists",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var (
				items []emby.Object
				err   error
			)
			if force {
				items, err = a.server.PlaylistsForce(ctx)
			} else {
				items, err = a.server.Playlists(ctx)
			}
			if err != nil {
				return err
			}
			fmt.Print(renderObjects(items))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "bypass the cache and re-query the server")
	return cmd
}

func playlistCreateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name> [id...]",
		Short: "Create a playlist, optionally seeded with item ids",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := make([]any, 0, len(args)-1)
			for _, id := range args[1:] {
				items = append(items, id)
			}
			if err := a.server.CreatePlaylist(context.Background(), args[0], items...); err != nil {
				return err
			}
			fmt.Println(accentStyle.Render("created " + args[0]))
			return nil
		},
	}
}
