package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmcdole/embygo/pkg/emby"
	"github.com/mmcdole/embygo/pkg/emby/index"
)

func lsCommand(a *app) *cobra.Command {
	var (
		force  bool
		filter string
	)

	keys := emby.CollectionKeys()
	sort.Strings(keys)

	cmd := &cobra.Command{
		Use:       "ls <collection>",
		Short:     "List a collection (" + strings.Join(keys, ", ") + ")",
		Args:      cobra.ExactArgs(1),
		ValidArgs: keys,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			key := args[0]

			var (
				items []emby.Object
				err   error
			)
			if force {
				items, err = a.server.CollectionForce(ctx, key)
			} else {
				items, err = a.server.Collection(ctx, key)
			}
			if err != nil {
				return err
			}

			if filter != "" {
				idx := index.New()
				idx.Add(index.FromObjects(items)...)
				matches := idx.Filter(filter)
				byID := make(map[string]emby.Object, len(items))
				for _, item := range items {
					byID[item.ID()] = item
				}
				filtered := make([]emby.Object, 0, len(matches))
				for _, match := range matches {
					if item, ok := byID[match.ID]; ok {
						filtered = append(filtered, item)
					}
				}
				items = filtered
			}

			fmt.Print(renderObjects(items))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "bypass the cache and re-query the server")
	cmd.Flags().StringVar(&filter, "filter", "", "fuzzy-filter results by title")
	return cmd
}
