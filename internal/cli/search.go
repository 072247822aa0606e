package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmcdole/embygo/pkg/emby"
	"github.com/mmcdole/embygo/pkg/emby/index"
)

func searchCommand(a *app) *cobra.Command {
	var (
		types       []string
		strict      bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &emby.SearchOptions{Strict: strict}
			if len(types) > 0 {
				sortMap := make(map[string]int, len(types))
				for i, tag := range types {
					sortMap[tag] = i
				}
				opts.SortMap = sortMap
			}

			hits, err := a.server.Search(context.Background(), args[0], opts)
			if err != nil {
				return err
			}

			if interactive {
				idx := index.New()
				idx.Add(index.FromObjects(hits)...)
				entry, ok, err := runPicker(idx)
				if err != nil {
					return err
				}
				if ok {
					fmt.Println(entry.ID)
				}
				return nil
			}

			fmt.Print(renderObjects(hits))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&types, "types", nil,
		"type priority order, e.g. Movie,Series (default "+strings.Join(defaultTypeOrder(), ",")+")")
	cmd.Flags().BoolVar(&strict, "strict", false, "restrict the server query to the listed types")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick a result interactively, printing its id")
	return cmd
}

func defaultTypeOrder() []string {
	order := make([]string, len(emby.DefaultSortMap))
	for tag, priority := range emby.DefaultSortMap {
		order[priority] = tag
	}
	return order
}
