package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cookstemma/edge/internal/models"
	"github.com/cookstemma/edge/internal/optimistic"
	"github.com/cookstemma/edge/internal/types"
	"github.com/cookstemma/edge/internal/viewstate"
)

func newFeedCmd(opts options) *cobra.Command {
	var pages int
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Page through the home feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pages < 1 {
				return fmt.Errorf("--pages must be > 0")
			}
			ctx := cmd.Context()
			feed := viewstate.NewFeedState(opts.client())
			if err := feed.Refresh(ctx); err != nil {
				return fmt.Errorf("load feed: %s", feed.ErrorMessage())
			}
			for i := 1; i < pages && feed.Snapshot().HasMore; i++ {
				if err := feed.LoadMore(ctx); err != nil {
					return fmt.Errorf("load more: %s", feed.ErrorMessage())
				}
			}

			snap := feed.Snapshot()
			out := cmd.OutOrStdout()
			for _, item := range snap.Items {
				fmt.Fprintf(out, "%s\t%s\t%s\n", item.Type, item.ID(), feedSummary(item))
			}
			fmt.Fprintf(out, "%d items, more=%t\n", len(snap.Items), snap.HasMore)
			return nil
		},
	}
	cmd.Flags().IntVar(&pages, "pages", 1, "Number of pages to load")
	return cmd
}

func feedSummary(item models.FeedItem) string {
	switch {
	case item.Recipe != nil:
		return item.Recipe.Title
	case item.Log != nil:
		return fmt.Sprintf("%s by %s, %d likes", item.Log.Outcome, item.Log.Author.Username, item.Log.LikeCount)
	}
	return ""
}

func newRecipesCmd(opts options) *cobra.Command {
	var pages int
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "List recent recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := viewstate.NewPaginator[models.Recipe](opts.client().GetRecipes, func(r models.Recipe) string { return r.ID.String() })
			snap, err := loadPages(cmd.Context(), list, pages)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range snap.Items {
				fmt.Fprintf(out, "%s\t%s\t%d saves\n", r.ID, r.Title, r.SaveCount)
			}
			fmt.Fprintf(out, "%d recipes, more=%t\n", len(snap.Items), snap.HasMore)
			return nil
		},
	}
	cmd.Flags().IntVar(&pages, "pages", 1, "Number of pages to load")
	return cmd
}

func newLogsCmd(opts options) *cobra.Command {
	var pages int
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "List recent cooking logs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := viewstate.NewPaginator[models.CookingLog](opts.client().GetLogs, func(l models.CookingLog) string { return l.ID.String() })
			snap, err := loadPages(cmd.Context(), list, pages)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, l := range snap.Items {
				fmt.Fprintf(out, "%s\t%s\t%d/5\t%d likes\n", l.ID, l.Outcome, l.Rating, l.LikeCount)
			}
			fmt.Fprintf(out, "%d logs, more=%t\n", len(snap.Items), snap.HasMore)
			return nil
		},
	}
	cmd.Flags().IntVar(&pages, "pages", 1, "Number of pages to load")
	return cmd
}

func loadPages[T any](ctx context.Context, list *viewstate.Paginator[T], pages int) (viewstate.Snapshot[T], error) {
	if pages < 1 {
		return viewstate.Snapshot[T]{}, fmt.Errorf("--pages must be > 0")
	}
	if err := list.Refresh(ctx); err != nil {
		return viewstate.Snapshot[T]{}, fmt.Errorf("load: %s", list.ErrorMessage())
	}
	for i := 1; i < pages && list.Snapshot().HasMore; i++ {
		if err := list.LoadMore(ctx); err != nil {
			return viewstate.Snapshot[T]{}, fmt.Errorf("load more: %s", list.ErrorMessage())
		}
	}
	return list.Snapshot(), nil
}

func newLikeCmd(opts options) *cobra.Command {
	return &cobra.Command{
		Use:   "like <logID>",
		Short: "Toggle the like on a cooking log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid log id %q", args[0])
			}
			ctx := cmd.Context()
			client := opts.client()

			log, err := client.GetLog(ctx, id)
			if err != nil {
				return fmt.Errorf("load log: %s", types.UserMessage(err))
			}

			state := optimistic.NewValue(optimistic.ToggleState{Active: log.IsLiked, Count: log.LikeCount})
			err = optimistic.Apply(ctx, optimistic.KindLike, state, func(ctx context.Context, liked bool) error {
				return client.SetLogLiked(ctx, id, liked)
			})
			s := state.Load()
			fmt.Fprintf(cmd.OutOrStdout(), "liked=%t likes=%d\n", s.Active, s.Count)
			if err != nil {
				return fmt.Errorf("toggle like: %s", types.UserMessage(err))
			}
			return nil
		},
	}
}
