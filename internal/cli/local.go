package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cookstemma/edge/internal/deeplink"
	"github.com/cookstemma/edge/internal/locale"
	"github.com/cookstemma/edge/internal/webp"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <path>",
		Short: "Show how the locale gate treats a request path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := args[0]
			out := cmd.OutOrStdout()
			if locale.IsExcluded(p) {
				fmt.Fprintf(out, "path:      %s\nexcluded:  true\n", p)
				return nil
			}
			r := locale.Classify(p)
			loc := r.Locale
			if loc == "" {
				loc = "-"
			}
			fmt.Fprintf(out, "path:      %s\nlocale:    %s\nstripped:  %s\nprotected: %t\n", p, loc, r.Path, r.IsProtected)
			return nil
		},
	}
}

func newWebPCmd() *cobra.Command {
	var accept string
	cmd := &cobra.Command{
		Use:   "webp <uri>",
		Short: "Show which image variant a client would be served",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := webp.SelectURI(args[0], accept)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\trewritten=%t\n", sel.URI, sel.Rewritten)
			return nil
		},
	}
	cmd.Flags().StringVar(&accept, "accept", "image/webp,*/*", "Accept header sent by the client")
	return cmd
}

func newDeepLinkCmd() *cobra.Command {
	var loc string
	cmd := &cobra.Command{
		Use:   "deeplink <url>",
		Short: "Resolve a cookstemma:// link to its web path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest, err := deeplink.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", dest.Kind, dest.WebPath(loc))
			return nil
		},
	}
	cmd.Flags().StringVar(&loc, "locale", locale.Default, "Locale of the web path")
	return cmd
}
