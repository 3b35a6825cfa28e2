// Package cli implements edgectl, an operator tool that runs the edge's routing, image and
// state logic from a terminal.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cookstemma/edge/internal/apiclient"
)

const (
	appDirName = "edgectl"
	dbFileName = "edgectl.db"
)

// options are resolved from flags first and EDGECTL_* environment variables second.
type options struct {
	v *viper.Viper
}

func (o options) backendURL() string { return o.v.GetString("backend") }
func (o options) token() string      { return o.v.GetString("token") }
func (o options) user() string       { return o.v.GetString("user") }

func (o options) client() *apiclient.Client {
	return apiclient.New(o.backendURL()).WithToken(o.token())
}

func (o options) dbPath() (string, error) {
	if p := strings.TrimSpace(o.v.GetString("db")); p != "" {
		return p, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, dbFileName), nil
}

// NewRootCmd builds the edgectl command tree.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("EDGECTL")
	v.AutomaticEnv()
	opts := options{v: v}

	root := &cobra.Command{
		Use:           "edgectl",
		Short:         "edgectl inspects and drives the Cookstemma edge from your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.String("backend", "http://localhost:4000", "Backend API base URL")
	flags.String("token", "", "Access token sent to the backend")
	flags.String("db", "", "Path to the local SQLite preference database")
	flags.String("user", "local", "Preference namespace")
	for _, name := range []string{"backend", "token", "db", "user"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(
		newClassifyCmd(),
		newWebPCmd(),
		newDeepLinkCmd(),
		newFeedCmd(opts),
		newRecipesCmd(opts),
		newLogsCmd(opts),
		newLikeCmd(opts),
		newPrefsCmd(opts),
		newHistoryCmd(opts),
	)
	return root
}

// Execute runs edgectl with os.Args.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
