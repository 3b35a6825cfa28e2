package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cookstemma/edge/internal/database"
	"github.com/cookstemma/edge/internal/preferences"
)

// withStore opens the local preference database, migrating it on first use.
func withStore(opts options, run func(preferences.Store) error) error {
	path, err := opts.dbPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}

	db, err := database.NewSQLite(path)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(db, ""); err != nil {
		return err
	}
	return run(preferences.NewGormStore(db, opts.user()))
}

func newPrefsCmd(opts options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Read and change stored preferences",
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "Print the effective preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(opts, func(store preferences.Store) error {
				snap, err := preferences.New(store).Snapshot(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "theme=%s\nmeasurement_unit=%s\nlanguage=%s\n",
					snap.Theme, snap.MeasurementUnit, snap.Language)
				return nil
			})
		},
	}

	set := &cobra.Command{
		Use:   "set <theme|measurement_unit|language> <value>",
		Short: "Change one preference",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(opts, func(store preferences.Store) error {
				return setPreference(cmd.Context(), preferences.New(store), args[0], args[1])
			})
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Restore default preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(opts, func(store preferences.Store) error {
				return preferences.New(store).Reset(cmd.Context())
			})
		},
	}

	cmd.AddCommand(get, set, reset)
	return cmd
}

func setPreference(ctx context.Context, prefs *preferences.Preferences, key, value string) error {
	switch strings.ReplaceAll(strings.ToLower(key), "-", "_") {
	case preferences.KeyTheme:
		t, err := preferences.ParseTheme(value)
		if err != nil {
			return err
		}
		return prefs.SetTheme(ctx, t)
	case preferences.KeyMeasurementUnit:
		u, err := preferences.ParseMeasurementUnit(value)
		if err != nil {
			return err
		}
		return prefs.SetMeasurementUnit(ctx, u)
	case preferences.KeyLanguage:
		lang, err := preferences.ParseLanguage(value)
		if err != nil {
			return err
		}
		return prefs.SetLanguage(ctx, lang)
	}
	return fmt.Errorf("unknown preference %q", key)
}

func newHistoryCmd(opts options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage recent searches",
	}

	printHistory := func(cmd *cobra.Command, queries []string) {
		for _, q := range queries {
			fmt.Fprintln(cmd.OutOrStdout(), q)
		}
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List recent searches, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(opts, func(store preferences.Store) error {
				queries, err := preferences.NewSearchHistory(store).List(cmd.Context())
				if err != nil {
					return err
				}
				printHistory(cmd, queries)
				return nil
			})
		},
	}

	add := &cobra.Command{
		Use:   "add <query>",
		Short: "Record a search",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(opts, func(store preferences.Store) error {
				queries, err := preferences.NewSearchHistory(store).Add(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				printHistory(cmd, queries)
				return nil
			})
		},
	}

	remove := &cobra.Command{
		Use:   "remove <query>",
		Short: "Forget one search",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(opts, func(store preferences.Store) error {
				queries, err := preferences.NewSearchHistory(store).Remove(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				printHistory(cmd, queries)
				return nil
			})
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget all searches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(opts, func(store preferences.Store) error {
				return preferences.NewSearchHistory(store).Clear(cmd.Context())
			})
		},
	}

	cmd.AddCommand(list, add, remove, clearCmd)
	return cmd
}
