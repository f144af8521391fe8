package cli

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/me/folio/internal/logging"
	"github.com/me/folio/internal/store"
)

var (
	flagDB        string
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
)

// defaultDBPath returns the default database location, checking FOLIO_DB first.
func defaultDBPath() string {
	if p := os.Getenv("FOLIO_DB"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "folio.db"
	}
	return filepath.Join(home, ".folio", "folio.db")
}

// openStore opens and migrates the database the commands operate on.
func openStore(ctx context.Context) (store.Store, error) {
	if dir := filepath.Dir(flagDB); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	st, err := store.NewSQLiteStore(flagDB, logger)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

// NewRootCmd creates the root cobra command for the folio CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "folio",
		Short: "Manage a Folio site from the command line",
		Long:  "Administrative tool for a Folio site: manage accounts and review contact messages against the site database directly.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.New(logging.ParseLevel(flagLogLevel), flagLogFormat)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagDB, "db", defaultDBPath(), "SQLite database path (or FOLIO_DB env)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newUserAddCmd(),
		newPasswdCmd(),
		newAccountsCmd(),
		newMessagesCmd(),
	)

	return root
}
