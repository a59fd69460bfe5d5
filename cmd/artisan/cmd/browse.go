package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wexinc/artisan/internal/logging"
	"github.com/wexinc/artisan/internal/tui"
)

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive storefront",
		Long: `Open the interactive storefront TUI.

Starts on the login page, or on the product catalog when a session is
stored. Running artisan without a subcommand does the same.

Examples:
  artisan             # Browse the storefront
  artisan browse -v   # Browse with debug logging`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, a)
		},
	}
}

// runBrowse starts the TUI. An unreadable session file is logged and
// treated as logged out.
func runBrowse(cmd *cobra.Command, a *app) error {
	sess, err := a.sessions.Load()
	if err != nil {
		logging.Warn("ignoring unreadable session", "path", a.sessions.Path(), "error", err)
		sess = nil
	}

	logging.Info("starting TUI", "logged_in", sess.Valid())
	return tui.Run(tui.Options{
		Service:       a.client,
		Sessions:      a.sessions,
		Session:       sess,
		Criteria:      a.cfg.Catalog.Criteria(),
		ToastDuration: a.cfg.UI.ToastDuration,
		Logger:        logging.Global(),
	})
}
