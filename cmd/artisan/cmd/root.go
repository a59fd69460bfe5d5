// Package cmd provides the CLI commands for artisan.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wexinc/artisan/internal/api"
	"github.com/wexinc/artisan/internal/config"
	apperrors "github.com/wexinc/artisan/internal/errors"
	"github.com/wexinc/artisan/internal/logging"
	"github.com/wexinc/artisan/internal/render"
	"github.com/wexinc/artisan/internal/session"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// app holds the persistent flags and everything built from them before a
// command runs.
type app struct {
	configPath string
	verbose    bool
	output     string

	cfg      *config.Config
	format   render.Format
	client   *api.Client
	sessions *session.Store
}

// NewRootCmd builds the full command tree. Cobra commands keep flag state
// between runs, so every Execute and every test gets a fresh tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "artisan",
		Short: "ArtisanCraft storefront in the terminal",
		Long: `Artisan is a terminal client for the ArtisanCraft storefront.

Run it without a subcommand to browse products, manage your cart and
review orders in an interactive TUI. Headless subcommands expose the
same operations for scripts, with text or JSON output.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, a)
		},
	}
	root.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	root.SetVersionTemplate("artisan {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (default ~/.artisan/config.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log at debug level")
	flags.StringVarP(&a.output, "output", "o", string(render.FormatText), "Output format for headless commands: text or json")

	root.AddCommand(
		newBrowseCmd(a),
		newLoginCmd(a),
		newLogoutCmd(a),
		newItemsCmd(a),
		newCartCmd(a),
		newCheckoutCmd(a),
		newOrdersCmd(a),
		newInitCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads configuration, starts file logging and builds the API client.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(a.output)
	if err != nil {
		return apperrors.Validation(err.Error())
	}
	a.format = format

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logCfg := cfg.LoggingSettings()
	if a.verbose {
		logCfg.Level = logging.LevelDebug
	}
	if err := logging.InitGlobal(logCfg); err != nil {
		cmd.PrintErrf("Warning: failed to initialize logging: %v\n", err)
	}
	logging.Debug("command starting", "command", cmd.CommandPath(), "version", Version)

	a.sessions = session.NewStore(cfg.Session.File)
	a.client = api.New(api.Options{
		BaseURL:    cfg.API.BaseURL,
		Timeout:    cfg.API.Timeout,
		RetryCount: cfg.API.RetryCount,
		RetryWait:  cfg.API.RetryWait,
		Breaker: api.BreakerOptions{
			MaxRequests:         cfg.Breaker.MaxRequests,
			Interval:            cfg.Breaker.Interval,
			Timeout:             cfg.Breaker.Timeout,
			ConsecutiveFailures: cfg.Breaker.ConsecutiveFailures,
		},
		Logger: logging.Global(),
	})
	return nil
}

// renderer writes to the command's stdout in the selected format.
func (a *app) renderer(cmd *cobra.Command) *render.Renderer {
	return render.New(cmd.OutOrStdout(), a.format)
}

// requireSession installs the stored token on the client.
func (a *app) requireSession() (*session.Session, error) {
	sess, err := a.sessions.Load()
	if err != nil {
		return nil, err
	}
	if !sess.Valid() {
		return nil, apperrors.NotLoggedIn()
	}
	a.client.SetToken(sess.Token)
	return sess, nil
}

// check clears the stored session when the server rejected the token.
func (a *app) check(err error) error {
	if err == nil {
		return nil
	}
	log := logging.With("breaker", a.client.BreakerState())
	if apperrors.IsUserError(err) {
		log.Warn("request rejected", "error", err)
	} else {
		log.Error("request failed", "error", err, "retryable", apperrors.IsRetryable(err))
	}
	if apperrors.Is(err, apperrors.ErrUnauthorized) {
		a.client.ClearToken()
		if clearErr := a.sessions.Clear(); clearErr != nil {
			logging.Warn("failed to clear session", "error", clearErr)
		}
	}
	return err
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	err := NewRootCmd().Execute()
	if err != nil {
		logging.Error("command failed", "error", err)
	}
	_ = logging.CloseGlobal()
	if err != nil {
		fmt.Fprint(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError renders err with its suggestion when it carries one.
func formatError(err error) string {
	var loadErr *config.LoadError
	if errors.As(err, &loadErr) {
		return loadErr.AppError().Format()
	}
	var ae *apperrors.AppError
	if errors.As(err, &ae) {
		return ae.Format()
	}
	return "Error: " + err.Error() + "\n"
}
