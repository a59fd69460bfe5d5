package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wexinc/artisan/internal/config"
	apperrors "github.com/wexinc/artisan/internal/errors"
)

func newInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write a default configuration file.

The file is created at ~/.artisan/config.yaml unless --config names
another path. Use --force to overwrite an existing file.

Examples:
  artisan init            # Create the default config
  artisan init --force    # Reset an existing config to defaults`,
		Args: cobra.NoArgs,
		// init must work when the existing config is broken.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, a.configPath, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")
	return cmd
}

func runInit(cmd *cobra.Command, path string, force bool) error {
	if path == "" {
		path = config.DefaultPath()
	}
	path = config.ExpandPath(path)

	if _, err := os.Stat(path); err == nil && !force {
		return apperrors.WithSuggestion(apperrors.ErrConfig,
			"config file already exists: "+path,
			"Run 'artisan init --force' to overwrite it")
	}

	if err := config.Save(config.NewConfig(), path); err != nil {
		return err
	}

	cmd.Printf("Created %s\n", path)
	cmd.Println("Edit it to point api.base_url at your storefront.")
	cmd.Println("Run 'artisan login --username <name>' to sign in.")
	return nil
}
