package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	apperrors "github.com/wexinc/artisan/internal/errors"
	"github.com/wexinc/artisan/internal/session"
)

func newLoginCmd(a *app) *cobra.Command {
	var (
		username      string
		password      string
		passwordStdin bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		Long: `Log in to the storefront and store the session token locally.

The token is written to the session file (default ~/.artisan/session.yaml)
with owner-only permissions and reused by later commands.

Examples:
  artisan login -u admin --password-stdin < pass.txt
  artisan login -u admin -p artisan123`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if passwordStdin {
				p, err := readPassword(cmd.InOrStdin())
				if err != nil {
					return err
				}
				password = p
			}
			return runLogin(cmd, a, strings.TrimSpace(username), password)
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prefer --password-stdin)")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")
	return cmd
}

func runLogin(cmd *cobra.Command, a *app, username, password string) error {
	token, err := a.client.Login(cmd.Context(), username, password)
	if err != nil {
		return err
	}

	sess := &session.Session{Token: token, Username: username, LoggedIn: time.Now()}
	if err := a.sessions.Save(sess); err != nil {
		return err
	}
	return a.renderer(cmd).Message(fmt.Sprintf("Logged in as %s", username))
}

// readPassword returns the first line of r without its line ending.
func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password from stdin: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", apperrors.Validation("no password on stdin")
	}
	return line, nil
}
