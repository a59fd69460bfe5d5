package cmd

import (
	"github.com/spf13/cobra"
)

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.client.ClearToken()
			if err := a.sessions.Clear(); err != nil {
				return err
			}
			return a.renderer(cmd).Message("Logged out")
		},
	}
}
