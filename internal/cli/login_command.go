package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login <pin>",
		Short: "Unlock the app with your PIN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.gate.Verify(args[0]); err != nil {
				return a.errorHandler.Handle("login", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged in.")
			return nil
		},
	}
}

func (a *App) newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Lock the app again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.gate.Logout(); err != nil {
				return a.errorHandler.Handle("logout", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}
