package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newChatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chat <message>",
		Short: "Send a message to the assistant",
		Args:  cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.requireAuth()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			sent, err := a.assistant.Send(args[0])
			if err != nil {
				return a.errorHandler.Handle("send message", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "you: %s\n", sent.Text)

			reply := a.assistant.AwaitReply()
			fmt.Fprintf(out, "ai:  %s\n", reply.Text)
			return nil
		},
	}
}
