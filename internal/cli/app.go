// Package cli wires the cobra command tree over the api facade, the PIN
// gate and the chat assistant.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lifetrack/internal/api"
	"lifetrack/internal/auth"
	"lifetrack/internal/chat"
	"lifetrack/internal/config"
)

// App represents the CLI application
type App struct {
	api          api.API
	gate         *auth.Gate
	assistant    *chat.Assistant
	config       *config.Config
	errorHandler *ErrorHandler
	root         *cobra.Command
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, gate *auth.Gate, assistant *chat.Assistant, cfg *config.Config) *App {
	app := &App{
		api:          apiInstance,
		gate:         gate,
		assistant:    assistant,
		config:       cfg,
		errorHandler: NewErrorHandler(),
	}
	app.root = app.newRootCommand()
	return app
}

// Run executes the command line with the given arguments
func (a *App) Run(args []string) error {
	a.root.SetArgs(args)
	return a.root.Execute()
}

// Root exposes the root command, mainly for tests
func (a *App) Root() *cobra.Command {
	return a.root
}

// requireAuth blocks commands until the PIN gate has been passed
func (a *App) requireAuth() error {
	if !a.gate.Authenticated() {
		return fmt.Errorf("not logged in: run \"lt login <pin>\" first")
	}
	return nil
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "lt",
		Short: "A personal task, money and chat companion",
		Long: `lifetrack (lt) is a PIN-guarded companion for tracking tasks and money,
with a placeholder chat assistant on the side.

EXAMPLES:
  lt login 1304                            # Unlock the app
  lt task add "beli kado" --due 2024-06-15 # Add a task with a due date
  lt task list --filter week               # Tasks due this week
  lt money add income 100000 "gaji"        # Record income
  lt money list --filter month             # This month's entries
  lt summary --filter all                  # Totals and running balance
  lt chat "halo"                           # Talk to the assistant
  lt logout                                # Lock the app again

FILTERS:
  all (semua), today (hari-ini), week (minggu-ini), month (bulan-ini)
  Weeks run Sunday through Saturday.

CONFIGURATION:
  LT_STORAGE_BACKEND                       sqlite or memory (default: sqlite)
  LT_DB_DIR                                Storage directory (default: ~/.lt)
  LT_DB_FILENAME                           Database filename (default: lt.db)
  LT_PIN                                   Unlock PIN (default: 1304)
  LT_CHAT_REPLY_DELAY                      Assistant reply delay (default: 1s)
  LT_DISPLAY_CURRENCY                      Currency prefix (default: Rp)
  LT_DEBUG                                 Enable debug output`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		a.newLoginCommand(),
		a.newLogoutCommand(),
		a.newTaskCommand(),
		a.newMoneyCommand(),
		a.newSummaryCommand(),
		a.newChatCommand(),
	)
	return root
}
