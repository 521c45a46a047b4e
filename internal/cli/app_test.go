package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifetrack/internal/api"
	"lifetrack/internal/auth"
	"lifetrack/internal/chat"
	"lifetrack/internal/config"
	"lifetrack/internal/dates"
	"lifetrack/internal/repository"
	"lifetrack/internal/storage"
	"lifetrack/internal/window"
)

// Wednesday, 2024-06-12.
func fixedNow() dates.Date {
	return dates.New(2024, time.June, 12)
}

func setupTestApp(t *testing.T) *App {
	t.Helper()

	store := storage.NewMemoryStore()
	t.Cleanup(func() { store.Close() })

	apiInstance, err := api.NewWithClock(
		repository.NewLedgerRepository(store),
		repository.NewTaskRepository(store),
		fixedNow,
	)
	require.NoError(t, err)

	cfg := config.NewConfig()
	gate := auth.NewGate(store, cfg.Auth.PIN)
	assistant := chat.NewWithClock(0, time.Now, func(time.Duration) {})

	return NewApp(apiInstance, gate, assistant, cfg)
}

func run(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app.Root().SetOut(&out)
	app.Root().SetErr(&out)
	app.Root().SetArgs(args)
	err := app.Root().Execute()
	return out.String(), err
}

func login(t *testing.T, app *App) {
	t.Helper()
	_, err := run(t, app, "login", "1304")
	require.NoError(t, err)
}

func TestCommandsRequireLogin(t *testing.T) {
	app := setupTestApp(t)

	for _, args := range [][]string{
		{"task", "list"},
		{"money", "list"},
		{"summary"},
		{"chat", "halo"},
	} {
		_, err := run(t, app, args...)
		assert.Error(t, err, "expected auth error for %v", args)
		assert.Contains(t, err.Error(), "not logged in")
	}
}

func TestLoginLogout(t *testing.T) {
	app := setupTestApp(t)

	_, err := run(t, app, "login", "0000")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "authentication failed")

	out, err := run(t, app, "login", "1304")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in.")

	_, err = run(t, app, "task", "list")
	assert.NoError(t, err)

	out, err = run(t, app, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out.")

	_, err = run(t, app, "task", "list")
	assert.Error(t, err)
}

func TestTaskLifecycle(t *testing.T) {
	app := setupTestApp(t)
	login(t, app)

	out, err := run(t, app, "task", "add", "beli kado", "--due", "2024-06-15")
	require.NoError(t, err)
	assert.Contains(t, out, "beli kado")
	assert.Contains(t, out, "2024-06-15")

	tasks, err := app.api.ListTasks(window.All)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	id := tasks[0].ID

	out, err = run(t, app, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "beli kado")
	assert.Contains(t, out, id)

	out, err = run(t, app, "task", "done", id)
	require.NoError(t, err)
	assert.Contains(t, out, "done")

	out, err = run(t, app, "task", "edit", id, "beli kado ulang tahun")
	require.NoError(t, err)
	assert.Contains(t, out, "beli kado ulang tahun")

	out, err = run(t, app, "task", "rm", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted task")

	out, err = run(t, app, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks found.")
}

func TestTaskAddRejectsEmptyText(t *testing.T) {
	app := setupTestApp(t)
	login(t, app)

	_, err := run(t, app, "task", "add", "   ")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to add task")
}

func TestTaskAddRejectsBadDueDate(t *testing.T) {
	app := setupTestApp(t)
	login(t, app)

	_, err := run(t, app, "task", "add", "beli kado", "--due", "15/06/2024")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --due date")
}

func TestTaskListOverdueMarker(t *testing.T) {
	app := setupTestApp(t)
	login(t, app)

	_, err := run(t, app, "task", "add", "sudah lewat", "--due", "2024-06-01")
	require.NoError(t, err)

	out, err := run(t, app, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "[!]")
}

func TestMoneyLifecycle(t *testing.T) {
	app := setupTestApp(t)
	login(t, app)

	out, err := run(t, app, "money", "add", "income", "100000", "gaji", "--date", "2024-06-10")
	require.NoError(t, err)
	assert.Contains(t, out, "pemasukan")
	assert.Contains(t, out, "Rp 100.000")

	out, err = run(t, app, "money", "add", "expense", "40000", "makan", "--date", "2024-06-11")
	require.NoError(t, err)
	assert.Contains(t, out, "pengeluaran")
	assert.Contains(t, out, "Rp 40.000")

	out, err = run(t, app, "money", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "gaji")
	assert.Contains(t, out, "makan")

	entries, err := app.api.ListTransactions(window.All)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	out, err = run(t, app, "money", "rm", entries[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted entry")

	out, err = run(t, app, "money", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "makan")
	assert.Contains(t, out, "gaji")
}

func TestMoneyAddRejectsBadInput(t *testing.T) {
	app := setupTestApp(t)
	login(t, app)

	_, err := run(t, app, "money", "add", "transfer", "1000", "x")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown entry kind")

	_, err = run(t, app, "money", "add", "income", "abc", "x")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid amount")

	_, err = run(t, app, "money", "add", "income", "-1000", "x")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to add entry")
}

func TestSummaryOutput(t *testing.T) {
	app := setupTestApp(t)
	login(t, app)

	_, err := run(t, app, "money", "add", "income", "100000", "gaji", "--date", "2024-06-10")
	require.NoError(t, err)
	_, err = run(t, app, "money", "add", "expense", "40000", "makan", "--date", "2024-06-11")
	require.NoError(t, err)

	out, err := run(t, app, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Pemasukan:   Rp 100.000")
	assert.Contains(t, out, "Pengeluaran: Rp 40.000")
	assert.Contains(t, out, "Saldo:       Rp 60.000")
	assert.Contains(t, out, "Running balance:")
	assert.Contains(t, out, "Rp 60.000")
}

func TestSummaryWindowFilter(t *testing.T) {
	app := setupTestApp(t)
	login(t, app)

	// Inside this week (Sun 06-09 .. Sat 06-15) and outside it.
	_, err := run(t, app, "money", "add", "income", "100000", "gaji", "--date", "2024-06-10")
	require.NoError(t, err)
	_, err = run(t, app, "money", "add", "expense", "40000", "bulan lalu", "--date", "2024-05-01")
	require.NoError(t, err)

	out, err := run(t, app, "summary", "--filter", "week")
	require.NoError(t, err)
	assert.Contains(t, out, "Saldo:       Rp 100.000")

	_, err = run(t, app, "summary", "--filter", "fortnight")
	assert.Error(t, err)
}

func TestChatCommand(t *testing.T) {
	app := setupTestApp(t)
	login(t, app)

	out, err := run(t, app, "chat", "halo bestie")
	require.NoError(t, err)
	assert.Contains(t, out, "you: halo bestie")
	assert.Contains(t, out, "ai:  ")

	_, err = run(t, app, "chat", "   ")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send message")
}
