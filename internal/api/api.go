// Package api is the facade the presentation layer calls. It keeps both
// collections in memory, re-runs windowing and aggregation on every query,
// and persists the full collection synchronously on every mutation.
package api

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"lifetrack/internal/dates"
	"lifetrack/internal/domain"
	"lifetrack/internal/errors"
	"lifetrack/internal/id"
	"lifetrack/internal/logging"
	"lifetrack/internal/report"
	"lifetrack/internal/repository"
	"lifetrack/internal/validation"
	"lifetrack/internal/window"
)

// TaskView is a task together with its advisory display flags, recomputed
// relative to the reference date on every query.
type TaskView struct {
	domain.Task
	Overdue  bool
	DueToday bool
}

// API defines the ledger and task operations exposed to the presentation
// layer.
type API interface {
	// Ledger operations
	AddTransaction(kind domain.EntryType, amount decimal.Decimal, description string, occurredOn dates.Date) (*domain.Transaction, error)
	DeleteTransaction(id string) error
	ListTransactions(w window.Window) ([]domain.Transaction, error)
	LedgerSummary(w window.Window) (report.Summary, error)
	RunningBalance(w window.Window) ([]report.BalancePoint, error)

	// Task operations
	AddTask(text string, dueDate dates.Date) (*domain.Task, error)
	ToggleTask(id string) (*domain.Task, error)
	EditTask(id string, text string) (*domain.Task, error)
	DeleteTask(id string) error
	ListTasks(w window.Window) ([]TaskView, error)
}

type apiImpl struct {
	ledgerRepo *repository.LedgerRepository
	taskRepo   *repository.TaskRepository

	transactions []domain.Transaction
	tasks        []domain.Task

	transactionValidator *validation.TransactionValidator
	taskValidator        *validation.TaskValidator

	now func() dates.Date
}

// New creates an API over the given repositories, loading both collections.
// If a collection fails to load it starts empty and the error is returned
// alongside a usable API; the caller decides whether to warn and continue.
func New(ledgerRepo *repository.LedgerRepository, taskRepo *repository.TaskRepository) (API, error) {
	return NewWithClock(ledgerRepo, taskRepo, dates.Today)
}

// NewWithClock is New with an injected reference-date source, so windowing
// stays deterministic under test.
func NewWithClock(ledgerRepo *repository.LedgerRepository, taskRepo *repository.TaskRepository, now func() dates.Date) (API, error) {
	a := &apiImpl{
		ledgerRepo:           ledgerRepo,
		taskRepo:             taskRepo,
		transactionValidator: validation.NewTransactionValidator(),
		taskValidator:        validation.NewTaskValidator(),
		now:                  now,
	}

	var loadErr error
	transactions, err := ledgerRepo.Load()
	if err != nil {
		logging.Debugf("loading transactions failed: %v\n", err)
		loadErr = err
	}
	a.transactions = transactions

	tasks, err := taskRepo.Load()
	if err != nil {
		logging.Debugf("loading tasks failed: %v\n", err)
		loadErr = err
	}
	a.tasks = tasks

	return a, loadErr
}

// AddTransaction validates and appends a new ledger entry, persisting the
// whole collection. The collection is untouched when validation or the save
// fails.
func (a *apiImpl) AddTransaction(kind domain.EntryType, amount decimal.Decimal, description string, occurredOn dates.Date) (*domain.Transaction, error) {
	if err := a.transactionValidator.ValidateForCreation(kind, amount, description); err != nil {
		return nil, err
	}

	transaction := domain.Transaction{
		ID:          id.New(),
		Type:        kind,
		Amount:      amount,
		Description: a.transactionValidator.CleanDescription(description),
		OccurredOn:  occurredOn,
	}

	next := make([]domain.Transaction, 0, len(a.transactions)+1)
	next = append(next, a.transactions...)
	next = append(next, transaction)

	if err := a.ledgerRepo.Save(next); err != nil {
		return nil, err
	}
	a.transactions = next
	return &transaction, nil
}

// DeleteTransaction removes the entry by id, leaving the relative order of
// all other entries unchanged.
func (a *apiImpl) DeleteTransaction(txID string) error {
	if err := a.transactionValidator.ValidateID(txID); err != nil {
		return err
	}

	next := make([]domain.Transaction, 0, len(a.transactions))
	for _, t := range a.transactions {
		if t.ID != txID {
			next = append(next, t)
		}
	}
	if len(next) == len(a.transactions) {
		return errors.NewNotFoundError("transaction", txID)
	}

	if err := a.ledgerRepo.Save(next); err != nil {
		return err
	}
	a.transactions = next
	return nil
}

// ListTransactions returns the windowed entries newest-first, the order the
// history view shows them in. The underlying collection keeps entry order.
func (a *apiImpl) ListTransactions(w window.Window) ([]domain.Transaction, error) {
	filtered := window.Filter(a.transactions, transactionDate, w, a.now())
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].OccurredOn.After(filtered[j].OccurredOn)
	})
	return filtered, nil
}

// LedgerSummary computes the windowed totals.
func (a *apiImpl) LedgerSummary(w window.Window) (report.Summary, error) {
	filtered := window.Filter(a.transactions, transactionDate, w, a.now())
	return report.Summarize(filtered), nil
}

// RunningBalance computes the windowed running-balance series.
func (a *apiImpl) RunningBalance(w window.Window) ([]report.BalancePoint, error) {
	filtered := window.Filter(a.transactions, transactionDate, w, a.now())
	return report.RunningBalance(filtered), nil
}

// AddTask validates and prepends a new task. New tasks go to the front of
// the list, matching the original newest-first insertion.
func (a *apiImpl) AddTask(text string, dueDate dates.Date) (*domain.Task, error) {
	if err := a.taskValidator.ValidateText(text); err != nil {
		return nil, err
	}

	task := domain.Task{
		ID:        id.New(),
		Text:      a.taskValidator.CleanText(text),
		Completed: false,
		CreatedAt: time.Now(),
		DueDate:   dueDate,
	}

	next := make([]domain.Task, 0, len(a.tasks)+1)
	next = append(next, task)
	next = append(next, a.tasks...)

	if err := a.taskRepo.Save(next); err != nil {
		return nil, err
	}
	a.tasks = next
	return &task, nil
}

// ToggleTask flips the completion flag of the task. All other fields stay
// untouched.
func (a *apiImpl) ToggleTask(taskID string) (*domain.Task, error) {
	if err := a.taskValidator.ValidateID(taskID); err != nil {
		return nil, err
	}

	next := make([]domain.Task, len(a.tasks))
	copy(next, a.tasks)

	var toggled *domain.Task
	for i := range next {
		if next[i].ID == taskID {
			next[i].Completed = !next[i].Completed
			toggled = &next[i]
			break
		}
	}
	if toggled == nil {
		return nil, errors.NewNotFoundError("task", taskID)
	}

	if err := a.taskRepo.Save(next); err != nil {
		return nil, err
	}
	a.tasks = next
	return toggled, nil
}

// EditTask replaces the task's text. Only the text changes; the due date is
// fixed at creation.
func (a *apiImpl) EditTask(taskID string, text string) (*domain.Task, error) {
	if err := a.taskValidator.ValidateID(taskID); err != nil {
		return nil, err
	}
	if err := a.taskValidator.ValidateText(text); err != nil {
		return nil, err
	}

	next := make([]domain.Task, len(a.tasks))
	copy(next, a.tasks)

	var edited *domain.Task
	for i := range next {
		if next[i].ID == taskID {
			next[i].Text = a.taskValidator.CleanText(text)
			edited = &next[i]
			break
		}
	}
	if edited == nil {
		return nil, errors.NewNotFoundError("task", taskID)
	}

	if err := a.taskRepo.Save(next); err != nil {
		return nil, err
	}
	a.tasks = next
	return edited, nil
}

// DeleteTask removes the task by id, leaving the relative order of all other
// tasks unchanged.
func (a *apiImpl) DeleteTask(taskID string) error {
	if err := a.taskValidator.ValidateID(taskID); err != nil {
		return err
	}

	next := make([]domain.Task, 0, len(a.tasks))
	for _, t := range a.tasks {
		if t.ID != taskID {
			next = append(next, t)
		}
	}
	if len(next) == len(a.tasks) {
		return errors.NewNotFoundError("task", taskID)
	}

	if err := a.taskRepo.Save(next); err != nil {
		return err
	}
	a.tasks = next
	return nil
}

// ListTasks returns the windowed tasks in stored order with their
// overdue/due-today flags computed against the current reference date.
func (a *apiImpl) ListTasks(w window.Window) ([]TaskView, error) {
	today := a.now()
	filtered := window.Filter(a.tasks, taskDate, w, today)

	views := make([]TaskView, len(filtered))
	for i, t := range filtered {
		views[i] = TaskView{
			Task:     t,
			Overdue:  report.IsOverdue(t, today),
			DueToday: report.IsDueToday(t, today),
		}
	}
	return views, nil
}

func transactionDate(t domain.Transaction) dates.Date { return t.OccurredOn }

func taskDate(t domain.Task) dates.Date { return t.DueDate }
