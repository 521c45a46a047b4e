package repository

import (
	"encoding/json"

	"lifetrack/internal/domain"
	"lifetrack/internal/errors"
	"lifetrack/internal/storage"
)

// TasksKey is the store key the task collection persists under.
const TasksKey = "todos"

// TaskRepository loads and saves the task collection.
type TaskRepository struct {
	store storage.Store
}

// NewTaskRepository creates a task repository over the given store.
func NewTaskRepository(store storage.Store) *TaskRepository {
	return &TaskRepository{store: store}
}

// Load returns the persisted tasks in stored order. A missing key yields an
// empty collection. Malformed payloads yield a CorruptState error.
func (r *TaskRepository) Load() ([]domain.Task, error) {
	raw, ok, err := r.store.Get(TasksKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var records []taskRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, errors.NewCorruptStateError(TasksKey, err)
	}

	tasks := make([]domain.Task, 0, len(records))
	for _, record := range records {
		t, err := fromTaskRecord(record)
		if err != nil {
			return nil, errors.NewCorruptStateError(TasksKey, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Save persists the whole collection, preserving order.
func (r *TaskRepository) Save(tasks []domain.Task) error {
	records := make([]taskRecord, len(tasks))
	for i, t := range tasks {
		records[i] = toTaskRecord(t)
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return errors.NewPersistenceError("encode tasks", err)
	}
	return r.store.Set(TasksKey, raw)
}
