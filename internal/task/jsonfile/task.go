// Package jsonfile implements the task repository over the flat-file store.
package jsonfile

import (
	"github.com/frahmantamala/project-tracker/internal/storage/jsonstore"
	"github.com/frahmantamala/project-tracker/internal/task"
	"github.com/spf13/afero"
)

type Repository struct {
	collection *jsonstore.Collection[task.Task]
}

func NewRepository(fs afero.Fs, path string) *Repository {
	return &Repository{collection: jsonstore.New[task.Task](fs, path)}
}

func (r *Repository) GetAll() ([]task.Task, error) {
	return r.collection.ReadAll()
}

func (r *Repository) GetByID(id string) (*task.Task, error) {
	tasks, err := r.collection.ReadAll()
	if err != nil {
		return nil, err
	}

	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}

	return nil, task.ErrNotFound
}

func (r *Repository) Insert(t task.Task) error {
	return r.collection.Update(func(tasks []task.Task) ([]task.Task, error) {
		return append(tasks, t), nil
	})
}

func (r *Repository) UpdateByID(id string, mutate func(*task.Task)) (*task.Task, error) {
	var updated *task.Task

	err := r.collection.Update(func(tasks []task.Task) ([]task.Task, error) {
		for i := range tasks {
			if tasks[i].ID == id {
				mutate(&tasks[i])
				clone := tasks[i]
				updated = &clone
				return tasks, nil
			}
		}
		return nil, task.ErrNotFound
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *Repository) Delete(id string) error {
	return r.collection.Update(func(tasks []task.Task) ([]task.Task, error) {
		kept := make([]task.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		if len(kept) == len(tasks) {
			return nil, task.ErrNotFound
		}
		return kept, nil
	})
}
