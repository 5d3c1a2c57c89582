// Package jsonfile implements the project repository over the flat-file
// store. Mutations run inside the collection's read-modify-write lock so two
// concurrent writers cannot silently drop each other's change.
package jsonfile

import (
	"github.com/frahmantamala/project-tracker/internal/project"
	"github.com/frahmantamala/project-tracker/internal/storage/jsonstore"
	"github.com/spf13/afero"
)

type Repository struct {
	collection *jsonstore.Collection[project.Project]
}

func NewRepository(fs afero.Fs, path string) *Repository {
	return &Repository{collection: jsonstore.New[project.Project](fs, path)}
}

func (r *Repository) GetAll() ([]project.Project, error) {
	return r.collection.ReadAll()
}

func (r *Repository) GetByID(id string) (*project.Project, error) {
	projects, err := r.collection.ReadAll()
	if err != nil {
		return nil, err
	}

	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}

	return nil, project.ErrNotFound
}

func (r *Repository) Insert(p project.Project) error {
	return r.collection.Update(func(projects []project.Project) ([]project.Project, error) {
		return append(projects, p), nil
	})
}

// UpdateByID applies mutate to the stored record under the collection lock
// and returns the persisted result.
func (r *Repository) UpdateByID(id string, mutate func(*project.Project)) (*project.Project, error) {
	var updated *project.Project

	err := r.collection.Update(func(projects []project.Project) ([]project.Project, error) {
		for i := range projects {
			if projects[i].ID == id {
				mutate(&projects[i])
				clone := projects[i]
				updated = &clone
				return projects, nil
			}
		}
		return nil, project.ErrNotFound
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the record; it reports project.ErrNotFound unless the
// collection actually shrank.
func (r *Repository) Delete(id string) error {
	return r.collection.Update(func(projects []project.Project) ([]project.Project, error) {
		kept := make([]project.Project, 0, len(projects))
		for _, p := range projects {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		if len(kept) == len(projects) {
			return nil, project.ErrNotFound
		}
		return kept, nil
	})
}
