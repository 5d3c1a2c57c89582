// Package jsonfile implements the user repository over the flat-file store.
package jsonfile

import (
	"github.com/frahmantamala/project-tracker/internal/storage/jsonstore"
	"github.com/frahmantamala/project-tracker/internal/user"
	"github.com/spf13/afero"
)

type Repository struct {
	collection *jsonstore.Collection[user.User]
}

func NewRepository(fs afero.Fs, path string) *Repository {
	return &Repository{collection: jsonstore.New[user.User](fs, path)}
}

func (r *Repository) GetAll() ([]user.User, error) {
	return r.collection.ReadAll()
}

func (r *Repository) GetByID(id string) (*user.User, error) {
	users, err := r.collection.ReadAll()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}

	return nil, user.ErrNotFound
}

// GetByUsername matches case-sensitively; "Admin" and "admin" are distinct.
func (r *Repository) GetByUsername(username string) (*user.User, error) {
	users, err := r.collection.ReadAll()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}

	return nil, user.ErrNotFound
}
