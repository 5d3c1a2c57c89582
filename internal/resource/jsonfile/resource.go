// Package jsonfile implements the resource-allocation repository over the
// flat-file store.
package jsonfile

import (
	"github.com/frahmantamala/project-tracker/internal/resource"
	"github.com/frahmantamala/project-tracker/internal/storage/jsonstore"
	"github.com/spf13/afero"
)

type Repository struct {
	collection *jsonstore.Collection[resource.Resource]
}

func NewRepository(fs afero.Fs, path string) *Repository {
	return &Repository{collection: jsonstore.New[resource.Resource](fs, path)}
}

func (r *Repository) GetAll() ([]resource.Resource, error) {
	return r.collection.ReadAll()
}

func (r *Repository) GetByID(id string) (*resource.Resource, error) {
	resources, err := r.collection.ReadAll()
	if err != nil {
		return nil, err
	}

	for i := range resources {
		if resources[i].ID == id {
			return &resources[i], nil
		}
	}

	return nil, resource.ErrNotFound
}

func (r *Repository) Insert(res resource.Resource) error {
	return r.collection.Update(func(resources []resource.Resource) ([]resource.Resource, error) {
		return append(resources, res), nil
	})
}

func (r *Repository) UpdateByID(id string, mutate func(*resource.Resource)) (*resource.Resource, error) {
	var updated *resource.Resource

	err := r.collection.Update(func(resources []resource.Resource) ([]resource.Resource, error) {
		for i := range resources {
			if resources[i].ID == id {
				mutate(&resources[i])
				clone := resources[i]
				updated = &clone
				return resources, nil
			}
		}
		return nil, resource.ErrNotFound
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
