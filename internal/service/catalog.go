// Package service contains the listing and authentication services.
package service

import (
	"context"
	"fmt"

	"github.com/zahira986-id/Cat-Galery/internal/model"
	"github.com/zahira986-id/Cat-Galery/internal/repository"
)

// DefaultPageLimit matches the client's standard card grid
const DefaultPageLimit = 6

// Catalog orchestrates the filtered, paginated cat listing and the
// plain CRUD operations.
type Catalog struct {
	store *repository.Store
}

// NewCatalog constructs a Catalog backed by the given store
func NewCatalog(store *repository.Store) *Catalog {
	return &Catalog{store: store}
}

// List returns one page of cats plus pagination metadata. Non-positive
// page and limit values fall back to the defaults. A page beyond the
// last one yields empty data with accurate meta.
func (s *Catalog) List(ctx context.Context, page, limit int, search, tag string) (*model.CatPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	offset := (page - 1) * limit

	filter := repository.CatFilter{Search: search, Tag: tag}
	cats, total, err := s.store.ListCatsPage(ctx, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cats: %w", err)
	}
	if cats == nil {
		cats = []model.Cat{}
	}

	return &model.CatPage{
		Data: cats,
		Meta: model.PageMeta{
			TotalItems:   total,
			TotalPages:   (total + limit - 1) / limit,
			CurrentPage:  page,
			ItemsPerPage: limit,
		},
	}, nil
}

// Get returns the cat with the given id, or nil when it does not exist
func (s *Catalog) Get(ctx context.Context, id int64) (*model.Cat, error) {
	cat, err := s.store.GetCat(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get cat %d: %w", id, err)
	}
	return cat, nil
}

// Create inserts a new record and returns it with its assigned id
func (s *Catalog) Create(ctx context.Context, in model.CatInput) (*model.Cat, error) {
	id, err := s.store.CreateCat(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create cat: %w", err)
	}

	return &model.Cat{
		ID:          id,
		Name:        in.Name,
		Tag:         in.Tag,
		Descreption: in.Descreption,
		Img:         in.Img,
	}, nil
}

// Update replaces all four mutable fields. Updating a missing id is a
// no-op, reported as false.
func (s *Catalog) Update(ctx context.Context, id int64, in model.CatInput) (bool, error) {
	affected, err := s.store.UpdateCat(ctx, id, in)
	if err != nil {
		return false, fmt.Errorf("update cat %d: %w", id, err)
	}
	return affected > 0, nil
}

// Delete removes the record; deleting a missing id is a no-op
func (s *Catalog) Delete(ctx context.Context, id int64) error {
	if _, err := s.store.DeleteCat(ctx, id); err != nil {
		return fmt.Errorf("delete cat %d: %w", id, err)
	}
	return nil
}

// Tags returns the distinct non-empty tag values
func (s *Catalog) Tags(ctx context.Context) ([]string, error) {
	tags, err := s.store.DistinctTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}
