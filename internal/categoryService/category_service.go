package category

import (
	"errors"
	"fmt"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
)

const maxNameLen = 100

// Service owns category identity and parent links. The hierarchy stays
// acyclic structurally: a parent has to be persisted before a child can
// reference it, so no link can ever point forward into a cycle.
type Service struct {
	repo repository.CategoryStore
}

// NewService creates a new category service over the given store.
func NewService(repo repository.CategoryStore) *Service {
	return &Service{repo: repo}
}

// AddCategory validates and persists a new category. Parent existence is
// trusted to the caller.
func (s *Service) AddCategory(c *model.Category) (model.Category, error) {
	if c == nil {
		utils.Warn("Attempted to add a null category.", nil)
		return model.Category{}, fmt.Errorf("service: %w - missing category", auctionerrors.ErrNullInput)
	}
	if len(c.Name) == 0 || len(c.Name) > maxNameLen {
		utils.Warn("Attempted to add an invalid category.", map[string]any{"name": c.Name})
		return model.Category{}, fmt.Errorf("service: %w - category name out of bounds", auctionerrors.ErrValidation)
	}

	if _, err := s.repo.GetCategoryByName(c.Name); err == nil {
		utils.Warn("Attempted to add an already existing category.", map[string]any{"name": c.Name})
		return model.Category{}, fmt.Errorf("service: %w - category %s", auctionerrors.ErrDuplicate, c.Name)
	} else if !errors.Is(err, auctionerrors.ErrNotFound) {
		return model.Category{}, fmt.Errorf("service: failed to check category name %s: %w", c.Name, err)
	}

	stored := *c
	if stored.CategoryID == "" {
		stored.CategoryID = utils.GenerateID()
	}
	if err := s.repo.AddCategory(stored); err != nil {
		return model.Category{}, fmt.Errorf("service: failed to persist category %s: %w", stored.Name, err)
	}
	return stored, nil
}

// GetByID returns the category with the given id.
func (s *Service) GetByID(id string) (model.Category, error) {
	c, err := s.repo.GetCategoryByID(id)
	if err != nil {
		return model.Category{}, fmt.Errorf("service: failed to get category %s: %w", id, err)
	}
	return c, nil
}

// GetByName returns the category with the given name.
func (s *Service) GetByName(name string) (model.Category, error) {
	c, err := s.repo.GetCategoryByName(name)
	if err != nil {
		return model.Category{}, fmt.Errorf("service: failed to get category %s: %w", name, err)
	}
	return c, nil
}

// GetAll returns every persisted category.
func (s *Service) GetAll() ([]model.Category, error) {
	categories, err := s.repo.GetAllCategories()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list categories: %w", err)
	}
	return categories, nil
}

// UpdateCategory changes an existing category. Renaming to a name held by a
// different category is refused.
func (s *Service) UpdateCategory(c *model.Category) (model.Category, error) {
	if c == nil {
		utils.Warn("Attempted to update a null category.", nil)
		return model.Category{}, fmt.Errorf("service: %w - missing category", auctionerrors.ErrNullInput)
	}
	if len(c.Name) == 0 || len(c.Name) > maxNameLen {
		utils.Warn("Attempted to update an invalid category.", map[string]any{"name": c.Name})
		return model.Category{}, fmt.Errorf("service: %w - category name out of bounds", auctionerrors.ErrValidation)
	}

	if _, err := s.repo.GetCategoryByID(c.CategoryID); err != nil {
		utils.Warn("Attempted to update a non-existing category.", map[string]any{"category_id": c.CategoryID})
		return model.Category{}, fmt.Errorf("service: failed to get category %s: %w", c.CategoryID, err)
	}

	if existing, err := s.repo.GetCategoryByName(c.Name); err == nil && existing.CategoryID != c.CategoryID {
		utils.Warn("Attempted to add an already existing category.", map[string]any{"name": c.Name})
		return model.Category{}, fmt.Errorf("service: %w - category %s", auctionerrors.ErrDuplicate, c.Name)
	} else if err != nil && !errors.Is(err, auctionerrors.ErrNotFound) {
		return model.Category{}, fmt.Errorf("service: failed to check category name %s: %w", c.Name, err)
	}

	if err := s.repo.UpdateCategory(*c); err != nil {
		return model.Category{}, fmt.Errorf("service: failed to update category %s: %w", c.CategoryID, err)
	}
	return *c, nil
}

// DeleteCategory removes a category by id.
func (s *Service) DeleteCategory(id string) error {
	if err := s.repo.DeleteCategory(id); err != nil {
		utils.Warn("Attempted to delete a non-existing category.", map[string]any{"category_id": id})
		return fmt.Errorf("service: failed to delete category %s: %w", id, err)
	}
	return nil
}
