package condition

import (
	"errors"
	"fmt"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
)

const (
	maxNameLen        = 15
	maxDescriptionLen = 100
)

// Service is the registry of named numeric thresholds that parameterize the
// admission rules. Values are read through on every access, never cached, so
// runtime updates take effect immediately.
type Service struct {
	repo repository.ConditionStore
}

// NewService creates a new condition registry over the given store.
func NewService(repo repository.ConditionStore) *Service {
	return &Service{repo: repo}
}

// AddCondition validates and persists a new condition.
func (s *Service) AddCondition(c *model.Condition) (model.Condition, error) {
	if c == nil {
		utils.Warn("Attempted to add a null condition.", nil)
		return model.Condition{}, fmt.Errorf("service: %w - missing condition", auctionerrors.ErrNullInput)
	}
	if len(c.Name) == 0 || len(c.Name) > maxNameLen || len(c.Description) == 0 || len(c.Description) > maxDescriptionLen {
		utils.Warn("Attempted to add an invalid condition.", map[string]any{"name": c.Name})
		return model.Condition{}, fmt.Errorf("service: %w - condition name or description out of bounds", auctionerrors.ErrValidation)
	}

	if _, err := s.repo.GetConditionByName(c.Name); err == nil {
		utils.Warn("Attempted to add an already existing condition.", map[string]any{"name": c.Name})
		return model.Condition{}, fmt.Errorf("service: %w - condition %s", auctionerrors.ErrDuplicate, c.Name)
	} else if !errors.Is(err, auctionerrors.ErrNotFound) {
		return model.Condition{}, fmt.Errorf("service: failed to check condition name %s: %w", c.Name, err)
	}

	stored := *c
	if stored.ConditionID == "" {
		stored.ConditionID = utils.GenerateID()
	}
	if err := s.repo.AddCondition(stored); err != nil {
		return model.Condition{}, fmt.Errorf("service: failed to persist condition %s: %w", stored.Name, err)
	}
	return stored, nil
}

// GetByName returns the condition with the given name.
func (s *Service) GetByName(name string) (model.Condition, error) {
	c, err := s.repo.GetConditionByName(name)
	if err != nil {
		return model.Condition{}, fmt.Errorf("service: failed to get condition %s: %w", name, err)
	}
	return c, nil
}

// GetAll returns every registered condition.
func (s *Service) GetAll() ([]model.Condition, error) {
	conditions, err := s.repo.GetAllConditions()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list conditions: %w", err)
	}
	return conditions, nil
}

// UpdateCondition changes an existing condition. Renaming to a name held by
// a different condition is refused.
func (s *Service) UpdateCondition(c *model.Condition) (model.Condition, error) {
	if c == nil {
		utils.Warn("Attempted to update a null condition.", nil)
		return model.Condition{}, fmt.Errorf("service: %w - missing condition", auctionerrors.ErrNullInput)
	}
	if len(c.Name) == 0 || len(c.Name) > maxNameLen || len(c.Description) == 0 || len(c.Description) > maxDescriptionLen {
		utils.Warn("Attempted to update an invalid condition.", map[string]any{"name": c.Name})
		return model.Condition{}, fmt.Errorf("service: %w - condition name or description out of bounds", auctionerrors.ErrValidation)
	}

	if _, err := s.repo.GetConditionByID(c.ConditionID); err != nil {
		utils.Warn("Attempted to update a non-existing condition.", map[string]any{"condition_id": c.ConditionID})
		return model.Condition{}, fmt.Errorf("service: failed to get condition %s: %w", c.ConditionID, err)
	}

	if existing, err := s.repo.GetConditionByName(c.Name); err == nil && existing.ConditionID != c.ConditionID {
		utils.Warn("Attempted to add an already existing condition.", map[string]any{"name": c.Name})
		return model.Condition{}, fmt.Errorf("service: %w - condition %s", auctionerrors.ErrDuplicate, c.Name)
	} else if err != nil && !errors.Is(err, auctionerrors.ErrNotFound) {
		return model.Condition{}, fmt.Errorf("service: failed to check condition name %s: %w", c.Name, err)
	}

	if err := s.repo.UpdateCondition(*c); err != nil {
		return model.Condition{}, fmt.Errorf("service: failed to update condition %s: %w", c.ConditionID, err)
	}
	return *c, nil
}

// DeleteCondition removes a condition by id.
func (s *Service) DeleteCondition(id string) error {
	if err := s.repo.DeleteCondition(id); err != nil {
		utils.Warn("Attempted to delete a non-existing condition.", map[string]any{"condition_id": id})
		return fmt.Errorf("service: failed to delete condition %s: %w", id, err)
	}
	return nil
}

// Seed inserts the given conditions unless a condition with the same name
// already exists. Used once at bootstrap.
func (s *Service) Seed(conditions []model.Condition) error {
	for i := range conditions {
		_, err := s.repo.GetConditionByName(conditions[i].Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, auctionerrors.ErrNotFound) {
			return fmt.Errorf("service: failed to seed condition %s: %w", conditions[i].Name, err)
		}
		if _, err := s.AddCondition(&conditions[i]); err != nil {
			return fmt.Errorf("service: failed to seed condition %s: %w", conditions[i].Name, err)
		}
	}
	return nil
}

func (s *Service) valueOf(name string) (int, error) {
	c, err := s.repo.GetConditionByName(name)
	if err != nil {
		return 0, fmt.Errorf("service: condition %s is not registered: %w", name, err)
	}
	return c.Value, nil
}

// K returns the max number of simultaneous active/future auctions per seller.
func (s *Service) K() (int, error) { return s.valueOf(model.ConditionK) }

// M returns the per-category bound on a seller's overlapping auctions.
func (s *Service) M() (int, error) { return s.valueOf(model.ConditionM) }

// S returns the maximum possible reputation score.
func (s *Service) S() (int, error) { return s.valueOf(model.ConditionS) }

// N returns how many recent ratings feed the reputation score.
func (s *Service) N() (int, error) { return s.valueOf(model.ConditionN) }

// T returns the perfect-score count that grants the full listing limit.
func (s *Service) T() (int, error) { return s.valueOf(model.ConditionT) }

// L returns the edit distance at or below which two product descriptions
// are considered duplicates.
func (s *Service) L() (int, error) { return s.valueOf(model.ConditionL) }
