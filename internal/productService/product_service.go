package product

import (
	"fmt"
	"time"

	"github.com/agnivade/levenshtein"

	"auction-engine/internal/auctionerrors"
	condition "auction-engine/internal/conditionService"
	"auction-engine/internal/keymutex"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	scoring "auction-engine/internal/scoringService"
	"auction-engine/utils"
)

const maxDescriptionLen = 500

// startSkew is how far in the past a start date may lie before the listing
// is rejected. Covers the gap between the caller stamping "now" and this
// service reading the clock.
const startSkew = time.Second

// Service decides whether a product may be listed. The limit checks and the
// insert run under a per-seller lock so two concurrent listings cannot both
// observe the same free slot.
type Service struct {
	products    repository.ProductStore
	conditions  *condition.Service
	scoring     *scoring.Service
	sellerLocks *keymutex.KeyMutex
}

// NewService creates a new product admission service.
func NewService(products repository.ProductStore, conditions *condition.Service, scorer *scoring.Service) *Service {
	return &Service{
		products:    products,
		conditions:  conditions,
		scoring:     scorer,
		sellerLocks: keymutex.New(),
	}
}

// AddProduct validates a candidate listing against the admission rules and
// persists it. The first failed rule wins.
func (s *Service) AddProduct(p *model.Product) (model.Product, error) {
	if p == nil {
		utils.Warn("Attempted to add a null product.", nil)
		return model.Product{}, fmt.Errorf("service: %w - missing product", auctionerrors.ErrNullInput)
	}

	now := time.Now().UTC()
	if reason := validateProduct(p, now); reason != "" {
		utils.Warn("Attempted to add an invalid product.", map[string]any{"seller_id": p.SellerID, "reason": reason})
		return model.Product{}, fmt.Errorf("service: %w - %s", auctionerrors.ErrValidation, reason)
	}

	unlock := s.sellerLocks.Lock(p.SellerID)
	defer unlock()

	limit, err := s.scoring.LimitOf(p.SellerID)
	if err != nil {
		return model.Product{}, fmt.Errorf("service: failed to compute limit for seller %s: %w", p.SellerID, err)
	}
	active, err := s.products.CountActiveBySeller(p.SellerID, now)
	if err != nil {
		return model.Product{}, fmt.Errorf("service: failed to count auctions for seller %s: %w", p.SellerID, err)
	}
	if active >= limit {
		utils.Warn("Attempted to exceed the auction limit.", map[string]any{"seller_id": p.SellerID, "limit": limit})
		return model.Product{}, fmt.Errorf("service: %w - seller auction limit %d reached", auctionerrors.ErrLimitExceeded, limit)
	}

	m, err := s.conditions.M()
	if err != nil {
		return model.Product{}, err
	}
	inCategory, err := s.products.CountActiveBySellerInCategory(p.SellerID, p.CategoryID, p.StartDate, p.EndDate)
	if err != nil {
		return model.Product{}, fmt.Errorf("service: failed to count category auctions for seller %s: %w", p.SellerID, err)
	}
	if inCategory >= m {
		utils.Warn("Attempted to exceed the category auction limit.", map[string]any{"seller_id": p.SellerID, "category_id": p.CategoryID, "limit": m})
		return model.Product{}, fmt.Errorf("service: %w - category auction limit %d reached", auctionerrors.ErrLimitExceeded, m)
	}

	l, err := s.conditions.L()
	if err != nil {
		return model.Product{}, err
	}
	descriptions, err := s.products.GetAllDescriptions()
	if err != nil {
		return model.Product{}, fmt.Errorf("service: failed to get product descriptions: %w", err)
	}
	for _, d := range descriptions {
		if levenshtein.ComputeDistance(p.Description, d) <= l {
			utils.Warn("Attempted to add a too similar product description.", map[string]any{"seller_id": p.SellerID})
			return model.Product{}, fmt.Errorf("service: %w - within edit distance %d of an existing listing", auctionerrors.ErrSimilarDescription, l)
		}
	}

	stored := *p
	if stored.ProductID == "" {
		stored.ProductID = utils.GenerateID()
	}
	stored.CreatedAt = now
	if err := s.products.AddProduct(stored); err != nil {
		return model.Product{}, fmt.Errorf("service: failed to persist product for seller %s: %w", p.SellerID, err)
	}
	return stored, nil
}

// validateProduct returns an empty string when the candidate is well formed,
// otherwise the reason it is not.
func validateProduct(p *model.Product, now time.Time) string {
	switch {
	case len(p.Description) == 0 || len(p.Description) > maxDescriptionLen:
		return "description out of bounds"
	case p.SellerID == "":
		return "missing seller"
	case p.CategoryID == "":
		return "missing category"
	case p.Currency == "":
		return "missing currency"
	case !p.StartingPrice.IsPositive():
		return "non-positive starting price"
	case p.StartDate.IsZero() || p.EndDate.IsZero():
		return "missing auction dates"
	case !p.EndDate.After(p.StartDate):
		return "end date not after start date"
	case p.StartDate.Before(now.Add(-startSkew)):
		return "start date in the past"
	}
	return ""
}

// GetProduct returns a product by id.
func (s *Service) GetProduct(id string) (model.Product, error) {
	if id == "" {
		return model.Product{}, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrValidation)
	}
	p, err := s.products.GetProductByID(id)
	if err != nil {
		return model.Product{}, fmt.Errorf("service: failed to get product %s: %w", id, err)
	}
	return p, nil
}

// GetAllProducts returns every persisted listing.
func (s *Service) GetAllProducts() ([]model.Product, error) {
	products, err := s.products.GetAllProducts()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list products: %w", err)
	}
	return products, nil
}
