package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
)

// Ensure MemoryRepo implements the full store contract
var _ Store = (*MemoryRepo)(nil)

// MemoryRepo is a concurrency-safe in-memory implementation of Store.
type MemoryRepo struct {
	mu             sync.RWMutex
	conditions     map[string]model.Condition // key: conditionID
	categories     map[string]model.Category  // key: categoryID
	products       map[string]model.Product   // key: productID
	bids           map[string][]model.Bid     // key: productID -> bids in insertion order
	bidderProducts map[string][]string        // key: bidderID -> productIDs the user has bid on
	ratings        map[string]model.Rating    // key: ratingID
	users          map[string]model.User      // key: userID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		conditions:     make(map[string]model.Condition),
		categories:     make(map[string]model.Category),
		products:       make(map[string]model.Product),
		bids:           make(map[string][]model.Bid),
		bidderProducts: make(map[string][]string),
		ratings:        make(map[string]model.Rating),
		users:          make(map[string]model.User),
	}
}

// --- conditions ---

func (r *MemoryRepo) AddCondition(c model.Condition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conditions[c.ConditionID]; ok {
		return fmt.Errorf("add condition %s: %w", c.ConditionID, auctionerrors.ErrDuplicate)
	}
	r.conditions[c.ConditionID] = c
	return nil
}

func (r *MemoryRepo) GetConditionByID(id string) (model.Condition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.conditions[id]
	if !ok {
		return model.Condition{}, fmt.Errorf("get condition %s: %w", id, auctionerrors.ErrNotFound)
	}
	return c, nil
}

func (r *MemoryRepo) GetConditionByName(name string) (model.Condition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.conditions {
		if c.Name == name {
			return c, nil
		}
	}
	return model.Condition{}, fmt.Errorf("get condition by name %s: %w", name, auctionerrors.ErrNotFound)
}

func (r *MemoryRepo) GetAllConditions() ([]model.Condition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Condition, 0, len(r.conditions))
	for _, c := range r.conditions {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryRepo) UpdateCondition(c model.Condition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conditions[c.ConditionID]; !ok {
		return fmt.Errorf("update condition %s: %w", c.ConditionID, auctionerrors.ErrNotFound)
	}
	r.conditions[c.ConditionID] = c
	return nil
}

func (r *MemoryRepo) DeleteCondition(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conditions[id]; !ok {
		return fmt.Errorf("delete condition %s: %w", id, auctionerrors.ErrNotFound)
	}
	delete(r.conditions, id)
	return nil
}

// --- categories ---

func (r *MemoryRepo) AddCategory(c model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[c.CategoryID]; ok {
		return fmt.Errorf("add category %s: %w", c.CategoryID, auctionerrors.ErrDuplicate)
	}
	r.categories[c.CategoryID] = c
	return nil
}

func (r *MemoryRepo) GetCategoryByID(id string) (model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.categories[id]
	if !ok {
		return model.Category{}, fmt.Errorf("get category %s: %w", id, auctionerrors.ErrNotFound)
	}
	return c, nil
}

func (r *MemoryRepo) GetCategoryByName(name string) (model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return model.Category{}, fmt.Errorf("get category by name %s: %w", name, auctionerrors.ErrNotFound)
}

func (r *MemoryRepo) GetAllCategories() ([]model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryRepo) UpdateCategory(c model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[c.CategoryID]; !ok {
		return fmt.Errorf("update category %s: %w", c.CategoryID, auctionerrors.ErrNotFound)
	}
	r.categories[c.CategoryID] = c
	return nil
}

func (r *MemoryRepo) DeleteCategory(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[id]; !ok {
		return fmt.Errorf("delete category %s: %w", id, auctionerrors.ErrNotFound)
	}
	delete(r.categories, id)
	return nil
}

// --- products ---

func (r *MemoryRepo) AddProduct(p model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.ProductID]; ok {
		return fmt.Errorf("add product %s: %w", p.ProductID, auctionerrors.ErrDuplicate)
	}
	r.products[p.ProductID] = p
	return nil
}

func (r *MemoryRepo) GetProductByID(id string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return model.Product{}, fmt.Errorf("get product %s: %w", id, auctionerrors.ErrNotFound)
	}
	return p, nil
}

func (r *MemoryRepo) GetAllProducts() ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRepo) DeleteProduct(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("delete product %s: %w", id, auctionerrors.ErrNotFound)
	}
	delete(r.products, id)
	return nil
}

func (r *MemoryRepo) CountActiveBySeller(sellerID string, now time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, p := range r.products {
		if p.SellerID == sellerID && now.Before(p.EndDate) {
			count++
		}
	}
	return count, nil
}

func (r *MemoryRepo) CountActiveBySellerInCategory(sellerID, categoryID string, start, end time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, p := range r.products {
		if p.SellerID == sellerID && p.CategoryID == categoryID && p.Overlaps(start, end) {
			count++
		}
	}
	return count, nil
}

func (r *MemoryRepo) GetAllDescriptions() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p.Description)
	}
	return out, nil
}

func (r *MemoryRepo) GetProductsByBidder(bidderID string) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids, ok := r.bidderProducts[bidderID]
	if !ok || len(ids) == 0 {
		return nil, fmt.Errorf("get products for bidder %s: %w", bidderID, auctionerrors.ErrNotFound)
	}

	products := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		if p, exists := r.products[id]; exists {
			products = append(products, p)
		}
	}
	return products, nil
}

// --- bids ---

func (r *MemoryRepo) RecordBid(b model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[b.ProductID]; !ok {
		return fmt.Errorf("record bid for product %s: %w", b.ProductID, auctionerrors.ErrNotFound)
	}

	r.bids[b.ProductID] = append(r.bids[b.ProductID], b)

	for _, id := range r.bidderProducts[b.BidderID] {
		if id == b.ProductID {
			return nil
		}
	}
	r.bidderProducts[b.BidderID] = append(r.bidderProducts[b.BidderID], b.ProductID)

	return nil
}

func (r *MemoryRepo) GetBidsByProduct(productID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[productID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for product %s: %w", productID, auctionerrors.ErrNoBids)
	}
	return append([]model.Bid(nil), bids...), nil
}

func (r *MemoryRepo) GetHighestBid(productID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[productID]
	if !ok || len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("get highest bid for product %s: %w", productID, auctionerrors.ErrNoBids)
	}

	highest := bids[0]
	for _, b := range bids[1:] {
		if b.Amount.GreaterThan(highest.Amount) || (b.Amount.Equal(highest.Amount) && b.CreatedAt.Before(highest.CreatedAt)) {
			highest = b
		}
	}
	return highest, nil
}

func (r *MemoryRepo) CountActiveByBidder(bidderID string, now time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for productID, bids := range r.bids {
		p, ok := r.products[productID]
		if !ok || !p.ActiveAt(now) {
			continue
		}
		for _, b := range bids {
			if b.BidderID == bidderID {
				count++
			}
		}
	}
	return count, nil
}

// --- ratings ---

func (r *MemoryRepo) AddRating(rt model.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ratings[rt.RatingID]; ok {
		return fmt.Errorf("add rating %s: %w", rt.RatingID, auctionerrors.ErrDuplicate)
	}
	r.ratings[rt.RatingID] = rt
	return nil
}

func (r *MemoryRepo) GetRatingsByRatedUser(userID string) ([]model.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Rating
	for _, rt := range r.ratings {
		if rt.RatedID == userID {
			out = append(out, rt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRepo) GetRatingByRaterAndProduct(raterID, productID string) (model.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rt := range r.ratings {
		if rt.RaterID == raterID && rt.ProductID == productID {
			return rt, nil
		}
	}
	return model.Rating{}, fmt.Errorf("get rating by %s for product %s: %w", raterID, productID, auctionerrors.ErrNotFound)
}

// --- users ---

func (r *MemoryRepo) AddUser(u model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.UserID]; ok {
		return fmt.Errorf("add user %s: %w", u.UserID, auctionerrors.ErrDuplicate)
	}
	r.users[u.UserID] = u
	return nil
}

func (r *MemoryRepo) GetUserByID(id string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", id, auctionerrors.ErrNotFound)
	}
	return u, nil
}
