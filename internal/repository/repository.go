package repository

import (
	"time"

	model "auction-engine/internal/models"
)

//go:generate mockgen -destination=mocks.go -package=repository auction-engine/internal/repository ConditionStore,CategoryStore,ProductStore,BidStore,RatingStore

// ConditionStore persists the named numeric thresholds.
type ConditionStore interface {
	AddCondition(c model.Condition) error
	GetConditionByID(id string) (model.Condition, error)
	GetConditionByName(name string) (model.Condition, error)
	GetAllConditions() ([]model.Condition, error)
	UpdateCondition(c model.Condition) error
	DeleteCondition(id string) error
}

// CategoryStore persists the category hierarchy.
type CategoryStore interface {
	AddCategory(c model.Category) error
	GetCategoryByID(id string) (model.Category, error)
	GetCategoryByName(name string) (model.Category, error)
	GetAllCategories() ([]model.Category, error)
	UpdateCategory(c model.Category) error
	DeleteCategory(id string) error
}

// ProductStore persists auction listings and answers the aggregate queries
// the admission rules cannot compute themselves.
type ProductStore interface {
	AddProduct(p model.Product) error
	GetProductByID(id string) (model.Product, error)
	GetAllProducts() ([]model.Product, error)
	DeleteProduct(id string) error

	// CountActiveBySeller counts the seller's auctions that are still
	// running or have not started yet at the given instant.
	CountActiveBySeller(sellerID string, now time.Time) (int, error)
	// CountActiveBySellerInCategory counts the seller's auctions in one
	// category whose window overlaps [start, end).
	CountActiveBySellerInCategory(sellerID, categoryID string, start, end time.Time) (int, error)
	// GetAllDescriptions returns every persisted product description.
	GetAllDescriptions() ([]string, error)
	// GetProductsByBidder returns the products a user has placed bids on.
	GetProductsByBidder(bidderID string) ([]model.Product, error)
}

// BidStore persists bids.
type BidStore interface {
	RecordBid(b model.Bid) error
	GetBidsByProduct(productID string) ([]model.Bid, error)
	// GetHighestBid returns the highest bid on a product; ties go to the
	// earlier bid. Returns ErrNoBids when the product has none.
	GetHighestBid(productID string) (model.Bid, error)
	// CountActiveByBidder counts the user's bids on auctions whose window
	// contains the given instant.
	CountActiveByBidder(bidderID string, now time.Time) (int, error)
}

// RatingStore persists post-auction ratings.
type RatingStore interface {
	AddRating(r model.Rating) error
	// GetRatingsByRatedUser returns the ratings received by a user, most
	// recent first.
	GetRatingsByRatedUser(userID string) ([]model.Rating, error)
	GetRatingByRaterAndProduct(raterID, productID string) (model.Rating, error)
}

// UserStore persists user identities.
type UserStore interface {
	AddUser(u model.User) error
	GetUserByID(id string) (model.User, error)
}

// Store is the full persistence capability the engine is wired against.
type Store interface {
	ConditionStore
	CategoryStore
	ProductStore
	BidStore
	RatingStore
	UserStore
}
