package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Well-known condition names. The registry is seeded with one condition per
// name at bootstrap; every admission rule is parameterized by them.
const (
	ConditionK = "K" // max simultaneous active/future auctions per seller
	ConditionM = "M" // max simultaneous active/future auctions per seller and category
	ConditionS = "S" // maximum possible reputation score
	ConditionN = "N" // number of most recent ratings used for the score
	ConditionT = "T" // perfect-score count granting the full listing limit
	ConditionL = "L" // max edit distance before two descriptions are duplicates
)

// Condition is a named, tunable numeric threshold.
type Condition struct {
	ConditionID string `json:"condition_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Value       int    `json:"value"`
}

// Category is a node in the hierarchical product classification.
// ParentID is empty for root categories. A parent must already be persisted
// before a child references it, which keeps the graph acyclic.
type Category struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	ParentID   string `json:"parent_id,omitempty"`
}

// User represents a participant in the auction system. Score and limit are
// derived from the rating history, never stored.
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// Product represents an auction listing.
type Product struct {
	ProductID     string          `json:"product_id"`
	Description   string          `json:"description"`
	CategoryID    string          `json:"category_id"`
	SellerID      string          `json:"seller_id"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	Currency      string          `json:"currency"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ActiveAt reports whether the auction window contains t.
func (p Product) ActiveAt(t time.Time) bool {
	return !t.Before(p.StartDate) && t.Before(p.EndDate)
}

// EndedAt reports whether the auction has closed at t.
func (p Product) EndedAt(t time.Time) bool {
	return !t.Before(p.EndDate)
}

// Overlaps reports whether the auction window intersects [start, end).
func (p Product) Overlaps(start, end time.Time) bool {
	return p.StartDate.Before(end) && start.Before(p.EndDate)
}

// Bid represents a user's bid on a product.
type Bid struct {
	BidID     string          `json:"bid_id"`
	ProductID string          `json:"product_id"`
	BidderID  string          `json:"bidder_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	CreatedAt time.Time       `json:"created_at"`
}

// Rating is a post-auction score given by one side of a closed deal to the
// other. At most one rating exists per (RaterID, ProductID) pair.
type Rating struct {
	RatingID  string    `json:"rating_id"`
	ProductID string    `json:"product_id"`
	RaterID   string    `json:"rater_id"`
	RatedID   string    `json:"rated_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
