package helpers

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs
type AddConditionRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Value       int    `json:"value"`
}

type ConditionResponse struct {
	ConditionID string `json:"condition_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Value       int    `json:"value"`
}

type AddCategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	ParentID string `json:"parent_id"`
}

type CategoryResponse struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	ParentID   string `json:"parent_id,omitempty"`
}

type AddProductRequest struct {
	Description   string          `json:"description" binding:"required"`
	CategoryID    string          `json:"category_id" binding:"required"`
	SellerID      string          `json:"seller_id" binding:"required"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	Currency      string          `json:"currency" binding:"required"`
	StartDate     time.Time       `json:"start_date" binding:"required"`
	EndDate       time.Time       `json:"end_date" binding:"required"`
}

type ProductResponse struct {
	ProductID     string `json:"product_id"`
	Description   string `json:"description"`
	CategoryID    string `json:"category_id"`
	SellerID      string `json:"seller_id"`
	StartingPrice string `json:"starting_price"`
	Currency      string `json:"currency"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	CreatedAt     string `json:"created_at"`
}

type PlaceBidRequest struct {
	ProductID string          `json:"product_id" binding:"required"`
	BidderID  string          `json:"bidder_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency" binding:"required"`
}

type BidResponse struct {
	BidID     string `json:"bid_id"`
	ProductID string `json:"product_id"`
	BidderID  string `json:"bidder_id"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	CreatedAt string `json:"created_at"`
}

type AddRatingRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	RaterID   string `json:"rater_id" binding:"required"`
	RatedID   string `json:"rated_id" binding:"required"`
	Score     int    `json:"score" binding:"required"`
}

type RatingResponse struct {
	RatingID  string `json:"rating_id"`
	ProductID string `json:"product_id"`
	RaterID   string `json:"rater_id"`
	RatedID   string `json:"rated_id"`
	Score     int    `json:"score"`
	CreatedAt string `json:"created_at"`
}

type AddUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email"`
}

type ScoreResponse struct {
	UserID string  `json:"user_id"`
	Score  float64 `json:"score"`
}

type LimitResponse struct {
	UserID string `json:"user_id"`
	Limit  int    `json:"limit"`
}
