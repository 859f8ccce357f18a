package rating

import (
	"errors"
	"fmt"
	"time"

	"auction-engine/internal/auctionerrors"
	condition "auction-engine/internal/conditionService"
	"auction-engine/internal/keymutex"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
)

// Service decides whether a post-auction rating may be recorded. Only the
// seller and the winning bidder of a closed auction may rate each other,
// once per (rater, product) pair. The duplicate check and the insert run
// under a per-(rater, product) lock.
type Service struct {
	ratings     repository.RatingStore
	products    repository.ProductStore
	bids        repository.BidStore
	conditions  *condition.Service
	ratingLocks *keymutex.KeyMutex
}

// NewService creates a new rating admission service.
func NewService(ratings repository.RatingStore, products repository.ProductStore, bids repository.BidStore, conditions *condition.Service) *Service {
	return &Service{
		ratings:     ratings,
		products:    products,
		bids:        bids,
		conditions:  conditions,
		ratingLocks: keymutex.New(),
	}
}

// AddRating validates a candidate rating against the admission rules and
// persists it. The first failed rule wins. Once recorded, the rating feeds
// the scoring engine on its very next computation.
func (s *Service) AddRating(r *model.Rating) (model.Rating, error) {
	if r == nil {
		utils.Warn("Attempted to add a null rating.", nil)
		return model.Rating{}, fmt.Errorf("service: %w - missing rating", auctionerrors.ErrNullInput)
	}

	sMax, err := s.conditions.S()
	if err != nil {
		return model.Rating{}, err
	}
	if r.ProductID == "" || r.RaterID == "" || r.RatedID == "" || r.Score < 1 || r.Score > sMax {
		utils.Warn("Attempted to add an invalid rating.", map[string]any{"product_id": r.ProductID, "rater_id": r.RaterID})
		return model.Rating{}, fmt.Errorf("service: %w - missing rating fields or score outside [1, %d]", auctionerrors.ErrValidation, sMax)
	}

	product, err := s.products.GetProductByID(r.ProductID)
	if errors.Is(err, auctionerrors.ErrNotFound) {
		utils.Warn("Attempted to add an invalid rating.", map[string]any{"product_id": r.ProductID, "reason": "unknown product"})
		return model.Rating{}, fmt.Errorf("service: %w - unknown product %s", auctionerrors.ErrValidation, r.ProductID)
	} else if err != nil {
		return model.Rating{}, fmt.Errorf("service: failed to get product %s: %w", r.ProductID, err)
	}

	now := time.Now().UTC()
	if !product.EndedAt(now) {
		utils.Warn("Attempted to rate an auction that has not ended.", map[string]any{"product_id": r.ProductID, "rater_id": r.RaterID})
		return model.Rating{}, fmt.Errorf("service: %w - auction ends %s", auctionerrors.ErrOutsideTimeWindow, product.EndDate.Format(time.RFC3339))
	}

	winning, err := s.bids.GetHighestBid(r.ProductID)
	if errors.Is(err, auctionerrors.ErrNoBids) {
		// No winner exists, so no seller-winner pair can rate.
		utils.Warn("Attempted to rate outside the seller-winner pair.", map[string]any{"product_id": r.ProductID, "rater_id": r.RaterID})
		return model.Rating{}, fmt.Errorf("service: %w - auction had no bids", auctionerrors.ErrRoleMismatch)
	} else if err != nil {
		return model.Rating{}, fmt.Errorf("service: failed to get winning bid for product %s: %w", r.ProductID, err)
	}

	sellerRatesWinner := r.RaterID == product.SellerID && r.RatedID == winning.BidderID
	winnerRatesSeller := r.RaterID == winning.BidderID && r.RatedID == product.SellerID
	if !sellerRatesWinner && !winnerRatesSeller {
		utils.Warn("Attempted to rate outside the seller-winner pair.", map[string]any{"product_id": r.ProductID, "rater_id": r.RaterID})
		return model.Rating{}, fmt.Errorf("service: %w - rater and rated must be the seller and winning bidder", auctionerrors.ErrRoleMismatch)
	}

	unlock := s.ratingLocks.Lock(r.RaterID + "|" + r.ProductID)
	defer unlock()

	if _, err := s.ratings.GetRatingByRaterAndProduct(r.RaterID, r.ProductID); err == nil {
		utils.Warn("Attempted to add an already existing rating.", map[string]any{"product_id": r.ProductID, "rater_id": r.RaterID})
		return model.Rating{}, fmt.Errorf("service: %w - rating by %s for product %s", auctionerrors.ErrDuplicate, r.RaterID, r.ProductID)
	} else if !errors.Is(err, auctionerrors.ErrNotFound) {
		return model.Rating{}, fmt.Errorf("service: failed to check existing rating: %w", err)
	}

	stored := *r
	if stored.RatingID == "" {
		stored.RatingID = utils.GenerateID()
	}
	stored.CreatedAt = now
	if err := s.ratings.AddRating(stored); err != nil {
		return model.Rating{}, fmt.Errorf("service: failed to persist rating for product %s by user %s: %w", r.ProductID, r.RaterID, err)
	}
	return stored, nil
}

// GetRatingsForUser returns the ratings a user has received, most recent
// first.
func (s *Service) GetRatingsForUser(userID string) ([]model.Rating, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrValidation)
	}
	ratings, err := s.ratings.GetRatingsByRatedUser(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get ratings for user %s: %w", userID, err)
	}
	return ratings, nil
}
