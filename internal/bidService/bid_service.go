package bidding

import (
	"errors"
	"fmt"
	"time"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/keymutex"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	scoring "auction-engine/internal/scoringService"
	"auction-engine/utils"
)

// Service decides whether a bid may be accepted. The price-floor check, the
// bid-limit check and the insert run under a per-product lock, so a freshly
// accepted bid is the floor for the very next validation on that product.
type Service struct {
	bids         repository.BidStore
	products     repository.ProductStore
	scoring      *scoring.Service
	productLocks *keymutex.KeyMutex
}

// NewService creates a new bid admission service.
func NewService(bids repository.BidStore, products repository.ProductStore, scorer *scoring.Service) *Service {
	return &Service{
		bids:         bids,
		products:     products,
		scoring:      scorer,
		productLocks: keymutex.New(),
	}
}

// PlaceBid validates a candidate bid against the admission rules and
// persists it. The first failed rule wins.
func (s *Service) PlaceBid(b *model.Bid) (model.Bid, error) {
	if b == nil {
		utils.Warn("Attempted to add a null bid.", nil)
		return model.Bid{}, fmt.Errorf("service: %w - missing bid", auctionerrors.ErrNullInput)
	}

	now := time.Now().UTC()
	if b.ProductID == "" || b.BidderID == "" || !b.Amount.IsPositive() {
		utils.Warn("Attempted to add an invalid bid.", map[string]any{"product_id": b.ProductID, "bidder_id": b.BidderID})
		return model.Bid{}, fmt.Errorf("service: %w - missing bid fields or non-positive amount", auctionerrors.ErrValidation)
	}

	product, err := s.products.GetProductByID(b.ProductID)
	if errors.Is(err, auctionerrors.ErrNotFound) {
		utils.Warn("Attempted to add an invalid bid.", map[string]any{"product_id": b.ProductID, "reason": "unknown product"})
		return model.Bid{}, fmt.Errorf("service: %w - unknown product %s", auctionerrors.ErrValidation, b.ProductID)
	} else if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to get product %s: %w", b.ProductID, err)
	}

	if !product.ActiveAt(now) {
		utils.Warn("Attempted to bid outside the auction time window.", map[string]any{"product_id": b.ProductID, "bidder_id": b.BidderID})
		return model.Bid{}, fmt.Errorf("service: %w - auction runs %s to %s", auctionerrors.ErrOutsideTimeWindow,
			product.StartDate.Format(time.RFC3339), product.EndDate.Format(time.RFC3339))
	}
	if b.BidderID == product.SellerID {
		utils.Warn("Attempted to bid on an own auction.", map[string]any{"product_id": b.ProductID, "bidder_id": b.BidderID})
		return model.Bid{}, fmt.Errorf("service: %w - bidder %s is the seller", auctionerrors.ErrSelfBid, b.BidderID)
	}
	if b.Currency != product.Currency {
		utils.Warn("Attempted to bid with a mismatched currency.", map[string]any{"product_id": b.ProductID, "currency": b.Currency})
		return model.Bid{}, fmt.Errorf("service: %w - auction currency is %s", auctionerrors.ErrCurrencyMismatch, product.Currency)
	}

	unlock := s.productLocks.Lock(b.ProductID)
	defer unlock()

	floor := product.StartingPrice
	highest, err := s.bids.GetHighestBid(b.ProductID)
	if err == nil {
		if highest.Amount.GreaterThan(floor) {
			floor = highest.Amount
		}
	} else if !errors.Is(err, auctionerrors.ErrNoBids) {
		return model.Bid{}, fmt.Errorf("service: failed to check highest bid: %w", err)
	}
	if !b.Amount.GreaterThan(floor) {
		utils.Warn("Attempted to underbid the current price.", map[string]any{"product_id": b.ProductID, "floor": floor.String()})
		return model.Bid{}, fmt.Errorf("service: %w - current floor is %s", auctionerrors.ErrBidTooLow, floor.String())
	}

	limit, err := s.scoring.LimitOf(b.BidderID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to compute limit for bidder %s: %w", b.BidderID, err)
	}
	active, err := s.bids.CountActiveByBidder(b.BidderID, now)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to count active bids for bidder %s: %w", b.BidderID, err)
	}
	if active >= limit {
		utils.Warn("Attempted to exceed the bid limit.", map[string]any{"bidder_id": b.BidderID, "limit": limit})
		return model.Bid{}, fmt.Errorf("service: %w - bid limit %d reached", auctionerrors.ErrLimitExceeded, limit)
	}

	stored := *b
	if stored.BidID == "" {
		stored.BidID = utils.GenerateID()
	}
	stored.CreatedAt = now
	if err := s.bids.RecordBid(stored); err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to record bid for product %s by user %s: %w", b.ProductID, b.BidderID, err)
	}
	return stored, nil
}

// GetBidsForProduct returns all bids for a specific product.
func (s *Service) GetBidsForProduct(productID string) ([]model.Bid, error) {
	if productID == "" {
		return nil, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrValidation)
	}
	bids, err := s.bids.GetBidsByProduct(productID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for product %s: %w", productID, err)
	}
	return bids, nil
}

// GetWinningBid returns the highest bid for a specific product.
func (s *Service) GetWinningBid(productID string) (model.Bid, error) {
	if productID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrValidation)
	}
	winning, err := s.bids.GetHighestBid(productID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to get winning bid for product %s: %w", productID, err)
	}
	return winning, nil
}

// GetProductsForBidder returns all products a user has placed bids on.
func (s *Service) GetProductsForBidder(bidderID string) ([]model.Product, error) {
	if bidderID == "" {
		return nil, fmt.Errorf("service: %w - empty bidder ID", auctionerrors.ErrValidation)
	}
	products, err := s.products.GetProductsByBidder(bidderID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get products for bidder %s: %w", bidderID, err)
	}
	return products, nil
}
