package handler

import (
	"errors"
	"net/http"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/services/auction/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

type BiddingServiceInterface interface {
	PlaceBid(b *model.Bid) (model.Bid, error)
	GetBidsForProduct(productID string) ([]model.Bid, error)
	GetWinningBid(productID string) (model.Bid, error)
	GetProductsForBidder(bidderID string) ([]model.Product, error)
}

type BidHandler struct {
	service BiddingServiceInterface
}

func NewBidHandler(service BiddingServiceInterface) *BidHandler {
	return &BidHandler{service: service}
}

// PlaceBidHandler handles POST /bids
func (h *BidHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RecordAdmission("bid", false)
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(&model.Bid{
		ProductID: req.ProductID,
		BidderID:  req.BidderID,
		Amount:    req.Amount,
		Currency:  req.Currency,
	})
	utils.RecordAdmission("bid", err == nil)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, toBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.BidID,
		"product_id": bid.ProductID,
		"bidder_id":  bid.BidderID,
		"amount":     bid.Amount.String(),
	})
}

// GetBidsByProductHandler handles GET /products/:product_id/bids
func (h *BidHandler) GetBidsByProductHandler(c *gin.Context) {
	productID := c.Param("product_id")
	bids, err := h.service.GetBidsForProduct(productID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		helpers.RespondError(c, "GetBidsByProductHandler", err)
		return
	}

	out := make([]helpers.BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, toBidResponse(b))
	}
	utils.JSONResponse(c, http.StatusOK, out, "bids retrieved successfully")
}

// GetWinningBidHandler handles GET /products/:product_id/winning
func (h *BidHandler) GetWinningBidHandler(c *gin.Context) {
	productID := c.Param("product_id")
	bid, err := h.service.GetWinningBid(productID)
	if err != nil {
		// For auction, winning bid not found -> 404
		if errors.Is(err, auctionerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no winning bid found")
			utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"product_id": productID})
			return
		}
		helpers.RespondError(c, "GetWinningBidHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, toBidResponse(bid), "winning bid retrieved successfully")
}

// GetProductsByBidderHandler handles GET /users/:user_id/products
func (h *BidHandler) GetProductsByBidderHandler(c *gin.Context) {
	bidderID := c.Param("user_id")
	products, err := h.service.GetProductsForBidder(bidderID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNotFound) {
		helpers.RespondError(c, "GetProductsByBidderHandler", err)
		return
	}

	out := make([]helpers.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	utils.JSONResponse(c, http.StatusOK, out, "products retrieved successfully")
}

func toBidResponse(b model.Bid) helpers.BidResponse {
	return helpers.BidResponse{
		BidID:     b.BidID,
		ProductID: b.ProductID,
		BidderID:  b.BidderID,
		Amount:    b.Amount.String(),
		Currency:  b.Currency,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
}
