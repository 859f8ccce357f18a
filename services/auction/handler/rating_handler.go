package handler

import (
	"net/http"
	"time"

	model "auction-engine/internal/models"
	"auction-engine/services/auction/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

type RatingServiceInterface interface {
	AddRating(r *model.Rating) (model.Rating, error)
	GetRatingsForUser(userID string) ([]model.Rating, error)
}

type RatingHandler struct {
	service RatingServiceInterface
}

func NewRatingHandler(service RatingServiceInterface) *RatingHandler {
	return &RatingHandler{service: service}
}

// AddRatingHandler handles POST /ratings
func (h *RatingHandler) AddRatingHandler(c *gin.Context) {
	var req helpers.AddRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RecordAdmission("rating", false)
		helpers.HandleBindError(c, "AddRatingHandler", err)
		return
	}

	rating, err := h.service.AddRating(&model.Rating{
		ProductID: req.ProductID,
		RaterID:   req.RaterID,
		RatedID:   req.RatedID,
		Score:     req.Score,
	})
	utils.RecordAdmission("rating", err == nil)
	if err != nil {
		helpers.RespondError(c, "AddRatingHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, toRatingResponse(rating), "rating recorded successfully")
	helpers.LogSuccess("AddRatingHandler", "rating recorded successfully", map[string]any{
		"rating_id":  rating.RatingID,
		"product_id": rating.ProductID,
		"rater_id":   rating.RaterID,
		"score":      rating.Score,
	})
}

// GetRatingsByUserHandler handles GET /users/:user_id/ratings
func (h *RatingHandler) GetRatingsByUserHandler(c *gin.Context) {
	ratings, err := h.service.GetRatingsForUser(c.Param("user_id"))
	if err != nil {
		helpers.RespondError(c, "GetRatingsByUserHandler", err)
		return
	}

	out := make([]helpers.RatingResponse, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, toRatingResponse(r))
	}
	utils.JSONResponse(c, http.StatusOK, out, "ratings retrieved successfully")
}

func toRatingResponse(r model.Rating) helpers.RatingResponse {
	return helpers.RatingResponse{
		RatingID:  r.RatingID,
		ProductID: r.ProductID,
		RaterID:   r.RaterID,
		RatedID:   r.RatedID,
		Score:     r.Score,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
