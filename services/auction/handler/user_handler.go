package handler

import (
	"net/http"

	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/services/auction/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

type ScoringServiceInterface interface {
	ScoreOf(userID string) (float64, error)
	LimitOf(userID string) (int, error)
}

type UserHandler struct {
	users   repository.UserStore
	scoring ScoringServiceInterface
}

func NewUserHandler(users repository.UserStore, scoring ScoringServiceInterface) *UserHandler {
	return &UserHandler{users: users, scoring: scoring}
}

// AddUserHandler handles POST /users
func (h *UserHandler) AddUserHandler(c *gin.Context) {
	var req helpers.AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddUserHandler", err)
		return
	}

	user := model.User{
		UserID:   utils.GenerateID(),
		Username: req.Username,
		Email:    req.Email,
	}
	if err := h.users.AddUser(user); err != nil {
		helpers.RespondError(c, "AddUserHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, user, "user created successfully")
	helpers.LogSuccess("AddUserHandler", "user created successfully", map[string]any{
		"user_id":  user.UserID,
		"username": user.Username,
	})
}

// GetUserHandler handles GET /users/:user_id
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	user, err := h.users.GetUserByID(c.Param("user_id"))
	if err != nil {
		helpers.RespondError(c, "GetUserHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, user, "user retrieved successfully")
}

// GetScoreHandler handles GET /users/:user_id/score
func (h *UserHandler) GetScoreHandler(c *gin.Context) {
	userID := c.Param("user_id")
	score, err := h.scoring.ScoreOf(userID)
	if err != nil {
		helpers.RespondError(c, "GetScoreHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.ScoreResponse{UserID: userID, Score: score}, "score computed successfully")
}

// GetLimitHandler handles GET /users/:user_id/limit
func (h *UserHandler) GetLimitHandler(c *gin.Context) {
	userID := c.Param("user_id")
	limit, err := h.scoring.LimitOf(userID)
	if err != nil {
		helpers.RespondError(c, "GetLimitHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.LimitResponse{UserID: userID, Limit: limit}, "limit computed successfully")
}
