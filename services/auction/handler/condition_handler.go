package handler

import (
	"net/http"

	model "auction-engine/internal/models"
	"auction-engine/services/auction/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

type ConditionServiceInterface interface {
	AddCondition(c *model.Condition) (model.Condition, error)
	GetByName(name string) (model.Condition, error)
	GetAll() ([]model.Condition, error)
	UpdateCondition(c *model.Condition) (model.Condition, error)
	DeleteCondition(id string) error
}

type ConditionHandler struct {
	service ConditionServiceInterface
}

func NewConditionHandler(service ConditionServiceInterface) *ConditionHandler {
	return &ConditionHandler{service: service}
}

// AddConditionHandler handles POST /conditions
func (h *ConditionHandler) AddConditionHandler(c *gin.Context) {
	var req helpers.AddConditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RecordAdmission("condition", false)
		helpers.HandleBindError(c, "AddConditionHandler", err)
		return
	}

	condition, err := h.service.AddCondition(&model.Condition{
		Name:        req.Name,
		Description: req.Description,
		Value:       req.Value,
	})
	utils.RecordAdmission("condition", err == nil)
	if err != nil {
		helpers.RespondError(c, "AddConditionHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, toConditionResponse(condition), "condition created successfully")
	helpers.LogSuccess("AddConditionHandler", "condition created successfully", map[string]any{
		"condition_id": condition.ConditionID,
		"name":         condition.Name,
		"value":        condition.Value,
	})
}

// GetConditionsHandler handles GET /conditions
func (h *ConditionHandler) GetConditionsHandler(c *gin.Context) {
	conditions, err := h.service.GetAll()
	if err != nil {
		helpers.RespondError(c, "GetConditionsHandler", err)
		return
	}

	out := make([]helpers.ConditionResponse, 0, len(conditions))
	for _, cond := range conditions {
		out = append(out, toConditionResponse(cond))
	}
	utils.JSONResponse(c, http.StatusOK, out, "conditions retrieved successfully")
}

// GetConditionByNameHandler handles GET /conditions/:name
func (h *ConditionHandler) GetConditionByNameHandler(c *gin.Context) {
	condition, err := h.service.GetByName(c.Param("name"))
	if err != nil {
		helpers.RespondError(c, "GetConditionByNameHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, toConditionResponse(condition), "condition retrieved successfully")
}

// UpdateConditionHandler handles PUT /conditions/:id
func (h *ConditionHandler) UpdateConditionHandler(c *gin.Context) {
	var req helpers.AddConditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateConditionHandler", err)
		return
	}

	condition, err := h.service.UpdateCondition(&model.Condition{
		ConditionID: c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		Value:       req.Value,
	})
	if err != nil {
		helpers.RespondError(c, "UpdateConditionHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, toConditionResponse(condition), "condition updated successfully")
	helpers.LogSuccess("UpdateConditionHandler", "condition updated successfully", map[string]any{
		"condition_id": condition.ConditionID,
		"value":        condition.Value,
	})
}

// DeleteConditionHandler handles DELETE /conditions/:id
func (h *ConditionHandler) DeleteConditionHandler(c *gin.Context) {
	if err := h.service.DeleteCondition(c.Param("id")); err != nil {
		helpers.RespondError(c, "DeleteConditionHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "condition deleted successfully")
}

func toConditionResponse(c model.Condition) helpers.ConditionResponse {
	return helpers.ConditionResponse{
		ConditionID: c.ConditionID,
		Name:        c.Name,
		Description: c.Description,
		Value:       c.Value,
	}
}
