package handler

import (
	"net/http"

	model "auction-engine/internal/models"
	"auction-engine/services/auction/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

type CategoryServiceInterface interface {
	AddCategory(c *model.Category) (model.Category, error)
	GetByID(id string) (model.Category, error)
	GetAll() ([]model.Category, error)
	UpdateCategory(c *model.Category) (model.Category, error)
	DeleteCategory(id string) error
}

type CategoryHandler struct {
	service CategoryServiceInterface
}

func NewCategoryHandler(service CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// AddCategoryHandler handles POST /categories
func (h *CategoryHandler) AddCategoryHandler(c *gin.Context) {
	var req helpers.AddCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RecordAdmission("category", false)
		helpers.HandleBindError(c, "AddCategoryHandler", err)
		return
	}

	category, err := h.service.AddCategory(&model.Category{
		Name:     req.Name,
		ParentID: req.ParentID,
	})
	utils.RecordAdmission("category", err == nil)
	if err != nil {
		helpers.RespondError(c, "AddCategoryHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, toCategoryResponse(category), "category created successfully")
	helpers.LogSuccess("AddCategoryHandler", "category created successfully", map[string]any{
		"category_id": category.CategoryID,
		"name":        category.Name,
	})
}

// GetCategoriesHandler handles GET /categories
func (h *CategoryHandler) GetCategoriesHandler(c *gin.Context) {
	categories, err := h.service.GetAll()
	if err != nil {
		helpers.RespondError(c, "GetCategoriesHandler", err)
		return
	}

	out := make([]helpers.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, toCategoryResponse(cat))
	}
	utils.JSONResponse(c, http.StatusOK, out, "categories retrieved successfully")
}

// GetCategoryHandler handles GET /categories/:id
func (h *CategoryHandler) GetCategoryHandler(c *gin.Context) {
	category, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		helpers.RespondError(c, "GetCategoryHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, toCategoryResponse(category), "category retrieved successfully")
}

// UpdateCategoryHandler handles PUT /categories/:id
func (h *CategoryHandler) UpdateCategoryHandler(c *gin.Context) {
	var req helpers.AddCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateCategoryHandler", err)
		return
	}

	category, err := h.service.UpdateCategory(&model.Category{
		CategoryID: c.Param("id"),
		Name:       req.Name,
		ParentID:   req.ParentID,
	})
	if err != nil {
		helpers.RespondError(c, "UpdateCategoryHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, toCategoryResponse(category), "category updated successfully")
	helpers.LogSuccess("UpdateCategoryHandler", "category updated successfully", map[string]any{
		"category_id": category.CategoryID,
		"name":        category.Name,
	})
}

// DeleteCategoryHandler handles DELETE /categories/:id
func (h *CategoryHandler) DeleteCategoryHandler(c *gin.Context) {
	if err := h.service.DeleteCategory(c.Param("id")); err != nil {
		helpers.RespondError(c, "DeleteCategoryHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "category deleted successfully")
}

func toCategoryResponse(c model.Category) helpers.CategoryResponse {
	return helpers.CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		ParentID:   c.ParentID,
	}
}
