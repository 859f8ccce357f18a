package handler

import (
	"net/http"
	"time"

	model "auction-engine/internal/models"
	"auction-engine/services/auction/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

type ProductServiceInterface interface {
	AddProduct(p *model.Product) (model.Product, error)
	GetProduct(id string) (model.Product, error)
	GetAllProducts() ([]model.Product, error)
}

type ProductHandler struct {
	service ProductServiceInterface
}

func NewProductHandler(service ProductServiceInterface) *ProductHandler {
	return &ProductHandler{service: service}
}

// AddProductHandler handles POST /products
func (h *ProductHandler) AddProductHandler(c *gin.Context) {
	var req helpers.AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RecordAdmission("product", false)
		helpers.HandleBindError(c, "AddProductHandler", err)
		return
	}

	product, err := h.service.AddProduct(&model.Product{
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		SellerID:      req.SellerID,
		StartingPrice: req.StartingPrice,
		Currency:      req.Currency,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
	})
	utils.RecordAdmission("product", err == nil)
	if err != nil {
		helpers.RespondError(c, "AddProductHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, toProductResponse(product), "product listed successfully")
	helpers.LogSuccess("AddProductHandler", "product listed successfully", map[string]any{
		"product_id": product.ProductID,
		"seller_id":  product.SellerID,
	})
}

// GetProductHandler handles GET /products/:product_id
func (h *ProductHandler) GetProductHandler(c *gin.Context) {
	product, err := h.service.GetProduct(c.Param("product_id"))
	if err != nil {
		helpers.RespondError(c, "GetProductHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, toProductResponse(product), "product retrieved successfully")
}

// GetProductsHandler handles GET /products
func (h *ProductHandler) GetProductsHandler(c *gin.Context) {
	products, err := h.service.GetAllProducts()
	if err != nil {
		helpers.RespondError(c, "GetProductsHandler", err)
		return
	}

	out := make([]helpers.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	utils.JSONResponse(c, http.StatusOK, out, "products retrieved successfully")
}

func toProductResponse(p model.Product) helpers.ProductResponse {
	return helpers.ProductResponse{
		ProductID:     p.ProductID,
		Description:   p.Description,
		CategoryID:    p.CategoryID,
		SellerID:      p.SellerID,
		StartingPrice: p.StartingPrice.String(),
		Currency:      p.Currency,
		StartDate:     p.StartDate.UTC().Format(time.RFC3339),
		EndDate:       p.EndDate.UTC().Format(time.RFC3339),
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339),
	}
}
