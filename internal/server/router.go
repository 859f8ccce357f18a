package server

import (
	bidding "auction-engine/internal/bidService"
	category "auction-engine/internal/categoryService"
	condition "auction-engine/internal/conditionService"
	product "auction-engine/internal/productService"
	rating "auction-engine/internal/ratingService"
	"auction-engine/internal/repository"
	scoring "auction-engine/internal/scoringService"
	handler "auction-engine/services/auction/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services bundles everything the router needs.
type Services struct {
	Conditions *condition.Service
	Categories *category.Service
	Products   *product.Service
	Bids       *bidding.Service
	Ratings    *rating.Service
	Scoring    *scoring.Service
	Users      repository.UserStore
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(s Services) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())           // recover from panics
	router.Use(RequestLoggerMiddleware)  // custom request logging
	router.Use(RequestMetricsMiddleware) // request counters

	conditionHandler := handler.NewConditionHandler(s.Conditions)
	categoryHandler := handler.NewCategoryHandler(s.Categories)
	productHandler := handler.NewProductHandler(s.Products)
	bidHandler := handler.NewBidHandler(s.Bids)
	ratingHandler := handler.NewRatingHandler(s.Ratings)
	userHandler := handler.NewUserHandler(s.Users, s.Scoring)

	conditions := router.Group("/conditions")
	{
		conditions.POST("", conditionHandler.AddConditionHandler)
		conditions.GET("", conditionHandler.GetConditionsHandler)
		conditions.GET("/:name", conditionHandler.GetConditionByNameHandler)
		conditions.PUT("/:id", conditionHandler.UpdateConditionHandler)
		conditions.DELETE("/:id", conditionHandler.DeleteConditionHandler)
	}

	categories := router.Group("/categories")
	{
		categories.POST("", categoryHandler.AddCategoryHandler)
		categories.GET("", categoryHandler.GetCategoriesHandler)
		categories.GET("/:id", categoryHandler.GetCategoryHandler)
		categories.PUT("/:id", categoryHandler.UpdateCategoryHandler)
		categories.DELETE("/:id", categoryHandler.DeleteCategoryHandler)
	}

	products := router.Group("/products")
	{
		products.POST("", productHandler.AddProductHandler)
		products.GET("", productHandler.GetProductsHandler)
		products.GET("/:product_id", productHandler.GetProductHandler)
		products.GET("/:product_id/bids", bidHandler.GetBidsByProductHandler)
		products.GET("/:product_id/winning", bidHandler.GetWinningBidHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", bidHandler.PlaceBidHandler)
	}

	ratings := router.Group("/ratings")
	{
		ratings.POST("", ratingHandler.AddRatingHandler)
	}

	users := router.Group("/users")
	{
		users.POST("", userHandler.AddUserHandler)
		users.GET("/:user_id", userHandler.GetUserHandler)
		users.GET("/:user_id/score", userHandler.GetScoreHandler)
		users.GET("/:user_id/limit", userHandler.GetLimitHandler)
		users.GET("/:user_id/products", bidHandler.GetProductsByBidderHandler)
		users.GET("/:user_id/ratings", ratingHandler.GetRatingsByUserHandler)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
