package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	bidding "auction-engine/internal/bidService"
	category "auction-engine/internal/categoryService"
	condition "auction-engine/internal/conditionService"
	model "auction-engine/internal/models"
	product "auction-engine/internal/productService"
	rating "auction-engine/internal/ratingService"
	"auction-engine/internal/repository"
	scoring "auction-engine/internal/scoringService"
	"auction-engine/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// defaultConditions are the thresholds every integration test starts from
// unless it overrides them through the API.
var defaultConditions = []model.Condition{
	{Name: model.ConditionK, Description: "Max simultaneous auctions per seller", Value: 10},
	{Name: model.ConditionM, Description: "Max simultaneous auctions per seller and category", Value: 3},
	{Name: model.ConditionS, Description: "Maximum possible reputation score", Value: 10},
	{Name: model.ConditionN, Description: "Number of recent ratings used for the score", Value: 5},
	{Name: model.ConditionT, Description: "Perfect-score count granting the full limit", Value: 3},
	{Name: model.ConditionL, Description: "Max edit distance between product descriptions", Value: 10},
}

// SetupTestRouter initializes the router with an in-memory repository and the
// default conditions for integration testing.
func SetupTestRouter(t *testing.T) *gin.Engine {
	return SetupTestRouterWithProducts(t)
}

// SetupTestRouterWithProducts initializes the router and seeds the repo with
// listings, bypassing admission so their time windows can lie anywhere.
func SetupTestRouterWithProducts(t *testing.T, products ...model.Product) *gin.Engine {
	router, _ := SetupTestEnv(t, products...)
	return router
}

// SetupTestEnv additionally exposes the backing repository so tests can seed
// state the API refuses to create, like bids on an already closed auction.
func SetupTestEnv(t *testing.T, products ...model.Product) (*gin.Engine, *repository.MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	conditionSvc := condition.NewService(repo)
	if err := conditionSvc.Seed(defaultConditions); err != nil {
		t.Fatalf("failed to seed conditions: %v", err)
	}
	for _, p := range products {
		if err := repo.AddProduct(p); err != nil {
			t.Fatalf("failed to seed product %s: %v", p.ProductID, err)
		}
	}

	scoringSvc := scoring.NewService(repo, conditionSvc)
	return server.SetupRouter(server.Services{
		Conditions: conditionSvc,
		Categories: category.NewService(repo),
		Products:   product.NewService(repo, conditionSvc, scoringSvc),
		Bids:       bidding.NewService(repo, repo, scoringSvc),
		Ratings:    rating.NewService(repo, repo, repo, conditionSvc),
		Scoring:    scoringSvc,
		Users:      repo,
	}), repo
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code == 201 {
			resp = resp["data"].(map[string]any)
		}
	}

	return resp, w
}

// activeListing builds a listing whose auction window contains now.
func activeListing(productID, sellerID, categoryID, description string) model.Product {
	now := time.Now().UTC()
	return model.Product{
		ProductID:     productID,
		Description:   description,
		CategoryID:    categoryID,
		SellerID:      sellerID,
		StartingPrice: decimal.NewFromInt(100),
		Currency:      "EUR",
		StartDate:     now.Add(-time.Hour),
		EndDate:       now.Add(time.Hour),
		CreatedAt:     now,
	}
}

// endedListing builds a listing whose auction window has already closed.
func endedListing(productID, sellerID, categoryID, description string) model.Product {
	now := time.Now().UTC()
	return model.Product{
		ProductID:     productID,
		Description:   description,
		CategoryID:    categoryID,
		SellerID:      sellerID,
		StartingPrice: decimal.NewFromInt(100),
		Currency:      "EUR",
		StartDate:     now.Add(-2 * time.Hour),
		EndDate:       now.Add(-time.Hour),
		CreatedAt:     now.Add(-2 * time.Hour),
	}
}
