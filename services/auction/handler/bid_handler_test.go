package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBiddingServiceInterface(ctrl)
	handler := NewBidHandler(mockService)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/bids", handler.PlaceBidHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success_valid_bid",
			requestBody: helpers.PlaceBidRequest{
				ProductID: "prod1",
				BidderID:  "user1",
				Amount:    decimal.RequireFromString("150.50"),
				Currency:  "EUR",
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any()).
					Return(model.Bid{
						BidID:     uuid.NewString(),
						ProductID: "prod1",
						BidderID:  "user1",
						Amount:    decimal.RequireFromString("150.50"),
						Currency:  "EUR",
						CreatedAt: now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid recorded successfully",
			validateData: func(t *testing.T, data map[string]any) {
				bidID := data["bid_id"].(string)
				require.NotEmpty(t, bidID)
				_, parseErr := uuid.Parse(bidID)
				require.NoError(t, parseErr, "BidID should be a valid UUID")
				require.Equal(t, "prod1", data["product_id"])
				require.Equal(t, "user1", data["bidder_id"])
				require.Equal(t, "150.5", data["amount"])
				require.Equal(t, "EUR", data["currency"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_product_id",
			requestBody: helpers.PlaceBidRequest{
				ProductID: "",
				BidderID:  "user1",
				Amount:    decimal.NewFromInt(50),
				Currency:  "EUR",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_currency",
			requestBody: helpers.PlaceBidRequest{
				ProductID: "prod1",
				BidderID:  "user1",
				Amount:    decimal.NewFromInt(50),
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "service_bid_too_low",
			requestBody: helpers.PlaceBidRequest{
				ProductID: "prod1",
				BidderID:  "user1",
				Amount:    decimal.NewFromInt(50),
				Currency:  "EUR",
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any()).
					Return(model.Bid{}, auctionerrors.ErrBidTooLow)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid amount too low",
		},
		{
			name: "service_outside_time_window",
			requestBody: helpers.PlaceBidRequest{
				ProductID: "prod1",
				BidderID:  "user1",
				Amount:    decimal.NewFromInt(200),
				Currency:  "EUR",
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any()).
					Return(model.Bid{}, auctionerrors.ErrOutsideTimeWindow)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "outside the auction time window",
		},
		{
			name: "service_self_bid",
			requestBody: helpers.PlaceBidRequest{
				ProductID: "prod1",
				BidderID:  "seller1",
				Amount:    decimal.NewFromInt(200),
				Currency:  "EUR",
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any()).
					Return(model.Bid{}, auctionerrors.ErrSelfBid)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "seller cannot bid on own auction",
		},
		{
			name: "service_currency_mismatch",
			requestBody: helpers.PlaceBidRequest{
				ProductID: "prod1",
				BidderID:  "user1",
				Amount:    decimal.NewFromInt(200),
				Currency:  "USD",
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any()).
					Return(model.Bid{}, auctionerrors.ErrCurrencyMismatch)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "currency mismatch",
		},
		{
			name: "service_bid_limit_reached",
			requestBody: helpers.PlaceBidRequest{
				ProductID: "prod1",
				BidderID:  "user1",
				Amount:    decimal.NewFromInt(200),
				Currency:  "EUR",
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any()).
					Return(model.Bid{}, auctionerrors.ErrLimitExceeded)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "limit exceeded",
		},
		{
			name: "service_generic_error",
			requestBody: helpers.PlaceBidRequest{
				ProductID: "prod1",
				BidderID:  "user1",
				Amount:    decimal.NewFromInt(200),
				Currency:  "EUR",
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any()).
					Return(model.Bid{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/bids", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusCreated {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test GetWinningBidHandler
func TestGetWinningBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBiddingServiceInterface(ctrl)
	handler := NewBidHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/products/:product_id/winning", handler.GetWinningBidHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		productID      string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:      "winning_bid_found",
			productID: "prod1",
			mockSetup: func() {
				mockService.EXPECT().
					GetWinningBid("prod1").
					Return(model.Bid{BidID: "b1", ProductID: "prod1", BidderID: "user1", Amount: decimal.NewFromInt(500), Currency: "EUR", CreatedAt: now}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "winning bid retrieved successfully",
		},
		{
			name:      "no_bids",
			productID: "prod2",
			mockSetup: func() {
				mockService.EXPECT().
					GetWinningBid("prod2").
					Return(model.Bid{}, auctionerrors.ErrNoBids)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "no winning bid found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/products/"+tc.productID+"/winning", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test GetBidsByProductHandler
func TestGetBidsByProductHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBiddingServiceInterface(ctrl)
	handler := NewBidHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/products/:product_id/bids", handler.GetBidsByProductHandler)

	t.Run("no_bids_is_an_empty_list", func(t *testing.T) {
		mockService.EXPECT().
			GetBidsForProduct("prod1").
			Return(nil, auctionerrors.ErrNoBids)

		req := httptest.NewRequest(http.MethodGet, "/products/prod1/bids", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Empty(t, resp["data"])
	})

	t.Run("bids_returned_in_order", func(t *testing.T) {
		now := time.Now().UTC()
		mockService.EXPECT().
			GetBidsForProduct("prod1").
			Return([]model.Bid{
				{BidID: "b1", ProductID: "prod1", BidderID: "user1", Amount: decimal.NewFromInt(300), Currency: "EUR", CreatedAt: now},
				{BidID: "b2", ProductID: "prod1", BidderID: "user2", Amount: decimal.NewFromInt(350), Currency: "EUR", CreatedAt: now},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/products/prod1/bids", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].([]any)
		require.Len(t, data, 2)
		first := data[0].(map[string]any)
		require.Equal(t, "b1", first["bid_id"])
		require.Equal(t, "300", first["amount"])
	})
}
