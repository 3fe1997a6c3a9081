package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"livemarket/internal/commerceerrors"
	model "livemarket/internal/models"
	"livemarket/services/live/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Test StartAuctionHandler
func TestStartAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/streams/:stream_id/auctions", handler.StartAuctionHandler)

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
			name: "success_valid_auction",
			requestBody: helpers.StartAuctionRequest{
				Description:     "signed vinyl",
				StartingPrice:   25,
				DurationSeconds: 60,
			},
			mockSetup: func() {
				item := model.AuctionItem{
					AuctionID:     uuid.NewString(),
					StreamID:      "s1",
					SellerID:      "seller1",
					Description:   "signed vinyl",
					StartingPrice: 25,
					CurrentPrice:  25,
					EndsAt:        now.Add(time.Minute),
				}
				mockService.EXPECT().
					StartAuction("s1", "signed vinyl", 25.0, time.Minute).
					Return(item, nil)
				mockService.EXPECT().Remaining(gomock.Any()).Return(time.Minute)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "auction started successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "s1", data["stream_id"])
				require.Equal(t, 25.0, data["starting_price"])
				require.Equal(t, 60.0, data["remaining_seconds"])
				require.Equal(t, false, data["settled"])
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
			name: "missing_description",
			requestBody: helpers.StartAuctionRequest{
				StartingPrice:   25,
				DurationSeconds: 60,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "zero_duration",
			requestBody: helpers.StartAuctionRequest{
				Description:     "signed vinyl",
				StartingPrice:   25,
				DurationSeconds: 0,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "auction_already_running",
			requestBody: helpers.StartAuctionRequest{
				Description:     "tour poster",
				StartingPrice:   10,
				DurationSeconds: 60,
			},
			mockSetup: func() {
				mockService.EXPECT().
					StartAuction("s1", "tour poster", 10.0, time.Minute).
					Return(model.AuctionItem{}, commerceerrors.ErrAuctionInProgress)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "an auction is already running on this stream",
		},
		{
			name: "stream_not_live",
			requestBody: helpers.StartAuctionRequest{
				Description:     "signed vinyl",
				StartingPrice:   25,
				DurationSeconds: 60,
			},
			mockSetup: func() {
				mockService.EXPECT().
					StartAuction("s1", "signed vinyl", 25.0, time.Minute).
					Return(model.AuctionItem{}, commerceerrors.ErrPreconditionFailed)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "operation precondition not met",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

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

			req := httptest.NewRequest(http.MethodPost, "/streams/s1/auctions", bytes.NewReader(reqBody))
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

// Test SettleAuctionHandler
func TestSettleAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions/:auction_id/settle", handler.SettleAuctionHandler)

	settled := model.AuctionItem{
		AuctionID:    "a1",
		StreamID:     "s1",
		SellerID:     "seller1",
		CurrentPrice: 25,
		Settled:      true,
		Outcome:      model.OutcomeSold,
	}

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "sold_with_buyer",
			requestBody: helpers.SettleAuctionRequest{Outcome: "sold", BuyerID: "buyer1"},
			mockSetup: func() {
				mockService.EXPECT().
					Settle("a1", model.OutcomeSold, "buyer1").
					Return(settled, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auction settled successfully",
		},
		{
			name:        "lapsed",
			requestBody: helpers.SettleAuctionRequest{Outcome: "lapsed"},
			mockSetup: func() {
				lapsed := settled
				lapsed.Outcome = model.OutcomeLapsed
				mockService.EXPECT().
					Settle("a1", model.OutcomeLapsed, "").
					Return(lapsed, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auction settled successfully",
		},
		{
			name:        "sold_without_buyer",
			requestBody: helpers.SettleAuctionRequest{Outcome: "sold"},
			mockSetup: func() {
				mockService.EXPECT().
					Settle("a1", model.OutcomeSold, "").
					Return(model.AuctionItem{}, commerceerrors.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request details",
		},
		{
			name:           "missing_outcome",
			requestBody:    helpers.SettleAuctionRequest{},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "unknown_auction",
			requestBody: helpers.SettleAuctionRequest{Outcome: "lapsed"},
			mockSetup: func() {
				mockService.EXPECT().
					Settle("a1", model.OutcomeLapsed, "").
					Return(model.AuctionItem{}, commerceerrors.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "resource not found",
		},
		{
			name:        "service_generic_error",
			requestBody: helpers.SettleAuctionRequest{Outcome: "lapsed"},
			mockSetup: func() {
				mockService.EXPECT().
					Settle("a1", model.OutcomeLapsed, "").
					Return(model.AuctionItem{}, errors.New("order pipeline failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			reqBody, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/auctions/a1/settle", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test ExtendAuctionHandler
func TestExtendAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions/:auction_id/extend", handler.ExtendAuctionHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success_extend",
			requestBody: helpers.ExtendAuctionRequest{DeltaSeconds: 30},
			mockSetup: func() {
				item := model.AuctionItem{AuctionID: "a1", EndsAt: now.Add(90 * time.Second)}
				mockService.EXPECT().
					ExtendAuction("a1", 30*time.Second).
					Return(item, nil)
				mockService.EXPECT().Remaining(gomock.Any()).Return(90 * time.Second)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auction extended successfully",
		},
		{
			name:           "zero_delta",
			requestBody:    helpers.ExtendAuctionRequest{DeltaSeconds: 0},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "already_settled",
			requestBody: helpers.ExtendAuctionRequest{DeltaSeconds: 30},
			mockSetup: func() {
				mockService.EXPECT().
					ExtendAuction("a1", 30*time.Second).
					Return(model.AuctionItem{}, commerceerrors.ErrAlreadySettled)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "auction already settled",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			reqBody, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/auctions/a1/extend", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}
