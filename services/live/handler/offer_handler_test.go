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
	offer "livemarket/internal/offerService"
	"livemarket/services/live/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Test ProposeOfferHandler
func TestProposeOfferHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockOfferServiceInterface(ctrl)
	handler := NewOfferHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/offers", handler.ProposeOfferHandler)

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
			name: "success_valid_offer",
			requestBody: helpers.ProposeOfferRequest{
				ListingID: "listing1",
				BuyerID:   "buyer1",
				Amount:    60,
				Message:   "would you take this?",
			},
			mockSetup: func() {
				mockService.EXPECT().
					Propose("listing1", "buyer1", 60.0, "would you take this?", gomock.Nil()).
					Return(model.Offer{
						OfferID:   uuid.NewString(),
						ListingID: "listing1",
						BuyerID:   "buyer1",
						SellerID:  "seller1",
						Amount:    60,
						Status:    model.OfferPending,
						CreatedAt: now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "offer recorded successfully",
			validateData: func(t *testing.T, data map[string]any) {
				offerID := data["offer_id"].(string)
				require.NotEmpty(t, offerID)
				_, parseErr := uuid.Parse(offerID)
				require.NoError(t, parseErr, "OfferID should be a valid UUID")
				require.Equal(t, "pending", data["status"])
				require.Equal(t, 60.0, data["amount"])
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
			name: "missing_buyer_id",
			requestBody: helpers.ProposeOfferRequest{
				ListingID: "listing1",
				Amount:    60,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "zero_amount",
			requestBody: helpers.ProposeOfferRequest{
				ListingID: "listing1",
				BuyerID:   "buyer1",
				Amount:    0,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "reoffer_over_accepted_deal",
			requestBody: helpers.ProposeOfferRequest{
				ListingID: "listing1",
				BuyerID:   "buyer1",
				Amount:    70,
			},
			mockSetup: func() {
				mockService.EXPECT().
					Propose("listing1", "buyer1", 70.0, "", gomock.Nil()).
					Return(model.Offer{}, commerceerrors.ErrAlreadyAccepted)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "offer already accepted",
		},
		{
			name: "unknown_listing",
			requestBody: helpers.ProposeOfferRequest{
				ListingID: "ghost",
				BuyerID:   "buyer1",
				Amount:    60,
			},
			mockSetup: func() {
				mockService.EXPECT().
					Propose("ghost", "buyer1", 60.0, "", gomock.Nil()).
					Return(model.Offer{}, commerceerrors.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "resource not found",
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

			req := httptest.NewRequest(http.MethodPost, "/offers", bytes.NewReader(reqBody))
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

// Test DecideOfferHandler
func TestDecideOfferHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockOfferServiceInterface(ctrl)
	handler := NewOfferHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/offers/:offer_id/decision", handler.DecideOfferHandler)

	accepted := model.Offer{
		OfferID:   "o1",
		ListingID: "listing1",
		BuyerID:   "buyer1",
		SellerID:  "seller1",
		Amount:    60,
		Status:    model.OfferAccepted,
		CreatedAt: time.Now().UTC(),
	}

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "accept_offer",
			requestBody: helpers.DecideOfferRequest{Decision: "accept"},
			mockSetup: func() {
				mockService.EXPECT().
					Decide("o1", offer.DecisionAccept).
					Return(accepted, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "offer decision recorded successfully",
		},
		{
			name:        "decline_offer",
			requestBody: helpers.DecideOfferRequest{Decision: "decline"},
			mockSetup: func() {
				declined := accepted
				declined.Status = model.OfferDeclined
				mockService.EXPECT().
					Decide("o1", offer.DecisionDecline).
					Return(declined, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "offer decision recorded successfully",
		},
		{
			name:        "unknown_decision",
			requestBody: helpers.DecideOfferRequest{Decision: "maybe"},
			mockSetup: func() {
				mockService.EXPECT().
					Decide("o1", offer.Decision("maybe")).
					Return(model.Offer{}, commerceerrors.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request details",
		},
		{
			name:           "missing_decision",
			requestBody:    helpers.DecideOfferRequest{},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "decision_race_lost",
			requestBody: helpers.DecideOfferRequest{Decision: "decline"},
			mockSetup: func() {
				mockService.EXPECT().
					Decide("o1", offer.DecisionDecline).
					Return(model.Offer{}, commerceerrors.ErrAlreadyAccepted)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "offer already accepted",
		},
		{
			name:        "service_generic_error",
			requestBody: helpers.DecideOfferRequest{Decision: "accept"},
			mockSetup: func() {
				mockService.EXPECT().
					Decide("o1", offer.DecisionAccept).
					Return(model.Offer{}, errors.New("order pipeline failure"))
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

			req := httptest.NewRequest(http.MethodPost, "/offers/o1/decision", bytes.NewReader(reqBody))
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

// Test WithdrawOfferHandler
func TestWithdrawOfferHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockOfferServiceInterface(ctrl)
	handler := NewOfferHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/offers/:offer_id", handler.WithdrawOfferHandler)

	tests := []struct {
		name           string
		target         string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "success_withdraw",
			target: "/offers/o1?buyer_id=buyer1",
			mockSetup: func() {
				mockService.EXPECT().Withdraw("o1", "buyer1").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "offer withdrawn successfully",
		},
		{
			name:   "missing_buyer_id",
			target: "/offers/o1",
			mockSetup: func() {
				mockService.EXPECT().Withdraw("o1", "").Return(commerceerrors.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request details",
		},
		{
			name:   "wrong_buyer",
			target: "/offers/o1?buyer_id=buyer2",
			mockSetup: func() {
				mockService.EXPECT().Withdraw("o1", "buyer2").Return(commerceerrors.ErrPreconditionFailed)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "operation precondition not met",
		},
		{
			name:   "already_decided",
			target: "/offers/o1?buyer_id=buyer1",
			mockSetup: func() {
				mockService.EXPECT().Withdraw("o1", "buyer1").Return(commerceerrors.ErrInvalidTransition)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "illegal state transition",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodDelete, tc.target, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test ListOffersByListingHandler
func TestListOffersByListingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockOfferServiceInterface(ctrl)
	handler := NewOfferHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/listings/:listing_id/offers", handler.ListOffersByListingHandler)

	now := time.Now().UTC()

	t.Run("newest_first", func(t *testing.T) {
		mockService.EXPECT().
			ListOffersByListing("listing1").
			Return([]model.Offer{
				{OfferID: "o2", ListingID: "listing1", BuyerID: "buyer2", Amount: 70, Status: model.OfferPending, CreatedAt: now},
				{OfferID: "o1", ListingID: "listing1", BuyerID: "buyer1", Amount: 60, Status: model.OfferDeclined, CreatedAt: now.Add(-time.Minute)},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/listings/listing1/offers", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].([]any)
		require.Len(t, data, 2)
		first := data[0].(map[string]any)
		require.Equal(t, "o2", first["offer_id"])
	})

	t.Run("empty_listing", func(t *testing.T) {
		mockService.EXPECT().
			ListOffersByListing("listing2").
			Return([]model.Offer{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/listings/listing2/offers", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].([]any)
		require.Len(t, data, 0)
	})

	t.Run("service_error", func(t *testing.T) {
		mockService.EXPECT().
			ListOffersByListing("listing3").
			Return(nil, errors.New("database failure"))

		req := httptest.NewRequest(http.MethodGet, "/listings/listing3/offers", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
