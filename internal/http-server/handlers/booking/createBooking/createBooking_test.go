package createBooking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"trainBooker/internal/auth"
	"trainBooker/internal/http-server/handlers/booking/createBooking/mocks"
	"trainBooker/internal/http-server/middleware/mwauth"
	"trainBooker/internal/lib/logger/handlers/slogdiscard"
	"trainBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	identity := auth.Identity{UserID: 42, Username: "alice"}

	testCases := []struct {
		name           string
		trainID        string
		withIdentity   bool
		mockSetup      func(mock *mocks.SeatBooker)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:         "Success",
			trainID:      "1",
			withIdentity: true,
			mockSetup: func(mock *mocks.SeatBooker) {
				mock.On("BookSeat", 1, 42).Return("7b1d9c9e-0000-4000-8000-000000000001", nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","booking_id":"7b1d9c9e-0000-4000-8000-000000000001"}`,
		},
		{
			name:           "No identity",
			trainID:        "1",
			withIdentity:   false,
			mockSetup:      func(mock *mocks.SeatBooker) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"authorization required"}`,
		},
		{
			name:           "Missing train ID",
			trainID:        "",
			withIdentity:   true,
			mockSetup:      func(mock *mocks.SeatBooker) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"train id is required"}`,
		},
		{
			name:           "Invalid train ID format",
			trainID:        "invalid",
			withIdentity:   true,
			mockSetup:      func(mock *mocks.SeatBooker) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid train id format"}`,
		},
		{
			name:         "No seats available",
			trainID:      "1",
			withIdentity: true,
			mockSetup: func(mock *mocks.SeatBooker) {
				mock.On("BookSeat", 1, 42).Return("", storage.ErrNoSeats)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"no seats available"}`,
		},
		{
			name:         "Unknown train",
			trainID:      "999",
			withIdentity: true,
			mockSetup: func(mock *mocks.SeatBooker) {
				mock.On("BookSeat", 999, 42).Return("", storage.ErrNoSeats)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"no seats available"}`,
		},
		{
			name:         "Internal server error",
			trainID:      "1",
			withIdentity: true,
			mockSetup: func(mock *mocks.SeatBooker) {
				mock.On("BookSeat", 1, 42).Return("", errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to book seat"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockBooker := mocks.NewSeatBooker(t)
			tc.mockSetup(mockBooker)

			handler := New(logger, mockBooker, nil)

			req, err := http.NewRequest("POST", "/", nil)
			require.NoError(t, err)

			rctx := chi.NewRouteContext()
			if tc.trainID != "" {
				rctx.URLParams.Add("id", tc.trainID)
			}

			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tc.withIdentity {
				ctx = mwauth.ContextWithIdentity(ctx, identity)
			}
			req = req.WithContext(ctx)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}

func TestBookingEventPublished(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	mockBooker := mocks.NewSeatBooker(t)
	mockBooker.On("BookSeat", 1, 42).Return("booking-1", nil)

	mockNotifier := mocks.NewBookingNotifier(t)
	mockNotifier.On("BookingCreated", "booking-1", 1, 42).Return(nil)

	handler := New(logger, mockBooker, mockNotifier)

	rr := bookRequest(t, handler, "1")

	assert.Equal(t, http.StatusCreated, rr.Code)
	mockNotifier.AssertExpectations(t)
}

func TestNotifierFailureDoesNotFailRequest(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	mockBooker := mocks.NewSeatBooker(t)
	mockBooker.On("BookSeat", 1, 42).Return("booking-1", nil)

	mockNotifier := mocks.NewBookingNotifier(t)
	mockNotifier.On("BookingCreated", "booking-1", 1, 42).Return(errors.New("amqp down"))

	handler := New(logger, mockBooker, mockNotifier)

	rr := bookRequest(t, handler, "1")

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"status":"OK","booking_id":"booking-1"}`, rr.Body.String())
}

func bookRequest(t *testing.T, handler http.HandlerFunc, trainID string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest("POST", "/", nil)
	require.NoError(t, err)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", trainID)

	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = mwauth.ContextWithIdentity(ctx, auth.Identity{UserID: 42, Username: "alice"})
	req = req.WithContext(ctx)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	return rr
}
