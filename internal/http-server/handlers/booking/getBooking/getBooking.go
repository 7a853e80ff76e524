package getBooking

import (
	"errors"
	"log/slog"
	"net/http"

	"trainBooker/internal/http-server/middleware/mwauth"
	"trainBooker/internal/lib/api/response"
	"trainBooker/internal/lib/logger/sl"
	"trainBooker/internal/models"
	"trainBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

type BookingInfoResponse struct {
	response.Response
	Booking *models.BookingInfo `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingProvider
type BookingProvider interface {
	Booking(bookingID string, userID int) (*models.BookingInfo, error)
}

// New отдаёт бронирование только его владельцу: чужое бронирование
// неотличимо от несуществующего.
func New(log *slog.Logger, provider BookingProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBooking.New"

		log = log.With(slog.String("op", op))

		identity, ok := mwauth.IdentityFromContext(r.Context())
		if !ok {
			log.Error("no identity in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		bookingID := chi.URLParam(r, "id")
		if bookingID == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		if _, err := uuid.Parse(bookingID); err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(
			slog.String("booking_id", bookingID),
			slog.Int("user_id", identity.UserID),
		)

		booking, err := provider.Booking(bookingID, identity.UserID)
		if err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				log.Warn("booking not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			log.Error("failed to get booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get booking"))
			return
		}

		log.Info("booking retrieved successfully")

		responseOK(w, r, booking)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking *models.BookingInfo) {
	render.JSON(w, r, BookingInfoResponse{
		Response: response.OK(),
		Booking:  booking,
	})
}
