package createBooking

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"trainBooker/internal/http-server/middleware/mwauth"
	"trainBooker/internal/lib/api/response"
	"trainBooker/internal/lib/logger/sl"
	"trainBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type BookingResponse struct {
	response.Response
	BookingID string `json:"booking_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SeatBooker
type SeatBooker interface {
	BookSeat(trainID, userID int) (string, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingNotifier
type BookingNotifier interface {
	BookingCreated(bookingID string, trainID, userID int) error
}

// New бронирует место за аутентифицированным пользователем. Identity кладёт
// в контекст mwauth. notifier может быть nil — публикация событий отключена.
func New(log *slog.Logger, booker SeatBooker, notifier BookingNotifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		identity, ok := mwauth.IdentityFromContext(r.Context())
		if !ok {
			log.Error("no identity in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		trainIdStr := chi.URLParam(r, "id")
		if trainIdStr == "" {
			log.Error("train id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("train id is required"))
			return
		}

		trainID, err := strconv.Atoi(trainIdStr)
		if err != nil {
			log.Error("invalid train id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid train id format"))
			return
		}

		log = log.With(
			slog.Int("train_id", trainID),
			slog.Int("user_id", identity.UserID),
		)

		bookingID, err := booker.BookSeat(trainID, identity.UserID)
		if err != nil {
			if errors.Is(err, storage.ErrNoSeats) {
				log.Warn("no seats available")
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("no seats available"))
				return
			}

			log.Error("failed to book seat", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to book seat"))
			return
		}

		log.Info("seat booked", slog.String("booking_id", bookingID))

		// Бронирование уже в базе: ошибка публикации не отменяет запрос.
		if notifier != nil {
			if err = notifier.BookingCreated(bookingID, trainID, identity.UserID); err != nil {
				log.Error("failed to publish booking event", sl.Err(err))
			}
		}

		responseCreated(w, r, bookingID)
	}
}

func responseCreated(w http.ResponseWriter, r *http.Request, bookingID string) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, BookingResponse{
		Response:  response.OK(),
		BookingID: bookingID,
	})
}
