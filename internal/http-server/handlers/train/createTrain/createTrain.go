package createTrain

import (
	"errors"
	"log/slog"
	"net/http"

	"trainBooker/internal/lib/api/response"
	"trainBooker/internal/lib/logger/sl"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const adminKeyHeader = "X-Admin-Key"

type TrainRequest struct {
	Name        string `json:"name" validate:"required"`
	Source      string `json:"source" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	TotalSeats  int    `json:"total_seats" validate:"required,min=1"`
}

type TrainResponse struct {
	response.Response
	TrainID int `json:"train_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TrainCreator
type TrainCreator interface {
	CreateTrain(name, source, destination string, totalSeats int) (int, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AdminVerifier
type AdminVerifier interface {
	VerifyAdminKey(key string) error
}

func New(log *slog.Logger, trains TrainCreator, admin AdminVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.train.createTrain.New"

		log = log.With(slog.String("op", op))

		if err := admin.VerifyAdminKey(r.Header.Get(adminKeyHeader)); err != nil {
			log.Warn("admin key rejected")
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("forbidden"))
			return
		}

		var req TrainRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		trainID, err := trains.CreateTrain(req.Name, req.Source, req.Destination, req.TotalSeats)
		if err != nil {
			log.Error("failed to create train", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create train"))
			return
		}

		log.Info("train created", slog.Int("train_id", trainID))

		responseCreated(w, r, trainID)
	}
}

func responseCreated(w http.ResponseWriter, r *http.Request, trainID int) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, TrainResponse{
		Response: response.OK(),
		TrainID:  trainID,
	})
}
