package searchTrains

import (
	"log/slog"
	"net/http"

	"trainBooker/internal/lib/api/response"
	"trainBooker/internal/lib/logger/sl"
	"trainBooker/internal/models"

	"github.com/go-chi/render"
)

type TrainsResponse struct {
	response.Response
	Trains []models.Train `json:"trains"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TrainFinder
type TrainFinder interface {
	TrainsByRoute(source, destination string) ([]models.Train, error)
}

func New(log *slog.Logger, finder TrainFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.train.searchTrains.New"

		log = log.With(slog.String("op", op))

		source := r.URL.Query().Get("source")
		destination := r.URL.Query().Get("destination")

		if source == "" || destination == "" {
			log.Error("source and destination are required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("source and destination are required"))
			return
		}

		log = log.With(
			slog.String("source", source),
			slog.String("destination", destination),
		)

		trains, err := finder.TrainsByRoute(source, destination)
		if err != nil {
			log.Error("failed to get trains", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get trains"))
			return
		}

		log.Info("trains retrieved successfully", slog.Int("count", len(trains)))

		responseOK(w, r, trains)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, trains []models.Train) {
	render.JSON(w, r, TrainsResponse{
		Response: response.OK(),
		Trains:   trains,
	})
}
