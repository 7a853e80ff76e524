package register

import (
	"errors"
	"log/slog"
	"net/http"

	"trainBooker/internal/lib/api/response"
	"trainBooker/internal/lib/logger/sl"
	"trainBooker/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterResponse struct {
	response.Response
	UserID int `json:"user_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserRegistrar
type UserRegistrar interface {
	RegisterNewUser(username, password string) (int, error)
}

func New(log *slog.Logger, registrar UserRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.register.New"

		log = log.With(slog.String("op", op))

		var req RegisterRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		// Пароль в лог не попадает.
		log.Info("request body decoded", slog.String("username", req.Username))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		userID, err := registrar.RegisterNewUser(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, storage.ErrUserExists) {
				log.Warn("user already exists", slog.String("username", req.Username))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("user already exists"))
				return
			}

			log.Error("failed to register user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register user"))
			return
		}

		log.Info("user registered", slog.Int("user_id", userID))

		responseCreated(w, r, userID)
	}
}

func responseCreated(w http.ResponseWriter, r *http.Request, userID int) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, RegisterResponse{
		Response: response.OK(),
		UserID:   userID,
	})
}
