package login

import (
	"errors"
	"log/slog"
	"net/http"

	"trainBooker/internal/auth"
	"trainBooker/internal/lib/api/response"
	"trainBooker/internal/lib/logger/sl"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	response.Response
	Token string `json:"token"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserLoginer
type UserLoginer interface {
	Login(username, password string) (string, error)
}

func New(log *slog.Logger, loginer UserLoginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.login.New"

		log = log.With(slog.String("op", op))

		var req LoginRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

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

		token, err := loginer.Login(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				log.Warn("invalid credentials", slog.String("username", req.Username))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid credentials"))
				return
			}

			log.Error("failed to login user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to login"))
			return
		}

		log.Info("user logged in", slog.String("username", req.Username))

		responseOK(w, r, token)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, token string) {
	render.JSON(w, r, LoginResponse{
		Response: response.OK(),
		Token:    token,
	})
}
