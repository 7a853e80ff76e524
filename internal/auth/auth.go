package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"trainBooker/internal/config"
	"trainBooker/internal/lib/logger/sl"
	"trainBooker/internal/models"
	"trainBooker/internal/storage"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrBadAdminKey        = errors.New("invalid admin key")
)

// Identity — проверенная личность пользователя, извлечённая из токена сессии.
type Identity struct {
	UserID   int
	Username string
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserStorage
type UserStorage interface {
	SaveUser(username, passHash string) (int, error)
	UserByUsername(username string) (*models.User, error)
}

type Auth struct {
	log      *slog.Logger
	users    UserStorage
	secret   []byte
	adminKey string
	tokenTTL time.Duration
}

func New(log *slog.Logger, users UserStorage, cfg config.Auth) *Auth {
	return &Auth{
		log:      log,
		users:    users,
		secret:   []byte(cfg.JWTSecret),
		adminKey: cfg.AdminKey,
		tokenTTL: cfg.TokenTTL,
	}
}

// RegisterNewUser сохраняет пользователя с bcrypt-хэшем пароля.
// Сырой пароль никогда не сохраняется и не логируется.
func (a *Auth) RegisterNewUser(username, password string) (int, error) {
	const op = "auth.RegisterNewUser"

	log := a.log.With(slog.String("op", op), slog.String("username", username))

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to hash password", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := a.users.SaveUser(username, string(passHash))
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			return 0, storage.ErrUserExists
		}
		log.Error("failed to save user", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user registered", slog.Int("user_id", id))

	return id, nil
}

// Login проверяет учётные данные и выдаёт подписанный токен сессии.
// Неизвестный пользователь и неверный пароль неразличимы для вызывающего.
func (a *Auth) Login(username, password string) (string, error) {
	const op = "auth.Login"

	log := a.log.With(slog.String("op", op), slog.String("username", username))

	user, err := a.users.UserByUsername(username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		log.Error("failed to get user", sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"uid":      user.ID,
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(a.tokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		log.Error("failed to sign token", sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user logged in", slog.Int("user_id", user.ID))

	return token, nil
}

// VerifySession проверяет подпись и срок действия токена без обращения к базе.
func (a *Auth) VerifySession(tokenStr string) (Identity, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	uid, ok := claims["uid"].(float64)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	username, ok := claims["username"].(string)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	return Identity{
		UserID:   int(uid),
		Username: username,
	}, nil
}

// VerifyAdminKey сравнивает ключ за константное время, чтобы не дать
// подобрать его по таймингу ответов.
func (a *Auth) VerifyAdminKey(key string) error {
	if subtle.ConstantTimeCompare([]byte(key), []byte(a.adminKey)) != 1 {
		return ErrBadAdminKey
	}

	return nil
}
