package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"trainBooker/internal/config"
	"trainBooker/internal/models"
	"trainBooker/internal/storage"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.initSchema(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Storage) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL)`,
		`CREATE TABLE IF NOT EXISTS trains (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			source TEXT NOT NULL,
			destination TEXT NOT NULL,
			total_seats INT NOT NULL CHECK (total_seats >= 1),
			available_seats INT NOT NULL CHECK (available_seats >= 0 AND available_seats <= total_seats))`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id UUID PRIMARY KEY,
			user_id INT NOT NULL REFERENCES users (id),
			train_id INT NOT NULL REFERENCES trains (id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW())`,
	}

	for _, query := range queries {
		if _, err := s.DB.Exec(query); err != nil {
			return fmt.Errorf("failed to init schema: %w", err)
		}
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) SaveUser(username, passHash string) (int, error) {
	query := `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id`

	var id int
	err := s.DB.QueryRow(query, username, passHash).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, storage.ErrUserExists
		}
		return 0, fmt.Errorf("failed to save user: %w", err)
	}

	return id, nil
}

func (s *Storage) UserByUsername(username string) (*models.User, error) {
	query := `
		SELECT id, username, password_hash
		FROM users
		WHERE username = $1`

	var user models.User
	err := s.DB.QueryRow(query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PassHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (s *Storage) CreateTrain(name, source, destination string, totalSeats int) (int, error) {
	query := `
		INSERT INTO trains (name, source, destination, total_seats, available_seats)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id`

	var id int
	err := s.DB.QueryRow(query, name, source, destination, totalSeats).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create train: %w", err)
	}

	return id, nil
}

func (s *Storage) TrainsByRoute(source, destination string) ([]models.Train, error) {
	query := `
		SELECT id, name, source, destination, total_seats, available_seats
		FROM trains
		WHERE source = $1 AND destination = $2
		ORDER BY id ASC`

	rows, err := s.DB.Query(query, source, destination)
	if err != nil {
		return nil, fmt.Errorf("failed to get trains: %w", err)
	}
	defer rows.Close()

	var trains []models.Train
	for rows.Next() {
		var train models.Train
		err = rows.Scan(
			&train.ID,
			&train.Name,
			&train.Source,
			&train.Destination,
			&train.TotalSeats,
			&train.AvailableSeats,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan train: %w", err)
		}
		trains = append(trains, train)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trains: %w", err)
	}

	return trains, nil
}

// BookSeat списывает одно место и создаёт бронирование в одной транзакции.
// Декремент условный и выполняется одним атомарным стейтментом на стороне
// базы, поэтому два конкурентных вызова за последнее место не пройдут оба:
// проигравший получает storage.ErrNoSeats без побочных эффектов. Повторов
// нет — потерянное место могло законно уйти сопернику.
func (s *Storage) BookSeat(trainID, userID int) (string, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	decrementQuery := `
		UPDATE trains
		SET available_seats = available_seats - 1
		WHERE id = $1 AND available_seats > 0`

	result, err := tx.Exec(decrementQuery, trainID)
	if err != nil {
		return "", fmt.Errorf("failed to decrement seats: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("failed to get affected rows: %w", err)
	}

	// Ноль строк: поезда нет либо места кончились. Откат через defer.
	if affected == 0 {
		return "", storage.ErrNoSeats
	}

	bookingID := uuid.NewString()

	insertQuery := `
		INSERT INTO bookings (id, user_id, train_id, created_at)
		VALUES ($1, $2, $3, NOW())`

	_, err = tx.Exec(insertQuery, bookingID, userID, trainID)
	if err != nil {
		return "", fmt.Errorf("failed to create booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return bookingID, nil
}

// Booking возвращает бронирование только его владельцу. Чужое и
// несуществующее бронирования неразличимы для вызывающего.
func (s *Storage) Booking(bookingID string, userID int) (*models.BookingInfo, error) {
	query := `
		SELECT b.id, b.user_id, b.train_id, b.created_at, t.name, t.source, t.destination
		FROM bookings b
		JOIN trains t ON t.id = b.train_id
		WHERE b.id = $1 AND b.user_id = $2`

	var info models.BookingInfo
	err := s.DB.QueryRow(query, bookingID, userID).Scan(
		&info.ID,
		&info.UserID,
		&info.TrainID,
		&info.CreatedAt,
		&info.TrainName,
		&info.Source,
		&info.Destination,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &info, nil
}
