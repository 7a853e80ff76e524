package models

import "time"

type Booking struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	TrainID   int       `json:"train_id"`
	CreatedAt time.Time `json:"created_at"`
}

// BookingInfo дополняет бронирование данными поезда для отображения.
type BookingInfo struct {
	Booking
	TrainName   string `json:"train_name"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
}
