package models

type Train struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Source         string `json:"source"`
	Destination    string `json:"destination"`
	TotalSeats     int    `json:"total_seats"`
	AvailableSeats int    `json:"available_seats"`
}
