package models

import "time"

type Doctor struct {
	ID             int         `json:"id"`
	Name           string      `json:"name"`
	Specialty      string      `json:"specialty"`
	Image          string      `json:"image,omitempty"`
	Category       string      `json:"category,omitempty"`
	Location       string      `json:"location,omitempty"`
	About          string      `json:"about,omitempty"`
	Available      bool        `json:"available"`
	AvailableDates []time.Time `json:"availableDates"`
	Reviews        []Review    `json:"reviews"`
	CreatedAt      time.Time   `json:"createdAt"`
}

type Review struct {
	ID        int       `json:"id"`
	DoctorID  int       `json:"-"`
	User      string    `json:"user"`
	Rating    int       `json:"rating"` // 1..5
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
