package models

import "time"

type Admin struct {
	ID           int       `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Contact      string    `json:"contact,omitempty"`
	Address1     string    `json:"address1,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyLoginRequest struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// AdminStats backs the dashboard counters.
type AdminStats struct {
	Contacts      int `json:"contacts"`
	Consultations int `json:"consultations"`
	Forums        int `json:"forums"`
}
