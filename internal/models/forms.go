package models

import "time"

// Intake form submissions from the public site. Each one is a single row
// plus a confirmation email; nothing here is ever updated after creation.

type Contact struct {
	ID        int       `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Services  []string  `json:"services"`
	CreatedAt time.Time `json:"createdAt"`
}

type Volunteer struct {
	ID        int       `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type Sponsor struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Price     string    `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}

type Enquiry struct {
	ID        int       `json:"id"`
	FullName  string    `json:"fullname"`
	Enquiry   string    `json:"enquiry"`
	CreatedAt time.Time `json:"createdAt"`
}

type Feedback struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Comments  string    `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
}
