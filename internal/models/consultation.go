package models

import "time"

// Consultation is a free/paid consultation request from the public site.
// Report file fields are filled only when the chosen type requires one.
type Consultation struct {
	ID                  int       `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	ConsultationType    string    `json:"consultationType"`
	Story               string    `json:"story"`
	ReportFileURL       string    `json:"reportFileUrl,omitempty"`
	ReportFileName      string    `json:"reportFileName,omitempty"`
	ReportFileExtension string    `json:"reportFileExtension,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}

type BookingConfirmationRequest struct {
	Email            string `json:"email"`
	Name             string `json:"name"`
	ConsultationType string `json:"consultationType"`
}
