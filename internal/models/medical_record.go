package models

import "time"

// MedicalRecord is the single per-patient clinical record maintained by the
// admin side. Updates are partial: absent fields keep their stored value.
type MedicalRecord struct {
	ID               int               `json:"id"`
	PatientID        int               `json:"patientId"`
	PatientName      string            `json:"patientName,omitempty"`
	PatientEmail     string            `json:"patientEmail,omitempty"`
	InitialComplaint string            `json:"initialComplaint"`
	Diagnosis        string            `json:"diagnosis"`
	Investigations   []string          `json:"investigations"`
	ActionPlan       []RecordUpdate    `json:"actionPlan"`
	Appointments     []RecordAppointed `json:"appointments"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

type RecordUpdate struct {
	Date time.Time `json:"date"`
	Text string    `json:"text"`
}

type RecordAppointed struct {
	Date time.Time `json:"date"`
	Type string    `json:"type"` // e.g. "Initial appointment", "Follow-up"
}

type MedicalRecordUpdate struct {
	InitialComplaint *string            `json:"initialComplaint,omitempty"`
	Diagnosis        *string            `json:"diagnosis,omitempty"`
	Investigations   *[]string          `json:"investigations,omitempty"`
	ActionPlan       *[]RecordUpdate    `json:"actionPlan,omitempty"`
	Appointments     *[]RecordAppointed `json:"appointments,omitempty"`
}
