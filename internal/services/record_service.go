package services

import (
	"database/sql"
	"errors"

	"doctorkays/internal/models"
	"doctorkays/internal/repositories"
)

var ErrRecordNotFound = errors.New("medical record not found")

type RecordService interface {
	GetByPatient(patientID int) (*models.MedicalRecord, error)
	List() ([]*models.MedicalRecord, error)
	Update(patientID int, upd *models.MedicalRecordUpdate) (*models.MedicalRecord, error)
	Delete(patientID int) error
}

type recordService struct {
	records  repositories.MedicalRecordRepository
	patients repositories.PatientRepository
}

func NewRecordService(records repositories.MedicalRecordRepository, patients repositories.PatientRepository) RecordService {
	return &recordService{records: records, patients: patients}
}

func (s *recordService) GetByPatient(patientID int) (*models.MedicalRecord, error) {
	rec, err := s.records.GetByPatient(patientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *recordService) List() ([]*models.MedicalRecord, error) {
	return s.records.List()
}

// Update merges the provided fields over the stored record and writes the
// result back. A first update for a patient starts from an empty record, so
// the admin can open a record without a separate create call.
func (s *recordService) Update(patientID int, upd *models.MedicalRecordUpdate) (*models.MedicalRecord, error) {
	if _, err := s.patients.GetByID(patientID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	rec, err := s.records.GetByPatient(patientID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		rec = &models.MedicalRecord{PatientID: patientID}
	}

	if upd.InitialComplaint != nil {
		rec.InitialComplaint = *upd.InitialComplaint
	}
	if upd.Diagnosis != nil {
		rec.Diagnosis = *upd.Diagnosis
	}
	if upd.Investigations != nil {
		rec.Investigations = *upd.Investigations
	}
	if upd.ActionPlan != nil {
		rec.ActionPlan = *upd.ActionPlan
	}
	if upd.Appointments != nil {
		rec.Appointments = *upd.Appointments
	}

	if err := s.records.Upsert(rec); err != nil {
		return nil, err
	}
	return s.GetByPatient(patientID)
}

func (s *recordService) Delete(patientID int) error {
	if _, err := s.GetByPatient(patientID); err != nil {
		return err
	}
	return s.records.Delete(patientID)
}
