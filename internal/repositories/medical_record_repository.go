package repositories

import (
	"database/sql"
	"encoding/json"

	"github.com/lib/pq"

	"doctorkays/internal/models"
)

type MedicalRecordRepository interface {
	GetByPatient(patientID int) (*models.MedicalRecord, error)
	List() ([]*models.MedicalRecord, error)
	Upsert(record *models.MedicalRecord) error
	Delete(patientID int) error
}

type medicalRecordRepository struct {
	DB *sql.DB
}

func NewMedicalRecordRepository(db *sql.DB) MedicalRecordRepository {
	return &medicalRecordRepository{DB: db}
}

func (r *medicalRecordRepository) GetByPatient(patientID int) (*models.MedicalRecord, error) {
	const q = `
		SELECT mr.id, mr.patient_id, p.name, p.email,
		       COALESCE(mr.initial_complaint,''), COALESCE(mr.diagnosis,''),
		       mr.investigations, COALESCE(mr.action_plan,'[]'),
		       COALESCE(mr.appointments,'[]'), mr.updated_at
		FROM medical_records mr
		JOIN patients p ON p.id = mr.patient_id
		WHERE mr.patient_id = $1
	`
	return r.scanOne(r.DB.QueryRow(q, patientID).Scan)
}

func (r *medicalRecordRepository) scanOne(scan func(dest ...interface{}) error) (*models.MedicalRecord, error) {
	rec := &models.MedicalRecord{}
	var actionPlan, appointments []byte
	err := scan(
		&rec.ID, &rec.PatientID, &rec.PatientName, &rec.PatientEmail,
		&rec.InitialComplaint, &rec.Diagnosis,
		pq.Array(&rec.Investigations), &actionPlan, &appointments, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(actionPlan) > 0 {
		if err := json.Unmarshal(actionPlan, &rec.ActionPlan); err != nil {
			return nil, err
		}
	}
	if len(appointments) > 0 {
		if err := json.Unmarshal(appointments, &rec.Appointments); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

func (r *medicalRecordRepository) List() ([]*models.MedicalRecord, error) {
	const q = `
		SELECT mr.id, mr.patient_id, p.name, p.email,
		       COALESCE(mr.initial_complaint,''), COALESCE(mr.diagnosis,''),
		       mr.investigations, COALESCE(mr.action_plan,'[]'),
		       COALESCE(mr.appointments,'[]'), mr.updated_at
		FROM medical_records mr
		JOIN patients p ON p.id = mr.patient_id
		ORDER BY mr.updated_at DESC
	`
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.MedicalRecord
	for rows.Next() {
		rec, err := r.scanOne(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, rows.Err()
}

// Upsert writes the full record state for the patient, creating the row when
// absent. Partial-update merging happens in the service layer.
func (r *medicalRecordRepository) Upsert(record *models.MedicalRecord) error {
	const q = `
		INSERT INTO medical_records
			(patient_id, initial_complaint, diagnosis, investigations, action_plan, appointments, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (patient_id) DO UPDATE SET
			initial_complaint = EXCLUDED.initial_complaint,
			diagnosis         = EXCLUDED.diagnosis,
			investigations    = EXCLUDED.investigations,
			action_plan       = EXCLUDED.action_plan,
			appointments      = EXCLUDED.appointments,
			updated_at        = NOW()
		RETURNING id, updated_at
	`
	actionPlan, err := json.Marshal(record.ActionPlan)
	if err != nil {
		return err
	}
	appointments, err := json.Marshal(record.Appointments)
	if err != nil {
		return err
	}
	return r.DB.QueryRow(q,
		record.PatientID, record.InitialComplaint, record.Diagnosis,
		pq.Array(record.Investigations), actionPlan, appointments,
	).Scan(&record.ID, &record.UpdatedAt)
}

func (r *medicalRecordRepository) Delete(patientID int) error {
	_, err := r.DB.Exec(`DELETE FROM medical_records WHERE patient_id=$1`, patientID)
	return err
}
