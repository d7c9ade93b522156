package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"doctorkays/internal/models"
	"doctorkays/internal/pdf"
	"doctorkays/internal/repositories"
	"doctorkays/internal/storage"
)

var ErrConsultationNotFound = errors.New("consultation not found")

// Consultation types whose intake must carry a report file.
var fileRequiredTypes = map[string]bool{
	"Blood Tests":                 true,
	"Scan Reports":                true,
	"Blood Tests and Scan Report": true,
}

// ReportUpload is an uploaded report file from the intake form.
type ReportUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ConsultationService interface {
	List() ([]*models.Consultation, error)
	GetByID(id int) (*models.Consultation, error)
	Add(c *models.Consultation) error
	Delete(id int) (*models.Consultation, error)
	AddFree(ctx context.Context, c *models.Consultation, upload *ReportUpload) error
	SendBookingConfirmation(req models.BookingConfirmationRequest) error
}

type consultationService struct {
	repo     repositories.ConsultationRepository
	files    storage.FileStore
	emails   EmailService
	pdfs     pdf.Generator
	telegram *TelegramService
}

func NewConsultationService(
	repo repositories.ConsultationRepository,
	files storage.FileStore,
	emails EmailService,
	pdfs pdf.Generator,
	telegram *TelegramService,
) ConsultationService {
	return &consultationService{
		repo:     repo,
		files:    files,
		emails:   emails,
		pdfs:     pdfs,
		telegram: telegram,
	}
}

func (s *consultationService) List() ([]*models.Consultation, error) {
	return s.repo.List()
}

func (s *consultationService) GetByID(id int) (*models.Consultation, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConsultationNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *consultationService) Add(c *models.Consultation) error {
	return s.repo.Create(c)
}

func (s *consultationService) Delete(id int) (*models.Consultation, error) {
	c, err := s.repo.Delete(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConsultationNotFound
		}
		return nil, err
	}
	return c, nil
}

// AddFree stores a free-consultation intake. When the chosen type requires a
// report and one was uploaded, the file goes to the report store and its
// download link is kept on the record; the clinic copy of the notification
// carries the file as an attachment.
func (s *consultationService) AddFree(ctx context.Context, c *models.Consultation, upload *ReportUpload) error {
	var report *Attachment

	if fileRequiredTypes[c.ConsultationType] && upload != nil {
		key, url, err := s.files.SaveReport(ctx, upload.Filename, upload.ContentType, upload.Data)
		if err != nil {
			return fmt.Errorf("store report file: %w", err)
		}
		c.ReportFileURL = url
		c.ReportFileName = upload.Filename
		c.ReportFileExtension = strings.ToLower(filepath.Ext(upload.Filename))
		report = &Attachment{
			Filename:    upload.Filename,
			ContentType: upload.ContentType,
			Content:     upload.Data,
		}
		log.Printf("[consultation][free] report stored key=%s size=%d", key, len(upload.Data))
	}

	if err := s.repo.Create(c); err != nil {
		return fmt.Errorf("save consultation: %w", err)
	}

	if err := s.emails.SendFreeConsultationEmails(c, report); err != nil {
		return err
	}

	if err := s.telegram.Notify(fmt.Sprintf(
		"New %s intake from %s (%s)", c.ConsultationType, c.Name, c.Email,
	)); err != nil {
		log.Printf("[consultation][free] telegram notify failed: %v", err)
	}
	return nil
}

func (s *consultationService) SendBookingConfirmation(req models.BookingConfirmationRequest) error {
	doc, err := s.pdfs.BookingConfirmation(pdf.BookingData{
		Name:             req.Name,
		Email:            req.Email,
		ConsultationType: req.ConsultationType,
		ConfirmedAt:      time.Now(),
	})
	if err != nil {
		// still worth sending the confirmation without the attachment
		log.Printf("[consultation][booking] pdf generation failed: %v", err)
		doc = nil
	}
	return s.emails.SendBookingConfirmation(req, doc)
}
