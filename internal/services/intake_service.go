package services

import (
	"fmt"
	"log"
	"strings"

	"doctorkays/internal/models"
	"doctorkays/internal/repositories"
)

// IntakeService covers the public contact/volunteer/sponsor/enquiry/feedback
// forms: one row each, a confirmation email where the original flow sends
// one, and an optional Telegram nudge to the clinic chat.
type IntakeService interface {
	AddContact(c *models.Contact) error
	ListContacts() ([]*models.Contact, error)
	AddVolunteer(v *models.Volunteer) error
	ListVolunteers() ([]*models.Volunteer, error)
	AddSponsor(s *models.Sponsor) error
	ListSponsors() ([]*models.Sponsor, error)
	AddEnquiry(e *models.Enquiry) error
	ListEnquiries() ([]*models.Enquiry, error)
	AddFeedback(f *models.Feedback) error
	ListFeedback() ([]*models.Feedback, error)
}

type intakeService struct {
	contacts   repositories.ContactRepository
	volunteers repositories.VolunteerRepository
	sponsors   repositories.SponsorRepository
	enquiries  repositories.EnquiryRepository
	feedback   repositories.FeedbackRepository
	emails     EmailService
	telegram   *TelegramService
}

func NewIntakeService(
	contacts repositories.ContactRepository,
	volunteers repositories.VolunteerRepository,
	sponsors repositories.SponsorRepository,
	enquiries repositories.EnquiryRepository,
	feedback repositories.FeedbackRepository,
	emails EmailService,
	telegram *TelegramService,
) IntakeService {
	return &intakeService{
		contacts:   contacts,
		volunteers: volunteers,
		sponsors:   sponsors,
		enquiries:  enquiries,
		feedback:   feedback,
		emails:     emails,
		telegram:   telegram,
	}
}

// acknowledge sends the generic receipt; the form is already stored, so a
// failed email only gets logged.
func (s *intakeService) acknowledge(email, name, formName string) {
	if email == "" {
		return
	}
	if err := s.emails.SendIntakeAcknowledgement(email, name, formName); err != nil {
		log.Printf("[intake][email] %s acknowledgement failed: %v", formName, err)
	}
}

func (s *intakeService) notify(text string) {
	if err := s.telegram.Notify(text); err != nil {
		log.Printf("[intake][tg] notify failed: %v", err)
	}
}

// AddContact stores the form and sends the confirmation email; the request
// fails when the email cannot be sent.
func (s *intakeService) AddContact(c *models.Contact) error {
	if err := s.contacts.Create(c); err != nil {
		return fmt.Errorf("save contact: %w", err)
	}
	if err := s.emails.SendContactConfirmation(c); err != nil {
		return err
	}
	s.notify(fmt.Sprintf("New contact request from %s %s (%s)", c.FirstName, c.LastName, c.Email))
	return nil
}

func (s *intakeService) ListContacts() ([]*models.Contact, error) {
	return s.contacts.List()
}

func (s *intakeService) AddVolunteer(v *models.Volunteer) error {
	if err := s.volunteers.Create(v); err != nil {
		return fmt.Errorf("save volunteer: %w", err)
	}
	if err := s.emails.SendVolunteerConfirmation(v); err != nil {
		return err
	}
	s.notify(fmt.Sprintf("New volunteer request from %s %s (%s)", v.FirstName, v.LastName, v.Email))
	return nil
}

func (s *intakeService) ListVolunteers() ([]*models.Volunteer, error) {
	return s.volunteers.List()
}

func (s *intakeService) AddSponsor(sp *models.Sponsor) error {
	if err := s.sponsors.Create(sp); err != nil {
		return fmt.Errorf("save sponsor: %w", err)
	}
	s.acknowledge(sp.Email, sp.Name, "sponsorship")
	s.notify(fmt.Sprintf("New sponsorship from %s (%s)", sp.Name, sp.Email))
	return nil
}

func (s *intakeService) ListSponsors() ([]*models.Sponsor, error) {
	return s.sponsors.List()
}

func (s *intakeService) AddEnquiry(e *models.Enquiry) error {
	e.FullName = strings.TrimSpace(e.FullName)
	if err := s.enquiries.Create(e); err != nil {
		return fmt.Errorf("save enquiry: %w", err)
	}
	s.notify(fmt.Sprintf("New enquiry from %s", e.FullName))
	return nil
}

func (s *intakeService) ListEnquiries() ([]*models.Enquiry, error) {
	return s.enquiries.List()
}

func (s *intakeService) AddFeedback(f *models.Feedback) error {
	if err := s.feedback.Create(f); err != nil {
		return fmt.Errorf("save feedback: %w", err)
	}
	s.notify(fmt.Sprintf("New feedback from %s", f.Name))
	return nil
}

func (s *intakeService) ListFeedback() ([]*models.Feedback, error) {
	return s.feedback.List()
}
