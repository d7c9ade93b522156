package services

import (
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	"doctorkays/internal/models"
	"doctorkays/internal/utils"
)

// Attachment is an in-memory file to include with an outgoing email.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

type EmailService interface {
	SendVerificationCode(email, code string) error
	SendLoginAlert(admin *models.Admin, ip string, loc utils.Location) error
	SendAdminWelcome(email, firstName, lastName string) error
	SendContactConfirmation(c *models.Contact) error
	SendVolunteerConfirmation(v *models.Volunteer) error
	SendIntakeAcknowledgement(email, name, formName string) error
	SendFreeConsultationEmails(c *models.Consultation, report *Attachment) error
	SendBookingConfirmation(req models.BookingConfirmationRequest, confirmationPDF []byte) error
}

type emailService struct {
	dialer    *gomail.Dialer
	from      string
	forwardTo string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail, forwardTo string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer:    dialer,
		from:      fromEmail,
		forwardTo: forwardTo,
	}
}

func (s *emailService) send(m *gomail.Message) error {
	return s.dialer.DialAndSend(m)
}

func (s *emailService) newMessage(to, subject string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	return m
}

func attach(m *gomail.Message, a *Attachment) {
	m.Attach(a.Filename,
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(a.Content)
			return err
		}),
		gomail.SetHeader(map[string][]string{
			"Content-Type": {a.ContentType},
		}),
	)
}

func (s *emailService) SendVerificationCode(email, code string) error {
	m := s.newMessage(email, "Admin Login Verification Code")
	m.SetBody("text/plain", fmt.Sprintf(
		"Your verification code is: %s\n\n"+
			"It will expire in 5 minutes. A request has been made to log in to the "+
			"admin interface with your details; if you haven't initiated this, "+
			"contact the security team.\n\nDoctor Kays Admin Security Team",
		code,
	))
	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}

func (s *emailService) SendLoginAlert(admin *models.Admin, ip string, loc utils.Location) error {
	m := s.newMessage(admin.Email, "New Admin Login Alert")

	body := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>A login was just made to your admin account.</p>
		<p>IP Address: %s</p>
		<p>Location: %s, %s, %s</p>
		<p>Time: %s</p>
		<p>If this was you, you can ignore this message. Otherwise, secure your
		account immediately by contacting the admin.</p>
		<p>Doctor Kays Admin Security Team</p>
	`, admin.FirstName, ip, loc.City, loc.Region, loc.Country, time.Now().Format(time.RFC1123))

	m.SetBody("text/html", body)
	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send login alert: %w", err)
	}
	return nil
}

func (s *emailService) SendAdminWelcome(email, firstName, lastName string) error {
	m := s.newMessage(email, "Admin Privilege Granted")
	m.SetBody("text/plain", fmt.Sprintf(
		"Dear %s %s,\n\nYour admin account has been created with the email "+
			"address: %s.\n\nPlease contact the security team to request your "+
			"login link and password details.\n\nDoctor Kays Team",
		firstName, lastName, email,
	))
	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send admin welcome email: %w", err)
	}
	return nil
}

func (s *emailService) SendContactConfirmation(c *models.Contact) error {
	m := s.newMessage(c.Email, "We have received your request!")
	m.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nWe have received your message. One of our team members will "+
			"get back to you soon.\n\nSummary of your request:\n"+
			"- Name: %s %s\n- Phone: %s\n- Services: %s\n- Message: %s\n\n"+
			"Thank you for reaching out!\n\nDoctor Kays Team",
		c.FirstName, c.FirstName, c.LastName, c.Phone,
		strings.Join(c.Services, ", "), c.Message,
	))
	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send contact confirmation: %w", err)
	}
	return nil
}

func (s *emailService) SendVolunteerConfirmation(v *models.Volunteer) error {
	m := s.newMessage(v.Email, "Your volunteer request has been received!")
	m.SetBody("text/plain", fmt.Sprintf(
		"Dear %s,\n\nWe have received your request to become part of our "+
			"volunteers. One of our team members will get back to you soon.\n\n"+
			"Summary of your request:\n- Name: %s %s\n- Phone: %s\n- Message: %s\n\n"+
			"Thank you for reaching out!\n\nDoctor Kays Team",
		v.FirstName, v.FirstName, v.LastName, v.Phone, v.Message,
	))
	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send volunteer confirmation: %w", err)
	}
	return nil
}

// SendIntakeAcknowledgement is the generic receipt used by the forms that do
// not have a dedicated template.
func (s *emailService) SendIntakeAcknowledgement(email, name, formName string) error {
	m := s.newMessage(email, "We have received your submission!")
	m.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nWe have received your %s submission. One of our team members "+
			"will get back to you soon.\n\nThank you for reaching out!\n\n"+
			"Doctor Kays Team",
		name, formName,
	))
	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send %s acknowledgement: %w", formName, err)
	}
	return nil
}

// SendFreeConsultationEmails sends the patient confirmation and forwards the
// intake (with the report file attached when present) to the clinic inbox.
func (s *emailService) SendFreeConsultationEmails(c *models.Consultation, report *Attachment) error {
	patient := s.newMessage(c.Email, "Your Free Subscription is Confirmed!")
	patient.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nThank you for subscribing to our %s service.\n\n"+
			"We have received your subscription and will get back to you within "+
			"24hrs.\n\nFor private audio or video consultation, you can subscribe "+
			"to either our Silver or Gold package.\n\nDoctor Kays Team",
		c.Name, c.ConsultationType,
	))

	clinic := s.newMessage(s.forwardTo, fmt.Sprintf("New %s Registered", c.ConsultationType))
	clinic.SetBody("text/plain", fmt.Sprintf(
		"A new %s has been registered.\n\nName: %s\nEmail: %s\n"+
			"Consultation Type: %s\nHistory: %s\n\nPlease follow up accordingly.",
		c.ConsultationType, c.Name, c.Email, c.ConsultationType, c.Story,
	))
	if report != nil {
		attach(clinic, report)
	}

	if err := s.send(patient); err != nil {
		return fmt.Errorf("failed to send consultation confirmation: %w", err)
	}
	if err := s.send(clinic); err != nil {
		return fmt.Errorf("failed to forward consultation intake: %w", err)
	}
	return nil
}

func (s *emailService) SendBookingConfirmation(req models.BookingConfirmationRequest, confirmationPDF []byte) error {
	m := s.newMessage(req.Email, "Consultation Booking Confirmation")
	m.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour consultation booking for %s has been confirmed.\n\n"+
			"Thank you for choosing Doctor Kays.\n\nDoctor Kays Team",
		req.Name, req.ConsultationType,
	))
	if len(confirmationPDF) > 0 {
		attach(m, &Attachment{
			Filename:    "booking-confirmation.pdf",
			ContentType: "application/pdf",
			Content:     confirmationPDF,
		})
	}
	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send booking confirmation: %w", err)
	}
	return nil
}
