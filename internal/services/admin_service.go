package services

import (
	"errors"
	"log"
	"strings"

	"doctorkays/internal/models"
	"doctorkays/internal/repositories"
)

var ErrEmailTaken = errors.New("admin with that email already exists")

type AdminUpdate struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Contact   string `json:"contact"`
	Address1  string `json:"address1"`
	Password  string `json:"password"`
}

type AdminService interface {
	Register(firstName, lastName, email, contact, address1, password string) (*models.Admin, error)
	GetProfile(id int) (*models.Admin, error)
	UpdateProfile(id int, upd AdminUpdate) (*models.Admin, error)
	Stats() (*models.AdminStats, error)
}

type adminService struct {
	admins        repositories.AdminRepository
	contacts      repositories.ContactRepository
	consultations repositories.ConsultationRepository
	questions     repositories.QuestionRepository
	auth          AuthService
	emails        EmailService
}

func NewAdminService(
	admins repositories.AdminRepository,
	contacts repositories.ContactRepository,
	consultations repositories.ConsultationRepository,
	questions repositories.QuestionRepository,
	auth AuthService,
	emails EmailService,
) AdminService {
	return &adminService{
		admins:        admins,
		contacts:      contacts,
		consultations: consultations,
		questions:     questions,
		auth:          auth,
		emails:        emails,
	}
}

func (s *adminService) Register(firstName, lastName, email, contact, address1, password string) (*models.Admin, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if existing, err := s.admins.GetByEmail(email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	admin := &models.Admin{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		Contact:      contact,
		Address1:     address1,
		PasswordHash: hash,
	}
	if err := s.admins.Create(admin); err != nil {
		return nil, err
	}

	if err := s.emails.SendAdminWelcome(admin.Email, admin.FirstName, admin.LastName); err != nil {
		return nil, err
	}
	log.Printf("[admin][register] created adminID=%d", admin.ID)
	return admin, nil
}

func (s *adminService) GetProfile(id int) (*models.Admin, error) {
	admin, err := s.admins.GetByID(id)
	if err != nil || admin == nil {
		return nil, ErrAdminNotFound
	}
	return admin, nil
}

// UpdateProfile applies only the provided fields; an empty value keeps the
// stored one. A new password is re-hashed before storing.
func (s *adminService) UpdateProfile(id int, upd AdminUpdate) (*models.Admin, error) {
	admin, err := s.admins.GetByID(id)
	if err != nil || admin == nil {
		return nil, ErrAdminNotFound
	}

	if upd.FirstName != "" {
		admin.FirstName = upd.FirstName
	}
	if upd.LastName != "" {
		admin.LastName = upd.LastName
	}
	if upd.Email != "" {
		admin.Email = strings.TrimSpace(strings.ToLower(upd.Email))
	}
	if upd.Contact != "" {
		admin.Contact = upd.Contact
	}
	if upd.Address1 != "" {
		admin.Address1 = upd.Address1
	}
	if upd.Password != "" {
		hash, err := s.auth.HashPassword(upd.Password)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = hash
	}

	if err := s.admins.Update(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *adminService) Stats() (*models.AdminStats, error) {
	contacts, err := s.contacts.Count()
	if err != nil {
		return nil, err
	}
	consultations, err := s.consultations.Count()
	if err != nil {
		return nil, err
	}
	forums, err := s.questions.Count()
	if err != nil {
		return nil, err
	}
	return &models.AdminStats{
		Contacts:      contacts,
		Consultations: consultations,
		Forums:        forums,
	}, nil
}
