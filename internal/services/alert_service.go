package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"doctorkays/internal/models"
	"doctorkays/internal/utils"
)

// GeoLookup resolves an IP to a coarse location. *utils.GeoClient satisfies it.
type GeoLookup interface {
	Lookup(ctx context.Context, ip string) (utils.Location, error)
}

// AlertService composes and dispatches the post-login security alert.
// Everything here is best-effort: a failed lookup yields empty location
// fields, a failed send is logged and dropped.
type AlertService interface {
	NotifyLogin(admin *models.Admin, sourceAddr string)
}

type alertService struct {
	geo      GeoLookup
	emails   EmailService
	telegram *TelegramService
	timeout  time.Duration
}

func NewAlertService(geo GeoLookup, emails EmailService, telegram *TelegramService, timeout time.Duration) AlertService {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &alertService{geo: geo, emails: emails, telegram: telegram, timeout: timeout}
}

func (s *alertService) NotifyLogin(admin *models.Admin, sourceAddr string) {
	ip := utils.NormalizeIP(sourceAddr)

	var loc utils.Location
	if utils.IsLoopback(ip) {
		log.Printf("[alert][login] loopback address %q, skipping geo lookup", ip)
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		l, err := s.geo.Lookup(ctx, ip)
		if err != nil {
			log.Printf("[alert][login] geo lookup failed for %s: %v", ip, err)
		} else {
			loc = l
		}
	}

	if err := s.emails.SendLoginAlert(admin, ip, loc); err != nil {
		log.Printf("[alert][login] email failed for adminID=%d: %v", admin.ID, err)
	}
	if err := s.telegram.Notify(fmt.Sprintf(
		"Admin login: %s %s (%s) from %s %s %s %s",
		admin.FirstName, admin.LastName, admin.Email, ip, loc.City, loc.Region, loc.Country,
	)); err != nil {
		log.Printf("[alert][login] telegram failed for adminID=%d: %v", admin.ID, err)
	}
}
