// File: /services/email_service.go
package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"volunteerhub-api/config"
	"volunteerhub-api/models"
)

type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
	log    *logrus.Logger
}

func NewEmailService(cfg *config.Config, log *logrus.Logger) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	return &EmailService{
		config: cfg,
		dialer: dialer,
		log:    log,
	}
}

// SendWelcomeEmail greets a freshly registered user
func (es *EmailService) SendWelcomeEmail(email, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to VolunteerHub")

	textBody := fmt.Sprintf(`Hello %s!

Welcome to VolunteerHub. Your account is ready: browse opportunities near
you, join the ones that fit your schedule, and track them from your
dashboard.

Thanks for volunteering!
The VolunteerHub Team
`, name)

	htmlBody := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2>Hello %s!</h2>
	<p>Welcome to VolunteerHub. Your account is ready: browse opportunities
	near you, join the ones that fit your schedule, and track them from your
	dashboard.</p>
	<p>Thanks for volunteering!<br><strong>The VolunteerHub Team</strong></p>
</body>
</html>`, name)

	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	es.log.WithField("to", email).Info("email: welcome email sent")
	return nil
}

// SendJoinConfirmation confirms a user's spot in an opportunity
func (es *EmailService) SendJoinConfirmation(user *models.User, opportunity *models.Opportunity) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", user.Email)
	m.SetHeader("Subject", fmt.Sprintf("You're signed up: %s", opportunity.Title))

	textBody := fmt.Sprintf(`Hello %s!

You have joined "%s" on %s (%s - %s).

%s

See you there!
The VolunteerHub Team
`, user.FirstName, opportunity.Title, opportunity.DateStr,
		opportunity.StartTimeStr, opportunity.EndTimeStr, opportunity.Description)

	m.SetBody("text/plain", textBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send join confirmation: %w", err)
	}

	es.log.WithFields(logrus.Fields{
		"to":          user.Email,
		"opportunity": opportunity.ID,
	}).Info("email: join confirmation sent")
	return nil
}
