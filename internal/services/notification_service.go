package services

import (
	"fmt"
	"log"

	"github.com/wneessen/go-mail"
)

// Mailer is the delivery half of the notification collaborator. Services
// depend on this interface so tests can record sends instead of dialing SMTP.
type Mailer interface {
	Configured() bool
	Send(to string, subject string, htmlBody string, textBody string) error
}

// MailSettings carries the SMTP half of the configuration. Empty Host means
// email is switched off and every send reports not-configured.
type MailSettings struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	AdminEmail string
}

// NotificationService delivers transactional email over SMTP. Failures are
// wrapped as ExternalServiceError so callers can log and keep going; a send
// never fails the write that triggered it.
type NotificationService struct {
	settings MailSettings
	client   *mail.Client
}

func NewNotificationService(settings MailSettings) *NotificationService {
	service := &NotificationService{settings: settings}
	if settings.Host == "" {
		return service
	}

	options := []mail.Option{
		mail.WithPort(settings.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if settings.Username != "" {
		options = append(options,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(settings.Username),
			mail.WithPassword(settings.Password),
		)
	}

	client, err := mail.NewClient(settings.Host, options...)
	if err != nil {
		log.Printf("notifications: smtp client init failed, email disabled: %v", err)
		return service
	}
	service.client = client
	return service
}

func (service *NotificationService) Configured() bool {
	return service.client != nil
}

func (service *NotificationService) Send(to string, subject string, htmlBody string, textBody string) error {
	if service.client == nil {
		return &ExternalServiceError{Service: "email", Err: fmt.Errorf("smtp not configured")}
	}

	message := mail.NewMsg()
	if err := message.From(service.settings.From); err != nil {
		return &ExternalServiceError{Service: "email", Err: err}
	}
	if err := message.To(to); err != nil {
		return &ExternalServiceError{Service: "email", Err: err}
	}
	message.Subject(subject)
	message.SetBodyString(mail.TypeTextPlain, textBody)
	if htmlBody != "" {
		message.AddAlternativeString(mail.TypeTextHTML, htmlBody)
	}

	if err := service.client.DialAndSend(message); err != nil {
		return &ExternalServiceError{Service: "email", Err: err}
	}
	return nil
}

// RelayFeedback forwards a user's message to the admin address.
func (service *NotificationService) RelayFeedback(fromEmail string, message string) error {
	if service.settings.AdminEmail == "" {
		return &ExternalServiceError{Service: "email", Err: fmt.Errorf("admin email not configured")}
	}
	subject := fmt.Sprintf("Lunchroom feedback from %s", fromEmail)
	body := fmt.Sprintf("From: %s\n\n%s", fromEmail, message)
	return service.Send(service.settings.AdminEmail, subject, "", body)
}
