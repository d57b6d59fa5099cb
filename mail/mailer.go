package mail

import (
	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/aboh505/BestLife/config"
)

// Sender delivers a single outbound message. Controllers depend on this
// interface so tests can substitute a fake.
type Sender interface {
	Send(to, subject, htmlBody, textBody string) error
}

// SMTPSender sends mail through the configured SMTP relay.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

func NewSMTPSender(cfg *config.Config, logger *zap.Logger) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.EmailFrom,
		logger: logger,
	}
}

func (s *SMTPSender) Send(to, subject, htmlBody, textBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody)
	if htmlBody != "" {
		m.AddAlternative("text/html", htmlBody)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("failed to send email",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err))
		return err
	}
	s.logger.Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
