package mail

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/notify"

	gomail "github.com/wneessen/go-mail"
)

type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	timeout  time.Duration
}

func NewSMTPMailer(cfg config.MailConfig) (*SMTPMailer, error) {
	host := strings.TrimSpace(cfg.SMTPHost)
	if host == "" {
		return nil, fmt.Errorf("empty SMTP host")
	}
	from := strings.TrimSpace(cfg.From)
	if from == "" {
		return nil, fmt.Errorf("empty sender address")
	}
	return &SMTPMailer{
		host:     host,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     from,
		timeout:  15 * time.Second,
	}, nil
}

func (m *SMTPMailer) message(e notify.Email) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	if err := msg.To(e.To); err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}
	msg.Subject(e.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, e.Body)
	return msg, nil
}

func (m *SMTPMailer) client() (*gomail.Client, error) {
	opts := []gomail.Option{
		gomail.WithPort(m.port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(m.timeout),
	}
	if m.username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(m.username),
			gomail.WithPassword(m.password),
		)
	}
	return gomail.NewClient(m.host, opts...)
}

// Send opens one SMTP session per message.
func (m *SMTPMailer) Send(ctx context.Context, e notify.Email) error {
	msg, err := m.message(e)
	if err != nil {
		return err
	}
	c, err := m.client()
	if err != nil {
		return err
	}
	return c.DialAndSendWithContext(ctx, msg)
}

// LogMailer stands in for SMTP when no host is configured.
type LogMailer struct {
	logger *log.Logger
}

func NewLogMailer(logger *log.Logger) *LogMailer {
	if logger == nil {
		logger = log.Default()
	}
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(_ context.Context, e notify.Email) error {
	m.logger.Printf("[Mail] to=%s subject=%q bytes=%d", e.To, e.Subject, len(e.Body))
	return nil
}

// New picks the SMTP mailer when SMTP_HOST is set and the log mailer
// otherwise.
func New(cfg config.MailConfig, logger *log.Logger) (notify.Mailer, error) {
	if strings.TrimSpace(cfg.SMTPHost) == "" {
		return NewLogMailer(logger), nil
	}
	return NewSMTPMailer(cfg)
}
