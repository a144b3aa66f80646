package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/bitemap/web/internal/config"
	gomail "github.com/wneessen/go-mail"
	"golang.org/x/sync/errgroup"
)

// Submission is a contact form payload ready for delivery.
type Submission struct {
	Email   string
	Subject string
	Message string
}

type adminData struct {
	Email      string
	Subject    string
	Message    string
	ReceivedAt string
}

type subscribeData struct {
	Email      string
	Source     string
	ReceivedAt string
}

// Mailer delivers the site's transactional mail over SMTP.
type Mailer struct {
	cfg config.SMTPConfig
}

func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendContact delivers the admin notification and the submitter
// auto-reply. Both are dispatched concurrently and SendContact waits
// for both; ordering between them is not guaranteed.
func (m *Mailer) SendContact(ctx context.Context, sub Submission) error {
	data := adminData{
		Email:      sub.Email,
		Subject:    sub.Subject,
		Message:    sub.Message,
		ReceivedAt: time.Now().Format(time.RFC1123),
	}

	adminBody, err := renderAdminBody(data)
	if err != nil {
		return err
	}
	ackBody, err := renderAckBody(data)
	if err != nil {
		return err
	}

	admin, err := m.newMsg(m.cfg.To, "📧 BiteMap Support: "+sub.Subject, adminBody)
	if err != nil {
		return err
	}
	if err := admin.ReplyTo(sub.Email); err != nil {
		return fmt.Errorf("invalid reply-to address: %w", err)
	}

	ack, err := m.newMsg(sub.Email, "✅ We received your message - BiteMap Support", ackBody)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, msg := range []*gomail.Msg{admin, ack} {
		g.Go(func() error {
			return m.send(ctx, msg)
		})
	}
	return g.Wait()
}

// SendSubscribeNotice tells the internal recipient about a new
// waitlist signup.
func (m *Mailer) SendSubscribeNotice(ctx context.Context, email, source string) error {
	body, err := renderSubscribeBody(subscribeData{
		Email:      email,
		Source:     source,
		ReceivedAt: time.Now().Format(time.RFC1123),
	})
	if err != nil {
		return err
	}

	msg, err := m.newMsg(m.cfg.To, "🔔 New BiteMap subscriber", body)
	if err != nil {
		return err
	}
	return m.send(ctx, msg)
}

func (m *Mailer) newMsg(to, subject, htmlBody string) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.User); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)
	return msg, nil
}

func (m *Mailer) send(ctx context.Context, msg *gomail.Msg) error {
	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.User),
		gomail.WithPassword(m.cfg.Pass),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
