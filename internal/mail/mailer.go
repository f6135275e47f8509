package mail

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adroitdesign/studio-api/internal/model"
)

// Sender delivers the two inquiry side-effect emails. Both are best-effort:
// callers log failures and move on.
type Sender interface {
	SendInquiryNotification(i model.Inquiry) error
	SendAutoReply(i model.Inquiry) error
}

// Config for the SMTP transport. Running without Host/Username/Password is a
// supported state: the mailer stays constructed but disabled.
type Config struct {
	Host     string
	Port     int
	Secure   bool
	Username string
	Password string
	From     string
	NotifyTo string
}

type smtpMailer struct {
	cfg     Config
	enabled bool
}

func NewSMTPMailer(cfg Config) Sender {
	enabled := cfg.Host != "" && cfg.Username != "" && cfg.Password != ""
	if !enabled {
		logrus.Warn("email transport not configured, notifications disabled")
	}
	return &smtpMailer{cfg: cfg, enabled: enabled}
}

// SendInquiryNotification mails the internal inbox about a new submission.
func (m *smtpMailer) SendInquiryNotification(i model.Inquiry) error {
	if !m.enabled {
		logrus.Infof("email disabled, inquiry notification skipped for %s", i.Email)
		return nil
	}

	subject := "New Inquiry: Contact Form"
	if i.Subject != nil && *i.Subject != "" {
		subject = fmt.Sprintf("New Inquiry: %s", *i.Subject)
	}

	htmlBody := fmt.Sprintf(`<h2>New Inquiry Received</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Type:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>
<hr>
<p><small>Received: %s</small></p>`,
		i.Name, i.Email, orNA(i.Phone), i.Type, i.Message, time.Now().Format(time.RFC1123))

	textBody := fmt.Sprintf("New Inquiry Received\n\nName: %s\nEmail: %s\nPhone: %s\nType: %s\n\nMessage:\n%s\n",
		i.Name, i.Email, orNA(i.Phone), i.Type, i.Message)

	to := m.cfg.NotifyTo
	if to == "" {
		to = m.cfg.Username
	}
	return m.send(to, subject, htmlBody, textBody)
}

// SendAutoReply thanks the submitter and echoes their message back.
func (m *smtpMailer) SendAutoReply(i model.Inquiry) error {
	if !m.enabled {
		logrus.Infof("email disabled, auto-reply skipped for %s", i.Email)
		return nil
	}

	subject := "Thank you for contacting Adroit Design"

	htmlBody := fmt.Sprintf(`<h2>Thank You for Your Inquiry</h2>
<p>Dear %s,</p>
<p>Thank you for contacting Adroit Design. We have received your inquiry and will get back to you shortly.</p>
<p><strong>Your Message:</strong></p>
<p>%s</p>
<br>
<p>Best regards,</p>
<p><strong>Adroit Design India Pvt Ltd</strong></p>`,
		i.Name, i.Message)

	textBody := fmt.Sprintf("Dear %s,\n\nThank you for contacting Adroit Design. We have received your inquiry and will get back to you shortly.\n\nYour Message:\n%s\n\nBest regards,\nAdroit Design India Pvt Ltd\n",
		i.Name, i.Message)

	return m.send(i.Email, subject, htmlBody, textBody)
}

// send builds a multipart/alternative message with text and HTML parts and
// pushes it through plain SMTP auth. Secure selects implicit TLS (port 465
// style); otherwise the server is free to upgrade via STARTTLS.
func (m *smtpMailer) send(to, subject, htmlBody, textBody string) error {
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	boundary := "----=_StudioAPI_Boundary"

	msg := fmt.Sprintf("From: %s\r\n", m.cfg.From) +
		fmt.Sprintf("To: %s\r\n", to) +
		fmt.Sprintf("Subject: %s\r\n", subject) +
		"MIME-Version: 1.0\r\n" +
		fmt.Sprintf("Content-Type: multipart/alternative; boundary=%q\r\n", boundary) +
		"\r\n" +
		fmt.Sprintf("--%s\r\n", boundary) +
		"Content-Type: text/plain; charset=UTF-8\r\n\r\n" +
		textBody + "\r\n" +
		fmt.Sprintf("--%s\r\n", boundary) +
		"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
		htmlBody + "\r\n" +
		fmt.Sprintf("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var err error
	if m.cfg.Secure {
		err = m.sendTLS(addr, auth, to, []byte(msg))
	} else {
		err = smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg))
	}
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

func (m *smtpMailer) sendTLS(addr string, auth smtp.Auth, to string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: m.cfg.Host})
	if err != nil {
		return err
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(m.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}
