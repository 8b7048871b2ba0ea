package main

import (
	"fmt"
	"net/smtp"
)

// Mailer sends a single HTML message to one recipient. SMTPMailer is the
// production implementation; tests substitute a recording stub.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := "From: " + m.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		htmlBody
	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
	return smtp.SendMail(m.Host+":"+m.Port, auth, m.From, []string{to}, []byte(msg))
}

// supplierEmailBody wraps a message in the fixed business-letterhead template.
func supplierEmailBody(message string) string {
	return fmt.Sprintf(`
	<h5>John Doe Business LTD</h5>
	<br>
	<p>%s</p>
	<br>
	<h6>Best Regards</h6>
	<h6>John Doe Business LTD</h6>
	`, message)
}
