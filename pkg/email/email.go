package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"time"

	"go-interview-backend/config"
)

// EmailService sends transactional mail (schedule confirmations and
// reminders) via SMTP.
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

// ScheduleEmailData holds the data for scheduled-mock emails
type ScheduleEmailData struct {
	JobRole      string
	Experience   string
	Mode         string
	ScheduledFor time.Time
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

// IsConfigured reports whether SMTP credentials are present.
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

const scheduleEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #6c47ff; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Title}}</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Job Role:</div>
                <div class="value">{{.Data.JobRole}}</div>
            </div>
            <div class="field">
                <div class="label">Experience Level:</div>
                <div class="value">{{.Data.Experience}}</div>
            </div>
            <div class="field">
                <div class="label">Mode:</div>
                <div class="value">{{.Data.Mode}}</div>
            </div>
            <div class="field">
                <div class="label">Scheduled For:</div>
                <div class="value">{{.When}}</div>
            </div>
        </div>
        <div class="footer">
            <p>AI Interview Prep — good luck with your practice!</p>
        </div>
    </div>
</body>
</html>`

var scheduleTmpl = template.Must(template.New("schedule").Parse(scheduleEmailTemplate))

// SendScheduleConfirmation notifies the owner that a mock was scheduled.
func (s *EmailService) SendScheduleConfirmation(to string, data ScheduleEmailData) error {
	return s.sendScheduleMail(to, "Mock Interview Scheduled", data)
}

// SendScheduleReminder notifies the owner that a scheduled mock is starting soon.
func (s *EmailService) SendScheduleReminder(to string, data ScheduleEmailData) error {
	return s.sendScheduleMail(to, "Your Mock Interview Starts Soon", data)
}

func (s *EmailService) sendScheduleMail(to, title string, data ScheduleEmailData) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email service not configured")
	}

	var body bytes.Buffer
	err := scheduleTmpl.Execute(&body, struct {
		Title string
		When  string
		Data  ScheduleEmailData
	}{
		Title: title,
		When:  data.ScheduledFor.Format("Monday, 2 January 2006 at 3:04 PM MST"),
		Data:  data,
	})
	if err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		to,
		title,
		body.String(),
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := s.host + ":" + s.port
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
