package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// SMTPConfig carries the mail relay credentials.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// AlertService sends operational alert emails to the company inbox.
type AlertService interface {
	SendGeofenceAlert(to string, employeeEmail string, distanceMeters float64, maxMeters int, occurredAt time.Time) error
}

type alertServiceImpl struct {
	cfg       SMTPConfig
	templates *template.Template
}

func NewAlertService(cfg SMTPConfig) (AlertService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &alertServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type geofenceAlertData struct {
	EmployeeEmail  string
	OccurredAt     string
	DistanceMeters string
	MaxMeters      int
}

// SendGeofenceAlert notifies the company inbox that an employee attempted to
// check in or out beyond the allowed radius.
func (s *alertServiceImpl) SendGeofenceAlert(to string, employeeEmail string, distanceMeters float64, maxMeters int, occurredAt time.Time) error {
	data := geofenceAlertData{
		EmployeeEmail:  employeeEmail,
		OccurredAt:     occurredAt.Format("2006-01-02 15:04:05"),
		DistanceMeters: fmt.Sprintf("%.0f", distanceMeters),
		MaxMeters:      maxMeters,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "geofence_alert.html", data); err != nil {
		return fmt.Errorf("failed to render geofence alert: %w", err)
	}

	subject := "Cảnh báo chấm công ngoài phạm vi"
	return s.send(to, subject, body.String())
}

func (s *alertServiceImpl) send(to string, subject string, htmlBody string) error {
	msg := bytes.Buffer{}
	msg.WriteString(fmt.Sprintf("From: %s\r\n", s.cfg.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		lastErr = smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg.Bytes())
		if lastErr == nil {
			return nil
		}
		slog.Warn("failed to send email, retrying", "to", to, "attempt", attempt, "error", lastErr)
		time.Sleep(time.Duration(attempt) * time.Second)
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
