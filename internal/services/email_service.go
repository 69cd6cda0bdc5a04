package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/zentask/zentask-platform/internal/config"
	"github.com/zentask/zentask-platform/internal/logger"
)

type EmailService struct {
	config *config.Config
	log    *logger.Logger
}

func NewEmailService(cfg *config.Config, log *logger.Logger) *EmailService {
	return &EmailService{config: cfg, log: log}
}

// taskAssignmentData is the template data for the assignment email.
type taskAssignmentData struct {
	AppName      string
	AppURL       string
	AssigneeName string
	AdminName    string
	TaskTitle    string
	MeetingTitle string
}

const taskAssignmentTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>New task assigned</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #1d1d1f; background: #f5f5f7; }
        .container { max-width: 520px; margin: 0 auto; padding: 20px; }
        .card { background: #ffffff; padding: 30px; border-radius: 14px; }
        .task { background: #f5f5f7; padding: 18px 22px; border-radius: 10px; margin: 20px 0; }
        .label { font-size: 11px; font-weight: 600; color: #8e8e93; text-transform: uppercase; letter-spacing: 0.8px; margin: 0 0 4px; }
        .button { display: inline-block; background: #007aff; color: white; padding: 12px 28px; text-decoration: none; border-radius: 10px; margin: 10px 0; }
        .footer { text-align: center; color: #8e8e93; font-size: 12px; margin-top: 20px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="card">
            <h2>New task assigned</h2>
            <p>Hi {{.AssigneeName}}, <strong>{{.AdminName}}</strong> assigned you a new task.</p>
            <div class="task">
                <p class="label">Task</p>
                <p><strong>{{.TaskTitle}}</strong></p>
                <p class="label">Meeting</p>
                <p>{{.MeetingTitle}}</p>
            </div>
            <p style="text-align: center;">
                <a href="{{.AppURL}}/my-tasks" class="button">View my tasks</a>
            </p>
        </div>
        <div class="footer">
            <p>&copy; {{.AppName}}. You received this because a task was assigned to you.</p>
        </div>
    </div>
</body>
</html>
`

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to, subject, body string) error {
	if s.config.SMTPHost == "" {
		// Log email instead of sending in development
		s.log.Info("email (not sent, SMTP unconfigured)", "to", to, "subject", subject)
		return nil
	}

	from := s.config.FromEmail
	auth := smtp.PlainAuth("", s.config.SMTPUser, s.config.SMTPPassword, s.config.SMTPHost)

	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n",
		from, to, subject)

	msg := []byte(headers + body)

	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)
	return smtp.SendMail(addr, auth, from, []string{to}, msg)
}

// SendTaskAssignmentEmail notifies an assignee that an admin assigned them
// a task in a meeting.
func (s *EmailService) SendTaskAssignmentEmail(to, assigneeName, adminName, taskTitle, meetingTitle string) error {
	if to == "" {
		return fmt.Errorf("assignee has no email address")
	}

	data := taskAssignmentData{
		AppName:      s.config.AppName,
		AppURL:       s.config.AppURL,
		AssigneeName: assigneeName,
		AdminName:    adminName,
		TaskTitle:    taskTitle,
		MeetingTitle: meetingTitle,
	}

	tmpl, err := template.New("task_assignment").Parse(taskAssignmentTemplate)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return err
	}

	subject := fmt.Sprintf("New task: %s", taskTitle)
	return s.sendEmail(to, subject, buf.String())
}
