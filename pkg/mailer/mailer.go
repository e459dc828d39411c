package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type Sender interface {
	Send(to, subject, body string) error
}

type Mailer struct {
	dialer *gomail.Dialer
	sender string
}

func New(host string, port int, username, password, sender string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		sender: sender,
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}

// ApprovalEmail builds the application-approved notification.
func ApprovalEmail(applicantName, applicationType, adminComments string) (subject, body string) {
	subject = "Application Approved - Welcome to HMX FPV Tours!"

	comments := ""
	if adminComments != "" {
		comments = fmt.Sprintf("Admin Comments: %s\n\n", adminComments)
	}

	body = fmt.Sprintf(`Dear %s,

Congratulations! Your %s application has been approved.

Welcome to the HMX FPV Tours team! We're excited to have you on board.

Next Steps:
1. You can now log in to your dashboard using your registered email and password
2. Complete your profile setup if needed
3. Start exploring the available opportunities

%sIf you have any questions, please don't hesitate to contact our support team.

Best regards,
HMX FPV Tours Team
Email: support@hmxfpvtours.com
Phone: +91 98765 43210
`, applicantName, applicationType, comments)
	return subject, body
}

// RejectionEmail builds the application-rejected notification.
func RejectionEmail(applicantName, applicationType, adminComments string) (subject, body string) {
	subject = "Application Update - HMX FPV Tours"

	feedback := ""
	if adminComments != "" {
		feedback = fmt.Sprintf("Feedback: %s\n\n", adminComments)
	}

	body = fmt.Sprintf(`Dear %s,

Thank you for your interest in joining HMX FPV Tours as a %s.

After careful review, we regret to inform you that we cannot proceed with your application at this time.

%sWe encourage you to reapply in the future as opportunities become available.

Thank you for your understanding.

Best regards,
HMX FPV Tours Team
Email: support@hmxfpvtours.com
Phone: +91 98765 43210
`, applicantName, applicationType, feedback)
	return subject, body
}
