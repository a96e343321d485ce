package service

import (
	"context"
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host, port, username, password, from string) EmailService {
	p, _ := strconv.Atoi(port)
	return &emailService{
		host:     host,
		port:     p,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendMemberInvitation(ctx context.Context, email, name, orgName, tempPassword string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Welcome to %s on FleetDesk", orgName))

	body := fmt.Sprintf("Hello %s,\n\nAn account has been created for you in the organization: %s.\n\nSign in with this email address and the temporary password below, then change it:\n\n%s\n\nBest regards,\nThe FleetDesk Team", name, orgName, tempPassword)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send invitation email: %w", err)
	}

	return nil
}

func (s *emailService) SendPastDueReminder(ctx context.Context, email, name, orgName string, revenueCount, expenseCount int32) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Past due ledger entries - %s", orgName))

	body := fmt.Sprintf("Hello %s,\n\nYour organization '%s' has ledger entries past their due date:", name, orgName)
	if revenueCount > 0 {
		body += fmt.Sprintf("\n- %d past due revenue entries", revenueCount)
	}
	if expenseCount > 0 {
		body += fmt.Sprintf("\n- %d past due expense entries", expenseCount)
	}
	body += "\n\nPlease review them in the finances view.\n\nBest regards,\nThe FleetDesk Team"

	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send past due reminder: %w", err)
	}

	return nil
}
