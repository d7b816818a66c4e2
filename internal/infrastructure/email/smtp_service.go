package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"vitrine-backend/pkg/logger"
)

// EmailService dispatches the two notifications an accepted devis request
// produces: the operator summary and the customer confirmation.
type EmailService interface {
	SendLeadSummary(ctx context.Context, to string, data LeadEmailData) error
	SendLeadConfirmation(ctx context.Context, data LeadEmailData) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
}

func NewSMTPEmailService(host, port, from string) EmailService {
	return &smtpEmailService{
		smtpAddr: host + ":" + port,
		smtpFrom: from,
	}
}

func (s *smtpEmailService) SendLeadSummary(ctx context.Context, to string, data LeadEmailData) error {
	subject := fmt.Sprintf("Nouvelle demande de devis - %s %s", data.FirstName, data.LastName)
	body := fmt.Sprintf(`Nouvelle demande de devis reçue.

Client : %s %s
Email : %s
Téléphone : %s
Adresse d'intervention : %s, %s %s
Type de bâtiment : %s
Prestations demandées : %s
Urgence : %s

Message :
%s`,
		data.FirstName, data.LastName,
		data.Email,
		data.Phone,
		data.Street, data.PostalCode, data.City,
		data.BuildingType,
		strings.Join(data.Services, ", "),
		data.Urgency,
		data.Message,
	)

	return s.send(to, subject, body)
}

func (s *smtpEmailService) SendLeadConfirmation(ctx context.Context, data LeadEmailData) error {
	subject := "Votre demande de devis a bien été reçue"
	body := fmt.Sprintf(`Bonjour %s,

Nous avons bien reçu votre demande de devis concernant : %s.

Un conseiller vous recontactera dans les plus brefs délais au %s.

Si vous n'êtes pas à l'origine de cette demande, merci d'ignorer cet email.`,
		data.FirstName,
		strings.Join(data.Services, ", "),
		data.Phone,
	)

	err := s.send(data.Email, subject, body)
	if err != nil {
		logger.Info("Failed to send confirmation email", map[string]interface{}{
			"error":     err.Error(),
			"to":        data.Email,
			"smtp_addr": s.smtpAddr,
		})
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *smtpEmailService) send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, to, subject, body))

	return smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{to}, msg)
}
