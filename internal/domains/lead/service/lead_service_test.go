package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine-backend/internal/domains/lead"
	"vitrine-backend/internal/infrastructure/email"
)

type mockMailer struct {
	summaries     []email.LeadEmailData
	confirmations []email.LeadEmailData
	summaryErr    error
}

func (m *mockMailer) SendLeadSummary(ctx context.Context, to string, data email.LeadEmailData) error {
	if m.summaryErr != nil {
		return m.summaryErr
	}
	m.summaries = append(m.summaries, data)
	return nil
}

func (m *mockMailer) SendLeadConfirmation(ctx context.Context, data email.LeadEmailData) error {
	m.confirmations = append(m.confirmations, data)
	return nil
}

func validLead() lead.Lead {
	return lead.Lead{
		Identity: lead.Identity{
			FirstName: "Jean",
			LastName:  "Dupont",
			Email:     "jean.dupont@example.fr",
			Phone:     "06 12 34 56 78",
		},
		Address: lead.Address{
			Street:       "12 rue de la République",
			PostalCode:   "92110",
			City:         "Clichy",
			BuildingType: "Maison",
			BillingSame:  true,
		},
		Services: lead.Services{Services: []string{"installation-renovation"}},
		Details:  lead.Details{Urgency: "non-urgence", Consent: true},
	}
}

func TestSubmitDispatchesExactlyTwoEmails(t *testing.T) {
	mailer := &mockMailer{}
	svc := NewLeadService(mailer, nil, "operator@example.fr", 10)

	err := svc.Submit(context.Background(), "203.0.113.7", validLead())
	require.NoError(t, err)

	require.Len(t, mailer.summaries, 1)
	require.Len(t, mailer.confirmations, 1)
	assert.Equal(t, "jean.dupont@example.fr", mailer.summaries[0].Email)
	assert.Equal(t, []string{"installation-renovation"}, mailer.confirmations[0].Services)
}

func TestSubmitRejectsInvalidAggregate(t *testing.T) {
	mailer := &mockMailer{}
	svc := NewLeadService(mailer, nil, "operator@example.fr", 10)

	l := validLead()
	l.Details.Consent = false

	err := svc.Submit(context.Background(), "203.0.113.7", l)
	require.Error(t, err)
	assert.Empty(t, mailer.summaries)
	assert.Empty(t, mailer.confirmations)
}

func TestSubmitSummaryFailure(t *testing.T) {
	mailer := &mockMailer{summaryErr: errors.New("smtp down")}
	svc := NewLeadService(mailer, nil, "operator@example.fr", 10)

	err := svc.Submit(context.Background(), "203.0.113.7", validLead())
	assert.ErrorIs(t, err, lead.ErrDispatchFailed)
	assert.Empty(t, mailer.confirmations)
}

func TestValidateStepDelegates(t *testing.T) {
	svc := NewLeadService(&mockMailer{}, nil, "operator@example.fr", 10)

	draft := lead.Lead{Identity: validLead().Identity}
	assert.NoError(t, svc.ValidateStep(context.Background(), lead.StepIdentity, draft))
	assert.Error(t, svc.ValidateStep(context.Background(), lead.StepAddress, draft))
	assert.ErrorIs(t, svc.ValidateStep(context.Background(), lead.Step("nope"), draft), lead.ErrUnknownStep)
}
