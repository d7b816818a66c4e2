package lead

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionForwardGatedByValidation(t *testing.T) {
	s := NewSession()
	require.Equal(t, StepIdentity, s.Step)

	// Empty draft cannot advance.
	assert.Error(t, s.Next())
	assert.Equal(t, StepIdentity, s.Step)

	s.Draft.Identity = validIdentity()
	require.NoError(t, s.Next())
	assert.Equal(t, StepAddress, s.Step)

	s.Draft.Address = validAddress()
	require.NoError(t, s.Next())
	assert.Equal(t, StepServices, s.Step)

	s.Draft.Services = Services{Services: []string{"serrurerie"}}
	require.NoError(t, s.Next())
	assert.Equal(t, StepDetails, s.Step)

	// Details is the last form step; Next has nowhere to go.
	assert.Error(t, s.Next())
}

func TestSessionBackwardNeverValidates(t *testing.T) {
	s := NewSession()
	s.Draft.Identity = validIdentity()
	require.NoError(t, s.Next())

	// Wreck the identity, then go back: no validation on the way down.
	s.Draft.Identity.Phone = "123"
	require.NoError(t, s.Back())
	assert.Equal(t, StepIdentity, s.Step)

	assert.Error(t, s.Back())
}

func TestSessionSubmitHappyPath(t *testing.T) {
	s := &Session{Draft: validLead(), Step: StepDetails}

	dispatched := 0
	err := s.Submit(context.Background(), func(ctx context.Context, l Lead) error {
		dispatched++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, StepSubmitted, s.Step)
	assert.Equal(t, 1, dispatched)
}

func TestSessionSubmitRevalidatesWholeAggregate(t *testing.T) {
	// The draft reached Details, but identity went stale in the meantime.
	draft := validLead()
	draft.Identity.Email = "not-an-email"
	s := &Session{Draft: draft, Step: StepDetails}

	err := s.Submit(context.Background(), func(ctx context.Context, l Lead) error {
		t.Fatal("dispatch must not run on invalid draft")
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, StepDetails, s.Step)
}

func TestSessionSubmitFailureKeepsDraft(t *testing.T) {
	s := &Session{Draft: validLead(), Step: StepDetails}

	err := s.Submit(context.Background(), func(ctx context.Context, l Lead) error {
		return errors.New("smtp down")
	})
	require.Error(t, err)
	assert.Equal(t, StepFailed, s.Step)
	assert.Equal(t, "Jean", s.Draft.Identity.FirstName)

	require.NoError(t, s.Retry())
	assert.Equal(t, StepDetails, s.Step)

	err = s.Submit(context.Background(), func(ctx context.Context, l Lead) error {
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, StepSubmitted, s.Step)
}

func TestSessionSubmitOnlyFromDetails(t *testing.T) {
	s := &Session{Draft: validLead(), Step: StepIdentity}
	err := s.Submit(context.Background(), func(ctx context.Context, l Lead) error { return nil })
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestValidateStepUnknown(t *testing.T) {
	assert.ErrorIs(t, ValidateStep(Step("step5"), Lead{}), ErrUnknownStep)
}
