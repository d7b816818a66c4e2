package lead

import "context"

// Step identifies where a quote-request draft currently sits.
type Step string

const (
	StepIdentity   Step = "identity"
	StepAddress    Step = "address"
	StepServices   Step = "services"
	StepDetails    Step = "details"
	StepSubmitting Step = "submitting"
	StepSubmitted  Step = "submitted"
	StepFailed     Step = "failed"
)

var stepOrder = []Step{StepIdentity, StepAddress, StepServices, StepDetails}

// ValidateStep runs only the schema of the named step against the draft.
func ValidateStep(step Step, draft Lead) error {
	switch step {
	case StepIdentity:
		return draft.Identity.Validate()
	case StepAddress:
		return draft.Address.Validate()
	case StepServices:
		return draft.Services.Validate()
	case StepDetails:
		return draft.Details.Validate()
	default:
		return ErrUnknownStep
	}
}

// Session is a quote-request draft walking the form steps. Forward moves
// are gated on the current step's schema, backward moves are always free,
// and the final submit re-checks the entire draft before dispatch.
type Session struct {
	Draft Lead
	Step  Step
}

func NewSession() *Session {
	return &Session{Step: StepIdentity}
}

func (s *Session) stepIndex() int {
	for i, st := range stepOrder {
		if st == s.Step {
			return i
		}
	}
	return -1
}

// Next validates the current step and advances to the following one.
// A validation failure leaves the session where it is.
func (s *Session) Next() error {
	i := s.stepIndex()
	if i < 0 || i == len(stepOrder)-1 {
		return ErrInvalidTransition
	}

	if err := ValidateStep(s.Step, s.Draft); err != nil {
		return err
	}

	s.Step = stepOrder[i+1]
	return nil
}

// Back returns to the previous step without re-validating anything.
func (s *Session) Back() error {
	i := s.stepIndex()
	if i <= 0 {
		return ErrInvalidTransition
	}
	s.Step = stepOrder[i-1]
	return nil
}

// Submit re-validates the whole draft, then hands it to dispatch. On a
// dispatch error the session parks in the failed state with the draft
// intact; Retry puts it back on the details step.
func (s *Session) Submit(ctx context.Context, dispatch func(context.Context, Lead) error) error {
	if s.Step != StepDetails {
		return ErrInvalidTransition
	}

	if err := s.Draft.Validate(); err != nil {
		return err
	}

	s.Step = StepSubmitting
	if err := dispatch(ctx, s.Draft); err != nil {
		s.Step = StepFailed
		return err
	}

	s.Step = StepSubmitted
	return nil
}

// Retry recovers a failed submission without losing entered data.
func (s *Session) Retry() error {
	if s.Step != StepFailed {
		return ErrInvalidTransition
	}
	s.Step = StepDetails
	return nil
}
