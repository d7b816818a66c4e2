package lead

import "context"

type LeadService interface {
	// ValidateStep checks only the fields belonging to one form step.
	ValidateStep(ctx context.Context, step Step, draft Lead) error
	// Submit validates the whole aggregate and dispatches the operator
	// summary and the customer confirmation emails.
	Submit(ctx context.Context, clientIP string, l Lead) error
}
