package lead

import "errors"

var (
	ErrUnknownStep       = errors.New("étape inconnue")
	ErrInvalidTransition = errors.New("transition impossible depuis cette étape")
	ErrRateLimited       = errors.New("trop de demandes envoyées, veuillez réessayer plus tard")
	ErrDispatchFailed    = errors.New("l'envoi de la demande a échoué, veuillez réessayer")
)
