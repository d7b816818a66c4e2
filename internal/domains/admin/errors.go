package admin

import "errors"

var (
	ErrInvalidCredentials = errors.New("email ou mot de passe incorrect")
	ErrEmailExists        = errors.New("un compte existe déjà avec cet email")
	ErrUserNotFound       = errors.New("utilisateur introuvable")
)
