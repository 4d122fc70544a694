package store

import "errors"

// Erreurs remontées telles quelles aux handlers, qui les traduisent en 4xx.
var (
	ErrDuplicateEmail     = errors.New("un compte avec cet email existe déjà")
	ErrInvalidCredentials = errors.New("email ou mot de passe incorrect")
	ErrNotAuthenticated   = errors.New("non authentifié")
	ErrUserNotFound       = errors.New("utilisateur introuvable")
	ErrOrderNotFound      = errors.New("commande introuvable")
	ErrBadTransition      = errors.New("transition de statut invalide")
	ErrProductNotFound    = errors.New("produit introuvable")

	// ErrCorruptData n'est renvoyée qu'en mode FailOnCorrupt.
	ErrCorruptData = errors.New("données persistées corrompues")
)
