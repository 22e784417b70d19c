package services

import (
	"errors"
)

// Validation failures are rejected before any mutation; the remaining errors
// abort only the operation they occur in. Anything not in this list is a
// store failure and surfaces to the caller as-is (no retry here).
var (
	ErrInvalidVote      = errors.New("vote invalide")
	ErrInvalidAlertKind = errors.New("type d'alerte invalide")
	ErrInvalidPrice     = errors.New("prix invalide")
	ErrInvalidInput     = errors.New("saisie invalide")
	ErrNotFound         = errors.New("introuvable")
	ErrAlreadyExists    = errors.New("existe déjà")
	ErrUnauthorized     = errors.New("action non autorisée")
)
