package services

import (
	"suiviprix/internal/models"
)

// Actions gated by account type.
const (
	ActionVote        = "vote"
	ActionComment     = "comment"
	ActionAddMaterial = "add_material"
	ActionSubmitPrice = "submit_price"
)

// Single capability table; handlers and services check here instead of
// re-deriving role rules per call site.
var actionRoles = map[string][]string{
	ActionVote:        {models.AccountArtisan},
	ActionComment:     {models.AccountArtisan},
	ActionAddMaterial: {models.AccountCommercant},
	ActionSubmitPrice: {models.AccountParticulier, models.AccountArtisan, models.AccountCommercant},
}

// Account types that can earn the trusted badge.
var badgeEligible = []string{models.AccountArtisan, models.AccountCommercant}

// Can reports whether the account type may perform the action.
func Can(accountType, action string) bool {
	for _, role := range actionRoles[action] {
		if role == accountType {
			return true
		}
	}
	return false
}

// BadgeEligible reports whether the account type participates in the
// trusted-badge program.
func BadgeEligible(accountType string) bool {
	for _, role := range badgeEligible {
		if role == accountType {
			return true
		}
	}
	return false
}
