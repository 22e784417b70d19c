package services

import (
	"suiviprix/internal/db"
	"suiviprix/internal/models"
	"testing"
	"time"
)

func TestAddContributionKeepsLogAndBalance(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Jean Artisan", models.AccountArtisan, "Bujumbura", 0)

	if err := AwardContribution(user.ID, PointsSubmission, ActionPriceSubmitted); err != nil {
		t.Fatalf("AwardContribution failed: %v", err)
	}
	if err := AwardContribution(user.ID, PointsVote, ActionVoteCast); err != nil {
		t.Fatalf("AwardContribution failed: %v", err)
	}

	points, err := GetPoints(user.ID)
	if err != nil {
		t.Fatalf("GetPoints failed: %v", err)
	}
	if points != 2 {
		t.Errorf("points = %d, want 2", points)
	}

	var logs int64
	db.DB.Model(&models.ContributionLog{}).Where("user_id = ?", user.ID).Count(&logs)
	if logs != 2 {
		t.Errorf("log rows = %d, want 2", logs)
	}
}

// A user one point short of the threshold crosses it with a vote; the badge
// flips on that operation and survives everything after it.
func TestTrustedBadgeCrossesThreshold(t *testing.T) {
	setupTestDB(t)
	author := createTestUser(t, "Marie Auteur", models.AccountParticulier, "Gitega", 0)
	voter := createTestUser(t, "Jean Artisan", models.AccountArtisan, "Bujumbura", TrustedBadgeThreshold-1)
	material := createTestMaterial(t, "Ciment", "sac 50kg")
	submission := createTestSubmission(t, author.ID, material.ID, 38500, "Mairie",
		time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))

	if _, err := CastVote(voter, submission.ID, models.VotePositive); err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}

	trusted, err := IsTrusted(voter.ID)
	if err != nil {
		t.Fatalf("IsTrusted failed: %v", err)
	}
	if !trusted {
		points, _ := GetPoints(voter.ID)
		t.Fatalf("badge not set at %d points", points)
	}

	// Still true after an unrelated flip
	if _, err := CastVote(voter, submission.ID, models.VoteNegative); err != nil {
		t.Fatalf("flip failed: %v", err)
	}
	if trusted, _ = IsTrusted(voter.ID); !trusted {
		t.Error("badge lost after a later vote")
	}
}

func TestTrustedBadgeRequiresEligibleAccount(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Marie Particulier", models.AccountParticulier, "Gitega", 100)

	if err := RefreshTrustedBadge(user.ID, user.AccountType); err != nil {
		t.Fatalf("RefreshTrustedBadge failed: %v", err)
	}
	if trusted, _ := IsTrusted(user.ID); trusted {
		t.Error("particulier account earned the badge")
	}
}

func TestTrustedBadgeIdempotent(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Quincaillerie Moderne", models.AccountCommercant, "Bujumbura", 60)

	for i := 0; i < 3; i++ {
		if err := RefreshTrustedBadge(user.ID, user.AccountType); err != nil {
			t.Fatalf("RefreshTrustedBadge call %d failed: %v", i, err)
		}
	}
	if trusted, _ := IsTrusted(user.ID); !trusted {
		t.Error("badge not set for eligible account above threshold")
	}
}

func TestTrustedBadgeBelowThreshold(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Jean Artisan", models.AccountArtisan, "Bujumbura", TrustedBadgeThreshold-1)

	if err := RefreshTrustedBadge(user.ID, user.AccountType); err != nil {
		t.Fatalf("RefreshTrustedBadge failed: %v", err)
	}
	if trusted, _ := IsTrusted(user.ID); trusted {
		t.Error("badge set below threshold")
	}
}
