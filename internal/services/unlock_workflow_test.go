package services

import (
	"errors"
	"testing"

	"github.com/smoldovan/lunchroom/internal/models"
)

func TestCreateUnlockRequestWhileAdminLockedForbidden(t *testing.T) {
	fixture := newLockServiceFixture()
	week := mustWeek(t, "2026-09-07")
	today := mustDate(t, "2026-09-08")
	fixture.settings.settings = []models.WeekSettings{{ID: 1, Week: week, IsLocked: true}}
	fixture.selections.add(models.MealSelection{UserID: 42, Week: week, IsLocked: true})

	if _, err := fixture.service.CreateUnlockRequest(42, week, "vacation", today); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(fixture.requests.requests) != 0 {
		t.Fatalf("expected no request row, got %d", len(fixture.requests.requests))
	}
}

func TestCreateUnlockRequestWithoutSelectionFails(t *testing.T) {
	fixture := newLockServiceFixture()
	if _, err := fixture.service.CreateUnlockRequest(42, mustWeek(t, "2026-09-07"), "", mustDate(t, "2026-09-08")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateUnlockRequestRequiresSelfLock(t *testing.T) {
	fixture := newLockServiceFixture()
	week := mustWeek(t, "2026-09-07")
	fixture.selections.add(models.MealSelection{UserID: 42, Week: week})

	_, err := fixture.service.CreateUnlockRequest(42, week, "", mustDate(t, "2026-09-08"))
	if !IsValidationError(err) {
		t.Fatalf("expected validation error for unlocked selection, got %v", err)
	}
}

func TestCreateUnlockRequestIdempotent(t *testing.T) {
	fixture := newLockServiceFixture()
	week := mustWeek(t, "2026-09-07")
	today := mustDate(t, "2026-09-08")
	fixture.selections.add(models.MealSelection{UserID: 42, Week: week, IsLocked: true})

	first, err := fixture.service.CreateUnlockRequest(42, week, "typo in order", today)
	if err != nil {
		t.Fatalf("first request failed: %v", err)
	}
	second, err := fixture.service.CreateUnlockRequest(42, week, "typo in order", today)
	if err != nil {
		t.Fatalf("second request failed: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected same request id, got %d then %d", first.ID, second.ID)
	}

	pending, err := fixture.requests.ListPending()
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected exactly one pending row, got %d", len(pending))
	}
}

func TestCreateUnlockRequestLosingRaceReturnsWinner(t *testing.T) {
	fixture := newLockServiceFixture()
	week := mustWeek(t, "2026-09-07")
	today := mustDate(t, "2026-09-08")
	fixture.selections.add(models.MealSelection{UserID: 42, Week: week, IsLocked: true})
	fixture.requests.duplicateOnNextCreate = &models.UnlockRequest{
		UserID: 42,
		Week:   week,
		Reason: "concurrent submission",
		Status: models.UnlockRequestPending,
	}

	request, err := fixture.service.CreateUnlockRequest(42, week, "mine", today)
	if err != nil {
		t.Fatalf("expected race to fall back to existing request, got %v", err)
	}
	if request.Reason != "concurrent submission" {
		t.Fatalf("expected winning writer's request, got %+v", request)
	}

	pending, err := fixture.requests.ListPending()
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected exactly one pending row after race, got %d", len(pending))
	}
}

func TestApproveUnlockRequestClearsSelfLock(t *testing.T) {
	fixture := newLockServiceFixture()
	week := mustWeek(t, "2026-09-07")
	today := mustDate(t, "2026-09-08")
	fixture.selections.add(models.MealSelection{UserID: 42, Week: week, IsLocked: true})

	request, err := fixture.service.CreateUnlockRequest(42, week, "", today)
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}

	approved, err := fixture.service.ApproveUnlockRequest(request.ID, 1, today)
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if approved.Status != models.UnlockRequestApproved {
		t.Fatalf("expected approved status, got %s", approved.Status)
	}
	if approved.ResolvedBy == nil || *approved.ResolvedBy != 1 {
		t.Fatalf("expected resolver 1, got %+v", approved.ResolvedBy)
	}

	selection, found, err := fixture.selections.FindByUserAndWeek(42, week)
	if err != nil || !found {
		t.Fatalf("selection lookup failed: found=%v err=%v", found, err)
	}
	if selection.IsLocked {
		t.Fatal("expected self-lock cleared after approval")
	}
}

func TestApproveWhileAdminLockedGrantsExemption(t *testing.T) {
	fixture := newLockServiceFixture()
	week := mustWeek(t, "2026-09-07")
	today := mustDate(t, "2026-09-08")
	fixture.selections.add(models.MealSelection{UserID: 42, Week: week, IsLocked: true})

	// Self-lock and request happen before the admin locks the week.
	request, err := fixture.service.CreateUnlockRequest(42, week, "", today)
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	if err := fixture.service.LockWeek(week, today); err != nil {
		t.Fatalf("lock week failed: %v", err)
	}

	if _, err := fixture.service.ApproveUnlockRequest(request.ID, 1, today); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	// The approved user can write immediately.
	if err := fixture.service.EnsureWritable(42, week, today); err != nil {
		t.Fatalf("expected approved user writable, got %v", err)
	}

	// The week stays locked for everyone else.
	locked, err := fixture.service.IsWeekLockedForUser(week, 7, today)
	if err != nil {
		t.Fatalf("lock check failed: %v", err)
	}
	if !locked {
		t.Fatal("expected week to remain locked for other users")
	}
}

func TestApproveResolvedRequestConflicts(t *testing.T) {
	fixture := newLockServiceFixture()
	week := mustWeek(t, "2026-09-07")
	today := mustDate(t, "2026-09-08")
	fixture.selections.add(models.MealSelection{UserID: 42, Week: week, IsLocked: true})

	request, err := fixture.service.CreateUnlockRequest(42, week, "", today)
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	if _, err := fixture.service.ApproveUnlockRequest(request.ID, 1, today); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if _, err := fixture.service.ApproveUnlockRequest(request.ID, 1, today); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict on second approval, got %v", err)
	}
}

func TestRejectUnlockRequestKeepsSelfLock(t *testing.T) {
	fixture := newLockServiceFixture()
	week := mustWeek(t, "2026-09-07")
	today := mustDate(t, "2026-09-08")
	fixture.selections.add(models.MealSelection{UserID: 42, Week: week, IsLocked: true})

	request, err := fixture.service.CreateUnlockRequest(42, week, "", today)
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}

	rejected, err := fixture.service.RejectUnlockRequest(request.ID, 1, today)
	if err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if rejected.Status != models.UnlockRequestRejected {
		t.Fatalf("expected rejected status, got %s", rejected.Status)
	}

	selection, _, err := fixture.selections.FindByUserAndWeek(42, week)
	if err != nil {
		t.Fatalf("selection lookup failed: %v", err)
	}
	if !selection.IsLocked {
		t.Fatal("expected selection to stay self-locked after rejection")
	}

	// A rejected request no longer counts as pending; a fresh one may open.
	fresh, err := fixture.service.CreateUnlockRequest(42, week, "second try", today)
	if err != nil {
		t.Fatalf("fresh request failed: %v", err)
	}
	if fresh.ID == request.ID {
		t.Fatal("expected a new request row after rejection")
	}
}

func TestLockWeekWipesExemptionsBothWays(t *testing.T) {
	fixture := newLockServiceFixture()
	week := mustWeek(t, "2026-09-07")
	today := mustDate(t, "2026-09-08")

	if err := fixture.service.GrantUserUnlock(week, 42); err != nil {
		t.Fatalf("grant failed: %v", err)
	}
	if err := fixture.service.LockWeek(week, today); err != nil {
		t.Fatalf("lock week failed: %v", err)
	}
	if len(fixture.unlocks.unlocks) != 0 {
		t.Fatalf("expected locking to wipe exemptions, got %d", len(fixture.unlocks.unlocks))
	}

	if err := fixture.service.GrantUserUnlock(week, 42); err != nil {
		t.Fatalf("grant failed: %v", err)
	}
	if err := fixture.service.UnlockWeek(week); err != nil {
		t.Fatalf("unlock week failed: %v", err)
	}
	if len(fixture.unlocks.unlocks) != 0 {
		t.Fatalf("expected unlocking to wipe exemptions, got %d", len(fixture.unlocks.unlocks))
	}

	settings, found, err := fixture.settings.FindByWeek(week)
	if err != nil || !found {
		t.Fatalf("settings lookup failed: found=%v err=%v", found, err)
	}
	if settings.IsLocked || settings.LockedAt != nil {
		t.Fatalf("expected cleared lock, got %+v", settings)
	}
}

func TestGrantAndRevokeUserUnlock(t *testing.T) {
	fixture := newLockServiceFixture()
	week := mustWeek(t, "2026-09-07")
	today := mustDate(t, "2026-09-08")
	fixture.settings.settings = []models.WeekSettings{{ID: 1, Week: week, IsLocked: true}}

	if err := fixture.service.GrantUserUnlock(week, 42); err != nil {
		t.Fatalf("grant failed: %v", err)
	}
	// Granting twice is a no-op, not an error.
	if err := fixture.service.GrantUserUnlock(week, 42); err != nil {
		t.Fatalf("second grant failed: %v", err)
	}

	locked, err := fixture.service.IsWeekLockedForUser(week, 42, today)
	if err != nil {
		t.Fatalf("lock check failed: %v", err)
	}
	if locked {
		t.Fatal("expected granted user unlocked")
	}

	if err := fixture.service.RevokeUserUnlock(week, 42); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	locked, err = fixture.service.IsWeekLockedForUser(week, 42, today)
	if err != nil {
		t.Fatalf("lock check failed: %v", err)
	}
	if !locked {
		t.Fatal("expected revoked user locked again")
	}
}
