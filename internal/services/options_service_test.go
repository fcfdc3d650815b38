package services

import (
	"strings"
	"testing"
	"time"

	"github.com/smoldovan/lunchroom/internal/models"
)

func (store *memoryOptionStore) ListByWeek(week time.Time) ([]models.MealOption, error) {
	matched := make([]models.MealOption, 0)
	for _, option := range store.options {
		if option.Week.Equal(week) {
			matched = append(matched, option)
		}
	}
	return matched, nil
}

func TestListByWeekReturnsWeekOptions(t *testing.T) {
	options := &memoryOptionStore{}
	week := mustWeek(t, "2026-09-07")
	otherWeek := mustWeek(t, "2026-09-14")
	options.Create(&models.MealOption{Week: week, Category: "Meniu 1"})
	options.Create(&models.MealOption{Week: week, Category: "Salata"})
	options.Create(&models.MealOption{Week: otherWeek, Category: "Meniu 1"})

	service := NewOptionsService(options, &memoryAccountStore{}, &recordingMailer{})
	listed, err := service.ListByWeek(week)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 options, got %d", len(listed))
	}
}

func TestBroadcastNewMenuCountsSentAndFailed(t *testing.T) {
	users := &memoryAccountStore{}
	users.add(models.User{Email: "ana.pop@firm.ro", IsActive: true})
	users.add(models.User{Email: "ion.dinu@firm.ro", IsActive: true})
	users.add(models.User{Email: "flaky@firm.ro", IsActive: true})
	users.add(models.User{Email: "ghost@placeholder.com", IsActive: false})

	mailer := &recordingMailer{configured: true, failFor: map[string]bool{"flaky@firm.ro": true}}
	service := NewOptionsService(&memoryOptionStore{}, users, mailer)

	week := mustWeek(t, "2026-09-07")
	result, err := service.BroadcastNewMenu(week)
	if err != nil {
		t.Fatalf("broadcast failed: %v", err)
	}
	if result.Sent != 2 || result.Failed != 1 {
		t.Fatalf("expected sent=2 failed=1, got sent=%d failed=%d", result.Sent, result.Failed)
	}

	for _, mail := range mailer.sent {
		if strings.HasSuffix(mail.to, "@placeholder.com") {
			t.Fatalf("placeholder account %s must not be mailed", mail.to)
		}
		if !strings.Contains(mail.body, "September 7") {
			t.Fatalf("expected week date in body, got %q", mail.body)
		}
	}
}

func TestBroadcastSkippedWithoutMailer(t *testing.T) {
	users := &memoryAccountStore{}
	users.add(models.User{Email: "ana.pop@firm.ro", IsActive: true})

	mailer := &recordingMailer{configured: false}
	service := NewOptionsService(&memoryOptionStore{}, users, mailer)

	result, err := service.BroadcastNewMenu(mustWeek(t, "2026-09-07"))
	if err != nil {
		t.Fatalf("broadcast failed: %v", err)
	}
	if result.Sent != 0 || result.Failed != 0 {
		t.Fatalf("expected no sends, got sent=%d failed=%d", result.Sent, result.Failed)
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("expected no mail recorded, got %d", len(mailer.sent))
	}
}
