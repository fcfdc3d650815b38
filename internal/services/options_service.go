package services

import (
	"fmt"
	"log"
	"time"

	"github.com/smoldovan/lunchroom/internal/models"
)

type MealOptionStore interface {
	ListByWeek(week time.Time) ([]models.MealOption, error)
}

type OptionsUserStore interface {
	ListActive() ([]models.User, error)
}

// BroadcastResult reports a fire-and-forget mailing: who got the message and
// how many sends failed. Failures never fail the triggering operation.
type BroadcastResult struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

type OptionsService struct {
	options MealOptionStore
	users   OptionsUserStore
	mailer  Mailer
}

func NewOptionsService(options MealOptionStore, users OptionsUserStore, mailer Mailer) *OptionsService {
	return &OptionsService{options: options, users: users, mailer: mailer}
}

func (service *OptionsService) ListByWeek(week time.Time) ([]models.MealOption, error) {
	return service.options.ListByWeek(week)
}

// BroadcastNewMenu mails every active user that the week's menu is up.
// Skipped entirely when email is not configured.
func (service *OptionsService) BroadcastNewMenu(week time.Time) (BroadcastResult, error) {
	var result BroadcastResult
	if !service.mailer.Configured() {
		return result, nil
	}

	users, err := service.users.ListActive()
	if err != nil {
		return result, err
	}

	subject := fmt.Sprintf("New menu for the week of %s", week.Format("January 2"))
	body := fmt.Sprintf("The meal options for the week starting %s are available. Place your orders before the week locks.",
		week.Format("Monday, January 2, 2006"))

	for _, user := range users {
		if err := service.mailer.Send(user.Email, subject, "", body); err != nil {
			log.Printf("options: menu broadcast to %s failed: %v", user.Email, err)
			result.Failed++
			continue
		}
		result.Sent++
	}
	return result, nil
}
