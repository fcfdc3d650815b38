package db

import "gorm.io/gorm"

type Repositories struct {
	Users          *UserRepository
	Options        *MealOptionRepository
	Selections     *SelectionRepository
	ImportedMeals  *ImportedMealRepository
	Reviews        *ReviewRepository
	WeekSettings   *WeekSettingsRepository
	WeekUnlocks    *WeekUnlockRepository
	UnlockRequests *UnlockRequestRepository
	Uploads        *UploadHistoryRepository
	Transfers      *TransferRepository
	Invitations    *InvitationRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(database),
		Options:        NewMealOptionRepository(database),
		Selections:     NewSelectionRepository(database),
		ImportedMeals:  NewImportedMealRepository(database),
		Reviews:        NewReviewRepository(database),
		WeekSettings:   NewWeekSettingsRepository(database),
		WeekUnlocks:    NewWeekUnlockRepository(database),
		UnlockRequests: NewUnlockRequestRepository(database),
		Uploads:        NewUploadHistoryRepository(database),
		Transfers:      NewTransferRepository(database),
		Invitations:    NewInvitationRepository(database),
	}
}
