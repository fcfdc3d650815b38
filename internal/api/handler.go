package api

import (
	"time"

	"github.com/smoldovan/lunchroom/internal/config"
	"github.com/smoldovan/lunchroom/internal/db"
	"github.com/smoldovan/lunchroom/internal/services"
	"github.com/smoldovan/lunchroom/internal/weekdate"
	"gorm.io/gorm"
)

// Handler owns the HTTP surface. It carries no business logic; every route
// body is a thin translation between JSON and a service call.
type Handler struct {
	repositories *db.Repositories
	location     *time.Location

	authService       *services.AuthService
	lockService       *services.LockService
	selectionService  *services.SelectionService
	optionsService    *services.OptionsService
	reviewService     *services.ReviewService
	importService     *services.ImportService
	statsService      *services.StatsService
	exportService     *services.ExportService
	transferService   *services.TransferService
	invitationService *services.InvitationService
	notifier          *services.NotificationService
}

func NewHandler(database *gorm.DB, cfg *config.Config) *Handler {
	handler := &Handler{location: cfg.Location}
	return handler.withDependencies(database, cfg)
}

func (handler *Handler) withDependencies(database *gorm.DB, cfg *config.Config) *Handler {
	repos := db.NewRepositories(database)
	handler.repositories = repos

	handler.notifier = services.NewNotificationService(services.MailSettings{
		Host:       cfg.SMTPHost,
		Port:       cfg.SMTPPort,
		Username:   cfg.SMTPUsername,
		Password:   cfg.SMTPPassword,
		From:       cfg.SMTPFrom,
		AdminEmail: cfg.AdminEmail,
	})

	handler.authService = services.NewAuthService(repos.Users, cfg.SecretKey, cfg.AllowedEmailDomain)
	handler.lockService = services.NewLockService(repos.Selections, repos.WeekSettings, repos.WeekUnlocks, repos.UnlockRequests)
	handler.selectionService = services.NewSelectionService(repos.Selections, handler.lockService)
	handler.optionsService = services.NewOptionsService(repos.Options, repos.Users, handler.notifier)
	handler.reviewService = services.NewReviewService(repos.Reviews)
	handler.importService = services.NewImportService(repos.Users, repos.Options, repos.Selections, repos.ImportedMeals, repos.Uploads)
	handler.statsService = services.NewStatsService(repos.Selections, repos.ImportedMeals, repos.Users)
	handler.exportService = services.NewExportService(handler.statsService)
	handler.transferService = services.NewTransferService(repos.Transfers, repos.Selections, handler.lockService)
	handler.invitationService = services.NewInvitationService(repos.Invitations, repos.Users, handler.notifier, cfg.AppBaseURL)
	return handler
}

// today is the date-only wall clock in the configured location; lock checks
// compare it against week starts.
func (handler *Handler) today() time.Time {
	return weekdate.DateOnly(time.Now().In(handler.location))
}
