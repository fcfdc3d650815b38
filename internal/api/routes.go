package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	api.Post("/invitations/accept", handler.AcceptInvitation)
	api.Post("/feedback", handler.AuthRequired, handler.SendFeedback)

	selections := api.Group("/selections", handler.AuthRequired)
	selections.Get("", handler.ListMySelections)
	selections.Get("/:week", handler.GetSelection)
	selections.Put("/:week", handler.UpsertSelection)
	selections.Post("/:week/lock", handler.LockSelection)
	selections.Post("/:week/copy", handler.CopyColleagueDay)

	api.Get("/weeks/:week/status", handler.AuthRequired, handler.GetWeekStatus)
	api.Post("/unlock-requests", handler.AuthRequired, handler.CreateUnlockRequest)

	api.Get("/options", handler.AuthRequired, handler.ListOptions)

	reviews := api.Group("/reviews", handler.AuthRequired)
	reviews.Get("", handler.ListReviews)
	reviews.Put("", handler.UpsertReview)

	transfers := api.Group("/transfers", handler.AuthRequired)
	transfers.Get("", handler.ListOfferedTransfers)
	transfers.Post("", handler.OfferTransfer)
	transfers.Post("/:id/claim", handler.ClaimTransfer)

	admin := api.Group("/admin", handler.AuthRequired, handler.AdminOnly)
	admin.Get("/unlock-requests", handler.ListPendingUnlockRequests)
	admin.Post("/unlock-requests/:id/approve", handler.ApproveUnlockRequest)
	admin.Post("/unlock-requests/:id/reject", handler.RejectUnlockRequest)
	admin.Post("/weeks/:week/lock", handler.LockWeek)
	admin.Post("/weeks/:week/unlock", handler.UnlockWeek)
	admin.Post("/weeks/:week/unlocked-users/:userId", handler.GrantUserUnlock)
	admin.Delete("/weeks/:week/unlocked-users/:userId", handler.RevokeUserUnlock)
	admin.Post("/imports/options", handler.ImportOptions)
	admin.Post("/imports/selections", handler.ImportSelections)
	admin.Get("/uploads", handler.ListUploads)
	admin.Get("/stats", handler.GetWeekStats)
	admin.Get("/stats/rows", handler.GetWeekRows)
	admin.Get("/stats/export", handler.ExportWeekReport)
	admin.Post("/invitations", handler.IssueInvitation)
	admin.Get("/invitations", handler.ListOpenInvitations)
}
