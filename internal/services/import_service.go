package services

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/smoldovan/lunchroom/internal/models"
	"github.com/smoldovan/lunchroom/internal/weekdate"
)

type ImportUserStore interface {
	ListAll() ([]models.User, error)
	Create(user *models.User) error
}

type ImportOptionStore interface {
	FindByWeekAndCategory(week time.Time, category string) (models.MealOption, bool, error)
	Create(option *models.MealOption) error
	Save(option *models.MealOption) error
}

type ImportSelectionStore interface {
	FindByUserAndWeek(userID uint, week time.Time) (models.MealSelection, bool, error)
	Create(selection *models.MealSelection) error
	Save(selection *models.MealSelection) error
}

type ImportedMealStore interface {
	FindByNameAndWeek(employeeName string, week time.Time) (models.ImportedMeal, bool, error)
	Create(imported *models.ImportedMeal) error
	Save(imported *models.ImportedMeal) error
}

type ImportUploadStore interface {
	FindByContentHash(contentHash string) (models.UploadHistory, bool, error)
	ListByType(uploadType string) ([]models.UploadHistory, error)
	Create(upload *models.UploadHistory) error
}

// RowFailure explains why one spreadsheet row was not imported. Row numbers
// are 1-based to match what the admin sees in the spreadsheet program.
type RowFailure struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type ImportReport struct {
	UploadID string       `json:"uploadId"`
	Week     string       `json:"week"`
	Imported int          `json:"imported"`
	Failed   int          `json:"failed"`
	Failures []RowFailure `json:"failures"`

	// WeekStart is the parsed form of Week, kept for callers that chain
	// further work onto the import without re-parsing the key.
	WeekStart time.Time `json:"-"`
}

// ImportService turns uploaded spreadsheets into meal options or selections.
// Imports are best-effort bulk loads: row errors are collected, not fatal,
// and partial success is a designed outcome. Rows are processed sequentially
// against a user list fetched once per job.
type ImportService struct {
	users      ImportUserStore
	options    ImportOptionStore
	selections ImportSelectionStore
	imported   ImportedMealStore
	uploads    ImportUploadStore
}

func NewImportService(users ImportUserStore, options ImportOptionStore, selections ImportSelectionStore, imported ImportedMealStore, uploads ImportUploadStore) *ImportService {
	return &ImportService{
		users:      users,
		options:    options,
		selections: selections,
		imported:   imported,
		uploads:    uploads,
	}
}

// ImportOptions ingests a weekly menu sheet: one MealOption row per parsed
// category, upserted on (week, category).
func (service *ImportService) ImportOptions(fileName string, fileBytes []byte, rows [][]string, today time.Time) (ImportReport, error) {
	week, period, contentHash, err := service.screenUpload(fileName, fileBytes, models.UploadTypeOptions, today)
	if err != nil {
		return ImportReport{}, err
	}

	categories := ParseOptionCategories(rows)
	if len(categories) == 0 {
		return ImportReport{}, NewValidationError("no menu categories recognized in %s", fileName)
	}

	report := ImportReport{Week: weekdate.FormatWeekKey(week), WeekStart: week, Failures: []RowFailure{}}
	for _, category := range categories {
		if err := service.upsertOption(week, category); err != nil {
			report.Failed++
			report.Failures = append(report.Failures, RowFailure{Reason: fmt.Sprintf("category %q: %v", category.Name, err)})
			continue
		}
		report.Imported++
	}
	if report.Imported == 0 {
		return report, NewValidationError("no categories imported from %s", fileName)
	}

	uploadID, err := service.recordUpload(fileName, contentHash, models.UploadTypeOptions, period, week)
	if err != nil {
		return report, err
	}
	report.UploadID = uploadID
	return report, nil
}

// ImportSelections ingests an orders sheet keyed by employee name. Matched
// rows land on the user's MealSelection; unmatched rows get a placeholder
// account and an ImportedMeal row.
func (service *ImportService) ImportSelections(fileName string, fileBytes []byte, rows [][]string, today time.Time) (ImportReport, error) {
	week, period, contentHash, err := service.screenUpload(fileName, fileBytes, models.UploadTypeSelections, today)
	if err != nil {
		return ImportReport{}, err
	}

	users, err := service.users.ListAll()
	if err != nil {
		return ImportReport{}, err
	}
	index := buildNameIndex(users)

	report := ImportReport{Week: weekdate.FormatWeekKey(week), WeekStart: week, Failures: []RowFailure{}}
	for rowNumber, row := range rows {
		if rowNumber == 0 && looksLikeSelectionHeader(row) {
			continue
		}
		if rowIsEmpty(row) {
			continue
		}

		employeeName := ""
		if len(row) > 0 {
			employeeName = strings.TrimSpace(row[0])
		}
		if employeeName == "" {
			report.Failed++
			report.Failures = append(report.Failures, RowFailure{Row: rowNumber + 1, Reason: "missing employee name"})
			continue
		}

		dayCells := weekdayCells(row)
		if user, matched := index.match(employeeName); matched {
			err = service.upsertSelection(user.ID, week, dayCells)
		} else {
			err = service.importUnmatchedRow(employeeName, week, dayCells)
		}
		if err != nil {
			report.Failed++
			report.Failures = append(report.Failures, RowFailure{Row: rowNumber + 1, Reason: err.Error()})
			continue
		}
		report.Imported++
	}

	if report.Imported == 0 {
		return report, NewValidationError("no rows imported from %s", fileName)
	}

	uploadID, err := service.recordUpload(fileName, contentHash, models.UploadTypeSelections, period, week)
	if err != nil {
		return report, err
	}
	report.UploadID = uploadID
	return report, nil
}

// screenUpload runs both duplicate guards before any meal data is touched:
// identical bytes seen before, then an overlapping period token already
// processed for this upload type. The resolved week is snapped to its Monday
// so imported rows stay reachable through the Monday-keyed week endpoints
// even when the filename's day range starts mid-week.
func (service *ImportService) screenUpload(fileName string, fileBytes []byte, uploadType string, today time.Time) (time.Time, weekdate.UploadPeriod, string, error) {
	digest := sha256.Sum256(fileBytes)
	contentHash := hex.EncodeToString(digest[:])

	if prior, found, err := service.uploads.FindByContentHash(contentHash); err != nil {
		return time.Time{}, weekdate.UploadPeriod{}, "", err
	} else if found {
		return time.Time{}, weekdate.UploadPeriod{}, "", NewConflictError(
			"duplicate of %s uploaded %s", prior.FileName, prior.CreatedAt.Format(weekdate.WeekKeyLayout))
	}

	period, err := weekdate.ParseUploadPeriod(fileName)
	if err != nil {
		return time.Time{}, weekdate.UploadPeriod{}, "", NewValidationError("filename %q has no period token like 13-17", fileName)
	}

	priors, err := service.uploads.ListByType(uploadType)
	if err != nil {
		return time.Time{}, weekdate.UploadPeriod{}, "", err
	}
	for _, prior := range priors {
		priorPeriod := weekdate.UploadPeriod{StartDay: prior.PeriodStart, EndDay: prior.PeriodEnd}
		if period.Overlaps(priorPeriod) {
			return time.Time{}, weekdate.UploadPeriod{}, "", NewConflictError(
				"period %d-%d overlaps %s uploaded %s", period.StartDay, period.EndDay,
				prior.FileName, prior.CreatedAt.Format(weekdate.WeekKeyLayout))
		}
	}

	return weekdate.WeekStart(period.WeekStartFrom(today)), period, contentHash, nil
}

func (service *ImportService) recordUpload(fileName string, contentHash string, uploadType string, period weekdate.UploadPeriod, week time.Time) (string, error) {
	upload := models.UploadHistory{
		PublicID:    uuid.NewString(),
		FileName:    fileName,
		ContentHash: contentHash,
		UploadType:  uploadType,
		PeriodStart: period.StartDay,
		PeriodEnd:   period.EndDay,
		Week:        week,
	}
	if err := service.uploads.Create(&upload); err != nil {
		return "", translateStoreError(err)
	}
	return upload.PublicID, nil
}

func (service *ImportService) upsertOption(week time.Time, category ParsedCategory) error {
	option, found, err := service.options.FindByWeekAndCategory(week, category.Name)
	if err != nil {
		return err
	}
	if !found {
		option = models.MealOption{Week: week, Category: category.Name}
	}
	for _, day := range models.Weekdays {
		option.SetDay(day, category.Days[day])
	}
	if !found {
		return translateStoreError(service.options.Create(&option))
	}
	return service.options.Save(&option)
}

func (service *ImportService) upsertSelection(userID uint, week time.Time, dayCells []string) error {
	selection, found, err := service.selections.FindByUserAndWeek(userID, week)
	if err != nil {
		return err
	}
	if !found {
		selection = models.MealSelection{UserID: userID, Week: week}
	}
	for index, day := range models.Weekdays {
		selection.SetDay(day, strings.TrimSpace(dayCells[index]))
	}
	if !found {
		return translateStoreError(service.selections.Create(&selection))
	}
	return service.selections.Save(&selection)
}

// importUnmatchedRow fabricates an inactive placeholder account for the name
// and stores the row as an ImportedMeal. A placeholder email collision just
// means an earlier import already created the account; it is skipped
// silently.
func (service *ImportService) importUnmatchedRow(employeeName string, week time.Time, dayCells []string) error {
	placeholder := models.User{
		Email:        PlaceholderEmail(employeeName),
		EmployeeName: employeeName,
		IsActive:     false,
	}
	if err := service.users.Create(&placeholder); err != nil && !isDuplicateKey(err) {
		return err
	}

	imported, found, err := service.imported.FindByNameAndWeek(employeeName, week)
	if err != nil {
		return err
	}
	if !found {
		imported = models.ImportedMeal{EmployeeName: employeeName, Week: week}
	}
	for index, day := range models.Weekdays {
		imported.SetDay(day, strings.TrimSpace(dayCells[index]))
	}
	if !found {
		return translateStoreError(service.imported.Create(&imported))
	}
	return service.imported.Save(&imported)
}

func looksLikeSelectionHeader(row []string) bool {
	if len(row) < 2 {
		return false
	}
	second := strings.ToLower(strings.TrimSpace(row[1]))
	return second == "luni" || second == "monday"
}

func rowIsEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
