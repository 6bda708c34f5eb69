package service

import (
	"errors"
	"time"

	"github.com/thefr3spirit/homs-backend/internal/models"
	"github.com/thefr3spirit/homs-backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SummaryService implements the business rules for daily summaries.
// Every method runs as a single transaction against the store; lookups
// signal absence with a nil record, never an error.
type SummaryService struct {
	db *gorm.DB
}

func NewSummaryService(db *gorm.DB) *SummaryService {
	return &SummaryService{db: db}
}

// SummaryInput carries the validated fields of one submission.
type SummaryInput struct {
	Date            time.Time
	RoomsTotal      int
	RoomsOccupied   int
	RoomsAvailable  int
	CashCollected   float64
	MomoCollected   float64
	TotalCollected  float64
	ExpectedBalance float64
	ExpensesLogged  float64
}

// updatableColumns are the columns overwritten when a date is
// resubmitted. The id column is never touched.
var updatableColumns = []string{
	"rooms_total",
	"rooms_occupied",
	"rooms_available",
	"cash_collected",
	"momo_collected",
	"total_collected",
	"expected_balance",
	"expenses_logged",
	"last_updated",
}

// CreateOrUpdate stores the submission for input.Date. An existing row
// for that date is overwritten field by field; otherwise a new row is
// created with a fresh id. The conflict is resolved by the storage
// engine on the unique date column, so two concurrent submissions for
// the same date both succeed and the row keeps the first writer's id.
func (s *SummaryService) CreateOrUpdate(input SummaryInput) (*models.DailySummary, error) {
	row := models.DailySummary{
		Date:            util.DateOnly(input.Date),
		RoomsTotal:      input.RoomsTotal,
		RoomsOccupied:   input.RoomsOccupied,
		RoomsAvailable:  input.RoomsAvailable,
		CashCollected:   input.CashCollected,
		MomoCollected:   input.MomoCollected,
		TotalCollected:  input.TotalCollected,
		ExpectedBalance: input.ExpectedBalance,
		ExpensesLogged:  input.ExpensesLogged,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns(updatableColumns),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}

	// reload: on conflict the in-memory row holds the discarded id,
	// not the stored one
	return s.GetByDate(input.Date)
}

// GetByDate returns the summary for the given date, or nil when none
// exists.
func (s *SummaryService) GetByDate(date time.Time) (*models.DailySummary, error) {
	var row models.DailySummary
	err := s.db.Where("date = ?", util.DateOnly(date)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetToday returns the summary for the current server-local date.
func (s *SummaryService) GetToday() (*models.DailySummary, error) {
	return s.GetByDate(util.Today())
}

// GetLatest returns the summary with the most recent date, or nil when
// the table is empty.
func (s *SummaryService) GetLatest() (*models.DailySummary, error) {
	var row models.DailySummary
	err := s.db.Order("date DESC").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetHistory returns summaries ordered by date descending, skipping
// offset rows and returning at most limit. Range checks on limit and
// offset belong to the HTTP boundary.
func (s *SummaryService) GetHistory(limit, offset int) ([]models.DailySummary, error) {
	var rows []models.DailySummary
	err := s.db.Order("date DESC").Limit(limit).Offset(offset).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetRange returns all summaries with start <= date <= end, ordered by
// date descending. The caller guarantees start <= end.
func (s *SummaryService) GetRange(start, end time.Time) ([]models.DailySummary, error) {
	var rows []models.DailySummary
	err := s.db.
		Where("date >= ? AND date <= ?", util.DateOnly(start), util.DateOnly(end)).
		Order("date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// All returns every summary ordered by date descending. Used by the
// export endpoints.
func (s *SummaryService) All() ([]models.DailySummary, error) {
	var rows []models.DailySummary
	err := s.db.Order("date DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteByDate removes the summary for the given date and reports
// whether a row was removed. A missing row is not an error.
func (s *SummaryService) DeleteByDate(date time.Time) (bool, error) {
	res := s.db.Where("date = ?", util.DateOnly(date)).Delete(&models.DailySummary{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Count returns the total number of stored summaries.
func (s *SummaryService) Count() (int64, error) {
	var n int64
	if err := s.db.Model(&models.DailySummary{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
