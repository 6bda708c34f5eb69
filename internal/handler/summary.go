package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/thefr3spirit/homs-backend/internal/models"
	"github.com/thefr3spirit/homs-backend/internal/service"
	"github.com/thefr3spirit/homs-backend/internal/util"

	"github.com/gin-gonic/gin"
)

// SummaryHandler exposes the daily-summary endpoints.
type SummaryHandler struct {
	Service *service.SummaryService
}

func NewSummaryHandler(svc *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{Service: svc}
}

// ---------- request/response shapes ----------

// createSummaryReq requires every field to be present. Numeric fields
// are pointers so a literal 0 passes the required check while a missing
// field does not.
type createSummaryReq struct {
	Date            string   `json:"date" binding:"required"`
	RoomsTotal      *int     `json:"rooms_total" binding:"required"`
	RoomsOccupied   *int     `json:"rooms_occupied" binding:"required"`
	RoomsAvailable  *int     `json:"rooms_available" binding:"required"`
	CashCollected   *float64 `json:"cash_collected" binding:"required"`
	MomoCollected   *float64 `json:"momo_collected" binding:"required"`
	TotalCollected  *float64 `json:"total_collected" binding:"required"`
	ExpectedBalance *float64 `json:"expected_balance" binding:"required"`
	ExpensesLogged  *float64 `json:"expenses_logged" binding:"required"`
}

type summaryResp struct {
	ID              string    `json:"id"`
	Date            string    `json:"date"`
	RoomsTotal      int       `json:"rooms_total"`
	RoomsOccupied   int       `json:"rooms_occupied"`
	RoomsAvailable  int       `json:"rooms_available"`
	CashCollected   float64   `json:"cash_collected"`
	MomoCollected   float64   `json:"momo_collected"`
	TotalCollected  float64   `json:"total_collected"`
	ExpectedBalance float64   `json:"expected_balance"`
	ExpensesLogged  float64   `json:"expenses_logged"`
	LastUpdated     time.Time `json:"last_updated"`
}

func toSummaryResp(s *models.DailySummary) summaryResp {
	return summaryResp{
		ID:              s.ID,
		Date:            util.FormatDate(s.Date),
		RoomsTotal:      s.RoomsTotal,
		RoomsOccupied:   s.RoomsOccupied,
		RoomsAvailable:  s.RoomsAvailable,
		CashCollected:   s.CashCollected,
		MomoCollected:   s.MomoCollected,
		TotalCollected:  s.TotalCollected,
		ExpectedBalance: s.ExpectedBalance,
		ExpensesLogged:  s.ExpensesLogged,
		LastUpdated:     s.LastUpdated,
	}
}

func toSummaryList(rows []models.DailySummary) []summaryResp {
	items := make([]summaryResp, 0, len(rows))
	for i := range rows {
		items = append(items, toSummaryResp(&rows[i]))
	}
	return items
}

// ---------- endpoints ----------

// Create handles POST /summary. A summary for an already-submitted
// date overwrites the stored one.
func (h *SummaryHandler) Create(c *gin.Context) {
	var req createSummaryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	row, err := h.Service.CreateOrUpdate(service.SummaryInput{
		Date:            date,
		RoomsTotal:      *req.RoomsTotal,
		RoomsOccupied:   *req.RoomsOccupied,
		RoomsAvailable:  *req.RoomsAvailable,
		CashCollected:   *req.CashCollected,
		MomoCollected:   *req.MomoCollected,
		TotalCollected:  *req.TotalCollected,
		ExpectedBalance: *req.ExpectedBalance,
		ExpensesLogged:  *req.ExpensesLogged,
	})
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, fmt.Sprintf("Failed to create summary: %v", err))
		return
	}

	c.JSON(http.StatusCreated, toSummaryResp(row))
}

// GetToday handles GET /summary/today.
func (h *SummaryHandler) GetToday(c *gin.Context) {
	row, err := h.Service.GetToday()
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, fmt.Sprintf("Failed to fetch summary: %v", err))
		return
	}
	if row == nil {
		util.Fail(c, http.StatusNotFound,
			fmt.Sprintf("No summary found for today (%s)", util.FormatDate(util.Today())))
		return
	}

	c.JSON(http.StatusOK, toSummaryResp(row))
}

// GetLatest handles GET /summary/latest. The most recent summary may
// not be today's.
func (h *SummaryHandler) GetLatest(c *gin.Context) {
	row, err := h.Service.GetLatest()
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, fmt.Sprintf("Failed to fetch summary: %v", err))
		return
	}
	if row == nil {
		util.Fail(c, http.StatusNotFound, "No summaries found in database")
		return
	}

	c.JSON(http.StatusOK, toSummaryResp(row))
}

// GetHistory handles GET /summary/history with limit/offset paging.
// limit must be within [1,100] (default 30), offset >= 0 (default 0);
// out-of-range values are rejected, not clamped.
func (h *SummaryHandler) GetHistory(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "30"))
	if err != nil || limit < 1 || limit > 100 {
		util.Fail(c, http.StatusBadRequest, "limit must be an integer between 1 and 100")
		return
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		util.Fail(c, http.StatusBadRequest, "offset must be a non-negative integer")
		return
	}

	rows, err := h.Service.GetHistory(limit, offset)
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, fmt.Sprintf("Failed to fetch history: %v", err))
		return
	}

	c.JSON(http.StatusOK, toSummaryList(rows))
}

// GetByDate handles GET /summary/date/:date.
func (h *SummaryHandler) GetByDate(c *gin.Context) {
	date, err := util.ParseDate(c.Param("date"))
	if err != nil {
		util.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	row, err := h.Service.GetByDate(date)
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, fmt.Sprintf("Failed to fetch summary: %v", err))
		return
	}
	if row == nil {
		util.Fail(c, http.StatusNotFound,
			fmt.Sprintf("No summary found for date %s", util.FormatDate(date)))
		return
	}

	c.JSON(http.StatusOK, toSummaryResp(row))
}

// GetRange handles GET /summary/range?start_date&end_date, both
// required and inclusive. A contradictory range is rejected before any
// storage access.
func (h *SummaryHandler) GetRange(c *gin.Context) {
	start, err := util.ParseDate(c.Query("start_date"))
	if err != nil {
		util.Fail(c, http.StatusBadRequest, fmt.Sprintf("start_date: %v", err))
		return
	}
	end, err := util.ParseDate(c.Query("end_date"))
	if err != nil {
		util.Fail(c, http.StatusBadRequest, fmt.Sprintf("end_date: %v", err))
		return
	}
	if start.After(end) {
		util.Fail(c, http.StatusBadRequest, "start_date must be before or equal to end_date")
		return
	}

	rows, err := h.Service.GetRange(start, end)
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, fmt.Sprintf("Failed to fetch summaries: %v", err))
		return
	}

	c.JSON(http.StatusOK, toSummaryList(rows))
}

// DeleteByDate handles DELETE /summary/date/:date.
func (h *SummaryHandler) DeleteByDate(c *gin.Context) {
	date, err := util.ParseDate(c.Param("date"))
	if err != nil {
		util.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	deleted, err := h.Service.DeleteByDate(date)
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, fmt.Sprintf("Failed to delete summary: %v", err))
		return
	}
	if !deleted {
		util.Fail(c, http.StatusNotFound,
			fmt.Sprintf("No summary found for date %s", util.FormatDate(date)))
		return
	}

	util.Message(c, "Summary deleted successfully",
		fmt.Sprintf("Summary for %s has been removed", util.FormatDate(date)))
}

// Count handles GET /summary/count.
func (h *SummaryHandler) Count(c *gin.Context) {
	n, err := h.Service.Count()
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, fmt.Sprintf("Failed to count summaries: %v", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": n})
}
