package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/thefr3spirit/homs-backend/internal/service"
	"github.com/thefr3spirit/homs-backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler produces downloadable snapshots of the full summary
// history, newest first.
type ExportHandler struct {
	Service *service.SummaryService
}

func NewExportHandler(svc *service.SummaryService) *ExportHandler {
	return &ExportHandler{Service: svc}
}

var exportHeader = []string{
	"Date",
	"Rooms Total",
	"Rooms Occupied",
	"Rooms Available",
	"Cash Collected",
	"Momo Collected",
	"Total Collected",
	"Expected Balance",
	"Expenses Logged",
	"Last Updated",
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ExportCSV handles GET /summary/export/csv.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	rows, err := h.Service.All()
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, fmt.Sprintf("Failed to export summaries: %v", err))
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"summaries_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeader)
	for i := range rows {
		s := &rows[i]
		writer.Write([]string{
			util.FormatDate(s.Date),
			strconv.Itoa(s.RoomsTotal),
			strconv.Itoa(s.RoomsOccupied),
			strconv.Itoa(s.RoomsAvailable),
			formatAmount(s.CashCollected),
			formatAmount(s.MomoCollected),
			formatAmount(s.TotalCollected),
			formatAmount(s.ExpectedBalance),
			formatAmount(s.ExpensesLogged),
			s.LastUpdated.Format(time.RFC3339),
		})
	}
}

// ExportXLSX handles GET /summary/export/xlsx.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	rows, err := h.Service.All()
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, fmt.Sprintf("Failed to export summaries: %v", err))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Summaries"
	f.SetSheetName("Sheet1", sheet)

	header := make([]interface{}, len(exportHeader))
	for i, col := range exportHeader {
		header[i] = col
	}
	f.SetSheetRow(sheet, "A1", &header)

	for i := range rows {
		s := &rows[i]
		cell := fmt.Sprintf("A%d", i+2)
		f.SetSheetRow(sheet, cell, &[]interface{}{
			util.FormatDate(s.Date),
			s.RoomsTotal,
			s.RoomsOccupied,
			s.RoomsAvailable,
			s.CashCollected,
			s.MomoCollected,
			s.TotalCollected,
			s.ExpectedBalance,
			s.ExpensesLogged,
			s.LastUpdated.Format(time.RFC3339),
		})
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"summaries_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Fail(c, http.StatusInternalServerError, fmt.Sprintf("Failed to write workbook: %v", err))
	}
}
