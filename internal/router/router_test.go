package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/thefr3spirit/homs-backend/internal/config"
	"github.com/thefr3spirit/homs-backend/internal/database"
	"github.com/thefr3spirit/homs-backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{
		Server: config.ServerConfig{Debug: false},
		App:    config.AppConfig{Name: "Lemi Hotel Management System", Version: "test"},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	return Setup(cfg, db, log)
}

func perform(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return resp
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return resp
}

func summaryBody(date string) map[string]interface{} {
	return map[string]interface{}{
		"date":             date,
		"rooms_total":      20,
		"rooms_occupied":   12,
		"rooms_available":  8,
		"cash_collected":   300.0,
		"momo_collected":   150.0,
		"total_collected":  450.0,
		"expected_balance": 400.0,
		"expenses_logged":  50.0,
	}
}

func seed(t *testing.T, r *gin.Engine, dates ...string) {
	t.Helper()
	for _, d := range dates {
		w := perform(r, http.MethodPost, "/summary", summaryBody(d))
		require.Equal(t, http.StatusCreated, w.Code, "seed %s: %s", d, w.Body.String())
	}
}

func TestCreateSummary(t *testing.T) {
	r := newTestRouter(t)

	w := perform(r, http.MethodPost, "/summary", summaryBody("2024-01-01"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := decode(t, w)
	assert.NotEmpty(t, resp["id"])
	assert.Equal(t, "2024-01-01", resp["date"])
	assert.Equal(t, 300.0, resp["cash_collected"])
	assert.Equal(t, 20.0, resp["rooms_total"])

	_, err := time.Parse(time.RFC3339, resp["last_updated"].(string))
	assert.NoError(t, err, "last_updated must be RFC3339")
}

func TestCreateSummary_ZeroAmountsAllowed(t *testing.T) {
	r := newTestRouter(t)

	body := summaryBody("2024-01-01")
	for _, k := range []string{"cash_collected", "momo_collected", "total_collected", "expected_balance", "expenses_logged"} {
		body[k] = 0.0
	}

	w := perform(r, http.MethodPost, "/summary", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 0.0, decode(t, w)["cash_collected"])
}

func TestCreateSummary_MissingFieldRejected(t *testing.T) {
	r := newTestRouter(t)

	for _, missing := range []string{"date", "rooms_total", "cash_collected"} {
		body := summaryBody("2024-01-01")
		delete(body, missing)

		w := perform(r, http.MethodPost, "/summary", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "missing %s", missing)
		assert.NotEmpty(t, decode(t, w)["detail"])
	}

	// nothing was stored
	w := perform(r, http.MethodGet, "/summary/count", nil)
	assert.Equal(t, 0.0, decode(t, w)["count"])
}

func TestCreateSummary_BadDateRejected(t *testing.T) {
	r := newTestRouter(t)

	body := summaryBody("01/02/2024")
	w := perform(r, http.MethodPost, "/summary", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSummary_ResubmitOverwrites(t *testing.T) {
	r := newTestRouter(t)

	first := decode(t, perform(r, http.MethodPost, "/summary", summaryBody("2024-01-01")))

	body := summaryBody("2024-01-01")
	body["cash_collected"] = 999.0
	w := perform(r, http.MethodPost, "/summary", body)
	require.Equal(t, http.StatusCreated, w.Code)

	second := decode(t, w)
	assert.Equal(t, first["id"], second["id"])
	assert.Equal(t, 999.0, second["cash_collected"])

	count := decode(t, perform(r, http.MethodGet, "/summary/count", nil))
	assert.Equal(t, 1.0, count["count"])
}

func TestGetToday(t *testing.T) {
	r := newTestRouter(t)

	w := perform(r, http.MethodGet, "/summary/today", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decode(t, w)["detail"], "No summary found for today")

	today := util.FormatDate(util.Today())
	seed(t, r, today)

	w = perform(r, http.MethodGet, "/summary/today", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, today, decode(t, w)["date"])
}

func TestGetLatest(t *testing.T) {
	r := newTestRouter(t)

	w := perform(r, http.MethodGet, "/summary/latest", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No summaries found in database", decode(t, w)["detail"])

	seed(t, r, "2024-01-01", "2024-01-03", "2024-01-02")

	w = perform(r, http.MethodGet, "/summary/latest", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2024-01-03", decode(t, w)["date"])
}

func TestHistory_Paging(t *testing.T) {
	r := newTestRouter(t)
	seed(t, r, "2024-01-01", "2024-01-02", "2024-01-03")

	w := perform(r, http.MethodGet, "/summary/history?limit=2&offset=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	items := decodeList(t, w)
	require.Len(t, items, 2)
	assert.Equal(t, "2024-01-02", items[0]["date"])
	assert.Equal(t, "2024-01-01", items[1]["date"])
}

func TestHistory_EmptyIsArray(t *testing.T) {
	r := newTestRouter(t)

	w := perform(r, http.MethodGet, "/summary/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestHistory_BoundsRejected(t *testing.T) {
	r := newTestRouter(t)

	for _, query := range []string{
		"limit=0",
		"limit=101",
		"limit=abc",
		"offset=-1",
		"offset=abc",
	} {
		w := perform(r, http.MethodGet, "/summary/history?"+query, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

func TestGetByDate(t *testing.T) {
	r := newTestRouter(t)
	seed(t, r, "2024-01-02")

	w := perform(r, http.MethodGet, "/summary/date/2024-01-02", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2024-01-02", decode(t, w)["date"])

	w = perform(r, http.MethodGet, "/summary/date/2024-01-05", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decode(t, w)["detail"], "2024-01-05")

	w = perform(r, http.MethodGet, "/summary/date/not-a-date", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRange(t *testing.T) {
	r := newTestRouter(t)
	seed(t, r, "2024-01-01", "2024-01-02", "2024-01-03")

	w := perform(r, http.MethodGet, "/summary/range?start_date=2024-01-01&end_date=2024-01-02", nil)
	require.Equal(t, http.StatusOK, w.Code)

	items := decodeList(t, w)
	require.Len(t, items, 2)
	assert.Equal(t, "2024-01-02", items[0]["date"])
	assert.Equal(t, "2024-01-01", items[1]["date"])
}

func TestRange_InvalidRejected(t *testing.T) {
	r := newTestRouter(t)

	// contradictory range
	w := perform(r, http.MethodGet, "/summary/range?start_date=2024-01-03&end_date=2024-01-01", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "start_date must be before or equal to end_date", decode(t, w)["detail"])

	// missing parameters
	w = perform(r, http.MethodGet, "/summary/range?start_date=2024-01-01", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(r, http.MethodGet, "/summary/range", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteByDate(t *testing.T) {
	r := newTestRouter(t)

	w := perform(r, http.MethodDelete, "/summary/date/2024-01-01", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	seed(t, r, "2024-01-01")

	w = perform(r, http.MethodDelete, "/summary/date/2024-01-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "Summary deleted successfully", resp["message"])
	assert.Contains(t, resp["detail"], "2024-01-01")

	w = perform(r, http.MethodGet, "/summary/date/2024-01-01", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCountEndpoint(t *testing.T) {
	r := newTestRouter(t)
	seed(t, r, "2024-01-01", "2024-01-02")

	w := perform(r, http.MethodGet, "/summary/count", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2.0, decode(t, w)["count"])
}

func TestRootAndHealth(t *testing.T) {
	r := newTestRouter(t)

	w := perform(r, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "online", resp["status"])
	assert.Equal(t, "test", resp["version"])

	w = perform(r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode(t, w)["status"])
}

func TestExportCSV(t *testing.T) {
	r := newTestRouter(t)
	seed(t, r, "2024-01-01", "2024-01-02")

	w := perform(r, http.MethodGet, "/summary/export/csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	body := w.Body.String()
	assert.Contains(t, body, "Date,Rooms Total")
	assert.Contains(t, body, "2024-01-01")
	assert.Contains(t, body, "2024-01-02")
}

func TestExportXLSX(t *testing.T) {
	r := newTestRouter(t)
	seed(t, r, "2024-01-01")

	w := perform(r, http.MethodGet, "/summary/export/xlsx", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.NotZero(t, w.Body.Len())
}
