package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hr-staff/hr-staff-backend-go/internal/domain/attendance"
	"github.com/hr-staff/hr-staff-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceService struct {
	markResult attendance.MarkResult
	markErr    error
}

func (f *fakeAttendanceService) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.MarkResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkResult{}, err
	}
	return f.markResult, f.markErr
}

func (f *fakeAttendanceService) List(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	return nil, nil
}

func (f *fakeAttendanceService) ListByDate(ctx context.Context, date string) ([]attendance.AttendanceResponse, error) {
	return nil, nil
}

func (f *fakeAttendanceService) Today(ctx context.Context) ([]attendance.DailyRow, error) {
	return nil, nil
}

func (f *fakeAttendanceService) DailySummary(ctx context.Context, date string) (attendance.DailySummaryResponse, error) {
	return attendance.DailySummaryResponse{}, nil
}

func (f *fakeAttendanceService) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) error {
	return nil
}

func (f *fakeAttendanceService) Delete(ctx context.Context, id string) error {
	return nil
}

func markRequestBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1", Date: "2025-03-10", Status: "Present",
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestAttendanceHandler_Mark_Created(t *testing.T) {
	t.Parallel()

	svc := &fakeAttendanceService{markResult: attendance.MarkResult{
		Record:  attendance.AttendanceResponse{ID: "att-1", Status: "Present"},
		Created: true,
	}}
	handler := NewAttendanceHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/attendance", markRequestBody(t))
	rec := httptest.NewRecorder()
	handler.MarkAttendance(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Attendance recorded successfully", resp.Message)
}

func TestAttendanceHandler_Mark_Updated(t *testing.T) {
	t.Parallel()

	svc := &fakeAttendanceService{markResult: attendance.MarkResult{
		Record:  attendance.AttendanceResponse{ID: "att-1", Status: "Late"},
		Created: false,
	}}
	handler := NewAttendanceHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/attendance", markRequestBody(t))
	rec := httptest.NewRecorder()
	handler.MarkAttendance(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Attendance updated successfully", resp.Message)
}

func TestAttendanceHandler_Mark_UnknownEmployee(t *testing.T) {
	t.Parallel()

	svc := &fakeAttendanceService{markErr: employee.ErrEmployeeNotFound}
	handler := NewAttendanceHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/attendance", markRequestBody(t))
	rec := httptest.NewRecorder()
	handler.MarkAttendance(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAttendanceHandler_Mark_ValidationError(t *testing.T) {
	t.Parallel()

	handler := NewAttendanceHandler(&fakeAttendanceService{})

	body, err := json.Marshal(attendance.MarkAttendanceRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/attendance", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()
	handler.MarkAttendance(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "date")
}

func TestAttendanceHandler_DailySummary_RouteParam(t *testing.T) {
	t.Parallel()

	handler := NewAttendanceHandler(&fakeAttendanceService{})

	r := chi.NewRouter()
	r.Get("/api/attendance/summary/{date}", handler.DailySummary)

	req := httptest.NewRequest(http.MethodGet, "/api/attendance/summary/2025-03-10", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
