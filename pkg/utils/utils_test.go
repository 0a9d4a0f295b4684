package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func ptr(s string) *string { return &s }

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name    string
		in      *string
		want    string
		valid   bool
		wantErr bool
	}{
		{name: "nil", in: nil},
		{name: "empty", in: ptr("")},
		{name: "integer", in: ptr("50"), want: "50.00", valid: true},
		{name: "cents", in: ptr("199.99"), want: "199.99", valid: true},
		{name: "rounded", in: ptr("10.005"), want: "10.01", valid: true},
		{name: "not a number", in: ptr("ten"), wantErr: true},
		{name: "largest", in: ptr("9999999999.99"), want: "9999999999.99", valid: true},
		{name: "too many integer digits", in: ptr("10000000000"), wantErr: true},
		{name: "rounds over the limit", in: ptr("9999999999.999"), wantErr: true},
		{name: "negative overflow", in: ptr("-10000000000"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMoney("cost", tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("err = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Valid != tt.valid {
				t.Fatalf("valid = %v, want %v", got.Valid, tt.valid)
			}
			if tt.valid && got.Decimal.StringFixed(2) != tt.want {
				t.Errorf("got %s, want %s", got.Decimal.StringFixed(2), tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("start_date", ptr("2025-06-01"))
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got := time.Time(*d).Format(DateLayout); got != "2025-06-01" {
		t.Errorf("got %s", got)
	}

	if d, err := ParseDate("start_date", nil); d != nil || err != nil {
		t.Errorf("nil input gave %v, %v", d, err)
	}

	_, err = ParseDate("start_date", ptr("01/06/2025"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestParseTimestamp(t *testing.T) {
	ts, err := ParseTimestamp("start_time", ptr("2025-06-01T10:30:00+02:00"))
	if err != nil {
		t.Fatalf("ParseTimestamp: %v", err)
	}
	if ts.Location() != time.UTC || ts.Hour() != 8 {
		t.Errorf("got %v, want 08:30 UTC", ts)
	}

	if _, err := ParseTimestamp("start_time", ptr("tomorrow")); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query    string
		page     int
		pageSize int
		wantErr  error
	}{
		{query: "", page: 1, pageSize: 10},
		{query: "page=3&pageSize=50", page: 3, pageSize: 50},
		{query: "page=0", wantErr: ErrInvalidPage},
		{query: "page=x", wantErr: ErrInvalidPage},
		{query: "pageSize=101", wantErr: ErrInvalidPageSize},
		{query: "pageSize=0", wantErr: ErrInvalidPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)

			page, pageSize, err := ParsePagination(c, 10)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if page != tt.page || pageSize != tt.pageSize {
				t.Errorf("got %d/%d, want %d/%d", page, pageSize, tt.page, tt.pageSize)
			}
		})
	}
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "not found", err: fmt.Errorf("trip %w", ErrNotFound), wantStatus: http.StatusNotFound, wantMsg: "trip record not found"},
		{name: "conflict", err: fmt.Errorf("%w: dup", ErrAlreadyExists), wantStatus: http.StatusConflict, wantMsg: "already exists: dup"},
		{name: "check", err: fmt.Errorf("%w: The weight value is not allowed", ErrConstraintViolated), wantStatus: http.StatusBadRequest, wantMsg: "constraint violated: The weight value is not allowed"},
		{name: "reference", err: ErrReferenceMissing, wantStatus: http.StatusBadRequest, wantMsg: "referenced record missing"},
		{name: "page", err: ErrInvalidPage, wantStatus: http.StatusBadRequest, wantMsg: "Page must be greater than 0"},
		{name: "internal", err: errors.New("connection reset"), wantStatus: http.StatusInternalServerError, wantMsg: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Set("trace_id", "trace-1")

			HandleServiceError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var body APIResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Status != "error" || body.Code != tt.wantStatus || body.TraceID != "trace-1" {
				t.Errorf("envelope = %+v", body)
			}
			if body.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", body.Message, tt.wantMsg)
			}
		})
	}
}

func TestRespondCreated(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondCreated(c, map[string]decimal.Decimal{"total": decimal.RequireFromString("12.50")}, "done")

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Status string            `json:"status"`
		Data   map[string]string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "success" || body.Data["total"] != "12.5" {
		t.Errorf("body = %+v", body)
	}
}
