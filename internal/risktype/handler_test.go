package risktype_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ferdiebergado/riskapi/internal/field"
	"github.com/ferdiebergado/riskapi/internal/model"
	"github.com/ferdiebergado/riskapi/internal/pkg/errs"
	"github.com/ferdiebergado/riskapi/internal/pkg/web"
	"github.com/ferdiebergado/riskapi/internal/risktype"
)

const fmtErrStatusCode = "rec.Code = %d, want: %d"

func TestHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		listFunc func(ctx context.Context) ([]risktype.RiskType, error)
		code     int
		wantBody string
	}{
		{
			name: "Risk types with nested fields",
			listFunc: func(_ context.Context) ([]risktype.RiskType, error) {
				return []risktype.RiskType{
					{
						Model: model.Model{ID: 1, Metadata: json.RawMessage(`{"label":"fire"}`)},
						Fields: []field.Field{
							{Model: model.Model{ID: 4, Metadata: json.RawMessage(`"required"`)}, RiskTypeID: 1},
						},
					},
					{Model: model.Model{ID: 2, Metadata: json.RawMessage(`""`)}},
				}, nil
			},
			code:     http.StatusOK,
			wantBody: `{"status":"success","risk_types":[{"rt_id":1,"rt_meta":{"label":"fire"},"risk_type_fields":[{"rtf_id":4,"rtf_meta":"required"}]},{"rt_id":2,"rt_meta":"","risk_type_fields":[]}]}`,
		},
		{
			name: "Empty table",
			listFunc: func(_ context.Context) ([]risktype.RiskType, error) {
				return []risktype.RiskType{}, nil
			},
			code:     http.StatusOK,
			wantBody: `{"status":"success","risk_types":[]}`,
		},
		{
			name: "Query failed",
			listFunc: func(_ context.Context) ([]risktype.RiskType, error) {
				return nil, fmt.Errorf("risk type repository: %w", errs.ErrQueryFailed)
			},
			code:     http.StatusInternalServerError,
			wantBody: `{"status":"error","message":"An unexpected error occurred."}`,
		},
		{
			name: "Request cancelled",
			listFunc: func(_ context.Context) ([]risktype.RiskType, error) {
				return nil, context.Canceled
			},
			code:     http.StatusRequestTimeout,
			wantBody: `{"status":"error","message":"Request cancelled or timeout."}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := risktype.NewHandler(&risktype.StubService{ListFunc: tc.listFunc})

			req := httptest.NewRequest(http.MethodGet, "/risk_types", nil)
			rec := httptest.NewRecorder()
			h.List(rec, req)

			if rec.Code != tc.code {
				t.Errorf(fmtErrStatusCode, rec.Code, tc.code)
			}

			if got := rec.Header().Get(web.HeaderContentType); got != web.MimeJSON {
				t.Errorf("rec.Header().Get(%q) = %q, want: %q", web.HeaderContentType, got, web.MimeJSON)
			}

			if got := strings.TrimSpace(rec.Body.String()); got != tc.wantBody {
				t.Errorf("rec.Body = %s, want: %s", got, tc.wantBody)
			}
		})
	}
}

func TestHandler_Create(t *testing.T) {
	t.Parallel()

	var gotMeta json.RawMessage
	svc := &risktype.StubService{
		CreateFunc: func(_ context.Context, meta json.RawMessage) (risktype.RiskType, error) {
			gotMeta = meta
			return risktype.RiskType{Model: model.Model{ID: 17, Metadata: meta}}, nil
		},
	}
	h := risktype.NewHandler(svc)

	params := risktype.CreateRequest{Metadata: json.RawMessage(`{"label":"fire"}`)}
	ctx := web.NewContextWithParams(context.Background(), params)
	req := httptest.NewRequestWithContext(ctx, http.MethodPost, "/risk_types", nil)
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf(fmtErrStatusCode, rec.Code, http.StatusOK)
	}

	if string(gotMeta) != `{"label":"fire"}` {
		t.Errorf("svc.Create() received %s, want: %s", gotMeta, `{"label":"fire"}`)
	}

	wantBody := `{"status":"success","rt_id":17,"message":"Risk type added"}`
	if got := strings.TrimSpace(rec.Body.String()); got != wantBody {
		t.Errorf("rec.Body = %s, want: %s", got, wantBody)
	}
}

func TestHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pathID   string
		findFunc func(ctx context.Context, id int64) (risktype.RiskType, error)
		code     int
		wantBody string
	}{
		{
			name:   "Existing risk type without fields",
			pathID: "1",
			findFunc: func(_ context.Context, id int64) (risktype.RiskType, error) {
				return risktype.RiskType{Model: model.Model{ID: id, Metadata: json.RawMessage(`{"label":"fire"}`)}}, nil
			},
			code:     http.StatusOK,
			wantBody: `{"status":"success","risk_type":{"rt_id":1,"rt_meta":{"label":"fire"},"risk_type_fields":[]}}`,
		},
		{
			name:   "Deleted risk type",
			pathID: "1",
			findFunc: func(_ context.Context, _ int64) (risktype.RiskType, error) {
				return risktype.RiskType{}, fmt.Errorf("risk type repository: %w", errs.ErrNotFound)
			},
			code:     http.StatusNotFound,
			wantBody: `{"status":"error","message":"Record not found."}`,
		},
		{
			name:     "Zero id",
			pathID:   "0",
			code:     http.StatusBadRequest,
			wantBody: `{"status":"error","message":"Invalid id."}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := risktype.NewHandler(&risktype.StubService{FindFunc: tc.findFunc})

			req := httptest.NewRequest(http.MethodGet, "/risk_types/"+tc.pathID, nil)
			req.SetPathValue("id", tc.pathID)
			rec := httptest.NewRecorder()
			h.Get(rec, req)

			if rec.Code != tc.code {
				t.Errorf(fmtErrStatusCode, rec.Code, tc.code)
			}

			if got := strings.TrimSpace(rec.Body.String()); got != tc.wantBody {
				t.Errorf("rec.Body = %s, want: %s", got, tc.wantBody)
			}
		})
	}
}

func TestHandler_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		updateFunc func(ctx context.Context, id int64, meta json.RawMessage) error
		code       int
		wantBody   string
	}{
		{
			name: "Risk type updated",
			updateFunc: func(_ context.Context, id int64, _ json.RawMessage) error {
				if id != 3 {
					return errs.ErrNotFound
				}
				return nil
			},
			code:     http.StatusOK,
			wantBody: `{"status":"success","message":"Risk type updated"}`,
		},
		{
			name: "Missing risk type",
			updateFunc: func(_ context.Context, _ int64, _ json.RawMessage) error {
				return errs.ErrNotFound
			},
			code:     http.StatusNotFound,
			wantBody: `{"status":"error","message":"Record not found."}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := risktype.NewHandler(&risktype.StubService{UpdateFunc: tc.updateFunc})

			ctx := web.NewContextWithParams(context.Background(), risktype.UpdateRequest{Metadata: json.RawMessage(`[]`)})
			req := httptest.NewRequestWithContext(ctx, http.MethodPut, "/risk_types/3", nil)
			req.SetPathValue("id", "3")
			rec := httptest.NewRecorder()
			h.Update(rec, req)

			if rec.Code != tc.code {
				t.Errorf(fmtErrStatusCode, rec.Code, tc.code)
			}

			if got := strings.TrimSpace(rec.Body.String()); got != tc.wantBody {
				t.Errorf("rec.Body = %s, want: %s", got, tc.wantBody)
			}
		})
	}
}

func TestHandler_Delete(t *testing.T) {
	t.Parallel()

	var gotID int64
	svc := &risktype.StubService{
		DeleteFunc: func(_ context.Context, id int64) error {
			gotID = id
			return nil
		},
	}
	h := risktype.NewHandler(svc)

	req := httptest.NewRequest(http.MethodDelete, "/risk_types/12", nil)
	req.SetPathValue("id", "12")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf(fmtErrStatusCode, rec.Code, http.StatusOK)
	}

	if gotID != 12 {
		t.Errorf("svc.Delete(%d), want: svc.Delete(12)", gotID)
	}

	wantBody := `{"status":"success","message":"Risk type removed"}`
	if got := strings.TrimSpace(rec.Body.String()); got != wantBody {
		t.Errorf("rec.Body = %s, want: %s", got, wantBody)
	}
}
