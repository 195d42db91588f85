package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ferdiebergado/riskapi/internal/middleware"
	"github.com/ferdiebergado/riskapi/internal/model"
	"github.com/ferdiebergado/riskapi/internal/pkg/web"
)

func TestDecodePayload(t *testing.T) {
	t.Parallel()

	const header = "X-Handler-Called"

	type fieldUpdate struct {
		RiskTypeID model.ID        `json:"rt_id"`
		Meta       json.RawMessage `json:"rtf_meta"`
	}

	tests := []struct {
		name     string
		code     int
		payload  []byte
		bodySize int64
		header   string
		wantBody string
	}{
		{"Valid payload", http.StatusOK, []byte(`{"rt_id":2,"rtf_meta":{"a":1}}`), 64, "true", `{"rt_id":2,"rtf_meta":{"a":1}}`},
		{"Numeric string id", http.StatusOK, []byte(`{"rt_id":"2","rtf_meta":"x"}`), 64, "true", `{"rt_id":2,"rtf_meta":"x"}`},
		{"Unknown field is ignored", http.StatusOK, []byte(`{"rt_id":1,"extra":true}`), 64, "true", `{"rt_id":1,"rtf_meta":null}`},
		{"Empty body", http.StatusOK, []byte(``), 64, "true", `{"rt_id":0,"rtf_meta":null}`},
		{"Payload too large", http.StatusRequestEntityTooLarge, []byte(`{"rt_id": 1, "rtf_meta": "long"}`), 4, "", ""},
		{"Extra payload", http.StatusBadRequest, []byte(`{"rt_id": 1}{"rt_id": 2}`), 64, "", ""},
		{"Incorrect id type", http.StatusBadRequest, []byte(`{"rt_id": "abc"}`), 64, "", ""},
		{"Malformed payload", http.StatusBadRequest, []byte(`{"rt_id"`), 64, "", ""},
		{"Invalid UTF-8 in string", http.StatusBadRequest, []byte("{\"rt_id\":1,\"rtf_meta\":\"\xff\"}"), 64, "", ""},
		{"Multibyte UTF-8", http.StatusOK, []byte(`{"rt_id":3,"rtf_meta":"été"}`), 64, "true", `{"rt_id":3,"rtf_meta":"été"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				params, err := web.ParamsFromContext[fieldUpdate](r.Context())
				if err != nil {
					http.Error(w, err.Error(), http.StatusBadRequest)
					return
				}

				w.Header().Set(header, "true")
				w.WriteHeader(http.StatusOK)
				if err := json.NewEncoder(w).Encode(&params); err != nil {
					http.Error(w, err.Error(), http.StatusInternalServerError)
					return
				}
			})

			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(tt.payload))
			rec := httptest.NewRecorder()
			middleware.DecodePayload[fieldUpdate](tt.bodySize)(handler).ServeHTTP(rec, req)

			gotCode, wantCode := rec.Code, tt.code
			if gotCode != wantCode {
				t.Errorf("rec.Code = %d, want: %d", gotCode, wantCode)
			}

			gotHeader, wantHeader := rec.Header().Get(header), tt.header
			if gotHeader != wantHeader {
				t.Errorf("rec.Header().Get(%q) = %q, want: %q", header, gotHeader, wantHeader)
			}

			gotBody := strings.TrimSuffix(rec.Body.String(), "\n")
			if tt.header == "true" && gotBody != tt.wantBody {
				t.Errorf("rec.Body.String() = %q, want: %q", gotBody, tt.wantBody)
			}
		})
	}
}
