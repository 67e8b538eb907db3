package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	kitlog "github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxpoletaev/parity/api/model"
)

func TestParityHandler_select(t *testing.T) {
	tests := map[string]struct {
		path      string
		body      string
		wantCode  int
		wantBody  string
		wantIndex *int
	}{
		"Evens": {
			path:     "/evens",
			body:     `{"Values": [1, 2, 3, 4]}`,
			wantCode: http.StatusOK,
			wantBody: `{"Values":[2,4]}`,
		},
		"AllEven": {
			path:     "/evens",
			body:     `{"Values": [2, 4]}`,
			wantCode: http.StatusOK,
			wantBody: `{"Values":[2,4]}`,
		},
		"EmptyResultIsArray": {
			path:     "/evens",
			body:     `{"Values": [1, 3, 5]}`,
			wantCode: http.StatusOK,
			wantBody: `{"Values":[]}`,
		},
		"MissingValues": {
			path:     "/evens",
			body:     `{}`,
			wantCode: http.StatusOK,
			wantBody: `{"Values":[]}`,
		},
		"LargeIntegersKeepPrecision": {
			path:     "/evens",
			body:     `{"Values": [9007199254740993, 9007199254740994]}`,
			wantCode: http.StatusOK,
			wantBody: `{"Values":[9007199254740994]}`,
		},
		"Odds": {
			path:     "/odds",
			body:     `{"Values": [-3, -2, 0, 7]}`,
			wantCode: http.StatusOK,
			wantBody: `{"Values":[-3,7]}`,
		},
		"Fraction": {
			path:      "/evens",
			body:      `{"Values": [2, 3.5]}`,
			wantCode:  http.StatusBadRequest,
			wantIndex: intPtr(1),
		},
		"String": {
			path:      "/odds",
			body:      `{"Values": ["1"]}`,
			wantCode:  http.StatusBadRequest,
			wantIndex: intPtr(0),
		},
		"TrailingWhitespace": {
			path:     "/evens",
			body:     "{\"Values\": [1, 2]}\n\t ",
			wantCode: http.StatusOK,
			wantBody: `{"Values":[2]}`,
		},
		"TrailingData": {
			path:     "/evens",
			body:     `{"Values": [1]} junk`,
			wantCode: http.StatusBadRequest,
		},
		"SecondJSONValue": {
			path:     "/evens",
			body:     `{"Values": [1]} {"Values": [2]}`,
			wantCode: http.StatusBadRequest,
		},
		"BodyTooLarge": {
			path:     "/evens",
			body:     `{"Values": [` + strings.Repeat("2,", MaxBodySize) + `2]}`,
			wantCode: http.StatusBadRequest,
		},
		"MalformedJSON": {
			path:     "/evens",
			body:     `{"Values": [1, 2`,
			wantCode: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mux := chi.NewMux()
			NewParityHandler(kitlog.NewNopLogger()).Register(mux)

			req := httptest.NewRequest("POST", tt.path, strings.NewReader(tt.body))
			recorder := httptest.NewRecorder()
			mux.ServeHTTP(recorder, req)

			require.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantCode == http.StatusOK {
				assert.JSONEq(t, tt.wantBody, recorder.Body.String())
				return
			}

			var resp model.ErrorResponse
			err := json.NewDecoder(recorder.Body).Decode(&resp)
			require.NoError(t, err, "failed to unmarshal response: %v", err)

			assert.NotEmpty(t, resp.Error)
			assert.Equal(t, tt.wantIndex, resp.Index)
		})
	}
}

func TestParityHandler_MethodNotAllowed(t *testing.T) {
	mux := chi.NewMux()
	NewParityHandler(kitlog.NewNopLogger()).Register(mux)

	req := httptest.NewRequest("GET", "/evens", nil)
	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}

func intPtr(v int) *int {
	return &v
}
