package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequireAPIKey(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := RequireAPIKey(next, NewVerifier(NewKey("key")), zap.NewNop(), "/health")

	tests := []struct {
		path, key string
		wantCode  int
	}{
		{path: "/users", wantCode: http.StatusUnauthorized},
		{path: "/users", key: "wrong", wantCode: http.StatusUnauthorized},
		{path: "/users", key: "key", wantCode: http.StatusTeapot},
		{path: "/users/abc", key: "key", wantCode: http.StatusTeapot},
		{path: "/health", wantCode: http.StatusTeapot},
		{path: "/health/live", wantCode: http.StatusTeapot},
		{path: "/healthz", wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.path+"/"+tt.key, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.key != "" {
				r.Header.Set(Header, tt.key)
			}

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode != http.StatusUnauthorized {
				return
			}

			var res struct {
				Err        string `json:"error"`
				StatusCode int    `json:"statusCode"`
			}
			assert.NoError(t, json.NewDecoder(w.Body).Decode(&res))
			assert.Equal(t, "Invalid or missing API key", res.Err)
			assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		})
	}
}
