package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const Header = "api-key"

const msgUnauthorized = "Invalid or missing API key"

// RequireAPIKey rejects requests without a valid api-key header. Paths under
// any of the exempt prefixes are passed through unchecked.
func RequireAPIKey(next http.Handler, v Verifier, logger *zap.Logger, exempt ...string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, prefix := range exempt {
			if isUnder(r.URL.Path, prefix) {
				next.ServeHTTP(w, r)
				return
			}
		}

		if err := v.Verify(r.Header.Get(Header)); err != nil {
			logger.Warn("rejected request", zap.String("path", r.URL.Path), zap.Error(err))
			encodeUnauthorized(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// isUnder reports whether path is prefix itself or one of its sub-paths.
func isUnder(path, prefix string) bool {
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, strings.TrimSuffix(prefix, "/")+"/")
}

func encodeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error":      msgUnauthorized,
		"statusCode": http.StatusUnauthorized,
	})
}
