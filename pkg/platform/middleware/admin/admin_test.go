package admin

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireAdminToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	logger := slog.New(slog.DiscardHandler)

	cases := []struct {
		name     string
		expected string
		sent     string
		status   int
	}{
		{"matching token", "s3cret", "s3cret", http.StatusNoContent},
		{"missing token", "s3cret", "", http.StatusForbidden},
		{"wrong token", "s3cret", "s3cre", http.StatusForbidden},
		{"unconfigured token rejects everything", "", "", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/faqs", nil)
			if tc.sent != "" {
				req.Header.Set(HeaderName, tc.sent)
			}
			rr := httptest.NewRecorder()
			RequireAdminToken(tc.expected, logger)(next).ServeHTTP(rr, req)

			assert.Equal(t, tc.status, rr.Code)
			if tc.status == http.StatusForbidden {
				assert.JSONEq(t, `{"error":"forbidden","error_description":"admin token required"}`, rr.Body.String())
			}
		})
	}
}
