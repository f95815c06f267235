package reqlog_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/volunhub/volunhub/internal/app/system/reqlog"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMiddlewareLogsAndTagsRequest(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	h := reqlog.Middleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/projects/abc", nil))

	if rec.Header().Get(reqlog.RequestIDHeader) == "" {
		t.Error("request id header not set")
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["path"] != "/projects/abc" {
		t.Errorf("path = %v", fields["path"])
	}
	if fields["status"] != int64(http.StatusNotFound) {
		t.Errorf("status = %v", fields["status"])
	}
	if fields["request_id"] == "" {
		t.Error("request_id missing from log")
	}
}
