// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/peninsula/internal/logger"
)

func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func executeWithTraceID(h *Handler, traceID string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if traceID != "" {
		req.Header.Set(traceIDHeader, traceID)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, captured
}

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		traceID    string
		wantReused bool
		wantUUIDv7 bool
	}{
		{name: "caller trace id is reused", traceID: "my-custom-trace-id", wantReused: true},
		{name: "uuid trace id is reused", traceID: "0195d3c4-0000-7000-8000-000000000000", wantReused: true},
		{name: "missing trace id is generated", traceID: "", wantUUIDv7: true},
		{name: "trace id at the limit is reused", traceID: strings.Repeat("a", maxTraceIDLength), wantReused: true},
		{name: "oversized trace id is replaced", traceID: strings.Repeat("a", maxTraceIDLength+1), wantUUIDv7: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, captured := executeWithTraceID(newTestHandler(), tt.traceID)
			require.NotNil(t, captured, "next must be called")
			assert.Equal(t, http.StatusOK, rr.Code)

			got := rr.Header().Get(traceIDHeader)
			if tt.wantReused {
				assert.Equal(t, tt.traceID, got)
			}
			if tt.wantUUIDv7 {
				parsed, err := uuid.Parse(got)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), parsed.Version())
			}
		})
	}
}

func TestWithTraceID_GeneratesUniqueIDs(t *testing.T) {
	h := newTestHandler()
	seen := make(map[string]struct{})
	for range 100 {
		rr, _ := executeWithTraceID(h, "")
		id := rr.Header().Get(traceIDHeader)
		_, dup := seen[id]
		require.False(t, dup, "duplicate trace id %s", id)
		seen[id] = struct{}{}
	}
}

func TestWithTraceID_LoggerInContextCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-123"`)
	assert.Contains(t, buf.String(), `"message":"inside"`)
}

func TestWithTraceID_DoesNotLeakFieldsIntoParentLogger(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	executeWithTraceID(h, "trace-abc")
	buf.Reset()

	h.logger.Info().Msg("parent")
	assert.NotContains(t, buf.String(), "trace_id")
}

func TestWithTraceID_OriginalRequestNotMutated(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	originalCtx := req.Context()

	var captured *http.Request
	h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
	})).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, originalCtx, req.Context())
	assert.NotSame(t, req, captured)
}

func TestWithTraceID_ConcurrentRequests(t *testing.T) {
	h := newTestHandler()
	const n = 50

	ids := make([]string, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rr, _ := executeWithTraceID(h, "")
			ids[i] = rr.Header().Get(traceIDHeader)
		}()
	}
	wg.Wait()

	seen := make(map[string]struct{}, n)
	for _, id := range ids {
		require.NotEmpty(t, id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, n)
}
