package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http/httptest"
	"strings"
	"testing"

	"timeadventures/internal/service"
)

func TestRespondWithErrorWritesStatusAndBody(t *testing.T) {
	recorder := httptest.NewRecorder()

	respondWithError(recorder, 418, "Teapot", nil)

	if recorder.Code != 418 {
		t.Fatalf("expected status 418, got %d", recorder.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["error"] != "Teapot" {
		t.Fatalf("expected error 'Teapot', got %q", body["error"])
	}
}

func TestRespondWithErrorLogsDetail(t *testing.T) {
	var buf bytes.Buffer
	logger := log.Default()
	originalOutput := logger.Writer()
	logger.SetOutput(&buf)
	defer logger.SetOutput(originalOutput)

	recorder := httptest.NewRecorder()
	err := errors.New("boom")

	respondWithError(recorder, 500, errInternalServer, err)

	logOutput := buf.String()
	if !strings.Contains(logOutput, "Internal server error") {
		t.Fatalf("expected log to include user message, got %q", logOutput)
	}
	if !strings.Contains(logOutput, "boom") {
		t.Fatalf("expected log to include error, got %q", logOutput)
	}

	// The detail stays out of the response body
	if strings.Contains(recorder.Body.String(), "boom") {
		t.Fatalf("expected error detail kept out of response, got %q", recorder.Body.String())
	}
}

func TestRespondServiceError(t *testing.T) {
	t.Run("validation error maps to 400", func(t *testing.T) {
		recorder := httptest.NewRecorder()

		respondServiceError(recorder, service.ValidationError{Field: "userId", Message: "userId is required"})

		if recorder.Code != 400 {
			t.Fatalf("expected status 400, got %d", recorder.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body["error"] != "userId is required" {
			t.Fatalf("expected validation message, got %q", body["error"])
		}
	})

	t.Run("storage error maps to generic 500", func(t *testing.T) {
		recorder := httptest.NewRecorder()

		respondServiceError(recorder, &service.StorageError{Op: "record attempt", Err: errors.New("disk full")})

		if recorder.Code != 500 {
			t.Fatalf("expected status 500, got %d", recorder.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body["error"] != errInternalServer {
			t.Fatalf("expected generic message, got %q", body["error"])
		}
		if strings.Contains(recorder.Body.String(), "disk full") {
			t.Fatalf("expected storage detail kept out of response, got %q", recorder.Body.String())
		}
	})
}
